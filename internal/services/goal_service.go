package services

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxActiveGoals = 3

var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrGoalLimitReached   = errors.New("you can only have 3 active goals at a time")
	ErrDuplicateIntention = errors.New("you already have a goal with this intention")
	ErrNotPublic          = errors.New("your profile must be public to share a goal")
	ErrAlreadyShared      = errors.New("this intention has already been shared")
)

// GoalService enforces the goal lifecycle: the active-goal limit, per-user
// intention uniqueness, and the share/complete cascades into the community
// feed.
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Create(user *models.User, req *dto.CreateGoalRequest) (*models.Goal, error) {
	fields := map[string]string{
		"intention":  req.Intention,
		"specific":   req.Specific,
		"measurable": req.Measurable,
		"achievable": req.Achievable,
		"relevant":   req.Relevant,
		"timebound":  req.Timebound,
	}
	for name, value := range fields {
		if err := validateGoalField(name, value); err != nil {
			return nil, err
		}
	}

	// Completed goals don't count against the limit, so history is unbounded.
	var active int64
	if err := s.db.Model(&models.Goal{}).
		Where("user_id = ? AND completed = ?", user.ID, false).
		Count(&active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active goals: %w", err)
	}
	if active >= maxActiveGoals {
		return nil, ErrGoalLimitReached
	}

	var existing models.Goal
	if err := s.db.Where("user_id = ? AND intention = ?", user.ID, req.Intention).First(&existing).Error; err == nil {
		return nil, ErrDuplicateIntention
	}

	goal := models.Goal{
		ID:         uuid.New(),
		UserID:     user.ID,
		Intention:  req.Intention,
		Specific:   req.Specific,
		Measurable: req.Measurable,
		Achievable: req.Achievable,
		Relevant:   req.Relevant,
		Timebound:  req.Timebound,
	}

	if err := s.db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &goal, nil
}

func (s *GoalService) List(user *models.User) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// Update applies a partial update to a caller-owned goal. The lookup is a
// combined (id, owner) match, so "not yours" and "not found" are the same
// error. Setting completed=true removes the matching community post.
func (s *GoalService) Update(user *models.User, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, user.ID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}

	updates := make(map[string]interface{})
	textFields := map[string]*string{
		"intention":  req.Intention,
		"specific":   req.Specific,
		"measurable": req.Measurable,
		"achievable": req.Achievable,
		"relevant":   req.Relevant,
		"timebound":  req.Timebound,
	}
	for name, value := range textFields {
		if value == nil {
			continue
		}
		if err := validateGoalField(name, *value); err != nil {
			return nil, err
		}
		updates[name] = *value
	}

	if req.Intention != nil && *req.Intention != goal.Intention {
		var existing models.Goal
		if err := s.db.Where("user_id = ? AND intention = ? AND id <> ?", user.ID, *req.Intention, goal.ID).
			First(&existing).Error; err == nil {
			return nil, ErrDuplicateIntention
		}
	}

	completing := req.Completed != nil && *req.Completed && !goal.Completed
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}

	if len(updates) > 0 {
		if err := s.db.Model(&goal).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update goal: %w", err)
		}
	}

	if completing {
		// At-least-once cascade: the goal update has committed, so a failure
		// here leaves an orphaned post for the next completion attempt or the
		// visibility cascade to sweep up. Comments go first, while the post
		// they hang off still exists.
		matching := s.db.Model(&models.CommunityPost{}).Select("id").
			Where("user_id = ? AND intention = ?", user.ID, goal.Intention)
		if err := s.db.Where("post_id IN (?)", matching).Delete(&models.Comment{}).Error; err != nil {
			slog.Error("comment cascade failed after goal completion",
				"user_id", user.ID.String(), "goal_id", goal.ID.String(), "error", err.Error())
		}

		result := s.db.Where("user_id = ? AND intention = ?", user.ID, goal.Intention).
			Delete(&models.CommunityPost{})
		if result.Error != nil {
			slog.Error("post cascade failed after goal completion",
				"user_id", user.ID.String(), "goal_id", goal.ID.String(), "error", result.Error.Error())
		}
	}

	return &goal, nil
}

// Share publishes a snapshot of a caller-owned goal to the community feed.
func (s *GoalService) Share(user *models.User, goalID uuid.UUID) (*models.CommunityPost, error) {
	if !user.IsPublic {
		return nil, ErrNotPublic
	}

	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, user.ID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}

	var existing models.CommunityPost
	if err := s.db.Where("user_id = ? AND intention = ?", user.ID, goal.Intention).First(&existing).Error; err == nil {
		return nil, ErrAlreadyShared
	}

	post := models.CommunityPost{
		ID:         uuid.New(),
		UserID:     user.ID,
		UserName:   user.Name,
		GoalID:     goal.ID,
		Intention:  goal.Intention,
		Specific:   goal.Specific,
		Measurable: goal.Measurable,
		Achievable: goal.Achievable,
		Relevant:   goal.Relevant,
		Timebound:  goal.Timebound,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create community post: %w", err)
	}

	if err := s.db.Model(&goal).Update("is_public", true).Error; err != nil {
		slog.Error("failed to flag goal as shared",
			"goal_id", goal.ID.String(), "error", err.Error())
	}

	return &post, nil
}

func validateGoalField(name, value string) error {
	// Characters, not bytes: multibyte text must not skew the limits.
	if n := utf8.RuneCountInString(value); n < 20 || n > 150 {
		return fmt.Errorf("%s must be 20-150 characters", name)
	}
	return nil
}

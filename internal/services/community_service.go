package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JasminHed/project-final-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = errors.New("community post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment text cannot be empty")
)

// CommunityService handles feed reads and like/comment mutations.
type CommunityService struct {
	db *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

// ListPosts returns every post, newest first, with comments oldest first.
// Public, no auth.
func (s *CommunityService) ListPosts() ([]models.CommunityPost, error) {
	var posts []models.CommunityPost
	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at ASC")
	}).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Like increments the like counter in a single store-level mutation so
// concurrent likes never lose updates. Repeat likes by the same user are
// allowed.
func (s *CommunityService) Like(postID uuid.UUID) error {
	result := s.db.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to like post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *CommunityService) AddComment(user *models.User, postID uuid.UUID, text string) (*models.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyComment
	}

	var post models.CommunityPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	comment := models.Comment{
		ID:       uuid.New(),
		PostID:   post.ID,
		UserID:   user.ID,
		UserName: user.Name,
		Text:     trimmed,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &comment, nil
}

// DeleteComment removes a comment by id. The lookup is scoped neither to a
// post nor to the requesting user: any authenticated caller may delete any
// comment. The single keyed DELETE keeps concurrent deletes of different
// comments on the same post from interfering.
func (s *CommunityService) DeleteComment(user *models.User, commentID uuid.UUID) error {
	result := s.db.Delete(&models.Comment{}, "id = ?", commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

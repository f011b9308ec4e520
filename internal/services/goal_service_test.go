package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name string, isPublic bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		IsPublic: isPublic,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func validGoalReq(intention string) *dto.CreateGoalRequest {
	return &dto.CreateGoalRequest{
		Intention:  intention,
		Specific:   "run three times every single week this year",
		Measurable: "track each run in my training journal app",
		Achievable: "start with short runs and build up slowly",
		Relevant:   "being fit gives me energy for everything",
		Timebound:  "reach a steady routine within three months",
	}
}

func TestCreateGoalValidatesFieldLengths(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)

	req := validGoalReq("become a stronger runner this year")
	req.Specific = "too short"
	_, err := svc.Create(user, req)
	assert.ErrorContains(t, err, "specific")

	req = validGoalReq("short")
	_, err = svc.Create(user, req)
	assert.ErrorContains(t, err, "intention")
}

func TestGoalFieldLengthCountsRunes(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)

	// 12 runes but 24 bytes: too short regardless of encoding width.
	req := validGoalReq("ett långsiktigt mål med svenska tecken")
	req.Measurable = strings.Repeat("ö", 12)
	_, err := svc.Create(user, req)
	assert.ErrorContains(t, err, "measurable")

	// 100 runes but 200 bytes: well within the 150-character cap.
	req = validGoalReq("ett långsiktigt mål med svenska tecken")
	req.Specific = strings.Repeat("å", 100)
	_, err = svc.Create(user, req)
	assert.NoError(t, err)
}

func TestCreateGoalActiveLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(user, validGoalReq(fmt.Sprintf("a long enough intention number %d", i)))
		require.NoError(t, err)
	}

	_, err := svc.Create(user, validGoalReq("a long enough intention number four"))
	assert.ErrorIs(t, err, ErrGoalLimitReached)

	goals, err := svc.List(user)
	require.NoError(t, err)
	assert.Len(t, goals, 3, "failed creation must not mutate state")

	// Completing one frees a slot; completed history is unbounded.
	completed := true
	_, err = svc.Update(user, goals[0].ID, &dto.UpdateGoalRequest{Completed: &completed})
	require.NoError(t, err)

	_, err = svc.Create(user, validGoalReq("a long enough intention number four"))
	assert.NoError(t, err)
}

func TestCreateGoalDuplicateIntention(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)
	other := seedUser(t, db, "walker", false)

	_, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)

	_, err = svc.Create(user, validGoalReq("become a stronger runner this year"))
	assert.ErrorIs(t, err, ErrDuplicateIntention)

	// Uniqueness is per user, not global.
	_, err = svc.Create(other, validGoalReq("become a stronger runner this year"))
	assert.NoError(t, err)
}

func TestListGoalsIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)
	other := seedUser(t, db, "walker", false)

	_, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)
	_, err = svc.Create(other, validGoalReq("walk to work every day this spring"))
	require.NoError(t, err)

	goals, err := svc.List(user)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, user.ID, goals[0].UserID)
}

func TestUpdateGoalOwnershipIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)
	other := seedUser(t, db, "walker", false)

	goal, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)

	// Someone else's goal is indistinguishable from a missing one.
	newText := "walk to work every day this spring now"
	_, err = svc.Update(other, goal.ID, &dto.UpdateGoalRequest{Specific: &newText})
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = svc.Update(user, uuid.New(), &dto.UpdateGoalRequest{Specific: &newText})
	assert.ErrorIs(t, err, ErrGoalNotFound)

	updated, err := svc.Update(user, goal.ID, &dto.UpdateGoalRequest{Specific: &newText})
	require.NoError(t, err)
	assert.Equal(t, newText, updated.Specific)
}

func TestCompletionCascadesExactPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", true)
	other := seedUser(t, db, "walker", true)

	goal, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)
	keep, err := svc.Create(user, validGoalReq("read one novel every month this year"))
	require.NoError(t, err)

	_, err = svc.Share(user, goal.ID)
	require.NoError(t, err)
	_, err = svc.Share(user, keep.ID)
	require.NoError(t, err)

	otherGoal, err := svc.Create(other, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)
	_, err = svc.Share(other, otherGoal.ID)
	require.NoError(t, err)

	community := NewCommunityService(db)
	var doomed models.CommunityPost
	require.NoError(t, db.First(&doomed, "user_id = ? AND intention = ?", user.ID, goal.Intention).Error)
	_, err = community.AddComment(other, doomed.ID, "rooting for you")
	require.NoError(t, err)

	var keptPost models.CommunityPost
	require.NoError(t, db.First(&keptPost, "user_id = ? AND intention = ?", user.ID, keep.Intention).Error)
	survivor, err := community.AddComment(other, keptPost.ID, "this one stays")
	require.NoError(t, err)

	completed := true
	_, err = svc.Update(user, goal.ID, &dto.UpdateGoalRequest{Completed: &completed})
	require.NoError(t, err)

	var posts []models.CommunityPost
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 2, "only the completed goal's post is removed")
	for _, p := range posts {
		assert.False(t, p.UserID == user.ID && p.Intention == goal.Intention)
	}

	// The removed post's comments go with it; the other thread is untouched.
	var comments []models.Comment
	require.NoError(t, db.Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, survivor.ID, comments[0].ID)
}

func TestReshareAfterVisibilityFlip(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	auth := NewAuthService(db, newTestConfig())
	community := NewCommunityService(db)
	user := seedUser(t, db, "runner", true)

	goal, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)
	post, err := svc.Share(user, goal.ID)
	require.NoError(t, err)
	_, err = community.AddComment(user, post.ID, "off we go")
	require.NoError(t, err)

	user, err = auth.SetPublicStatus(user, false)
	require.NoError(t, err)

	var count int64
	db.Model(&models.CommunityPost{}).Count(&count)
	require.EqualValues(t, 0, count)
	db.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 0, count, "comments must not outlive their post")

	// Going public again must free the (user, intention) slot for a re-share.
	user, err = auth.SetPublicStatus(user, true)
	require.NoError(t, err)

	reshared, err := svc.Share(user, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.Intention, reshared.Intention)
	assert.EqualValues(t, 0, reshared.Likes, "a re-share starts from a fresh snapshot")
}

func TestShareRequiresPublicProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", false)

	goal, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)

	_, err = svc.Share(user, goal.ID)
	assert.ErrorIs(t, err, ErrNotPublic)

	var count int64
	db.Model(&models.CommunityPost{}).Count(&count)
	assert.EqualValues(t, 0, count, "forbidden share must not create a post")
}

func TestShareSnapshotsGoal(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", true)

	goal, err := svc.Create(user, validGoalReq("become a stronger runner this year"))
	require.NoError(t, err)

	post, err := svc.Share(user, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.Intention, post.Intention)
	assert.Equal(t, goal.Timebound, post.Timebound)
	assert.Equal(t, user.Name, post.UserName)
	assert.Equal(t, goal.ID, post.GoalID)

	var reloaded models.Goal
	require.NoError(t, db.First(&reloaded, "id = ?", goal.ID).Error)
	assert.True(t, reloaded.IsPublic, "sharing flags the goal")

	_, err = svc.Share(user, goal.ID)
	assert.ErrorIs(t, err, ErrAlreadyShared)
}

func TestShareUnknownGoal(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	user := seedUser(t, db, "runner", true)

	_, err := svc.Share(user, uuid.New())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

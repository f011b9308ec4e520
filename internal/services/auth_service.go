package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JasminHed/project-final-sub000/internal/config"
	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNameTaken          = errors.New("that user name is already registered")
	ErrEmailTaken         = errors.New("that email address is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired access token")
)

// AuthService owns user identity: registration, login, opaque bearer tokens
// and the public-visibility flag with its post cascade.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 || len(name) > 20 {
		return nil, errors.New("name must be 3-20 characters")
	}
	if req.Email == "" {
		return nil, errors.New("email is required")
	}
	if len(req.Password) < 5 {
		return nil, errors.New("password must be at least 5 characters")
	}

	// Uniqueness is also enforced by the store; pre-checking lets us tell the
	// caller which field collided.
	var existing models.User
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrNameTaken
	}
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    req.Email,
		Password: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{ID: user.ID, Name: user.Name, AccessToken: token}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{ID: user.ID, Name: user.Name, AccessToken: token}, nil
}

// ResolveToken maps a raw bearer token to its owner. Unknown, revoked and
// expired tokens are indistinguishable to the caller.
func (s *AuthService) ResolveToken(raw string) (*models.User, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	var stored models.AccessToken
	if err := s.db.Where("token_hash = ? AND revoked = false", hashToken(raw)).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, ErrInvalidToken
	}

	return &user, nil
}

// SetPublicStatus updates the visibility flag. Flipping to private removes
// every community post owned by the user. The cascade is a separate write;
// if it fails after the flag has committed, the error is surfaced so the
// caller can retry the (idempotent) operation.
func (s *AuthService) SetPublicStatus(user *models.User, isPublic bool) (*models.User, error) {
	if err := s.db.Model(user).Update("is_public", isPublic).Error; err != nil {
		return nil, fmt.Errorf("failed to update visibility: %w", err)
	}
	user.IsPublic = isPublic

	if !isPublic {
		// Comments go first, while the posts they hang off still exist.
		ownPosts := s.db.Model(&models.CommunityPost{}).Select("id").Where("user_id = ?", user.ID)
		if err := s.db.Where("post_id IN (?)", ownPosts).Delete(&models.Comment{}).Error; err != nil {
			slog.Error("comment cascade failed after visibility change",
				"user_id", user.ID.String(), "error", err.Error())
			return nil, fmt.Errorf("failed to remove post comments: %w", err)
		}

		result := s.db.Where("user_id = ?", user.ID).Delete(&models.CommunityPost{})
		if result.Error != nil {
			slog.Error("post cascade failed after visibility change",
				"user_id", user.ID.String(), "error", result.Error.Error())
			return nil, fmt.Errorf("failed to remove community posts: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			slog.Info("community posts removed", "user_id", user.ID.String(), "count", result.RowsAffected)
		}
	}

	return user, nil
}

func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	raw := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.AccessToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(s.cfg.TokenTTL),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store access token: %w", err)
	}

	return raw, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

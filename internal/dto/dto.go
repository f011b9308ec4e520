package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Requests ---

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PublicStatusRequest struct {
	IsPublic bool `json:"is_public"`
}

type CreateGoalRequest struct {
	Intention  string `json:"intention"`
	Specific   string `json:"specific"`
	Measurable string `json:"measurable"`
	Achievable string `json:"achievable"`
	Relevant   string `json:"relevant"`
	Timebound  string `json:"timebound"`
}

// UpdateGoalRequest carries a partial update; nil fields are left untouched.
type UpdateGoalRequest struct {
	Intention  *string `json:"intention"`
	Specific   *string `json:"specific"`
	Measurable *string `json:"measurable"`
	Achievable *string `json:"achievable"`
	Relevant   *string `json:"relevant"`
	Timebound  *string `json:"timebound"`
	Completed  *bool   `json:"completed"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// --- Responses ---

// MutationResponse is the envelope every mutating endpoint returns.
// Response carries the affected entity when there is one.
type MutationResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Response interface{} `json:"response,omitempty"`
}

// ErrorResponse mirrors MutationResponse for failures. LoggedOut is set only
// on authentication failures so the client can force a re-login.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	LoggedOut bool   `json:"loggedOut,omitempty"`
}

// LoginNotFoundResponse is the legacy login-mismatch contract.
type LoginNotFoundResponse struct {
	NotFound bool `json:"notFound"`
}

type AuthResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AccessToken string    `json:"accessToken"`
}

type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsPublic bool      `json:"is_public"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// CommentResponse is returned when a comment is appended.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

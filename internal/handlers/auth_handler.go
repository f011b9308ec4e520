package handlers

import (
	"errors"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/middleware"
	"github.com/JasminHed/project-final-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /users.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrNameTaken) || errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Success: true, Message: "Registration successful", Response: resp,
	})
}

// Login handles POST /sessions. A credential mismatch keeps the legacy
// {notFound:true} contract.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusNotFound).JSON(dto.LoginNotFoundResponse{NotFound: true})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MutationResponse{
		Success: true, Message: "Login successful", Response: resp,
	})
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	return c.JSON(dto.ProfileResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		IsPublic: user.IsPublic,
	})
}

// SetPublicStatus handles PATCH /users/public-status. Going private removes
// every community post owned by the caller.
func (h *AuthHandler) SetPublicStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.PublicStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	updated, err := h.authService.SetPublicStatus(user, req.IsPublic)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to update visibility",
		})
	}

	return c.JSON(dto.MutationResponse{
		Success: true, Message: "Visibility updated", Response: dto.ProfileResponse{
			ID:       updated.ID,
			Name:     updated.Name,
			Email:    updated.Email,
			IsPublic: updated.IsPublic,
		},
	})
}

package handlers

import (
	"errors"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/middleware"
	"github.com/JasminHed/project-final-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GoalHandler struct {
	service *services.GoalService
}

func NewGoalHandler(service *services.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// Create handles POST /goals.
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	goal, err := h.service.Create(user, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Success: true, Message: "Goal created", Response: goal,
	})
}

// List handles GET /goals and only ever returns the caller's own goals.
func (h *GoalHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	goals, err := h.service.List(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch goals",
		})
	}

	return c.JSON(goals)
}

// Update handles PATCH /goals/:id.
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid goal ID",
		})
	}

	var req dto.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	goal, err := h.service.Update(user, goalID, &req)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: err.Error(),
		})
	}

	return c.JSON(dto.MutationResponse{
		Success: true, Message: "Goal updated", Response: goal,
	})
}

// Share handles POST /goals/:id/share.
func (h *GoalHandler) Share(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid goal ID",
		})
	}

	post, err := h.service.Share(user, goalID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPublic):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrGoalNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Success: true, Message: "Goal shared to the community", Response: post,
	})
}

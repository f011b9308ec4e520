package handlers

import (
	"errors"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/middleware"
	"github.com/JasminHed/project-final-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommunityHandler struct {
	service *services.CommunityService
}

func NewCommunityHandler(service *services.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// ListPosts handles GET /community-posts. Public.
func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to fetch community posts",
		})
	}

	return c.JSON(posts)
}

// Like handles POST /community-posts/:id/like.
func (h *CommunityHandler) Like(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid post ID",
		})
	}

	if err := h.service.Like(postID); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to like post",
		})
	}

	return c.JSON(dto.MutationResponse{Success: true, Message: "Post liked"})
}

// AddComment handles POST /community-posts/:id/comments.
func (h *CommunityHandler) AddComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid post ID",
		})
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	comment, err := h.service.AddComment(user, postID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyComment):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false, Message: "Failed to add comment",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Success: true, Message: "Comment added", Response: dto.CommentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserName:  comment.UserName,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		},
	})
}

// DeleteComment handles DELETE /messages/:id. The comment is located by its
// own id, not scoped to a post or to the caller.
func (h *CommunityHandler) DeleteComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid comment ID",
		})
	}

	if err := h.service.DeleteComment(user, commentID); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Message: "Failed to delete comment",
		})
	}

	return c.JSON(dto.MutationResponse{Success: true, Message: "Comment deleted"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment on a post. The target post comes from
// the URL path; anything in the body claiming otherwise is ignored.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	comment := &models.Comment{
		PostID:    uint(postID),
		ProfileID: actor.ID,
		Body:      req.Body,
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves the comment thread of a post, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	comments, err := h.commentRepository.GetCommentsByPostID(uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, comments)
}

// UpdateComment updates an existing comment; only the owner may do this
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if comment.ProfileID != actor.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this comment")
	}

	comment.Body = req.Body

	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment; only the owner may do this
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(commentID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if comment.ProfileID != actor.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.commentRepository.DeleteComment(uint(commentID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post. The author always comes from the
// authenticated actor, never from the payload.
func (h *PostHandler) CreatePost(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		ProfileID:  actor.ID,
		Body:       req.Body,
		Tags:       req.Tags,
		Attachment: req.Attachment,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post with its comment thread and like count
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	detail, err := h.postRepository.GetPostDetail(uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, detail)
}

// UpdatePost updates an existing post; only the owner may do this
func (h *PostHandler) UpdatePost(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	existingPost, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if existingPost.ProfileID != actor.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	if req.Body != "" {
		existingPost.Body = req.Body
	}
	if req.Tags != "" {
		existingPost.Tags = req.Tags
	}
	if req.Attachment != "" {
		existingPost.Attachment = req.Attachment
	}

	if err := h.postRepository.UpdatePost(existingPost); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, existingPost)
}

// DeletePost deletes a post together with its comments and like edges
func (h *PostHandler) DeletePost(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	existingPost, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if existingPost.ProfileID != actor.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(uint(postID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

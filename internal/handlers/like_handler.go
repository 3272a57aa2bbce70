package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository    repositories.LikeRepository
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:    likeRepo,
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/toggle-like", h.ToggleLike)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetLikeStatusForPost)
}

// ToggleLike flips the actor's like on a post
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	liked, err := h.likeRepository.ToggleLike(actor.ID, uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	message := "unliked"
	if liked {
		message = "liked"
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "message": message})
}

// GetLikesCountForPost retrieves the total number of likes for a post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	count, err := h.likeRepository.GetLikesCountByPostID(uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes": count})
}

// GetLikeStatusForPost checks whether the actor has liked a post
func (h *LikeHandler) GetLikeStatusForPost(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(uint(postID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	liked, err := h.likeRepository.HasLiked(actor.ID, uint(postID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "profile_id": actor.ID, "liked": liked})
}

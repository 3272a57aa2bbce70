package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// FeedHandler is the read-only feed composer: filtered, count-annotated
// post listings. It never mutates anything.
type FeedHandler struct {
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes. The static segments
// must be registered on the same group as /posts/:id; echo matches static
// routes first.
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetAllPosts)
	g.GET("/posts/my", h.GetOwnPosts)
	g.GET("/posts/liked", h.GetLikedPosts)
	g.GET("/posts/followed", h.GetFollowedPosts)
}

// GetAllPosts lists every post, optionally narrowed by tag and author
// substring filters
func (h *FeedHandler) GetAllPosts(c echo.Context) error {
	filter := models.FeedFilter{
		Tag:    c.QueryParam("tag"),
		Author: c.QueryParam("author"),
	}
	return h.listPosts(c, filter)
}

// GetOwnPosts lists posts authored by the actor
func (h *FeedHandler) GetOwnPosts(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return h.listPosts(c, models.FeedFilter{AuthorID: actor.ID})
}

// GetLikedPosts lists posts in the actor's like set
func (h *FeedHandler) GetLikedPosts(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return h.listPosts(c, models.FeedFilter{LikedBy: actor.ID})
}

// GetFollowedPosts lists posts authored by profiles the actor follows
func (h *FeedHandler) GetFollowedPosts(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return h.listPosts(c, models.FeedFilter{FollowedBy: actor.ID})
}

func (h *FeedHandler) listPosts(c echo.Context, filter models.FeedFilter) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	posts, err := h.postRepository.ListPosts(filter)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	totalItems, err := h.postRepository.CountPosts(filter)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"posts": posts,
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      totalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// FollowHandler handles follow-graph HTTP requests
type FollowHandler struct {
	followRepository  repositories.FollowRepository
	profileRepository repositories.ProfileRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, profileRepo repositories.ProfileRepository) *FollowHandler {
	return &FollowHandler{
		followRepository:  followRepo,
		profileRepository: profileRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/profiles/:id/toggle-follow", h.ToggleFollow)
	g.GET("/profiles/:id/following", h.GetFollowing)
	g.GET("/profiles/:id/followers", h.GetFollowers)
}

// ToggleFollow flips the follow edge from the actor to the target profile
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID")
	}

	if actor.ID == uint(targetID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	target, err := h.profileRepository.GetProfileByID(uint(targetID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	following, err := h.followRepository.ToggleFollow(actor.ID, target.ID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	message := fmt.Sprintf("you are no longer following %s", target.Username)
	if following {
		message = fmt.Sprintf("now you are following %s", target.Username)
	}

	return c.JSON(http.StatusOK, echo.Map{"following": following, "message": message})
}

// GetFollowing lists the profiles the given profile follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID")
	}

	if _, err := h.profileRepository.GetProfileByID(uint(profileID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	following, err := h.followRepository.GetFollowing(uint(profileID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, following)
}

// GetFollowers lists the profiles following the given profile
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID")
	}

	if _, err := h.profileRepository.GetProfileByID(uint(profileID)); err != nil {
		return apperrors.ToHTTPError(err)
	}

	followers, err := h.followRepository.GetFollowers(uint(profileID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, followers)
}

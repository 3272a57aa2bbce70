package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// ProfileHandler handles HTTP requests for the profile directory
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	followRepository  repositories.FollowRepository
	userRepository    repositories.UserRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{
		profileRepository: profileRepo,
		followRepository:  followRepo,
		userRepository:    userRepo,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.DELETE("/me", h.DeleteMe)
	g.POST("/profiles", h.CreateProfile)
	g.GET("/profiles", h.ListProfiles)
	g.GET("/profiles/:id", h.GetProfile)
	g.PUT("/profiles/:id", h.UpdateProfile)
	g.POST("/profiles/:id/upload-picture", h.UploadPicture)
}

// Me returns the authenticated user together with its profile, if any
func (h *ProfileHandler) Me(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	resp := echo.Map{"user": user}
	if profile, err := h.profileRepository.GetProfileByUserID(userID); err == nil {
		resp["profile"] = profile
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteMe deletes the authenticated user account, cascading through its
// profile and everything the profile owns
func (h *ProfileHandler) DeleteMe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if _, err := h.userRepository.GetUserByID(userID); err != nil {
		return apperrors.ToHTTPError(err)
	}

	if err := h.userRepository.DeleteUser(userID); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateProfile creates the actor's profile; one per user account
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.profileRepository.GetProfileByUserID(userID); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Profile already exists for this user")
	}
	if _, err := h.profileRepository.GetProfileByUsername(req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Username already taken")
	}

	profile := &models.Profile{
		UserID:    userID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Contacts:  req.Contacts,
		Location:  req.Location,
		Bio:       req.Bio,
	}

	if err := h.profileRepository.CreateProfile(profile); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, profile)
}

// ListProfiles lists profiles, narrowed by the optional directory filters
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	filter := models.ProfileFilter{
		Username:  c.QueryParam("username"),
		Location:  c.QueryParam("location"),
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
	}

	profiles, err := h.profileRepository.SearchProfiles(filter)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, profiles)
}

// GetProfile returns a profile detail with both follow directions
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID")
	}

	profile, err := h.profileRepository.GetProfileByID(uint(profileID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	follows, err := h.followRepository.GetFollowing(profile.ID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	followedBy, err := h.followRepository.GetFollowers(profile.ID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, models.ProfileDetail{
		Profile:    *profile,
		Follows:    follows,
		FollowedBy: followedBy,
	})
}

// UpdateProfile updates a profile; only the owner may do this
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileRepository.GetProfileByID(uint(profileID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if profile.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this profile")
	}

	if req.Username != "" && req.Username != profile.Username {
		if _, err := h.profileRepository.GetProfileByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		profile.Username = req.Username
	}
	if req.FirstName != "" {
		profile.FirstName = req.FirstName
	}
	if req.LastName != "" {
		profile.LastName = req.LastName
	}
	if req.Contacts != "" {
		profile.Contacts = req.Contacts
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}

	if err := h.profileRepository.UpdateProfile(profile); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UploadPicture attaches a media reference to the actor's own profile
func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	profileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile ID")
	}

	var req models.UploadPictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileRepository.GetProfileByID(uint(profileID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	if profile.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this profile")
	}

	profile.Picture = req.Picture
	if err := h.profileRepository.UpdateProfile(profile); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusAccepted, profile)
}

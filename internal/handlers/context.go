package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// getUserIDFromContext extracts the authenticated user ID placed in the
// context by the JWT middleware; 0 means no actor.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// actorProfile resolves the acting profile for the current request. Every
// write path goes through this so the actor is always explicit below the
// handler layer.
func actorProfile(c echo.Context, profiles repositories.ProfileRepository) (*models.Profile, error) {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return nil, apperrors.New(apperrors.Unauthenticated, "user not authenticated")
	}
	profile, err := profiles.GetProfileByUserID(userID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.NotFound) {
			return nil, apperrors.New(apperrors.Forbidden, "create a profile before performing this action")
		}
		return nil, err
	}
	return profile, nil
}

package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/internal/repositories"
)

// MediaHandler handles media uploads. Files land under the configured media
// dir with a generated unique filename; the registry keeps the metadata and
// everything else stores only the returned reference path.
type MediaHandler struct {
	mediaRepository   repositories.MediaRepository
	profileRepository repositories.ProfileRepository
	mediaDir          string
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository, profileRepo repositories.ProfileRepository, mediaDir string) *MediaHandler {
	return &MediaHandler{
		mediaRepository:   mediaRepo,
		profileRepository: profileRepo,
		mediaDir:          mediaDir,
	}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/media/upload", h.Upload)
	g.GET("/media", h.ListOwn)
}

// Upload stores a multipart file and returns its reference path
func (h *MediaHandler) Upload(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file in request")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	if err := os.MkdirAll(h.mediaDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to prepare media directory")
	}

	fileName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(h.mediaDir, fileName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store uploaded file")
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store uploaded file")
	}

	media := &models.Media{
		FileName:     fileName,
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         size,
		OwnerID:      actor.ID,
		Path:         "/media/" + fileName,
	}

	if err := h.mediaRepository.SaveMedia(c.Request().Context(), media); err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, media)
}

// ListOwn lists media uploaded by the actor, newest first
func (h *MediaHandler) ListOwn(c echo.Context) error {
	actor, err := actorProfile(c, h.profileRepository)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	media, err := h.mediaRepository.ListMediaByOwner(c.Request().Context(), actor.ID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, media)
}

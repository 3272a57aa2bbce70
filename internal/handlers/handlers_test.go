package handlers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/socialfeed-api/backend/internal/models"
	"github.com/socialfeed-api/backend/validators"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestEnv(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Like{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	return e, db
}

func seedActor(t *testing.T, db *gorm.DB, username string) *models.Profile {
	t.Helper()

	user := &models.User{Email: username + "@example.com", Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	profile := &models.Profile{UserID: user.ID, Username: username}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return profile
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate puts the claims the JWT middleware would have extracted into
// the request context
func authenticate(c echo.Context, profile *models.Profile) {
	c.Set("user", &models.JwtCustomClaims{UserID: profile.UserID, Email: profile.Username + "@example.com"})
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Code != wantCode {
		t.Fatalf("expected status %d, got %d (%v)", wantCode, httpErr.Code, httpErr.Message)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (body: %s)", want, rec.Code, rec.Body.String())
	}
}

package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database and migrates the schema.
// The dsn is keyed by test name so the shared cache never crosses tests.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, username string) *models.Profile {
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

func seedPost(t *testing.T, db *gorm.DB, profileID uint, body, tags string) *models.Post {
	t.Helper()

	post := &models.Post{ProfileID: profileID, Body: body, Tags: tags}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post %q: %v", body, err)
	}
	return post
}

func seedPostAt(t *testing.T, db *gorm.DB, profileID uint, body string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{ProfileID: profileID, Body: body, CreatedAt: createdAt}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post %q: %v", body, err)
	}
	return post
}

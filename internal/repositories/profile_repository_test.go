package repositories

import (
	"testing"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/gorm"
)

func seedDirectory(t *testing.T, db *gorm.DB) {
	t.Helper()

	entries := []models.Profile{
		{Username: "alice_dev", FirstName: "Alice", LastName: "Smith", Location: "Kyiv"},
		{Username: "bob_builder", FirstName: "Bob", LastName: "Smith", Location: "Lviv"},
		{Username: "carol", FirstName: "Carol", LastName: "Jones", Location: "kyiv oblast"},
	}
	for i, p := range entries {
		user := &models.User{Email: p.Username + "@example.com", Password: "x"}
		if err := db.Create(user).Error; err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
		p.UserID = user.ID
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed profile %d: %v", i, err)
		}
	}
}

func TestSearchProfiles(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)
	seedDirectory(t, db)

	cases := []struct {
		name   string
		filter models.ProfileFilter
		want   []string
	}{
		{"no filter lists all", models.ProfileFilter{}, []string{"alice_dev", "bob_builder", "carol"}},
		{"username substring", models.ProfileFilter{Username: "ALICE"}, []string{"alice_dev"}},
		{"location case-insensitive", models.ProfileFilter{Location: "kyiv"}, []string{"alice_dev", "carol"}},
		{"filters are AND-combined", models.ProfileFilter{LastName: "smith", Location: "lviv"}, []string{"bob_builder"}},
		{"no match", models.ProfileFilter{FirstName: "zed"}, nil},
	}

	for _, c := range cases {
		profiles, err := repo.SearchProfiles(c.filter)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if len(profiles) != len(c.want) {
			t.Fatalf("%s: expected %d profiles, got %d", c.name, len(c.want), len(profiles))
		}
		for i, username := range c.want {
			if profiles[i].Username != username {
				t.Fatalf("%s: expected %q at %d, got %q", c.name, username, i, profiles[i].Username)
			}
		}
	}
}

func TestGetProfileLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	alice := seedProfile(t, db, "alice")

	byID, err := repo.GetProfileByID(alice.ID)
	if err != nil || byID.Username != "alice" {
		t.Fatalf("by id: profile=%+v err=%v", byID, err)
	}

	byUser, err := repo.GetProfileByUserID(alice.UserID)
	if err != nil || byUser.ID != alice.ID {
		t.Fatalf("by user id: profile=%+v err=%v", byUser, err)
	}

	byName, err := repo.GetProfileByUsername("alice")
	if err != nil || byName.ID != alice.ID {
		t.Fatalf("by username: profile=%+v err=%v", byName, err)
	}

	if _, err := repo.GetProfileByID(alice.ID + 100); !apperrors.IsKind(err, apperrors.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := repo.GetProfileByUserID(alice.UserID + 100); !apperrors.IsKind(err, apperrors.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

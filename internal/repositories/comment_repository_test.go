package repositories

import (
	"testing"
	"time"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
)

func TestCommentsScopedToPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedProfile(t, db, "alice")
	first := seedPost(t, db, alice.ID, "first post", "")
	second := seedPost(t, db, alice.ID, "second post", "")

	for _, c := range []models.Comment{
		{PostID: first.ID, ProfileID: alice.ID, Body: "on first"},
		{PostID: second.ID, ProfileID: alice.ID, Body: "on second"},
		{PostID: first.ID, ProfileID: alice.ID, Body: "also on first"},
	} {
		comment := c
		if err := repo.CreateComment(&comment); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	views, err := repo.GetCommentsByPostID(first.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 comments for first post, got %d", len(views))
	}
	for _, v := range views {
		if v.Body == "on second" {
			t.Fatalf("comment from another post leaked into listing")
		}
	}
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	alice := seedProfile(t, db, "alice")
	post := seedPost(t, db, alice.ID, "post", "")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bodies := []string{"third", "first", "second"}
	offsets := []time.Duration{2 * time.Minute, 0, time.Minute}
	for i, body := range bodies {
		comment := models.Comment{PostID: post.ID, ProfileID: alice.ID, Body: body, CreatedAt: base.Add(offsets[i])}
		if err := repo.CreateComment(&comment); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	views, err := repo.GetCommentsByPostID(post.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"first", "second", "third"}
	for i, body := range want {
		if views[i].Body != body {
			t.Fatalf("position %d: expected %q, got %q", i, body, views[i].Body)
		}
	}
	if views[0].User != "alice" {
		t.Fatalf("expected annotated username, got %q", views[0].User)
	}
}

func TestGetCommentByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	if _, err := repo.GetCommentByID(42); !apperrors.IsKind(err, apperrors.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

package repositories

import (
	"testing"
	"time"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
)

func TestDeletePostCascades(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	likes := NewPostgresLikeRepository(db)
	comments := NewPostgresCommentRepository(db)

	alice := seedProfile(t, db, "alice")
	bob := seedProfile(t, db, "bob")
	doomed := seedPost(t, db, alice.ID, "doomed", "")
	kept := seedPost(t, db, alice.ID, "kept", "")

	for _, post := range []uint{doomed.ID, kept.ID} {
		if err := comments.CreateComment(&models.Comment{PostID: post, ProfileID: bob.ID, Body: "nice"}); err != nil {
			t.Fatalf("seed comment: %v", err)
		}
		if _, err := likes.ToggleLike(bob.ID, post); err != nil {
			t.Fatalf("seed like: %v", err)
		}
	}

	if err := posts.DeletePost(doomed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var commentRows, likeRows int64
	if err := db.Model(&models.Comment{}).Where("post_id = ?", doomed.ID).Count(&commentRows).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if err := db.Model(&models.Like{}).Where("post_id = ?", doomed.ID).Count(&likeRows).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if commentRows != 0 || likeRows != 0 {
		t.Fatalf("expected no orphan rows, got %d comments and %d likes", commentRows, likeRows)
	}

	// the sibling post's rows survive
	views, err := comments.GetCommentsByPostID(kept.ID)
	if err != nil {
		t.Fatalf("list kept comments: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected kept post to keep its comment, got %d", len(views))
	}

	if err := posts.DeletePost(doomed.ID); !apperrors.IsKind(err, apperrors.NotFound) {
		t.Fatalf("expected NotFound on double delete, got %v", err)
	}
}

func TestFollowedFeedScopesToFollowedAuthors(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	follows := NewPostgresFollowRepository(db)

	alice := seedProfile(t, db, "alice")
	bob := seedProfile(t, db, "bob")
	carol := seedProfile(t, db, "carol")

	bobPost := seedPost(t, db, bob.ID, "from bob", "")
	seedPost(t, db, carol.ID, "from carol", "")

	if _, err := follows.ToggleFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	feed, err := posts.ListPosts(models.FeedFilter{FollowedBy: alice.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected exactly bob's post, got %d posts", len(feed))
	}
	if feed[0].ID != bobPost.ID || feed[0].PostedBy != "bob" {
		t.Fatalf("unexpected feed entry: %+v", feed[0])
	}
}

func TestLikedFeed(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	likes := NewPostgresLikeRepository(db)

	alice := seedProfile(t, db, "alice")
	bob := seedProfile(t, db, "bob")

	liked := seedPost(t, db, bob.ID, "liked one", "")
	seedPost(t, db, bob.ID, "ignored one", "")

	if _, err := likes.ToggleLike(alice.ID, liked.ID); err != nil {
		t.Fatalf("like: %v", err)
	}

	feed, err := posts.ListPosts(models.FeedFilter{LikedBy: alice.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != liked.ID {
		t.Fatalf("expected only the liked post, got %+v", feed)
	}
}

func TestFeedOrderingNewestFirstThenID(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)

	alice := seedProfile(t, db, "alice")
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	old := seedPostAt(t, db, alice.ID, "old", base.Add(-time.Hour))
	tieA := seedPostAt(t, db, alice.ID, "tie a", base)
	tieB := seedPostAt(t, db, alice.ID, "tie b", base)

	feed, err := posts.ListPosts(models.FeedFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(feed))
	}

	want := []uint{tieA.ID, tieB.ID, old.ID}
	for i, id := range want {
		if feed[i].ID != id {
			t.Fatalf("position %d: expected post %d, got %d", i, id, feed[i].ID)
		}
	}
}

func TestFeedFiltersCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)

	alice := seedProfile(t, db, "Alice")
	bob := seedProfile(t, db, "bob")

	tagged := seedPost(t, db, alice.ID, "about go", "Golang,backend")
	seedPost(t, db, bob.ID, "about cooking", "food")

	cases := []struct {
		name   string
		filter models.FeedFilter
		want   []uint
	}{
		{"tag substring", models.FeedFilter{Tag: "golang"}, []uint{tagged.ID}},
		{"author substring", models.FeedFilter{Author: "ali"}, []uint{tagged.ID}},
		{"no match", models.FeedFilter{Tag: "rust"}, nil},
		{"tag and author combined", models.FeedFilter{Tag: "BACKEND", Author: "ALICE"}, []uint{tagged.ID}},
	}

	for _, c := range cases {
		feed, err := posts.ListPosts(c.filter)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if len(feed) != len(c.want) {
			t.Fatalf("%s: expected %d posts, got %d", c.name, len(c.want), len(feed))
		}
		for i, id := range c.want {
			if feed[i].ID != id {
				t.Fatalf("%s: expected post %d at %d, got %d", c.name, id, i, feed[i].ID)
			}
		}
	}
}

func TestFeedAnnotations(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	likes := NewPostgresLikeRepository(db)
	comments := NewPostgresCommentRepository(db)

	alice := seedProfile(t, db, "alice")
	bob := seedProfile(t, db, "bob")
	post := seedPost(t, db, alice.ID, "popular", "")

	for _, p := range []uint{alice.ID, bob.ID} {
		if _, err := likes.ToggleLike(p, post.ID); err != nil {
			t.Fatalf("like: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := comments.CreateComment(&models.Comment{PostID: post.ID, ProfileID: bob.ID, Body: "hi"}); err != nil {
			t.Fatalf("comment: %v", err)
		}
	}

	feed, err := posts.ListPosts(models.FeedFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected 1 post, got %d", len(feed))
	}
	if feed[0].Likes != 2 {
		t.Fatalf("expected 2 likes, got %d", feed[0].Likes)
	}
	if feed[0].Commented != 3 {
		t.Fatalf("expected 3 comments, got %d", feed[0].Commented)
	}
	if feed[0].PostedBy != "alice" {
		t.Fatalf("expected author alice, got %q", feed[0].PostedBy)
	}
}

func TestGetPostDetail(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)
	comments := NewPostgresCommentRepository(db)

	alice := seedProfile(t, db, "alice")
	bob := seedProfile(t, db, "bob")
	post := seedPost(t, db, alice.ID, "hello", "")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := models.Comment{PostID: post.ID, ProfileID: bob.ID, Body: "second", CreatedAt: base.Add(time.Minute)}
	earlier := models.Comment{PostID: post.ID, ProfileID: alice.ID, Body: "first", CreatedAt: base}
	for _, cm := range []*models.Comment{&later, &earlier} {
		if err := comments.CreateComment(cm); err != nil {
			t.Fatalf("comment: %v", err)
		}
	}

	detail, err := posts.GetPostDetail(post.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.PostedBy != "alice" {
		t.Fatalf("expected author alice, got %q", detail.PostedBy)
	}
	if len(detail.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(detail.Comments))
	}
	if detail.Comments[0].Body != "first" || detail.Comments[1].Body != "second" {
		t.Fatalf("expected comments oldest first, got %+v", detail.Comments)
	}

	if _, err := posts.GetPostDetail(post.ID + 100); !apperrors.IsKind(err, apperrors.NotFound) {
		t.Fatalf("expected NotFound for missing post, got %v", err)
	}
}

func TestCountPostsIgnoresPagination(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostgresPostRepository(db)

	alice := seedProfile(t, db, "alice")
	for i := 0; i < 5; i++ {
		seedPost(t, db, alice.ID, "post", "")
	}

	feed, err := posts.ListPosts(models.FeedFilter{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected limited page of 2, got %d", len(feed))
	}

	total, err := posts.CountPosts(models.FeedFilter{Limit: 2})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
}

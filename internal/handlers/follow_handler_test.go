package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/socialfeed-api/backend/internal/repositories"
)

func TestToggleFollowRejectsSelfFollow(t *testing.T) {
	e, db := newTestEnv(t)
	h := NewFollowHandler(repositories.NewPostgresFollowRepository(db), repositories.NewPostgresProfileRepository(db))

	alice := seedActor(t, db, "alice")

	id := strconv.Itoa(int(alice.ID))
	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/profiles/"+id+"/toggle-follow", "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	authenticate(c, alice)

	err := h.ToggleFollow(c)
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestToggleFollowTargetNotFound(t *testing.T) {
	e, db := newTestEnv(t)
	h := NewFollowHandler(repositories.NewPostgresFollowRepository(db), repositories.NewPostgresProfileRepository(db))

	alice := seedActor(t, db, "alice")

	c, _ := newJSONContext(e, http.MethodPost, "/api/v1/profiles/999/toggle-follow", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	authenticate(c, alice)

	err := h.ToggleFollow(c)
	assertHTTPError(t, err, http.StatusNotFound)
}

func TestToggleFollowFlipsState(t *testing.T) {
	e, db := newTestEnv(t)
	followRepo := repositories.NewPostgresFollowRepository(db)
	h := NewFollowHandler(followRepo, repositories.NewPostgresProfileRepository(db))

	alice := seedActor(t, db, "alice")
	bob := seedActor(t, db, "bob")

	id := strconv.Itoa(int(bob.ID))
	states := []bool{true, false}
	for _, want := range states {
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/profiles/"+id+"/toggle-follow", "")
		c.SetParamNames("id")
		c.SetParamValues(id)
		authenticate(c, alice)

		if err := h.ToggleFollow(c); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		assertStatus(t, rec, http.StatusOK)

		var resp struct {
			Following bool `json:"following"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Following != want {
			t.Fatalf("expected following=%v, got %v", want, resp.Following)
		}
	}

	ok, err := followRepo.IsFollowing(alice.ID, bob.ID)
	if err != nil || ok {
		t.Fatalf("expected original state restored after two toggles, ok=%v err=%v", ok, err)
	}
}

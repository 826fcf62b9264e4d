package store

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/userdata-api/internal/dto"
	"github.com/GregMSThompson/userdata-api/internal/errs"
	"github.com/GregMSThompson/userdata-api/internal/models"
)

// testUserStore exercises the behaviour every driver shares. missingID must be
// a well-formed id for the driver that no document uses.
func testUserStore(t *testing.T, s UserStore, missingID string) {
	t.Helper()
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty collection, got %d users", len(users))
	}

	seed := []*models.User{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
	}
	for _, u := range seed {
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser error: %v", err)
		}
		if u.ID == "" {
			t.Fatalf("CreateUser did not assign an id: %+v", u)
		}
	}

	users, err = s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, want := range seed {
		got, ok := byID[want.ID]
		if !ok {
			t.Fatalf("user %s missing from list", want.ID)
		}
		if *got != *want {
			t.Fatalf("listed user = %+v, want %+v", got, want)
		}
	}

	got, err := s.GetUser(ctx, seed[0].ID)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if *got != *seed[0] {
		t.Fatalf("GetUser = %+v, want %+v", got, seed[0])
	}

	updated, err := s.UpdateUser(ctx, seed[0].ID, map[string]string{dto.FieldLastName: "Byron"})
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	if updated.FirstName != "Ada" || updated.LastName != "Byron" || updated.Email != "ada@example.com" {
		t.Fatalf("unexpected updated user: %+v", updated)
	}

	unchanged, err := s.UpdateUser(ctx, seed[1].ID, map[string]string{})
	if err != nil {
		t.Fatalf("UpdateUser with no changes error: %v", err)
	}
	if *unchanged != *seed[1] {
		t.Fatalf("empty update changed the user: %+v", unchanged)
	}

	var nf *errs.NotFoundError
	if _, err := s.UpdateUser(ctx, missingID, map[string]string{dto.FieldFirstName: "Z"}); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError updating a missing user, got %v", err)
	}
	if _, err := s.GetUser(ctx, missingID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError reading a missing user, got %v", err)
	}

	deleted, err := s.DeleteUser(ctx, seed[2].ID)
	if err != nil || !deleted {
		t.Fatalf("first DeleteUser = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = s.DeleteUser(ctx, seed[2].ID)
	if err != nil || deleted {
		t.Fatalf("second DeleteUser = (%v, %v), want (false, nil)", deleted, err)
	}

	users, err = s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users after delete, got %d", len(users))
	}
	for _, u := range users {
		if u.ID == seed[2].ID {
			t.Fatalf("deleted user still listed: %+v", u)
		}
	}
}

func TestApplyChangesIgnoresUnknownFields(t *testing.T) {
	u := models.User{FirstName: "A", LastName: "B", Email: "c@x.com"}
	applyChanges(&u, map[string]string{dto.FieldEmail: "d@x.com", "_id": "forged"})

	if u.Email != "d@x.com" || u.ID != "" {
		t.Fatalf("unexpected user after applyChanges: %+v", u)
	}
}

func TestValidDocumentID(t *testing.T) {
	cases := map[string]bool{
		"":                         false,
		".":                        false,
		"..":                       false,
		"a/b":                      false,
		"/":                        false,
		"abc123":                   true,
		"65f1c0ffee0123456789abcd": true,
		"user.with.dots":           true,
	}
	for id, want := range cases {
		if got := validDocumentID(id); got != want {
			t.Fatalf("validDocumentID(%q) = %v, want %v", id, got, want)
		}
	}
}

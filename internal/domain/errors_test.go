package domain

import (
	"errors"
	"testing"
)

func TestErrorMatching(t *testing.T) {
	var err error = NotFoundError{Resource: "character", ID: 4}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFoundError to match ErrNotFound")
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("NotFoundError must not match ErrConflict")
	}

	err = ConflictError{Resource: "favorite", Detail: "character already favorited"}
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ConflictError to match ErrConflict")
	}

	err = InvalidReferenceError{Resource: "planet", ID: 999999}
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected InvalidReferenceError to match ErrInvalidReference")
	}

	err = MissingFieldError{Field: "email"}
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected MissingFieldError to match ErrMissingField")
	}
}

func TestErrorMessages(t *testing.T) {
	msg := NotFoundError{Resource: "user", ID: 7}.Error()
	if msg != "user id:7 not found" {
		t.Fatalf("unexpected message: %s", msg)
	}

	msg = MissingFieldError{Field: "full_name"}.Error()
	if msg != "missing field: full_name, required" {
		t.Fatalf("unexpected message: %s", msg)
	}

	msg = InvalidReferenceError{Resource: "planet", ID: 3}.Error()
	if msg != "planet id:3 does not exist" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newTestUser(t *testing.T, email string) *User {
	t.Helper()
	u, err := NewUser(uuid.New(), "Ada", "Lovelace", email, "+1-555-000", UserActive)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func TestNewUser_NormalizesEmailToLowercase(t *testing.T) {
	u := newTestUser(t, "Ada.Lovelace@Example.COM")
	if u.Email != "ada.lovelace@example.com" {
		t.Fatalf("email = %q, want lowercase normalized form", u.Email)
	}
}

func TestNewUser_RejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"invalid-email", "a@", "Ada Lovelace <ada@example.com>"} {
		if _, err := NewUser(uuid.New(), "Ada", "Lovelace", email, "+1-555-000", UserActive); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestNewUser_RejectsUnknownStatus(t *testing.T) {
	if _, err := NewUser(uuid.New(), "Ada", "Lovelace", "ada@example.com", "+1-555-000", UserStatus("banned")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUser_RemoveBookingFromUninitializedCollectionFails(t *testing.T) {
	u := newTestUser(t, "ada@example.com")
	if err := u.RemoveBooking(uuid.New()); !errors.Is(err, ErrNoBookings) {
		t.Fatalf("expected ErrNoBookings, got %v", err)
	}
}

func TestUser_RemoveMissingBookingFromInitializedCollectionIsNoOp(t *testing.T) {
	u := newTestUser(t, "ada@example.com")
	b, err := NewPendingBooking(u.ID, uuid.New(), base, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("NewPendingBooking: %v", err)
	}
	u.AddBooking(*b)

	if err := u.RemoveBooking(uuid.New()); err != nil {
		t.Fatalf("removing a missing id must be a silent no-op, got %v", err)
	}
	if len(u.GetBookings()) != 1 {
		t.Fatalf("bookings len = %d, want 1", len(u.GetBookings()))
	}
}

func TestUser_RemoveBookingDropsMatchingEntry(t *testing.T) {
	u := newTestUser(t, "ada@example.com")
	b1, err := NewPendingBooking(u.ID, uuid.New(), base, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("NewPendingBooking: %v", err)
	}
	b2, err := NewPendingBooking(u.ID, uuid.New(), base.AddDate(0, 0, 2), base.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("NewPendingBooking: %v", err)
	}
	u.AddBooking(*b1)
	u.AddBooking(*b2)

	if err := u.RemoveBooking(b1.ID); err != nil {
		t.Fatalf("RemoveBooking: %v", err)
	}
	got := u.GetBookings()
	if len(got) != 1 || got[0].ID != b2.ID {
		t.Fatalf("bookings after removal = %+v, want only %s", got, b2.ID)
	}
}

func TestUser_GetBookingsNeverReturnsNil(t *testing.T) {
	u := newTestUser(t, "ada@example.com")
	if u.GetBookings() == nil {
		t.Fatal("GetBookings must not return nil for an uninitialized collection")
	}
}

func TestUser_AddBookingAppendsUnconditionally(t *testing.T) {
	// Duplicate policing belongs to the hotel; this layer appends blindly.
	u := newTestUser(t, "ada@example.com")
	b, err := NewPendingBooking(u.ID, uuid.New(), base, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("NewPendingBooking: %v", err)
	}
	u.AddBooking(*b)
	u.AddBooking(*b)

	if len(u.GetBookings()) != 2 {
		t.Fatalf("bookings len = %d, want 2", len(u.GetBookings()))
	}
}

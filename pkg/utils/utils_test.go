package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	now := time.Now()
	id, err := u.NewULIDFromTimestamp(now)
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp: %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("ulid length = %d, want 26", len(id))
	}

	parsed, err := ulid.Parse(id)
	if err != nil {
		t.Fatalf("generated id does not parse as a ULID: %v", err)
	}
	if parsed.Time() != ulid.Timestamp(now) {
		t.Errorf("ulid timestamp = %d, want %d", parsed.Time(), ulid.Timestamp(now))
	}
}

func TestFormatPublishDate(t *testing.T) {
	u := New()

	date := time.Date(2026, time.August, 31, 18, 4, 0, 0, time.UTC)
	if got := u.FormatPublishDate(date); got != "August 31, 2026" {
		t.Errorf("FormatPublishDate = %q, want %q", got, "August 31, 2026")
	}

	single := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := u.FormatPublishDate(single); got != "January 2, 2025" {
		t.Errorf("FormatPublishDate = %q, want %q", got, "January 2, 2025")
	}
}

func TestGravatarURL(t *testing.T) {
	u := New()

	// md5("someone@example.com") per the gravatar convention
	want := "https://www.gravatar.com/avatar/16d113840f999444259f73bac9ab8b10?s=80&d=retro"
	if got := u.GravatarURL("someone@example.com", 80); got != want {
		t.Errorf("GravatarURL = %q, want %q", got, want)
	}

	// address is trimmed and lowercased before hashing
	if got := u.GravatarURL("  Someone@Example.COM ", 80); got != want {
		t.Errorf("GravatarURL(mixed case) = %q, want %q", got, want)
	}
}

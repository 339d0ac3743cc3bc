package utils

import (
	"crypto/md5"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	FormatPublishDate(t time.Time) string
	GravatarURL(email string, size int) string
}

type utils struct {
	gravatarBase string
}

func New() IUtils {
	return &utils{
		gravatarBase: "https://www.gravatar.com/avatar",
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// FormatPublishDate renders the human-facing post date, e.g. "August 31, 2026".
func (u *utils) FormatPublishDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// GravatarURL builds the avatar URL for a commenter's email per the gravatar
// convention: md5 of the trimmed, lowercased address.
func (u *utils) GravatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%x?s=%d&d=retro", u.gravatarBase, hash, size)
}

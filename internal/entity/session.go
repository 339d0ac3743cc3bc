package entity

import "time"

// Session binds a client to at most one authenticated user. The record lives
// in Redis keyed by ID; ExpiresAt mirrors the key TTL.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

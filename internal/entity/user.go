package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}

// UserLoginData is the identity attached to a request once its session
// resolved. Handlers never see the password hash.
type UserLoginData struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

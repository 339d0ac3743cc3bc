package auth

import (
	"errors"
	"net/http"

	"ProjectBlog/pkg/response"
)

var (
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "user already exists, please login")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrIncorrectPassword  = response.NewError(http.StatusUnauthorized, "incorrect password")
	ErrNotAuthenticated   = response.NewError(http.StatusUnauthorized, "not logged in")
	ErrCreateUser         = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrCreateSession      = response.NewError(http.StatusInternalServerError, "failed to create session")
)

// ErrAdminTaken means an insert with is_admin=true lost the first-registration
// race to a concurrent transaction. The service retries as a regular user, so
// this never reaches a client.
var ErrAdminTaken = errors.New("admin role already assigned")

package middleware

import (
	"errors"

	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/redis"
	tokenPkg "ProjectBlog/pkg/token"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const SessionCookieName = "session"

var errNoSession = errors.New("no active session")

// resolveSession walks cookie -> signed token -> Redis session -> user row.
// A session whose user row no longer exists is a hard failure, not an
// anonymous request: the caller gets auth.ErrUserNotFound back untouched.
func (m *middleware) resolveSession(ctx *fiber.Ctx) (entity.UserLoginData, error) {
	cookie := ctx.Cookies(SessionCookieName)
	if cookie == "" {
		return entity.UserLoginData{}, errNoSession
	}

	sessionID, err := tokenPkg.Parse(cookie)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Session cookie failed verification")
		return entity.UserLoginData{}, errNoSession
	}

	c := contextPkg.FromFiberCtx(ctx)

	record, err := m.sessionStore.GetSession(c, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return entity.UserLoginData{}, errNoSession
		}
		return entity.UserLoginData{}, err
	}

	var session entity.Session
	if err := jsoniter.UnmarshalFromString(record, &session); err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Session record is not decodable")
		return entity.UserLoginData{}, errNoSession
	}

	repo, err := m.authRepo.NewClient(false)
	if err != nil {
		return entity.UserLoginData{}, err
	}

	user, err := repo.Users.GetByID(c, session.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			m.log.WithFields(logrus.Fields{
				"path":    ctx.Path(),
				"user_id": session.UserID,
			}).Warn("Session references a deleted user")
			return entity.UserLoginData{}, auth.ErrUserNotFound
		}
		return entity.UserLoginData{}, err
	}

	return entity.UserLoginData{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}

// NewSessionMiddleware requires an authenticated identity.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	user, err := m.resolveSession(ctx)
	if err != nil {
		switch {
		case errors.Is(err, errNoSession):
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized, please log in",
			})
		case errors.Is(err, auth.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "user not found",
			})
		default:
			m.log.WithFields(logrus.Fields{
				"path":  ctx.Path(),
				"error": err.Error(),
			}).Error("Session resolution failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "An unexpected error occurred",
			})
		}
	}

	ctx.Locals(UserKey, user)
	return ctx.Next()
}

// NewOptionalSessionMiddleware lets anonymous requests through but still
// fails hard on a stale session.
func (m *middleware) NewOptionalSessionMiddleware(ctx *fiber.Ctx) error {
	user, err := m.resolveSession(ctx)
	if err != nil {
		switch {
		case errors.Is(err, errNoSession):
			return ctx.Next()
		case errors.Is(err, auth.ErrUserNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "user not found",
			})
		default:
			m.log.WithFields(logrus.Fields{
				"path":  ctx.Path(),
				"error": err.Error(),
			}).Error("Session resolution failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "An unexpected error occurred",
			})
		}
	}

	ctx.Locals(UserKey, user)
	return ctx.Next()
}

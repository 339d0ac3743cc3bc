package middleware

import (
	"errors"

	"ProjectBlog/internal/api/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewAdminMiddleware gates post-mutation routes. It runs before the handler
// body, so a forbidden caller never learns whether the target even exists.
// Every non-admin identity, anonymous included, gets the same 403.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	user, err := m.resolveSession(ctx)
	if err != nil {
		switch {
		case errors.Is(err, errNoSession):
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
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

	if !user.IsAdmin {
		m.log.WithFields(logrus.Fields{
			"path":    ctx.Path(),
			"user_id": user.ID,
		}).Warn("Non-admin attempted a gated route")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	}

	ctx.Locals(UserKey, user)
	return ctx.Next()
}

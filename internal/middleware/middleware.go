package middleware

import (
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/redis"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const UserKey = "user"

type Middleware interface {
	NewSessionMiddleware(ctx *fiber.Ctx) error
	NewOptionalSessionMiddleware(ctx *fiber.Ctx) error
	NewAdminMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	log                 *logrus.Logger
	authRepo            authRepository.Repository
	sessionStore        redis.IRedis
	requestIDMiddleware fiber.Handler
}

func New(logger *logrus.Logger, authRepo authRepository.Repository, sessionStore redis.IRedis) Middleware {
	return &middleware{
		log:                 logger,
		authRepo:            authRepo,
		sessionStore:        sessionStore,
		requestIDMiddleware: NewRequestIDMiddleware(),
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}

// GetUserLoginData returns the identity the session middleware attached to
// the request, or fiber.ErrUnauthorized for anonymous requests.
func GetUserLoginData(ctx *fiber.Ctx) (entity.UserLoginData, error) {
	userData := ctx.Locals(UserKey)

	user, ok := userData.(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}

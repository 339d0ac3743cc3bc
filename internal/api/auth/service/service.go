package authService

import (
	"context"
	"time"

	"ProjectBlog/internal/api/auth"
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/redis"
	"ProjectBlog/pkg/utils"

	"github.com/sirupsen/logrus"
)

// SessionTTL bounds both the Redis session record and the cookie token.
const SessionTTL = 7 * 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.SessionResponse, string, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, string, error)
	Logout(ctx context.Context, cookieToken string) error
}

type authService struct {
	log          *logrus.Logger
	authRepo     authRepository.Repository
	sessionStore redis.IRedis
	bcryptUtils  bcrypt.IBcrypt
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	sessionStore redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:          log,
		authRepo:     authRepo,
		sessionStore: sessionStore,
		bcryptUtils:  bcryptUtils,
		utils:        utils,
	}
}

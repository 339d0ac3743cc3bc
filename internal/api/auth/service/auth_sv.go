package authService

import (
	"errors"
	"time"

	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	tokenPkg "ProjectBlog/pkg/token"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) Register(c context.Context, req auth.RegisterRequest) (auth.SessionResponse, string, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, "", err
	}
	defer repo.Rollback()

	_, err = repo.Users.GetByEmail(c, req.Email)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Registration attempt with existing email")
		return auth.SessionResponse{}, "", auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing email")
		return auth.SessionResponse{}, "", err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.SessionResponse{}, "", err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.SessionResponse{}, "", err
	}

	total, err := repo.Users.CountUsers(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count users")
		return auth.SessionResponse{}, "", err
	}

	user := entity.User{
		ID:       userID,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		// the first account ever registered is the blog administrator
		IsAdmin:   total == 0,
		CreatedAt: time.Now(),
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return auth.SessionResponse{}, "", auth.ErrEmailAlreadyExists
		case errors.Is(err, auth.ErrAdminTaken) && user.IsAdmin:
			// a concurrent registration claimed the admin role between the
			// count and the insert; the aborted transaction cannot be
			// reused, so retry once on a fresh one as a regular user
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Lost the first-registration race, retrying as regular user")

			repo.Rollback()
			repo, err = s.authRepo.NewClient(true)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to create repository client")
				return auth.SessionResponse{}, "", err
			}
			defer repo.Rollback()

			user.IsAdmin = false
			if err := repo.Users.CreateUser(c, user); err != nil {
				if errors.Is(err, auth.ErrEmailAlreadyExists) {
					return auth.SessionResponse{}, "", auth.ErrEmailAlreadyExists
				}
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to create user")
				return auth.SessionResponse{}, "", auth.ErrCreateUser
			}
		default:
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create user")
			return auth.SessionResponse{}, "", auth.ErrCreateUser
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return auth.SessionResponse{}, "", auth.ErrCreateUser
	}

	cookieToken, err := s.createSession(c, user.ID)
	if err != nil {
		return auth.SessionResponse{}, "", err
	}

	return makeSessionResponse(user), cookieToken, nil
}

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.SessionResponse, string, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, "", err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Login attempt for unknown email")
			return auth.SessionResponse{}, "", auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.SessionResponse{}, "", err
	}

	if !s.bcryptUtils.VerifyPassword(user.Password, req.Password) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Password verification failed")
		return auth.SessionResponse{}, "", auth.ErrIncorrectPassword
	}

	cookieToken, err := s.createSession(c, user.ID)
	if err != nil {
		return auth.SessionResponse{}, "", err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Session created")

	return makeSessionResponse(user), cookieToken, nil
}

func (s *authService) Logout(c context.Context, cookieToken string) error {
	requestID := contextPkg.GetRequestID(c)

	sessionID, err := tokenPkg.Parse(cookieToken)
	if err != nil {
		// an unreadable cookie has no session to clear
		return nil
	}

	if err := s.sessionStore.DeleteSession(c, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete session")
		return err
	}

	return nil
}

func (s *authService) createSession(c context.Context, userID string) (string, error) {
	requestID := contextPkg.GetRequestID(c)

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return "", auth.ErrCreateSession
	}

	now := time.Now()
	record, err := jsoniter.Marshal(entity.Session{
		ID:        sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode session record")
		return "", auth.ErrCreateSession
	}

	if err := s.sessionStore.SetSession(c, sessionID, string(record), SessionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store session")
		return "", auth.ErrCreateSession
	}

	cookieToken, err := tokenPkg.Sign(sessionID, SessionTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign session token")
		return "", auth.ErrCreateSession
	}

	return cookieToken, nil
}

func makeSessionResponse(user entity.User) auth.SessionResponse {
	return auth.SessionResponse{
		User: auth.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		},
	}
}

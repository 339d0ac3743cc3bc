package config

import (
	"fmt"
	"os"

	"ProjectBlog/database/postgres"
	authHandler "ProjectBlog/internal/api/auth/handler"
	authRepository "ProjectBlog/internal/api/auth/repository"
	authService "ProjectBlog/internal/api/auth/service"
	blogHandler "ProjectBlog/internal/api/blog/handler"
	blogRepository "ProjectBlog/internal/api/blog/repository"
	blogService "ProjectBlog/internal/api/blog/service"
	contactHandler "ProjectBlog/internal/api/contact/handler"
	contactService "ProjectBlog/internal/api/contact/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/redis"
	"ProjectBlog/pkg/smtp"
	"ProjectBlog/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

// WithMiddleware must come after WithDatabase and WithRedisServer: session
// resolution reads the session store and loads the user from the database.
func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.db == nil {
			return fmt.Errorf("database must be initialized before middleware")
		}
		if s.redisServer == nil {
			return fmt.Errorf("redis must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, authRepository.New(s.db, s.log), s.redisServer)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Contact Domain
	contactServices := contactService.New(s.log, s.smtpMailer)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers, contactHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/")
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

package blogHandler

import (
	blogService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	// Public reads; show-post resolves the session when one is present so
	// the response can say whether commenting is allowed
	srv.Get("/", h.GetAllPosts)
	srv.Get("/post/:id", h.middleware.NewOptionalSessionMiddleware, h.ShowPost)

	// Commenting requires a logged-in user
	srv.Post("/post/:id", h.middleware.NewSessionMiddleware, h.SubmitComment)

	// Post mutations are admin-gated; the gate runs before the handler body
	srv.Post("/new-post", h.middleware.NewAdminMiddleware, h.CreatePost)
	srv.Get("/edit-post/:id", h.middleware.NewAdminMiddleware, h.GetPostForEdit)
	srv.Post("/edit-post/:id", h.middleware.NewAdminMiddleware, h.EditPost)
	srv.Get("/delete/:id", h.middleware.NewAdminMiddleware, h.DeletePost)
}

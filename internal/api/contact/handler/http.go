package contactHandler

import (
	contactService "ProjectBlog/internal/api/contact/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	contactService contactService.IContactService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs contactService.IContactService,
) *ContactHandler {
	return &ContactHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		contactService: cs,
	}
}

func (h *ContactHandler) Start(srv fiber.Router) {
	srv.Get("/about", h.ShowAbout)
	srv.Get("/contact", h.ShowContact)
	srv.Post("/contact", h.SendMessage)
}

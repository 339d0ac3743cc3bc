package contactService

import (
	"context"

	"ProjectBlog/internal/api/contact"
	"ProjectBlog/pkg/smtp"

	"github.com/sirupsen/logrus"
)

type IContactService interface {
	SendMessage(ctx context.Context, req contact.ContactRequest) (contact.ContactResponse, error)
	AboutPage(ctx context.Context) contact.PageResponse
	ContactPage(ctx context.Context) contact.PageResponse
}

type contactService struct {
	log    *logrus.Logger
	mailer smtp.ItfSmtp
}

func New(log *logrus.Logger, mailer smtp.ItfSmtp) IContactService {
	return &contactService{
		log:    log,
		mailer: mailer,
	}
}

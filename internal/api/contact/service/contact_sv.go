package contactService

import (
	"ProjectBlog/internal/api/contact"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *contactService) SendMessage(c context.Context, req contact.ContactRequest) (contact.ContactResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := s.mailer.SendContactMessage(req.Name, req.Email, req.Phone, req.Message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send contact message")
		return contact.ContactResponse{}, contact.ErrMailDelivery
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Contact message delivered")

	return contact.ContactResponse{Message: "Successfully sent message"}, nil
}

func (s *contactService) AboutPage(_ context.Context) contact.PageResponse {
	return contact.PageResponse{
		Title: "About Me",
		Body:  "This is what I do.",
	}
}

func (s *contactService) ContactPage(_ context.Context) contact.PageResponse {
	return contact.PageResponse{
		Title: "Contact Me",
		Body:  "Have questions? I have answers.",
	}
}

package handlerUtil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ProjectBlog/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newTestApp(t *testing.T, h fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/test", h)
	return app
}

func performRequest(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestHandleDomainError(t *testing.T) {
	logger := logrus.New()
	errHandler := New(logger)

	domainErr := response.NewError(http.StatusConflict, "user already exists, please login")

	app := newTestApp(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-1", domainErr, c.Path(), "register")
	})

	resp := performRequest(t, app)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusConflict)
	}
}

func TestHandleWrappedDomainError(t *testing.T) {
	logger := logrus.New()
	errHandler := New(logger)

	wrapped := wrapDomainErr(response.NewError(http.StatusNotFound, "post not found"))

	app := newTestApp(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-2", wrapped, c.Path(), "show_post")
	})

	resp := performRequest(t, app)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func wrapDomainErr(err error) error {
	return errors.Join(errors.New("loading post"), err)
}

func TestHandleUnexpectedError(t *testing.T) {
	logger := logrus.New()
	errHandler := New(logger)

	app := newTestApp(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-3", errors.New("connection reset"), c.Path(), "get_all_posts")
	})

	resp := performRequest(t, app)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestHandleSuccessNoBody(t *testing.T) {
	logger := logrus.New()
	errHandler := New(logger)

	app := newTestApp(t, func(c *fiber.Ctx) error {
		return errHandler.HandleSuccess(c, fiber.StatusNoContent, nil)
	})

	resp := performRequest(t, app)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
}

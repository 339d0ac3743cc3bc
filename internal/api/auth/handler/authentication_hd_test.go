package authHandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ProjectBlog/internal/api/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakeMiddleware struct{}

func (fakeMiddleware) NewSessionMiddleware(c *fiber.Ctx) error         { return c.Next() }
func (fakeMiddleware) NewOptionalSessionMiddleware(c *fiber.Ctx) error { return c.Next() }
func (fakeMiddleware) NewAdminMiddleware(c *fiber.Ctx) error           { return c.Next() }
func (fakeMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}
func (fakeMiddleware) GetRequestID(*fiber.Ctx) string { return "test-request" }

type fakeAuthService struct {
	registered []auth.RegisterRequest
}

func (f *fakeAuthService) Register(_ context.Context, req auth.RegisterRequest) (auth.SessionResponse, string, error) {
	f.registered = append(f.registered, req)
	return auth.SessionResponse{User: auth.UserResponse{Email: req.Email}}, "signed-token", nil
}

func (f *fakeAuthService) Login(_ context.Context, req auth.LoginRequest) (auth.SessionResponse, string, error) {
	return auth.SessionResponse{User: auth.UserResponse{Email: req.Email}}, "signed-token", nil
}

func (f *fakeAuthService) Logout(context.Context, string) error { return nil }

func newTestApp(svc *fakeAuthService) *fiber.App {
	app := fiber.New()
	h := New(logrus.New(), validator.New(), fakeMiddleware{}, svc)
	h.Start(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestHandleRegisterMalformedBody(t *testing.T) {
	svc := &fakeAuthService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/register", `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for an unparsable body", resp.StatusCode, http.StatusBadRequest)
	}
	if len(svc.registered) != 0 {
		t.Errorf("service called %d times, want 0", len(svc.registered))
	}
}

func TestHandleLoginMalformedBody(t *testing.T) {
	app := newTestApp(&fakeAuthService{})

	resp := postJSON(t, app, "/login", `"just a string"`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for an unparsable body", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestHandleRegisterInvalidFields(t *testing.T) {
	svc := &fakeAuthService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/register", `{"name":"A","email":"not-an-email","password":"short"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for failing validation", resp.StatusCode, http.StatusBadRequest)
	}
	if len(svc.registered) != 0 {
		t.Errorf("service called %d times, want 0", len(svc.registered))
	}
}

func TestHandleRegisterValidBody(t *testing.T) {
	svc := &fakeAuthService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/register", `{"name":"Ana","email":"ana@example.com","password":"supersecret1"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	if len(svc.registered) != 1 {
		t.Fatalf("service called %d times, want 1", len(svc.registered))
	}
	if svc.registered[0].Email != "ana@example.com" {
		t.Errorf("registered email = %q", svc.registered[0].Email)
	}
}

package blogHandler

import (
	"errors"
	"time"

	"ProjectBlog/internal/api/auth"
	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/middleware"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) SubmitComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing submit comment request")

	postID := ctx.Params("id")
	if postID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("post ID is required"), ctx.Path())
	}

	user, err := middleware.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, auth.ErrNotAuthenticated, ctx.Path(), "submit_comment")
	}

	var req blogs.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.blogsService.CreateComment(c, postID, req, user)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

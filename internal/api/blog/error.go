package blogs

import (
	"ProjectBlog/pkg/response"
	"net/http"
)

var (
	ErrPostNotFound       = response.NewError(http.StatusNotFound, "post not found")
	ErrTitleAlreadyExists = response.NewError(http.StatusConflict, "a post with this title already exists")
	ErrCreatePost         = response.NewError(http.StatusInternalServerError, "failed to create post")
	ErrUpdatePost         = response.NewError(http.StatusInternalServerError, "failed to update post")
	ErrDeletePost         = response.NewError(http.StatusInternalServerError, "failed to delete post")
	ErrCreateComment      = response.NewError(http.StatusInternalServerError, "failed to create comment")
)

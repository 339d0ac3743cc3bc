package contact

import (
	"ProjectBlog/pkg/response"
	"net/http"
)

var (
	ErrMailDelivery = response.NewError(http.StatusBadGateway, "failed to deliver contact message")
)

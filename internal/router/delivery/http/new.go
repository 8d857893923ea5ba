package http

import (
	"github.com/gin-gonic/gin"

	"intent-router/internal/router"
	"intent-router/pkg/log"
)

// Handler is the public interface for the router HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc router.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the router domain.
func New(l log.Logger, uc router.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

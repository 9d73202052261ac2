package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/auth"
	"github.com/KN-gho/timebudget/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Me(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/diary"
	"github.com/KN-gho/timebudget/pkg/log"
)

// Handler is the public interface for the diary HTTP delivery layer.
type Handler interface {
	Save(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Recent(c *gin.Context)
	Month(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc diary.UseCase
}

// New creates a new HTTP handler for the diary domain.
func New(l log.Logger, uc diary.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

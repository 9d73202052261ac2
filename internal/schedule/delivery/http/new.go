package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/schedule"
	"github.com/KN-gho/timebudget/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
	Forecast(c *gin.Context)
	Advice(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

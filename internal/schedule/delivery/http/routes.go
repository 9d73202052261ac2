package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All schedule routes require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules", mw.Auth())
	{
		schedules.POST("", h.Add)
		schedules.GET("", h.List)
		schedules.GET("/forecast", h.Forecast)
		schedules.GET("/advice", h.Advice)
		schedules.DELETE("/:id", h.Delete)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All diary routes require a session. Dates ride in the path as
// YYYY-MM-DD; the month listing takes YYYY-MM.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	entries := rg.Group("/diary", mw.Auth())
	{
		entries.POST("", h.Save)
		entries.GET("/recent", h.Recent)
		entries.GET("/month/:month", h.Month)
		entries.GET("/:date", h.Get)
		entries.PUT("/:date", h.Update)
		entries.DELETE("/:date", h.Delete)
	}
}

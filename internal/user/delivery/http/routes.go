package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Registration stays open; everything else requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", mw.Auth(), h.List)
		users.GET("/:id", mw.Auth(), h.Detail)
		users.PUT("/:id", mw.Auth(), h.Update)
		users.DELETE("/:id", mw.Auth(), h.Delete)
		users.GET("/:id/settings", mw.Auth(), h.GetSettings)
		users.PUT("/:id/settings", mw.Auth(), h.SaveSettings)
	}
}

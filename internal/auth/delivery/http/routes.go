package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// login flow itself is unauthenticated by nature; Me and Logout take
// the session token from the request.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/login", h.Login)
		authGroup.GET("/callback", h.Callback)
		authGroup.GET("/me", h.Me)
		authGroup.POST("/logout", h.Logout)
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

// processAddReq binds and validates the add schedule request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

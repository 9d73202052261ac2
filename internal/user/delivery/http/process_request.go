package http

import (
	"github.com/gin-gonic/gin"
)

// processRegisterReq binds and validates the register request body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processSaveSettingsReq binds the settings body + URI param.
func (h *handler) processSaveSettingsReq(c *gin.Context) (saveSettingsReq, error) {
	var req saveSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = c.Param("id")
	return req, req.validate()
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/pkg/response"
)

// Register godoc
// @Summary     Register a new user
// @Description Creates a profile with the provided name and optional region/lifestyle hours.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "User data"
// @Success     200 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRegisterResp(output))
}

// List godoc
// @Summary     List users
// @Description Returns all registered profiles.
// @Tags        User
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get user detail
// @Description Returns a single profile by its ID.
// @Tags        User
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a user
// @Description Updates profile fields. The name is immutable.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       id   path string    true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a user
// @Description Permanently removes a profile and its settings.
// @Tags        User
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SaveSettings godoc
// @Summary     Save daily rhythm settings
// @Description Upserts wake/sleep clocks. Weekday wake and sleep are required "HH:MM" strings.
// @Tags        User
// @Accept      json
// @Produce     json
// @Param       id   path string          true "User ID"
// @Param       body body saveSettingsReq true "Clock settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{id}/settings [PUT]
func (h *handler) SaveSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveSettingsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SaveSettings(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(output))
}

// GetSettings godoc
// @Summary     Get daily rhythm settings
// @Description Returns the user's saved wake/sleep clocks.
// @Tags        User
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} settingsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{id}/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.GetSettings(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(output))
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/pkg/response"
)

// Add godoc
// @Summary     Add a schedule
// @Description Registers a planned event with date, start time, and weather-relevant flags.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Schedule data"
// @Success     200 {object} addResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "User Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddResp(output))
}

// List godoc
// @Summary     List schedules
// @Description Returns the user's schedules, all or for one date.
// @Tags        Schedule
// @Produce     json
// @Param       user_id query string true  "User ID"
// @Param       date    query string false "Date (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var (
		output any
		err    error
	)
	if raw := c.Query("date"); raw != "" {
		date, parseErr := time.Parse(response.DateFormat, raw)
		if parseErr != nil {
			response.Error(c, h.mapError(errInvalidDate))
			return
		}
		out, listErr := h.uc.ListByDate(ctx, userID, date)
		output, err = h.newListResp(out), listErr
	} else {
		out, listErr := h.uc.ListAll(ctx, userID)
		output, err = h.newListResp(out), listErr
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// Delete godoc
// @Summary     Delete a schedule
// @Description Permanently removes a schedule scoped to its owner.
// @Tags        Schedule
// @Produce     json
// @Param       id      path  string true "Schedule ID"
// @Param       user_id query string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id, c.Query("user_id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Forecast godoc
// @Summary     Weather forecast
// @Description Returns tomorrow's and the day after's forecast for the user's region.
// @Tags        Schedule
// @Produce     json
// @Param       user_id query string true "User ID"
// @Success     200 {object} forecastResp
// @Failure     400 {object} response.Resp "No region configured"
// @Failure     502 {object} response.Resp "Forecast fetch failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/forecast [GET]
func (h *handler) Forecast(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	output, err := h.uc.Forecast(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Forecast: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newForecastResp(output))
}

// Advice godoc
// @Summary     AI schedule advice
// @Description Generates advice over upcoming schedules and forecasts, flagging outdoor events on rainy days.
// @Tags        Schedule
// @Produce     json
// @Param       user_id query string true "User ID"
// @Success     200 {object} adviceResp
// @Failure     400 {object} response.Resp "No region configured"
// @Failure     502 {object} response.Resp "Advice generation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/advice [GET]
func (h *handler) Advice(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	output, err := h.uc.Advice(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Advice: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAdviceResp(output))
}

package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/diary"
	"github.com/KN-gho/timebudget/pkg/response"
)

// Save godoc
// @Summary     Save a diary entry
// @Description Creates the entry for the date. A date that already has one conflicts; use PUT to overwrite.
// @Tags        Diary
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Entry data"
// @Success     200 {object} singleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - entry exists for this date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diary [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(output))
}

// Get godoc
// @Summary     Get a diary entry
// @Description Returns the entry for the date.
// @Tags        Diary
// @Produce     json
// @Param       date    path  string true "Date (YYYY-MM-DD)"
// @Param       user_id query string true "User ID"
// @Success     200 {object} singleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diary/{date} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := pathDate(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Get(ctx, c.Query("user_id"), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(output))
}

// Update godoc
// @Summary     Update a diary entry
// @Description Overwrites the entry's content for the date.
// @Tags        Diary
// @Accept      json
// @Produce     json
// @Param       date path string    true "Date (YYYY-MM-DD)"
// @Param       body body updateReq true "New content"
// @Success     200 {object} singleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diary/{date} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSingleResp(output))
}

// Delete godoc
// @Summary     Delete a diary entry
// @Description Removes the entry for the date.
// @Tags        Diary
// @Produce     json
// @Param       date    path  string true "Date (YYYY-MM-DD)"
// @Param       user_id query string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diary/{date} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := pathDate(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, c.Query("user_id"), date); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Recent godoc
// @Summary     Recent diary entries
// @Description Returns the latest n entries, newest date first.
// @Tags        Diary
// @Produce     json
// @Param       user_id query string true  "User ID"
// @Param       n       query int    false "Entry count (default: 7)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diary/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	n, _ := strconv.Atoi(c.Query("n"))

	output, err := h.uc.Recent(ctx, c.Query("user_id"), n)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Month godoc
// @Summary     Diary entries for a month
// @Description Returns all entries within the calendar month, date ascending.
// @Tags        Diary
// @Produce     json
// @Param       month   path  string true "Month (YYYY-MM)"
// @Param       user_id query string true "User ID"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diary/month/{month} [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	month, err := pathMonth(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Month(ctx, diary.MonthInput{
		UserID: c.Query("user_id"),
		Year:   month.Year(),
		Month:  month.Month(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

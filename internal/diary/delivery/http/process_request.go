package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/pkg/response"
)

var (
	errInvalidDate  = errors.New("invalid date")
	errInvalidMonth = errors.New("invalid month")
)

// processSaveReq binds and validates the save entry request body.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update body + date path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Date = c.Param("date")
	return req, req.validate()
}

// pathDate parses the YYYY-MM-DD date path param.
func pathDate(c *gin.Context) (time.Time, error) {
	date, err := time.Parse(response.DateFormat, c.Param("date"))
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}

// pathMonth parses the YYYY-MM month path param.
func pathMonth(c *gin.Context) (time.Time, error) {
	month, err := time.Parse("2006-01", c.Param("month"))
	if err != nil {
		return time.Time{}, errInvalidMonth
	}
	return month, nil
}

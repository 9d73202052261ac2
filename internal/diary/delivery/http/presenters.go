package http

import (
	"time"

	"github.com/KN-gho/timebudget/internal/diary"
	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/pkg/response"
)

// --- Request DTOs ---

type saveReq struct {
	UserID  string `json:"user_id" binding:"required"`
	Date    string `json:"date"    binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}

func (r saveReq) validate() error {
	if _, err := time.Parse(response.DateFormat, r.Date); err != nil {
		return errInvalidDate
	}
	return nil
}

func (r saveReq) toInput() diary.SaveInput {
	date, _ := time.Parse(response.DateFormat, r.Date)
	return diary.SaveInput{
		UserID:  r.UserID,
		Date:    date,
		Content: r.Content,
	}
}

// ---

type updateReq struct {
	Date    string `json:"-"` // populated from URI param
	UserID  string `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}

func (r updateReq) validate() error {
	if _, err := time.Parse(response.DateFormat, r.Date); err != nil {
		return errInvalidDate
	}
	return nil
}

func (r updateReq) toInput() diary.UpdateInput {
	date, _ := time.Parse(response.DateFormat, r.Date)
	return diary.UpdateInput{
		UserID:  r.UserID,
		Date:    date,
		Content: r.Content,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newEntryResp(e model.DiaryEntry) entryResp {
	return entryResp{
		ID:        e.ID,
		UserID:    e.UserID,
		Date:      e.Date.Format(response.DateFormat),
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type singleResp struct {
	Entry entryResp `json:"entry"`
}

func (h *handler) newSingleResp(out diary.EntryOutput) singleResp {
	return singleResp{Entry: newEntryResp(out.Entry)}
}

type listResp struct {
	Entries []entryResp `json:"entries"`
}

func (h *handler) newListResp(out diary.ListOutput) listResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return listResp{Entries: entries}
}

package diary

import (
	"time"

	"github.com/KN-gho/timebudget/internal/model"
)

// --- UseCase Inputs ---

type SaveInput struct {
	UserID  string
	Date    time.Time
	Content string
}

type UpdateInput struct {
	UserID  string
	Date    time.Time
	Content string
}

type MonthInput struct {
	UserID string
	Year   int
	Month  time.Month
}

// --- UseCase Outputs ---

type EntryOutput struct {
	Entry model.DiaryEntry
}

type ListOutput struct {
	Entries []model.DiaryEntry
}

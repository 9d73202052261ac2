package task

import (
	"time"

	"github.com/KN-gho/timebudget/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	UserID           string
	Title            string
	Category         string
	Content          string
	Deadline         time.Time
	Priority         int
	EstimatedMinutes int
}

type ListInput struct {
	UserID    string
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateInput applies a partial update. Nil pointer fields are left
// untouched; AddProgressMinutes accumulates onto logged progress and
// bumps the session counter.
type UpdateInput struct {
	ID                 string
	UserID             string
	Title              *string
	Category           *string
	Content            *string
	Deadline           *time.Time
	Priority           *int
	EstimatedMinutes   *int
	AddProgressMinutes *int
	Completed          *bool
}

// VoiceIntakeInput carries a raw audio recording for transcription.
type VoiceIntakeInput struct {
	UserID   string
	Filename string
	Audio    []byte
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

// TaskDraft is a pre-filled task extracted from a voice recording. The
// caller decides whether to register it.
type TaskDraft struct {
	Title            string
	Content          string
	Priority         int
	EstimatedMinutes int
	Deadline         time.Time
}

type VoiceIntakeOutput struct {
	Transcript string
	Draft      TaskDraft
}

// ScoreReport is one window of the pressure report.
type ScoreReport struct {
	Ratio        float64
	Level        string
	Color        string
	DonutPercent float64
}

type ReportOutput struct {
	Daily  ScoreReport
	Weekly ScoreReport
}

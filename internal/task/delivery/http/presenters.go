package http

import (
	"time"

	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/internal/task"
	"github.com/KN-gho/timebudget/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	UserID           string `json:"user_id"        binding:"required"`
	Title            string `json:"title"          binding:"required,min=1,max=255"`
	Category         string `json:"category"       binding:"omitempty,max=255"`
	Content          string `json:"content"        binding:"omitempty,max=1000"`
	Deadline         string `json:"deadline"       binding:"required"`
	Priority         int    `json:"priority"       binding:"omitempty,min=1,max=5"`
	EstimatedMinutes int    `json:"estimated_time" binding:"omitempty,min=0"`
}

func (r createReq) validate() error {
	if _, err := time.Parse(response.DateFormat, r.Deadline); err != nil {
		return task.ErrInvalidDeadline
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	due, _ := time.Parse(response.DateFormat, r.Deadline)
	priority := r.Priority
	if priority == 0 {
		priority = 3
	}
	return task.CreateInput{
		UserID:           r.UserID,
		Title:            r.Title,
		Category:         r.Category,
		Content:          r.Content,
		Deadline:         due,
		Priority:         priority,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

// ---

type listReq struct {
	UserID    string `form:"user_id" binding:"required"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit < 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		UserID:    r.UserID,
		Completed: r.Completed,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID                 string  `json:"-"` // populated from URI param
	UserID             string  `json:"user_id"          binding:"required"`
	Title              *string `json:"title"            binding:"omitempty,min=1,max=255"`
	Category           *string `json:"category"         binding:"omitempty,max=255"`
	Content            *string `json:"content"          binding:"omitempty,max=1000"`
	Deadline           *string `json:"deadline"`
	Priority           *int    `json:"priority"         binding:"omitempty,min=1,max=5"`
	EstimatedMinutes   *int    `json:"estimated_time"   binding:"omitempty,min=0"`
	AddProgressMinutes *int    `json:"add_progress_time" binding:"omitempty,min=0"`
	Completed          *bool   `json:"completed"`
}

func (r updateReq) validate() error {
	if r.Deadline != nil {
		if _, err := time.Parse(response.DateFormat, *r.Deadline); err != nil {
			return task.ErrInvalidDeadline
		}
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:                 r.ID,
		UserID:             r.UserID,
		Title:              r.Title,
		Category:           r.Category,
		Content:            r.Content,
		Priority:           r.Priority,
		EstimatedMinutes:   r.EstimatedMinutes,
		AddProgressMinutes: r.AddProgressMinutes,
		Completed:          r.Completed,
	}
	if r.Deadline != nil {
		due, _ := time.Parse(response.DateFormat, *r.Deadline)
		input.Deadline = &due
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Content          string    `json:"content"`
	Deadline         string    `json:"deadline"`
	Priority         int       `json:"priority"`
	EstimatedMinutes int       `json:"estimated_time"`
	ProgressMinutes  int       `json:"progress_time"`
	ProgressSessions int       `json:"progress_sessions"`
	RemainingMinutes int       `json:"remaining_time"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		UserID:           t.UserID,
		Title:            t.Title,
		Category:         t.Category,
		Content:          t.Content,
		Deadline:         t.Deadline.Format(response.DateFormat),
		Priority:         t.Priority,
		EstimatedMinutes: t.EstimatedMinutes,
		ProgressMinutes:  t.ProgressMinutes,
		ProgressSessions: t.ProgressSessions,
		RemainingMinutes: t.RemainingMinutes(),
		Completed:        t.Completed,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type draftResp struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	Priority         int    `json:"priority"`
	EstimatedMinutes int    `json:"estimated_time"`
	Deadline         string `json:"deadline"`
}

type voiceIntakeResp struct {
	Transcript string    `json:"transcript"`
	Draft      draftResp `json:"draft"`
}

func (h *handler) newVoiceIntakeResp(out task.VoiceIntakeOutput) voiceIntakeResp {
	return voiceIntakeResp{
		Transcript: out.Transcript,
		Draft: draftResp{
			Title:            out.Draft.Title,
			Content:          out.Draft.Content,
			Priority:         out.Draft.Priority,
			EstimatedMinutes: out.Draft.EstimatedMinutes,
			Deadline:         out.Draft.Deadline.Format(response.DateFormat),
		},
	}
}

type scoreResp struct {
	Ratio        float64 `json:"ratio"`
	Level        string  `json:"level"`
	Color        string  `json:"color"`
	DonutPercent float64 `json:"donut_percent"`
}

type reportResp struct {
	Daily  scoreResp `json:"daily"`
	Weekly scoreResp `json:"weekly"`
}

func (h *handler) newReportResp(out task.ReportOutput) reportResp {
	return reportResp{
		Daily:  newScoreResp(out.Daily),
		Weekly: newScoreResp(out.Weekly),
	}
}

func newScoreResp(s task.ScoreReport) scoreResp {
	return scoreResp{
		Ratio:        s.Ratio,
		Level:        s.Level,
		Color:        s.Color,
		DonutPercent: s.DonutPercent,
	}
}

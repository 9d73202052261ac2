package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/task"
)

// maxAudioBytes caps uploaded recordings at 25 MB, the transcription
// API's own limit.
const maxAudioBytes = 25 << 20

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update task body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processVoiceReq reads the multipart audio upload ("audio" file field
// plus "user_id" form value).
func (h *handler) processVoiceReq(c *gin.Context) (task.VoiceIntakeInput, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return task.VoiceIntakeInput{}, task.ErrEmptyAudio
	}
	if fileHeader.Size > maxAudioBytes {
		return task.VoiceIntakeInput{}, task.ErrEmptyAudio
	}

	f, err := fileHeader.Open()
	if err != nil {
		return task.VoiceIntakeInput{}, err
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return task.VoiceIntakeInput{}, err
	}

	return task.VoiceIntakeInput{
		UserID:   c.PostForm("user_id"),
		Filename: fileHeader.Filename,
		Audio:    audio,
	}, nil
}

package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultChatModel is the default chat completion model
	DefaultChatModel = "gpt-4o-mini"

	// DefaultTranscribeModel is the default speech-to-text model
	DefaultTranscribeModel = "gpt-4o-mini-transcribe"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// DefaultRequestsPerMinute caps outbound API calls
	DefaultRequestsPerMinute = 60
)

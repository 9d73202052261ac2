package openai

import "context"

// IOpenAI defines the interface for the OpenAI API client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends a chat completion request.
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Transcribe converts recorded audio to text.
	Transcribe(ctx context.Context, req *TranscriptionRequest) (*TranscriptionResponse, error)
}

// New creates a new OpenAI client with the given configuration.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}

package openai

import (
	"context"
	"errors"
	"time"

	"quickestimate/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const chatCompletionsPath = "/chat/completions"

var ErrEmptyCompletion = errors.New("openai completion returned no choices")

// Extractor asks a chat model to turn a transcript into an estimate record.
type Extractor struct {
	client  *Client
	model   string
	timeout time.Duration
}

var _ interfaces.IEstimateExtractor = (*Extractor)(nil)

func NewExtractor(client *Client, model string, timeout time.Duration) *Extractor {
	return &Extractor{client: client, model: model, timeout: timeout}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Temperature has no omitempty: zero must reach the provider.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (e *Extractor) Extract(ctx context.Context, transcript string) (string, error) {
	logger := log.Ctx(ctx).With().Str("component", "openai.extractor").Logger()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	req := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: ExtractionPrompt},
			{Role: "user", Content: transcript},
		},
		Temperature: 0,
	}

	start := time.Now()
	var out chatResponse
	if err := e.client.postJSON(ctx, chatCompletionsPath, req, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logger.Info().
		Dur("took", time.Since(start)).
		Str("model", out.Model).
		Int("prompt_tokens", out.Usage.PromptTokens).
		Int("completion_tokens", out.Usage.CompletionTokens).
		Msg("completion response")
	return out.Choices[0].Message.Content, nil
}

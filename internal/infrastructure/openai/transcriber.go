package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quickestimate/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const transcriptionPath = "/audio/transcriptions"

// Transcriber implements speech-to-text via audio.transcriptions.
type Transcriber struct {
	client  *Client
	model   string
	timeout time.Duration
}

var _ interfaces.ITranscriber = (*Transcriber)(nil)

func NewTranscriber(client *Client, model string, timeout time.Duration) *Transcriber {
	return &Transcriber{client: client, model: model, timeout: timeout}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	logger := log.Ctx(ctx).With().Str("component", "openai.transcriber").Logger()

	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("model", t.model); err != nil {
		return "", err
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	size, err := io.Copy(fw, f)
	if err != nil {
		return "", fmt.Errorf("write audio data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	start := time.Now()
	logger.Debug().Int64("bytes", size).Str("model", t.model).Msg("transcription request")

	var out transcriptionResponse
	if err := t.client.do(ctx, transcriptionPath, mw.FormDataContentType(), &body, &out); err != nil {
		return "", err
	}

	logger.Info().Dur("took", time.Since(start)).Int("transcript_len", len(out.Text)).Msg("transcription response")
	return strings.TrimSpace(out.Text), nil
}

package openai

import (
	"context"
	"os"

	"quickestimate/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const (
	stubTranscript = "Client is Jane Doe. Interior painting. Paint the living room wall, two coats at fifty dollars each. Correction, make that sixty. Client supplies the paint."
	stubCompletion = `{"Client Name":"Jane Doe","Job Type":"Interior painting","Job Description":"Paint the living room wall","Items":[{"Description":"Paint wall (per coat)","Quantity":2,"Unit Price":60}],"Notes":"Client supplies the paint."}`
)

// StubTranscriber answers with a canned transcript. Used when OPENAI_MOCK is
// set so the service runs without a provider account.
type StubTranscriber struct{}

var _ interfaces.ITranscriber = StubTranscriber{}

func (StubTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", err
	}
	log.Ctx(ctx).Warn().Str("component", "openai.stub").Msg("[MOCK] returning canned transcript")
	return stubTranscript, nil
}

// StubExtractor answers with a fixed estimate record.
type StubExtractor struct{}

var _ interfaces.IEstimateExtractor = StubExtractor{}

func (StubExtractor) Extract(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Ctx(ctx).Warn().Str("component", "openai.stub").Msg("[MOCK] returning canned estimate")
	return stubCompletion, nil
}

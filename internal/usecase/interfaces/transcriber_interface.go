package interfaces

import "context"

// ITranscriber abstracts the external speech-to-text provider.
//
// audioPath points at a request-scoped temp file; implementations must not
// keep it after returning.
type ITranscriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

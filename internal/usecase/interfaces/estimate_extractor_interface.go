package interfaces

import "context"

// IEstimateExtractor abstracts the external language model that turns a
// transcript into an estimate record.
//
// It returns the model's raw text. Callers decide whether it is structured.
type IEstimateExtractor interface {
	Extract(ctx context.Context, transcript string) (string, error)
}

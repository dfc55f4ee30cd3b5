package interfaces

import "quickestimate/internal/domain/entities"

// IEstimateRenderer serializes an estimate document (PDF).
//
// Implementations return either the complete document or an error, never a
// partial byte slice.
type IEstimateRenderer interface {
	Render(doc entities.EstimateDocument) ([]byte, error)
}

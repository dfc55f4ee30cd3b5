package response

import "quickestimate/internal/domain/entities"

// TranscribeAndParseResponse is the body of POST /transcribe-and-parse.
// Parsed is the extracted JSON object, or the model's raw text when it did not
// answer with JSON.
type TranscribeAndParseResponse struct {
	Transcript string `json:"transcript" example:"Client is Jane Doe, paint the wall, two coats at fifty"`
	Parsed     any    `json:"parsed" swaggertype:"object"`
}

func FromExtraction(e entities.Extraction) TranscribeAndParseResponse {
	res := TranscribeAndParseResponse{Transcript: e.Transcript, Parsed: e.Raw}
	if e.IsStructured() {
		res.Parsed = e.Structured
	}
	return res
}

type PingResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"CORS is working perfectly!"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Test CORS endpoint OK"`
}

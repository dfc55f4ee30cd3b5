package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Extraction is the outcome of transcribing and parsing one recording.
//
// When the language model answered with a JSON object, Structured holds it
// (compacted) and Raw keeps the original text. Otherwise Structured is nil
// and Raw is the model output exactly as received.
type Extraction struct {
	Transcript string
	Structured json.RawMessage
	Raw        string
}

func (e Extraction) IsStructured() bool {
	return len(e.Structured) > 0
}

// ParseModelJSON returns the compacted JSON object found in raw, tolerating
// surrounding whitespace and a Markdown code fence. ok is false for anything
// that is not a single JSON object.
func ParseModelJSON(raw string) (json.RawMessage, bool) {
	s := stripCodeFence(strings.TrimSpace(raw))
	if !strings.HasPrefix(s, "{") || !json.Valid([]byte(s)) {
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return nil, false
	}
	return json.RawMessage(buf.Bytes()), true
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// Drop the info string (```json).
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		if info := strings.TrimSpace(body[:i]); info == "" || !strings.ContainsAny(info, "{[") {
			body = body[i+1:]
		}
	}
	return strings.TrimSpace(body)
}

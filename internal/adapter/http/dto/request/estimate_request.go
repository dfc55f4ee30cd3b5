package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"quickestimate/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEstimateRecord = errors.New("invalid estimate record")
	ErrUnstructuredRecord    = errors.New("estimate text does not contain a json object")
)

// FieldError reports a value of the wrong type at a record path such as
// items[2].unit_price.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidEstimateRecord }

// EstimateRequest is the body of POST /generate-pdf.
//
// Keys are matched loosely: "Client Name", "client_name" and "clientName" all
// land on ClientName. Quantity and UnitPrice accept numbers or numeric strings.
type EstimateRequest struct {
	ClientName     string            `json:"client_name" example:"Jane Doe"`
	JobType        string            `json:"job_type" example:"Interior painting"`
	JobDescription string            `json:"job_description" example:"Paint the living room"`
	Items          []LineItemRequest `json:"items"`
	Notes          *string           `json:"notes,omitempty" example:"Client supplies the paint"`
}

type LineItemRequest struct {
	Description string          `json:"description" example:"Paint wall"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"number" example:"2"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"number" example:"50"`
}

func (r EstimateRequest) ToEntity() entities.EstimateRecord {
	rec := entities.EstimateRecord{
		ClientName:     r.ClientName,
		JobType:        r.JobType,
		JobDescription: r.JobDescription,
		Items:          make([]entities.LineItem, 0, len(r.Items)),
		Notes:          r.Notes,
	}
	for _, it := range r.Items {
		rec.Items = append(rec.Items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return rec
}

// DecodeEstimateRequest parses a /generate-pdf body. A JSON object is decoded
// directly. A JSON string (the opaque text /transcribe-and-parse returns when
// the model did not answer with JSON) is accepted only if an object can be
// recovered from it; otherwise ErrUnstructuredRecord.
func DecodeEstimateRequest(body []byte) (EstimateRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return EstimateRequest{}, fmt.Errorf("%w: empty body", ErrInvalidEstimateRecord)
	}
	if !json.Valid(body) {
		return EstimateRequest{}, fmt.Errorf("%w: malformed json", ErrInvalidEstimateRecord)
	}

	switch body[0] {
	case '{':
		return decodeObject(body)
	case '"':
		var text string
		if err := json.Unmarshal(body, &text); err != nil {
			return EstimateRequest{}, fmt.Errorf("%w: %w", ErrInvalidEstimateRecord, err)
		}
		obj, ok := recoverObject(text)
		if !ok {
			return EstimateRequest{}, ErrUnstructuredRecord
		}
		return decodeObject(obj)
	default:
		return EstimateRequest{}, fmt.Errorf("%w: body must be a json object", ErrInvalidEstimateRecord)
	}
}

func recoverObject(text string) ([]byte, bool) {
	if obj, ok := entities.ParseModelJSON(text); ok {
		return obj, true
	}
	start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, false
	}
	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil, false
	}
	return candidate, true
}

func (r *EstimateRequest) UnmarshalJSON(b []byte) error {
	out, err := decodeObject(b)
	if err != nil {
		return err
	}
	*r = out
	return nil
}

func decodeObject(b []byte) (EstimateRequest, error) {
	fields, err := normalizedFields(b, "")
	if err != nil {
		return EstimateRequest{}, err
	}

	var r EstimateRequest
	if r.ClientName, err = textField(fields["clientname"], "client_name"); err != nil {
		return EstimateRequest{}, err
	}
	if r.JobType, err = textField(fields["jobtype"], "job_type"); err != nil {
		return EstimateRequest{}, err
	}
	if r.JobDescription, err = textField(fields["jobdescription"], "job_description"); err != nil {
		return EstimateRequest{}, err
	}
	if r.Notes, err = optionalText(fields["notes"], "notes"); err != nil {
		return EstimateRequest{}, err
	}
	if r.Items, err = itemsField(fields["items"]); err != nil {
		return EstimateRequest{}, err
	}
	return r, nil
}

// normalizedFields decodes an object and re-keys it by canonical key. When two
// keys collapse to the same canonical key, the lexically last original wins.
func normalizedFields(b []byte, path string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		if path == "" {
			return nil, fmt.Errorf("%w: body must be a json object", ErrInvalidEstimateRecord)
		}
		return nil, &FieldError{Field: path, Reason: "must be an object"}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]json.RawMessage, len(raw))
	for _, k := range keys {
		out[canonicalKey(k)] = raw[k]
	}
	return out, nil
}

var keyAliases = map[string]string{
	"client":    "clientname",
	"qty":       "quantity",
	"price":     "unitprice",
	"unitcost":  "unitprice",
	"lineitems": "items",
}

func canonicalKey(k string) string {
	k = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(k)))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}

func textField(v json.RawMessage, path string) (string, error) {
	if isNull(v) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", &FieldError{Field: path, Reason: "must be a string"}
	}
	return s, nil
}

func optionalText(v json.RawMessage, path string) (*string, error) {
	if isNull(v) {
		return nil, nil
	}
	s, err := textField(v, path)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// numberField accepts a JSON number or a numeric string like "$1,250.00".
// Missing, null and blank strings are zero.
// Amounts and quantities stay below 1e12 with at most 12 decimal places, so
// line totals and currency formatting never work on runaway exponents.
const (
	maxNumberLen   = 64
	maxNumberScale = 12
)

var maxNumberAbs = decimal.New(1, 12)

func numberField(v json.RawMessage, path string) (decimal.Decimal, error) {
	if isNull(v) {
		return decimal.Zero, nil
	}

	text := string(v)
	if v[0] == '"' {
		if err := json.Unmarshal(v, &text); err != nil {
			return decimal.Zero, &FieldError{Field: path, Reason: "must be a number"}
		}
		text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
		neg := strings.HasPrefix(text, "-")
		text = strings.TrimPrefix(strings.TrimPrefix(text, "-"), "$")
		if text == "" {
			return decimal.Zero, nil
		}
		if neg {
			text = "-" + text
		}
	} else if v[0] != '-' && (v[0] < '0' || v[0] > '9') {
		return decimal.Zero, &FieldError{Field: path, Reason: "must be a number"}
	}

	if len(text) > maxNumberLen {
		return decimal.Zero, &FieldError{Field: path, Reason: "out of range"}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &FieldError{Field: path, Reason: "must be a number"}
	}
	if exp := d.Exponent(); exp < -maxNumberScale || exp > maxNumberScale || d.Abs().GreaterThanOrEqual(maxNumberAbs) {
		return decimal.Zero, &FieldError{Field: path, Reason: "out of range"}
	}
	return d, nil
}

func itemsField(v json.RawMessage) ([]LineItemRequest, error) {
	if isNull(v) {
		return []LineItemRequest{}, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(v, &list); err != nil {
		return nil, &FieldError{Field: "items", Reason: "must be an array"}
	}

	items := make([]LineItemRequest, 0, len(list))
	for i, raw := range list {
		path := fmt.Sprintf("items[%d]", i)
		fields, err := normalizedFields(raw, path)
		if err != nil {
			return nil, err
		}

		var it LineItemRequest
		if it.Description, err = textField(fields["description"], path+".description"); err != nil {
			return nil, err
		}
		if it.Quantity, err = numberField(fields["quantity"], path+".quantity"); err != nil {
			return nil, err
		}
		if it.UnitPrice, err = numberField(fields["unitprice"], path+".unit_price"); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ValidityDays is how long an estimate stays valid after its issue date.
	ValidityDays = 30
	// MaxDescriptionRunes bounds the item description shown in the table.
	MaxDescriptionRunes = 40
	DateLayout          = "2006-01-02"
)

// TaxRate is the fixed sales tax applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// EstimateRecord is the structured result of extraction, or the JSON posted
// by a client to render a document. Every field is optional.
type EstimateRecord struct {
	ClientName     string
	JobType        string
	JobDescription string
	Items          []LineItem
	// Notes is nil when the record carried no notes at all.
	Notes *string
}

// LineItem is one billable unit. Missing quantity or price is zero.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// EstimateDocument is the derived, render-ready view of a record.
//
// It is built per request and never stored:
//   - Subtotal is the sum of the row totals.
//   - Tax is Subtotal * TaxRate.
//   - GrandTotal is Subtotal + Tax.
type EstimateDocument struct {
	EstimateID     string
	IssuedAt       time.Time
	IssueDate      time.Time
	ValidUntil     time.Time
	ClientName     string
	JobType        string
	JobDescription string
	Rows           []DocumentRow
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	GrandTotal     decimal.Decimal
	Notes          string
}

// DocumentRow is one line of the item table.
type DocumentRow struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// NewEstimateDocument aggregates a record into a document issued at issuedAt.
func NewEstimateDocument(rec EstimateRecord, estimateID string, issuedAt time.Time) EstimateDocument {
	issueDate := time.Date(issuedAt.Year(), issuedAt.Month(), issuedAt.Day(), 0, 0, 0, 0, issuedAt.Location())

	doc := EstimateDocument{
		EstimateID:     estimateID,
		IssuedAt:       issuedAt,
		IssueDate:      issueDate,
		ValidUntil:     issueDate.AddDate(0, 0, ValidityDays),
		ClientName:     rec.ClientName,
		JobType:        rec.JobType,
		JobDescription: rec.JobDescription,
		Rows:           make([]DocumentRow, 0, len(rec.Items)),
		Subtotal:       decimal.Zero,
	}

	for _, it := range rec.Items {
		total := it.Total()
		doc.Rows = append(doc.Rows, DocumentRow{
			Description: TruncateDescription(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   total,
		})
		doc.Subtotal = doc.Subtotal.Add(total)
	}

	doc.Tax = doc.Subtotal.Mul(TaxRate)
	doc.GrandTotal = doc.Subtotal.Add(doc.Tax)

	if rec.Notes != nil {
		doc.Notes = strings.TrimSpace(*rec.Notes)
	}
	return doc
}

func (d EstimateDocument) HasNotes() bool {
	return d.Notes != ""
}

func (d EstimateDocument) IssueDateString() string {
	return d.IssueDate.Format(DateLayout)
}

func (d EstimateDocument) ValidUntilString() string {
	return d.ValidUntil.Format(DateLayout)
}

// Cells returns the row as displayed: description, qty, unit price, total.
func (r DocumentRow) Cells() [4]string {
	return [4]string{
		r.Description,
		FormatQuantity(r.Quantity),
		FormatCurrency(r.UnitPrice),
		FormatCurrency(r.LineTotal),
	}
}

// TruncateDescription cuts s to MaxDescriptionRunes characters.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDescriptionRunes {
		return s
	}
	return string(runes[:MaxDescriptionRunes])
}

// FormatCurrency renders an amount as $1234.50 (negative as -$5.00).
func FormatCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatQuantity drops trailing zeros: 2 -> "2", 1.50 -> "1.5".
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}

package pdf

import (
	"bytes"
	"fmt"
	"time"

	"quickestimate/internal/domain/entities"
	"quickestimate/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	pageMarginMM = 10.0
	lineHeight   = 7.0
	headerFont   = "Helvetica"

	disclaimer = "This estimate is based on the information provided and may change if the scope of work changes. Prices include the listed tax."
)

// Item table column widths in mm; they sum to the printable A4 width.
var columnWidths = [4]float64{90, 25, 35, 40}

var columnHeaders = [4]string{"Item", "Qty", "Unit Price", "Total"}

// EstimateRenderer lays out an estimate document on a single A4 flow.
type EstimateRenderer struct {
	compress bool
}

var _ interfaces.IEstimateRenderer = (*EstimateRenderer)(nil)

type Option func(*EstimateRenderer)

// WithCompression toggles stream compression. Uncompressed output is useful
// for inspecting the text content.
func WithCompression(on bool) Option {
	return func(r *EstimateRenderer) { r.compress = on }
}

func NewEstimateRenderer(opts ...Option) *EstimateRenderer {
	r := &EstimateRenderer{compress: true}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *EstimateRenderer) Render(doc entities.EstimateDocument) ([]byte, error) {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetCompression(r.compress)
	f.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	f.SetAutoPageBreak(true, 15)
	f.SetTitle("Estimate "+doc.EstimateID, true)
	f.SetCreator("quickestimate", true)
	if !doc.IssuedAt.IsZero() {
		f.SetCreationDate(doc.IssuedAt)
		f.SetModificationDate(doc.IssuedAt)
	} else {
		f.SetCreationDate(time.Unix(0, 0).UTC())
	}
	f.SetCatalogSort(true)

	tr := f.UnicodeTranslatorFromDescriptor("")
	f.AddPage()

	f.SetFont(headerFont, "B", 20)
	f.CellFormat(0, 12, "JOB ESTIMATE", "", 1, "C", false, 0, "")
	f.Ln(2)

	f.SetFont(headerFont, "", 11)
	writeField(f, tr, "Estimate #", doc.EstimateID)
	writeField(f, tr, "Date", doc.IssueDateString())
	writeField(f, tr, "Valid Until", doc.ValidUntilString())
	f.Ln(3)
	writeField(f, tr, "Client", doc.ClientName)
	writeField(f, tr, "Job Type", doc.JobType)
	if doc.JobDescription != "" {
		f.SetFont(headerFont, "B", 11)
		f.CellFormat(0, lineHeight, "Job Description:", "", 1, "L", false, 0, "")
		f.SetFont(headerFont, "", 11)
		f.MultiCell(0, 6, tr(doc.JobDescription), "", "L", false)
	}
	f.Ln(4)

	writeTable(f, tr, doc.Rows)
	f.Ln(2)
	writeTotals(f, doc)

	if doc.HasNotes() {
		f.Ln(6)
		f.SetFont(headerFont, "B", 12)
		f.CellFormat(0, lineHeight, "Notes", "", 1, "L", false, 0, "")
		f.SetFont(headerFont, "", 11)
		f.MultiCell(0, 6, tr(doc.Notes), "", "L", false)
	}

	f.Ln(8)
	f.SetFont(headerFont, "I", 9)
	f.MultiCell(0, 5, disclaimer, "", "L", false)
	writeSignature(f)

	if err := f.Error(); err != nil {
		return nil, fmt.Errorf("layout estimate: %w", err)
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("write estimate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeField(f *fpdf.Fpdf, tr func(string) string, label, value string) {
	f.SetFont(headerFont, "B", 11)
	f.CellFormat(35, lineHeight, label+":", "", 0, "L", false, 0, "")
	f.SetFont(headerFont, "", 11)
	f.CellFormat(0, lineHeight, tr(value), "", 1, "L", false, 0, "")
}

func writeTable(f *fpdf.Fpdf, tr func(string) string, rows []entities.DocumentRow) {
	f.SetFont(headerFont, "B", 11)
	f.SetFillColor(230, 230, 230)
	for i, h := range columnHeaders {
		f.CellFormat(columnWidths[i], lineHeight+1, h, "1", 0, "C", true, 0, "")
	}
	f.Ln(-1)

	f.SetFont(headerFont, "", 10)
	for _, row := range rows {
		cells := row.Cells()
		f.CellFormat(columnWidths[0], lineHeight, tr(cells[0]), "1", 0, "L", false, 0, "")
		f.CellFormat(columnWidths[1], lineHeight, cells[1], "1", 0, "R", false, 0, "")
		f.CellFormat(columnWidths[2], lineHeight, cells[2], "1", 0, "R", false, 0, "")
		f.CellFormat(columnWidths[3], lineHeight, cells[3], "1", 0, "R", false, 0, "")
		f.Ln(-1)
	}
}

func writeTotals(f *fpdf.Fpdf, doc entities.EstimateDocument) {
	labelWidth := columnWidths[0] + columnWidths[1] + columnWidths[2]
	line := func(label, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		f.SetFont(headerFont, style, 11)
		f.CellFormat(labelWidth, lineHeight, label, "", 0, "R", false, 0, "")
		f.CellFormat(columnWidths[3], lineHeight, amount, "", 1, "R", false, 0, "")
	}
	line("Subtotal:", entities.FormatCurrency(doc.Subtotal), false)
	line(fmt.Sprintf("Tax (%s%%):", entities.TaxRate.Shift(2).String()), entities.FormatCurrency(doc.Tax), false)
	line("Grand Total:", entities.FormatCurrency(doc.GrandTotal), true)
}

func writeSignature(f *fpdf.Fpdf) {
	f.Ln(14)
	f.SetFont(headerFont, "", 11)
	f.CellFormat(110, lineHeight, "Client Signature: ______________________________", "", 0, "L", false, 0, "")
	f.CellFormat(0, lineHeight, "Date: ______________", "", 1, "L", false, 0, "")
}

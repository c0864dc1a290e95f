// internal/render/pdf.go
package render

import (
	"io"

	gofpdf "github.com/go-pdf/fpdf"
	"github.com/mwiater/reportviz/internal/report"
	"github.com/mwiater/reportviz/internal/util"
)

const (
	pdfRowHeight    = 6.0
	pdfHeaderHeight = 7.0
	pdfFontSize     = 8.0
)

// WritePDF renders a landscape A4 document with one section per non-empty
// table. Columns share the page width evenly; long cells are truncated.
func WritePDF(w io.Writer, title string, bundle report.TableBundle) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if !bundle.HasTensorFeatures() && !bundle.HasChannelFeatures() {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(0, 5, tr(report.NoDataMessage), "", "L", false)
		return pdf.Output(w)
	}

	first := true
	addSection := func(heading string, t report.Table) {
		if !first {
			pdf.AddPage()
		}
		first = false
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(30, 41, 59)
		pdf.CellFormat(0, 8, tr(heading), "", 1, "L", false, 0, "")
		pdf.Ln(1)
		writePDFGrid(pdf, tr, t)
	}
	if bundle.HasTensorFeatures() {
		addSection(report.TensorHeading, bundle.Tensor())
	}
	if bundle.HasChannelFeatures() {
		addSection(report.ChannelHeading, bundle.Channel())
	}
	return pdf.Output(w)
}

func writePDFGrid(pdf *gofpdf.Fpdf, tr func(string) string, t report.Table) {
	cells := grid(t)
	numeric := numericColumns(t)
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(cells[0]))

	pdf.SetFont("Helvetica", "B", pdfFontSize)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range cells[0] {
		pdf.CellFormat(colW, pdfHeaderHeight, tr(fitPDFText(pdf, h, colW)), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", pdfFontSize)
	pdf.SetTextColor(60, 60, 60)
	for r, row := range cells[1:] {
		fill := r%2 == 1
		pdf.SetFillColor(241, 245, 249)
		for c, cell := range row {
			align := "L"
			if numeric[c] {
				align = "R"
			}
			pdf.CellFormat(colW, pdfRowHeight, tr(fitPDFText(pdf, cell, colW)), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fitPDFText shortens s until it fits inside a cell of width w.
func fitPDFText(pdf *gofpdf.Fpdf, s string, w float64) string {
	limit := w - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	for n := len([]rune(s)) - 1; n > 0; n-- {
		cut := util.TruncateRunes(s, n)
		if pdf.GetStringWidth(cut) <= limit {
			return cut
		}
	}
	return ""
}

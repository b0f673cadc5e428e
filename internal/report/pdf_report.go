package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Manalokosdev/Ribossome/internal/analysis"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and flow state for PDF generation.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 8)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 8)
		s.pdf.SetTextColor(50, 50, 50)
	}
	s.styles["tableCellRed"] = func() { // negative polarity rows
		s.pdf.SetFont("Arial", "B", 8)
		s.pdf.SetTextColor(200, 0, 0)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY()
	s.currentY++
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width float64, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// column widths as fractions of the content width, in Columns order.
var pdfColWidthsRel = []float64{0.14, 0.06, 0.06, 0.08, 0.06, 0.06, 0.08, 0.08, 0.07, 0.06, 0.25}

// BuildPDFReport writes the sensor power table as a PDF: a summary,
// the full sorted table, and the gain chart when one was rendered.
func BuildPDFReport(filepath string, records []analysis.SensorGainRecord, stats analysis.JoinStats, chartPNG []byte) error {
	SortRecords(records)

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph("Ribossome Sensor Power Table", "h1", "C")
	styler.addSpacer(5)
	styler.writeParagraph(fmt.Sprintf(
		"%d derived rows from %d organ table rows (%d promoter cells without a sensor match).",
		len(records), stats.RowsScanned, stats.ClassificationMisses), "normal", "L")
	styler.addSpacer(5)

	if len(records) == 0 {
		styler.writeParagraph("No sensor gain records to display.", "normal", "L")
		return pdf.OutputFileAndClose(filepath)
	}

	colWidthsAbs := make([]float64, len(pdfColWidthsRel))
	for i, rel := range pdfColWidthsRel {
		colWidthsAbs[i] = rel * pdfContentWidth
	}

	styler.writeParagraph("Derived Sensor Gains", "h2", "L")
	styler.checkAddPage(styler.lineHeight * 2)

	sY := styler.currentY
	sX := pdfMargin
	styler.applyStyle("tableHeader")
	for i, header := range Columns {
		styler.pdf.SetXY(sX, sY)
		styler.pdf.CellFormat(colWidthsAbs[i], styler.lineHeight, header, "1", 0, "C", true, 0, "")
		sX += colWidthsAbs[i]
	}
	sY += styler.lineHeight
	styler.currentY = sY

	for _, rec := range records {
		styler.checkAddPage(styler.lineHeight)
		sY = styler.currentY
		sX = pdfMargin

		cellStyle := "tableCell"
		if rec.Polarity < 0 {
			cellStyle = "tableCellRed"
		}
		for i, cellData := range recordFields(rec) {
			styler.pdf.SetXY(sX, sY)
			styler.applyStyle(cellStyle)
			align := "C"
			if i == len(Columns)-1 { // notes column
				align = "L"
			}
			styler.pdf.CellFormat(colWidthsAbs[i], styler.lineHeight, cellData, "1", 0, align, false, 0, "")
			sX += colWidthsAbs[i]
		}
		sY += styler.lineHeight
		styler.currentY = sY
	}
	styler.addSpacer(5)

	if len(chartPNG) > 0 {
		styler.pdf.AddPage()
		styler.currentY = styler.contentTopY
		styler.writeParagraph("Gain by Promoter/Modifier Pair", "h2", "L")

		imgWidth := pdfContentWidth * 0.9
		imgHeight := imgWidth * (4.0 / 8.0)
		styler.addImage(chartPNG, "gain_chart", imgWidth, imgHeight,
			"Absolute combined param1 gain per env-dye sensor row")
	}

	return pdf.OutputFileAndClose(filepath)
}

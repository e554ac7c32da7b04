package export

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/structcode/gosect/internal/composite"
)

// Report describes a one-page section-properties calculation report.
type Report struct {
	Title    string
	Section  string // section or profile name
	Material string // optional material description
	Notes    string
}

// WriteReportPDF renders the report with the property table to an A4 PDF.
func WriteReportPDF(path string, rep Report, props *composite.SectionProperties) error {
	if rep.Title == "" {
		rep.Title = "Cross-Section Properties"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, rep.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Section: %s", rep.Section))
	pdf.Ln(6)
	if rep.Material != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Material: %s", rep.Material))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 7, "Property", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Unit", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Value", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range propertyRows(props) {
		pdf.CellFormat(70, 7, row.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, asciiUnit(row.Unit), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("%.4g", row.Value), "1", 1, "R", false, 0, "")
	}

	if rep.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, rep.Notes, "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}

// asciiUnit rewrites superscript units for the PDF core fonts, which cover
// cp1252 only.
func asciiUnit(u string) string {
	switch u {
	case "mm²":
		return "mm^2"
	case "mm³":
		return "mm^3"
	case "mm⁴":
		return "mm^4"
	default:
		return u
	}
}

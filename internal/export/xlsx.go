// Package export writes section results to spreadsheet and PDF documents.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/structcode/gosect/internal/composite"
	"github.com/structcode/gosect/internal/profile"
)

// propertyRows lays out a SectionProperties record as label/unit/value rows.
func propertyRows(props *composite.SectionProperties) []struct {
	Label string
	Unit  string
	Value float64
} {
	return []struct {
		Label string
		Unit  string
		Value float64
	}{
		{"Area", "mm²", props.Area},
		{"Centroid x", "mm", props.CentroidX},
		{"Centroid y", "mm", props.CentroidY},
		{"Iyy", "mm⁴", props.Iyy},
		{"Izz", "mm⁴", props.Izz},
		{"Ixy", "mm⁴", props.Ixy},
		{"Wel,y top", "mm³", props.WelYTop},
		{"Wel,y bottom", "mm³", props.WelYBottom},
		{"Wel,z left", "mm³", props.WelZLeft},
		{"Wel,z right", "mm³", props.WelZRight},
		{"Wpl,y", "mm³", props.WplY},
		{"Wpl,z", "mm³", props.WplZ},
		{"Radius of gyration i,y", "mm", props.GyrationY},
		{"Radius of gyration i,z", "mm", props.GyrationZ},
		{"Width", "mm", props.Width},
		{"Height", "mm", props.Height},
	}
}

// WritePropertiesXLSX writes one section's properties to a spreadsheet.
func WritePropertiesXLSX(path, name string, props *composite.SectionProperties) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Properties"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Section")
	f.SetCellValue(sheet, "B1", name)
	f.SetCellValue(sheet, "A3", "Property")
	f.SetCellValue(sheet, "B3", "Unit")
	f.SetCellValue(sheet, "C3", "Value")

	for i, row := range propertyRows(props) {
		r := i + 4
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Value)
	}
	f.SetColWidth(sheet, "A", "A", 24)

	return f.SaveAs(path)
}

// WriteProfileTableXLSX writes a profile family's dimension table to a
// spreadsheet.
func WriteProfileTableXLSX(path string, family profile.Family, dims []profile.Dimensions) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := string(family)
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "h (mm)", "b (mm)", "tw (mm)", "tf (mm)", "r (mm)", "d (mm)", "t (mm)", "A (mm²)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, d := range dims {
		values := []any{d.Name, d.H, d.B, d.Tw, d.Tf, d.R, d.D, d.T, d.CatalogArea}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	f.SetColWidth(sheet, "A", "A", 16)

	return f.SaveAs(path)
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcode/gosect/internal/composite"
	"github.com/structcode/gosect/internal/diagram"
	"github.com/structcode/gosect/internal/export"
)

var (
	sectionPropsFile        string
	sectionPropsTransformed string
	sectionPropsDiagram     bool
	sectionPropsOutput      string
	sectionPropsXLSX        string
	sectionPropsReport      string
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Compute section properties of a JSON-defined section",
	Long: `Compute the geometric section properties of a composite section
defined in a JSON file. With --transformed, the properties are
modulus-weighted against the named part material (transformed-section
analysis for mixed steel/concrete sections).

Examples:
  gosect section props --file t-beam.json
  gosect section props -f rc-column.json --transformed C25/30`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionPropsFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPropsCmd.MarkFlagRequired("file")
	sectionPropsCmd.Flags().StringVar(&sectionPropsTransformed, "transformed", "", "Reference material name for modulus-weighted properties")
	sectionPropsCmd.Flags().BoolVar(&sectionPropsDiagram, "diagram", false, "Show ASCII section sketch")
	sectionPropsCmd.Flags().StringVarP(&sectionPropsOutput, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
	sectionPropsCmd.Flags().StringVar(&sectionPropsXLSX, "xlsx", "", "Export properties to a spreadsheet file")
	sectionPropsCmd.Flags().StringVar(&sectionPropsReport, "report", "", "Export a PDF calculation report")
}

func runSectionProps(cmd *cobra.Command, args []string) {
	def, err := composite.LoadFromFile(sectionPropsFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	cs, err := def.CrossSection()
	if err != nil {
		fmt.Printf("Error building section: %v\n", err)
		return
	}

	var props *composite.SectionProperties
	if sectionPropsTransformed != "" {
		ref, ok := findMaterial(def, sectionPropsTransformed)
		if !ok {
			fmt.Printf("Error: no part uses material %q\n", sectionPropsTransformed)
			return
		}
		props, err = cs.TransformedProperties(ref)
	} else {
		props, err = cs.Properties()
	}
	if err != nil {
		fmt.Printf("Error computing properties: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COMPOSITE SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if def.Name != "" {
		fmt.Printf("  Section: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	if sectionPropsTransformed != "" {
		fmt.Printf("  Transformed, reference material: %s\n", sectionPropsTransformed)
	}
	fmt.Println()

	fmt.Println("PARTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, p := range cs.Parts() {
		kind := "solid"
		if p.Polygon.SignedArea() < 0 {
			kind = "hole"
		}
		label := p.Label
		if label == "" {
			label = fmt.Sprintf("part %d", i+1)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d vertices\t%.0f mm²\n",
			label, kind, p.Material.Name, len(p.Polygon.Vertices), p.Polygon.SignedArea())
	}
	for i, r := range cs.Reinforcement() {
		label := r.Label
		if label == "" {
			label = fmt.Sprintf("rebar %d", i+1)
		}
		fmt.Fprintf(w, "  %s\trebar\t%s\tat (%g, %g)\t%.0f mm²\n", label, r.Material.Name, r.At.X, r.At.Y, r.Area)
	}
	w.Flush()
	fmt.Println()

	printProperties(props)

	if sectionPropsDiagram {
		fmt.Println(diagram.DrawASCIISection(cs, props))
	}
	if sectionPropsOutput != "" {
		if err := diagram.ExportSectionDiagram(cs, props, def.Name, sectionPropsOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("Diagram exported to %s\n", sectionPropsOutput)
	}
	if sectionPropsXLSX != "" {
		if err := export.WritePropertiesXLSX(sectionPropsXLSX, def.Name, props); err != nil {
			fmt.Printf("Error exporting spreadsheet: %v\n", err)
			return
		}
		fmt.Printf("Properties exported to %s\n", sectionPropsXLSX)
	}
	if sectionPropsReport != "" {
		rep := export.Report{Section: def.Name, Notes: def.Description}
		if sectionPropsTransformed != "" {
			rep.Material = fmt.Sprintf("transformed, reference %s", sectionPropsTransformed)
		}
		if err := export.WriteReportPDF(sectionPropsReport, rep, props); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
			return
		}
		fmt.Printf("Report exported to %s\n", sectionPropsReport)
	}
}

// findMaterial resolves a material by name among the definition's parts and
// rebar entries.
func findMaterial(def *composite.Definition, name string) (composite.Material, bool) {
	for _, p := range def.Parts {
		if p.Material.Name == name {
			return p.Material, true
		}
	}
	for _, r := range def.Rebar {
		if r.Material.Name == name {
			return r.Material, true
		}
	}
	return composite.Material{}, false
}

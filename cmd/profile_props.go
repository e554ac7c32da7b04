package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcode/gosect/internal/composite"
	"github.com/structcode/gosect/internal/corrosion"
	"github.com/structcode/gosect/internal/diagram"
	"github.com/structcode/gosect/internal/eurocode"
	"github.com/structcode/gosect/internal/export"
	"github.com/structcode/gosect/internal/profile"
)

var (
	profilePropsName      string
	profilePropsGrade     string
	profilePropsCorrosion float64
	profilePropsDiagram   bool
	profilePropsProfile   bool
	profilePropsOutput    string
	profilePropsXLSX      string
	profilePropsReport    string
)

var profilePropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Compute section properties of a named profile",
	Long: `Compute area, centroid, second moments of area, elastic and
plastic section moduli and radii of gyration of a standard profile.

A uniform corrosion loss (mm per exposed face) can be applied before
the calculation; the loss is subtracted from the profile dimensions
and the shape is regenerated.

Examples:
  gosect profile props --name HEA200
  gosect profile props --name CHS219.1x8 --corrosion 2
  gosect profile props --name IPE400 --grade S355 --diagram --output ipe400.png`,
	Run: runProfileProps,
}

func init() {
	profileCmd.AddCommand(profilePropsCmd)

	profilePropsCmd.Flags().StringVarP(&profilePropsName, "name", "n", "", "Profile name, e.g. HEA200 [required]")
	profilePropsCmd.MarkFlagRequired("name")
	profilePropsCmd.Flags().StringVarP(&profilePropsGrade, "grade", "g", "S235", "Steel grade (S235, S275, S355, S460)")
	profilePropsCmd.Flags().Float64VarP(&profilePropsCorrosion, "corrosion", "c", 0, "Corrosion loss per exposed face (mm)")
	profilePropsCmd.Flags().BoolVar(&profilePropsDiagram, "diagram", false, "Show ASCII section sketch")
	profilePropsCmd.Flags().BoolVar(&profilePropsProfile, "width-profile", false, "Show ASCII width-over-height chart")
	profilePropsCmd.Flags().StringVarP(&profilePropsOutput, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
	profilePropsCmd.Flags().StringVar(&profilePropsXLSX, "xlsx", "", "Export properties to a spreadsheet file")
	profilePropsCmd.Flags().StringVar(&profilePropsReport, "report", "", "Export a PDF calculation report")
}

func runProfileProps(cmd *cobra.Command, args []string) {
	dims, err := profile.Lookup(profilePropsName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	grade, err := steelGrade(profilePropsGrade)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if profilePropsCorrosion > 0 {
		dims, err = corrosion.ReduceProfile(dims, profilePropsCorrosion)
		if err != nil {
			fmt.Printf("Error applying corrosion: %v\n", err)
			return
		}
	}

	s, err := profile.Build(dims)
	if err != nil {
		fmt.Printf("Error generating shape: %v\n", err)
		return
	}

	thickness := dims.Tf
	if thickness == 0 {
		thickness = dims.T
	}
	mat := grade.Material(thickness)

	parts := make([]composite.Part, 0, 2)
	for i, poly := range s.Polygons() {
		label := dims.Name
		if i > 0 {
			label = fmt.Sprintf("%s void %d", dims.Name, i)
		}
		parts = append(parts, composite.Part{Label: label, Polygon: poly, Material: mat})
	}
	cs, err := composite.New(parts, nil)
	if err != nil {
		fmt.Printf("Error building section: %v\n", err)
		return
	}

	props, err := cs.Properties()
	if err != nil {
		fmt.Printf("Error computing properties: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     PROFILE PROPERTIES - %s\n", dims.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile:\t%s (%s)\n", dims.Name, dims.Family)
	fmt.Fprintf(w, "  Steel grade:\t%s (fy = %.0f MPa at t = %g mm)\n", grade.Name, grade.Fy(thickness), thickness)
	if profilePropsCorrosion > 0 {
		fmt.Fprintf(w, "  Corrosion loss:\t%g mm per face\n", profilePropsCorrosion)
	}
	w.Flush()
	fmt.Println()

	printProperties(props)

	if dims.CatalogArea > 0 {
		dev := (props.Area - dims.CatalogArea) / dims.CatalogArea * 100
		fmt.Printf("  Catalog area: %.0f mm² (computed deviates %+.2f%%)\n\n", dims.CatalogArea, dev)
	}

	if profilePropsDiagram {
		fmt.Println(diagram.DrawASCIISection(cs, props))
	}
	if profilePropsProfile {
		fmt.Println(diagram.WidthProfile(cs, props))
		fmt.Println()
	}
	if profilePropsOutput != "" {
		if err := diagram.ExportSectionDiagram(cs, props, dims.Name, profilePropsOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("Diagram exported to %s\n", profilePropsOutput)
	}
	if profilePropsXLSX != "" {
		if err := export.WritePropertiesXLSX(profilePropsXLSX, dims.Name, props); err != nil {
			fmt.Printf("Error exporting spreadsheet: %v\n", err)
			return
		}
		fmt.Printf("Properties exported to %s\n", profilePropsXLSX)
	}
	if profilePropsReport != "" {
		rep := export.Report{
			Section:  dims.Name,
			Material: fmt.Sprintf("%s (fy = %.0f MPa)", grade.Name, grade.Fy(thickness)),
		}
		if profilePropsCorrosion > 0 {
			rep.Notes = fmt.Sprintf("Corrosion loss of %g mm per exposed face applied before calculation.", profilePropsCorrosion)
		}
		if err := export.WriteReportPDF(profilePropsReport, rep, props); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
			return
		}
		fmt.Printf("Report exported to %s\n", profilePropsReport)
	}
}

// printProperties writes the shared properties table.
func printProperties(props *composite.SectionProperties) {
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.1f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.2f, %.2f) mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Iyy:\t%.4g mm⁴\n", props.Iyy)
	fmt.Fprintf(w, "  Izz:\t%.4g mm⁴\n", props.Izz)
	fmt.Fprintf(w, "  Ixy:\t%.4g mm⁴\n", props.Ixy)
	fmt.Fprintf(w, "  Wel,y (top/bottom):\t%.4g / %.4g mm³\n", props.WelYTop, props.WelYBottom)
	fmt.Fprintf(w, "  Wel,z (left/right):\t%.4g / %.4g mm³\n", props.WelZLeft, props.WelZRight)
	fmt.Fprintf(w, "  Wpl,y:\t%.4g mm³\n", props.WplY)
	fmt.Fprintf(w, "  Wpl,z:\t%.4g mm³\n", props.WplZ)
	fmt.Fprintf(w, "  i,y / i,z:\t%.2f / %.2f mm\n", props.GyrationY, props.GyrationZ)
	fmt.Fprintf(w, "  Bounding box:\t%.0f × %.0f mm\n", props.Width, props.Height)
	w.Flush()
	fmt.Println()
}

// steelGrade resolves a grade name against the Eurocode tables.
func steelGrade(name string) (eurocode.SteelGrade, error) {
	for _, g := range eurocode.SteelGrades {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return eurocode.SteelGrade{}, fmt.Errorf("unknown steel grade %q (use S235, S275, S355 or S460)", name)
}

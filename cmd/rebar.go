package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcode/gosect/internal/geometry"
	"github.com/structcode/gosect/internal/rebar"
)

var (
	rebarWidth    float64
	rebarHeight   float64
	rebarCover    float64
	rebarDiameter float64
	rebarCount    int
	rebarLayout   string
	rebarSpacing  float64
)

var rebarCmd = &cobra.Command{
	Use:   "rebar",
	Short: "Place reinforcement bars in a rectangular section",
	Long: `Compute reinforcement bar center coordinates inside a rectangular
concrete boundary, respecting the concrete cover and the minimum
clear bar spacing of EN 1992-1-1 Section 8.2.

Layouts:
  corners  - one bar in each corner
  bottom   - a uniformly spaced row along the bottom edge

Examples:
  gosect rebar --width 300 --height 500 --cover 35 --dia 20 --layout corners
  gosect rebar --width 300 --height 500 --cover 35 --dia 25 --layout bottom --count 4`,
	Run: runRebar,
}

func init() {
	rootCmd.AddCommand(rebarCmd)

	rebarCmd.Flags().Float64VarP(&rebarWidth, "width", "b", 0, "Boundary width (mm) [required]")
	rebarCmd.Flags().Float64VarP(&rebarHeight, "height", "H", 0, "Boundary height (mm) [required]")
	rebarCmd.Flags().Float64Var(&rebarCover, "cover", 30, "Concrete cover to the bar surface (mm)")
	rebarCmd.Flags().Float64Var(&rebarDiameter, "dia", 16, "Bar diameter (mm)")
	rebarCmd.Flags().IntVar(&rebarCount, "count", 2, "Bar count for the bottom layout")
	rebarCmd.Flags().StringVar(&rebarLayout, "layout", "bottom", "Layout policy: corners or bottom")
	rebarCmd.Flags().Float64Var(&rebarSpacing, "spacing", 0, "Minimum clear spacing override (mm)")
	rebarCmd.MarkFlagRequired("width")
	rebarCmd.MarkFlagRequired("height")
}

func runRebar(cmd *cobra.Command, args []string) {
	cfg := rebar.Config{
		Boundary:        rebar.Boundary{Width: rebarWidth, Height: rebarHeight},
		Diameter:        rebarDiameter,
		Cover:           rebarCover,
		MinClearSpacing: rebarSpacing,
	}

	var (
		pts []geometry.Point
		err error
	)
	switch rebarLayout {
	case "corners":
		pts, err = rebar.Corners(cfg)
	case "bottom":
		pts, err = rebar.BottomRow(cfg, rebarCount)
	default:
		fmt.Printf("Unknown layout %q (use corners or bottom)\n", rebarLayout)
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	area := rebar.BarArea(rebarDiameter)

	fmt.Println()
	fmt.Println("REBAR LAYOUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Boundary:\t%g × %g mm\n", rebarWidth, rebarHeight)
	fmt.Fprintf(w, "  Cover / Ø:\t%g / %g mm\n", rebarCover, rebarDiameter)
	fmt.Fprintf(w, "  Bars:\t%d × %.0f mm² = %.0f mm²\n", len(pts), area, float64(len(pts))*area)
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Bar\tx (mm)\ty (mm)")
	for i, p := range pts {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\n", i+1, p.X, p.Y)
	}
	w.Flush()
	fmt.Println()
}

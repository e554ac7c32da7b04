package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structcode/gosect/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gosect",
	Short: "Eurocode cross-section property tool",
	Long: `gosect - Cross-Section Properties for Eurocode Design

A CLI tool around a cross-section geometry engine for structural
engineering: standard rolled steel profiles, custom polygon sections,
reinforced-concrete sections and corrosion-reduced shapes.

The tool computes:
  - Area, centroid, second moments of area (Iyy, Izz, Ixy)
  - Elastic and plastic section moduli, radii of gyration
  - Modulus-weighted (transformed) properties for mixed materials
  - Reinforcement bar layouts under cover and spacing rules

Profile dimension tables follow EN 10365 / EN 10210, material data
follows EN 1993-1-1 and EN 1992-1-1.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosect v%-48s║\n", version.Version)
		fmt.Println("  ║   Cross-Section Properties for Eurocode Design            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Standard profile lookup (HEA, HEB, IPE, UPN, CHS, SHS, L)")
		fmt.Println("    • Custom composite sections from JSON definitions")
		fmt.Println("    • Corrosion-reduced steel shapes")
		fmt.Println("    • Elastic and plastic section moduli")
		fmt.Println("    • Rebar placement with cover and spacing checks")
		fmt.Println()
		fmt.Println("  Use 'gosect --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Custom composite sections defined in JSON files",
	Long: `Compute properties of composite cross-sections defined in JSON
files: arbitrary polygon parts with per-part materials, holes via
clockwise winding, and optional point reinforcement.

Subcommands:
  props  - Compute section properties of a defined section

Example JSON file structure:
{
  "name": "RC T-Beam",
  "parts": [
    {
      "label": "concrete",
      "material": {"name": "C25/30", "e": 31476, "fy": 25},
      "vertices": [
        {"x": 0, "y": 0},
        {"x": 300, "y": 0},
        {"x": 300, "y": 400},
        {"x": 600, "y": 400},
        {"x": 600, "y": 500},
        {"x": 0, "y": 500}
      ]
    }
  ],
  "rebar": [
    {"area": 314.16, "x": 65, "y": 65, "material": {"name": "B500", "e": 200000, "fy": 500}}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}

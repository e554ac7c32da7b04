package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcode/gosect/internal/export"
	"github.com/structcode/gosect/internal/profile"
)

var (
	profileListFamily string
	profileListXLSX   string
)

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profiles of a family",
	Long: `List the catalog dimension table of one profile family.

Examples:
  gosect profile list --family HEA
  gosect profile list --family SHS --xlsx shs.xlsx`,
	Run: runProfileList,
}

func init() {
	profileCmd.AddCommand(profileListCmd)

	profileListCmd.Flags().StringVarP(&profileListFamily, "family", "F", "", "Profile family (HEA, HEB, IPE, UPN, CHS, SHS, L) [required]")
	profileListCmd.MarkFlagRequired("family")
	profileListCmd.Flags().StringVar(&profileListXLSX, "xlsx", "", "Export the table to a spreadsheet file")
}

func runProfileList(cmd *cobra.Command, args []string) {
	family := profile.Family(profileListFamily)
	dims := profile.List(family)
	if len(dims) == 0 {
		fmt.Printf("Unknown or empty profile family %q. Families: %v\n", profileListFamily, profile.Families)
		return
	}

	fmt.Println()
	fmt.Printf("PROFILES %s:\n", family)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Name\th\tb\ttw\ttf\tr\td\tt\tA")
	fmt.Fprintln(w, "  \tmm\tmm\tmm\tmm\tmm\tmm\tmm\tmm²")
	for _, d := range dims {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.0f\n",
			d.Name, dim(d.H), dim(d.B), dim(d.Tw), dim(d.Tf), dim(d.R), dim(d.D), dim(d.T), d.CatalogArea)
	}
	w.Flush()
	fmt.Println()

	if profileListXLSX != "" {
		if err := export.WriteProfileTableXLSX(profileListXLSX, family, dims); err != nil {
			fmt.Printf("Error exporting table: %v\n", err)
			return
		}
		fmt.Printf("Table exported to %s\n", profileListXLSX)
	}
}

// dim formats an optional dimension, blank when unset for the family.
func dim(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%g", v)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Standard rolled steel profiles",
	Long: `Look up standard rolled profiles (HEA, HEB, IPE, UPN, CHS, SHS, L)
and compute their section properties, optionally with a uniform
corrosion loss applied to the exposed faces.

Subcommands:
  list   - List the profiles of a family
  props  - Compute section properties of a named profile

Examples:
  gosect profile list --family IPE
  gosect profile props --name HEA200
  gosect profile props --name IPE300 --grade S235 --corrosion 1.5`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

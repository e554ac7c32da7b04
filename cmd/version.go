package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structcode/gosect/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosect",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosect v%s\n", version.Version)
		fmt.Println("Cross-Section Properties for Eurocode Design")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

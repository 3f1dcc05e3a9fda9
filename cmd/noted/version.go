package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of noted",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "noted version %s\n", strings.TrimSpace(noted.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

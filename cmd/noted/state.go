package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print internal state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		report := map[string]any{
			svc.ComponentType(): svc.State(),
		}
		if comp, ok := svc.Repository().(introspection.Component); ok {
			if intro, ok := svc.Repository().(introspection.Introspectable); ok {
				report[comp.ComponentType()] = intro.State()
			}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}

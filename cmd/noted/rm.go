package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted/internal/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm <title>",
	Aliases: []string{"delete"},
	Short:   "Remove a note",
	Long:    `Delete a note permanently.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		out := cmd.OutOrStdout()

		svc, err := openService()
		if err != nil {
			return err
		}

		if !rmForce {
			fmt.Fprintf(out, "Delete note %q? [y/N] ", title)
			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if err := svc.DeleteNote(cmd.Context(), title); err != nil {
			fmt.Fprintln(out, ui.FormatError(err))
			return errReported
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted note %q", strings.TrimSpace(title))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Skip confirmation")
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted/internal/editor"
	"github.com/aretw0/noted/internal/ui"
	"github.com/aretw0/noted/pkg/core"
)

var editCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Edit a note in the external editor",
	Long: `Open the note's file in the configured editor (noted.yaml "editor",
then $VISUAL, then $EDITOR). The store itself never rewrites a note.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		svc, err := openService()
		if err != nil {
			return err
		}

		note, err := svc.GetNote(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintln(out, ui.FormatError(err))
			return errReported
		}

		locator, ok := svc.Repository().(core.Locator)
		if !ok {
			return errors.New("repository does not expose note files")
		}

		ed := editor.New(editor.Resolve(appConfig.Editor))
		ed.Stdin = cmd.InOrStdin()
		ed.Stdout = out
		ed.Stderr = cmd.ErrOrStderr()
		if err := ed.Open(cmd.Context(), locator.PathOf(note.Title)); err != nil {
			return err
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Edited note %q", note.Title)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

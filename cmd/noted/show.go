package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted/internal/ui"
	"github.com/aretw0/noted/pkg/core"
)

var (
	showRaw      bool
	showMarkdown bool
)

var showCmd = &cobra.Command{
	Use:     "show <title>",
	Aliases: []string{"read"},
	Short:   "Show a note",
	Long: `Display a note's contents. Use --raw for the exact stored text, or
--markdown to render it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		out := cmd.OutOrStdout()

		svc, err := openService()
		if err != nil {
			return err
		}

		text := svc.Read(cmd.Context(), title)
		if text == core.ReadErrorText {
			fmt.Fprintln(out, ui.FormatReadResult(text))
			return errReported
		}

		switch {
		case showRaw:
			fmt.Fprint(out, text)
		case showMarkdown:
			rendered, _ := ui.FormatMarkdown(text)
			fmt.Fprint(out, ui.FormatNoteHeader(title))
			fmt.Fprint(out, rendered)
		default:
			fmt.Fprint(out, ui.FormatNoteHeader(title))
			fmt.Fprintln(out, ui.FormatReadResult(text))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the exact stored contents")
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Render contents as markdown")
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted/internal/editor"
	"github.com/aretw0/noted/internal/ui"
)

var (
	addContent string
	addFile    string
	addForce   bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new note",
	Long: `Create a new note with the given title. Content can be provided via
--content, --file, or the configured editor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		out := cmd.OutOrStdout()

		svc, err := openService()
		if err != nil {
			return err
		}

		if !addForce && svc.MaxNotes() > 0 && len(svc.Titles(cmd.Context())) >= svc.MaxNotes() {
			fmt.Fprintln(out, ui.Error(fmt.Sprintf("Can't add more notes (limit %d). Remove one first or use --force.", svc.MaxNotes())))
			return errReported
		}

		var content string
		switch {
		case addContent != "":
			content = addContent
		case addFile != "":
			data, err := os.ReadFile(addFile) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		default:
			content, err = editor.New(editor.Resolve(appConfig.Editor)).Compose(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		note, err := svc.CreateNote(cmd.Context(), title, content)
		if err != nil {
			fmt.Fprintln(out, ui.FormatError(err))
			return errReported
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Created note %q", strings.TrimSpace(note.Title))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content (inline)")
	addCmd.Flags().StringVar(&addFile, "file", "", "Read content from file")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "Add even when the note limit is reached")
}

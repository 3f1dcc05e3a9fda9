package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted/internal/ui"
	"github.com/aretw0/noted/pkg/adapters/lifecycle"
	"github.com/aretw0/noted/pkg/core"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream note changes",
	Long: `Print a line whenever a note file is created, modified or deleted,
including changes made by other programs. Stops on interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := openService()
		if err != nil {
			return err
		}

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			return err
		}

		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Warning(fmt.Sprintf("Watching %s (Ctrl+C to stop)", notesRoot())))
		for e := range src.Events() {
			if ne, ok := e.(core.Event); ok {
				fmt.Fprint(out, ui.FormatEvent(ne))
				continue
			}
			fmt.Fprintln(out, e.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "", "Glob of note file names to watch (default \"*.txt\")")
}

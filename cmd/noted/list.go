package main

import (
	"encoding/json"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/noted"
	"github.com/aretw0/noted/internal/ui"
)

var (
	listJSON  bool
	listAll   bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	Long: `List note titles in name order. At most five notes are listed unless
--all is given (or max_notes is changed in noted.yaml).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listMatch != "" && !doublestar.ValidatePattern(listMatch) {
			return fmt.Errorf("invalid --match pattern: %q", listMatch)
		}

		// The cap is applied here so the hint only shows when notes were hidden.
		svc, err := openService(noted.WithMaxNotes(-1))
		if err != nil {
			return err
		}

		titles := svc.Titles(cmd.Context())

		if listMatch != "" {
			titles = filterTitles(titles, listMatch)
		}

		limit := appConfig.MaxNotes
		if limit == 0 {
			limit = noted.MaxNotes
		}
		capped := false
		if !listAll && limit > 0 && len(titles) > limit {
			titles = titles[:limit]
			capped = true
		}

		if listJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(titles)
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTitleList(titles, capped))
		return nil
	},
}

func filterTitles(titles []string, pattern string) []string {
	filtered := make([]string, 0, len(titles))
	for _, title := range titles {
		if ok, _ := doublestar.Match(pattern, title); ok {
			filtered = append(filtered, title)
		}
	}
	return filtered
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "List every note, ignoring the cap")
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "Only list titles matching a glob (e.g. 'work-*')")
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted"
	"github.com/aretw0/noted/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create noted.yaml and the notes directory here",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		path := filepath.Join(cwd, noted.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		cfg := noted.DefaultConfig()
		if rootPath != "" {
			cfg.Root = rootPath
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		appConfig, err = noted.LoadConfig(path)
		if err != nil {
			return err
		}
		if _, err := noted.Init(appConfig.RootPath(), noted.WithLogger(slog.Default())); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Initialized notes in "+appConfig.RootPath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted"
	"github.com/aretw0/noted/pkg/core"
)

var (
	verbose    bool
	rootPath   string
	configPath string

	// appConfig is loaded once per invocation in PersistentPreRunE.
	appConfig noted.Config
)

// errReported signals a failure that was already printed for the user.
var errReported = errors.New("reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noted",
	Short: "Keep short text notes as plain files",
	Long: `noted stores each note as "<title>.txt" inside a notes directory.
Titles are unique; the directory itself is the database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Notes directory (default: from noted.yaml, else ./notes)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to noted.yaml (default: searched upwards from the working directory)")
}

// loadConfig reads --config, or the nearest noted.yaml above the working directory.
func loadConfig() (noted.Config, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return noted.Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		if dir, err := noted.FindRoot(wd); err == nil {
			path = filepath.Join(dir, noted.ConfigFileName)
		}
	}
	if path == "" {
		return noted.DefaultConfig(), nil
	}
	return noted.LoadConfig(path)
}

// notesRoot resolves the notes directory: --root wins over the config file.
func notesRoot() string {
	if rootPath != "" {
		return rootPath
	}
	return appConfig.RootPath()
}

// openService builds the note service for this invocation.
func openService(extra ...noted.Option) (*core.Service, error) {
	opts := append(appConfig.Options(), noted.WithLogger(slog.Default()))
	opts = append(opts, extra...)
	svc, err := noted.New(notesRoot(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes in %s: %w", notesRoot(), err)
	}
	return svc, nil
}

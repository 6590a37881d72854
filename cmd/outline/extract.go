package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/score"
)

func extractCmd() *cobra.Command {
	var out string
	var configPath string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract the outline of a single document to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScoreConfig(configPath)
			if err != nil {
				return err
			}

			path := args[0]
			if out == "" {
				out = outputName(path, ".")
			}

			outline, err := outliner.Open(path).
				WithScoreConfig(cfg).
				WithLogger(slog.Default()).
				Outline()
			if err != nil {
				return err
			}

			if err := writeJSON(out, outline); err != nil {
				return err
			}

			slog.Info("outline extracted",
				"file", path,
				"headings", len(outline.Headings),
				"languages", outline.Metadata.DetectedLanguages,
				"output", out)
			if outline.Metadata.Error != "" {
				slog.Warn("document could not be processed", "error", outline.Metadata.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output JSON file (default <name>_outline.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with scoring weight overrides")
	return cmd
}

// loadScoreConfig returns the default weights, or the file's overrides when
// a path is given.
func loadScoreConfig(path string) (score.Config, error) {
	if path == "" {
		return score.DefaultConfig(), nil
	}
	return score.LoadConfig(path)
}

// outputName derives the per-document report name: <base>_outline.json in
// the given directory.
func outputName(input, dir string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"_outline.json")
}

// writeJSON writes v as indented JSON.
func writeJSON(path string, v any) error {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// isSupported reports whether a filename looks like a document the engine
// can read.
func isSupported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".html", ".htm":
		return true
	}
	return false
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/lang"
	"github.com/tsawler/outliner/model"
)

// batchSummary is the top-level report written after a directory run.
type batchSummary struct {
	Timestamp         string                   `json:"timestamp"`
	Success           bool                     `json:"success"`
	OverallTime       float64                  `json:"overall_processing_time"`
	TotalDocuments    int                      `json:"total_documents"`
	TotalHeadings     int                      `json:"total_headings"`
	FailedDocuments   int                      `json:"failed_documents"`
	DetectedLanguages []lang.Code              `json:"detected_languages"`
	Results           map[string]model.Outline `json:"individual_results"`
}

func batchCmd() *cobra.Command {
	var inputDir string
	var outputDir string
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract outlines for every supported document in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScoreConfig(configPath)
			if err != nil {
				return err
			}

			entries, err := os.ReadDir(inputDir)
			if err != nil {
				return fmt.Errorf("reading input directory: %w", err)
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			var files []string
			for _, entry := range entries {
				if !entry.IsDir() && isSupported(entry.Name()) {
					files = append(files, entry.Name())
				}
			}
			if len(files) == 0 {
				return fmt.Errorf("no supported documents in %s", inputDir)
			}
			slog.Info("starting batch", "documents", len(files), "input", inputDir)

			start := time.Now()
			summary := batchSummary{
				Timestamp: start.Format("2006-01-02 15:04:05"),
				Success:   true,
				Results:   make(map[string]model.Outline, len(files)),
			}
			seenLangs := make(map[lang.Code]bool)

			// One bad document must not stop the batch: extraction
			// failures come back as degenerate outlines, not errors.
			for _, name := range files {
				path := filepath.Join(inputDir, name)
				outline, err := outliner.Open(path).
					WithScoreConfig(cfg).
					WithLogger(slog.Default()).
					Outline()
				if err != nil {
					return err
				}

				if err := writeJSON(outputName(name, outputDir), outline); err != nil {
					return err
				}

				summary.Results[name] = outline
				summary.TotalHeadings += len(outline.Headings)
				if outline.Metadata.Error != "" {
					summary.FailedDocuments++
					slog.Warn("document failed", "file", name, "error", outline.Metadata.Error)
				} else {
					slog.Info("document processed", "file", name,
						"headings", len(outline.Headings),
						"languages", outline.Metadata.DetectedLanguages)
				}
				for _, code := range outline.Metadata.DetectedLanguages {
					if !seenLangs[code] {
						seenLangs[code] = true
						summary.DetectedLanguages = append(summary.DetectedLanguages, code)
					}
				}
			}

			summary.TotalDocuments = len(files)
			summary.OverallTime = time.Since(start).Seconds()

			combined := filepath.Join(outputDir, "outline_results.json")
			if err := writeJSON(combined, summary.Results); err != nil {
				return err
			}
			summaryFile := filepath.Join(outputDir, "extraction_summary.json")
			if err := writeJSON(summaryFile, summary); err != nil {
				return err
			}

			slog.Info("batch complete",
				"documents", summary.TotalDocuments,
				"headings", summary.TotalHeadings,
				"failed", summary.FailedDocuments,
				"duration", time.Since(start).Round(time.Millisecond),
				"summary", summaryFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "input", "directory containing documents")
	cmd.Flags().StringVar(&outputDir, "output-dir", "output", "directory for JSON reports")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with scoring weight overrides")
	return cmd
}

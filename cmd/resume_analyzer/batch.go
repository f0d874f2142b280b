package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every resume text file in a directory",
	Long:  "Analyze all .txt files in a directory concurrently, writing one result JSON per resume into the output directory.",
	RunE:  runBatch,
}

var (
	batchInputDir    string
	batchOutputDir   string
	batchConfigFile  string
	batchTopK        int
	batchConcurrency int
	batchPretty      bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "in-dir", "i", "", "Directory containing resume .txt files (required)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out-dir", "o", "", "Directory for result JSON files (required)")
	batchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "Path to engine config YAML")
	batchCmd.Flags().IntVar(&batchTopK, "top-k", 0, "Number of roles to recommend (overrides config)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum resumes analyzed in parallel")
	batchCmd.Flags().BoolVar(&batchPretty, "pretty", false, "Indent the JSON output")
	_ = batchCmd.MarkFlagRequired("in-dir")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(batchConfigFile, batchTopK)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	entries, err := os.ReadDir(batchInputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		inputs = append(inputs, entry.Name())
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .txt files found in %s", batchInputDir)
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(batchConcurrency)

	for _, name := range inputs {
		name := name
		group.Go(func() error {
			text, err := os.ReadFile(filepath.Join(batchInputDir, name))
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}

			result, err := eng.Analyze(ctx, string(text))
			if err != nil {
				return fmt.Errorf("analysis of %s failed: %w", name, err)
			}

			outName := strings.TrimSuffix(name, ".txt") + ".json"
			if err := writeResult(result, filepath.Join(batchOutputDir, outName), batchPretty); err != nil {
				return fmt.Errorf("failed to write result for %s: %w", name, err)
			}

			logger.Info().Str("input", name).Str("output", outName).Msg("resume analyzed")
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analyzed %d resumes into %s\n", len(inputs), batchOutputDir)
	return nil
}

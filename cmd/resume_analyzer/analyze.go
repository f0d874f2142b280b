package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single plain-text resume",
	Long:  "Analyze a plain-text resume file: extract skills, experience and education, score proficiency, and print ranked role recommendations as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeConfigFile string
	analyzeTopK       int
	analyzePretty     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to engine config YAML (default: built-in defaults)")
	analyzeCmd.Flags().IntVar(&analyzeTopK, "top-k", 0, "Number of roles to recommend (overrides config)")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent the JSON output")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(analyzeConfigFile, analyzeTopK)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	text, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	result, err := eng.Analyze(context.Background(), string(text))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return writeResult(result, analyzeOutputFile, analyzePretty)
}

// loadEngineConfig merges the optional config file over defaults and applies
// CLI overrides on top. A config file's logging section reconfigures the
// logger set up from the persistent flags.
func loadEngineConfig(path string, topK int) (*config.Config, error) {
	merged := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		merged = loaded.MergeWithDefaults(config.DefaultConfig())
		if loaded.Logging.Level != "" || loaded.Logging.Format != "" {
			logger.Init(merged.Logging)
		}
	}
	if topK > 0 {
		merged.TopK = topK
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func writeResult(result any, outputPath string, pretty bool) error {
	var (
		jsonBytes []byte
		err       error
	)
	if pretty {
		jsonBytes, err = json.MarshalIndent(result, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outputPath == "" {
		_, err = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return err
	}
	if err := os.WriteFile(outputPath, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

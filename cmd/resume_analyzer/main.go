// Package main provides the entry point for the resume analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume parsing and role recommendation engine",
	Long:  "Resume Analyzer extracts skills, experience and education from plain-text resumes, scores proficiency against a fixed skill taxonomy, and recommends job roles using a pretrained classifier.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Init(logger.Config{Level: logLevel, Format: logFormat})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log format (json, pretty)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate the engine configuration artifacts",
	Long:  "Validate the taxonomy, roles and model artifacts against their JSON Schemas, then verify they are mutually consistent by performing a full engine startup.",
	RunE:  runValidateConfig,
}

var validateConfigFile string

func init() {
	validateConfigCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Path to engine config YAML")

	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(validateConfigFile, 0)
	if err != nil {
		return err
	}

	artifacts := []struct {
		name, schema, document string
	}{
		{"taxonomy", "schemas/taxonomy.schema.json", cfg.TaxonomyPath},
		{"roles", "schemas/roles.schema.json", cfg.RolesPath},
		{"model", "schemas/model.schema.json", cfg.ModelPath},
	}

	failed := false
	for _, artifact := range artifacts {
		schemaPath := schemas.ResolvePath(artifact.schema)
		if schemaPath == "" {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping %s schema check\n", artifact.schema, artifact.name)
			continue
		}

		if err := schemas.ValidateFile(schemaPath, artifact.document); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				failed = true
				_, _ = fmt.Fprintf(os.Stderr, "%s: %v", artifact.name, err)
				continue
			}
			return fmt.Errorf("could not validate %s: %w", artifact.name, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s: ok (%s)\n", artifact.name, artifact.document)
	}
	if failed {
		return fmt.Errorf("configuration artifacts failed schema validation")
	}

	// Cross-artifact checks: model features vs taxonomy, classes vs roles.
	if _, err := engine.New(cfg); err != nil {
		return fmt.Errorf("configuration is not mutually consistent: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Configuration is valid\n")
	return nil
}

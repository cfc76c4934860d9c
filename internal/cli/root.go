// Package cli wires the docstract command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstract/config"
	"github.com/custodia-labs/docstract/internal/logger"

	// Built-in capabilities register themselves on import.
	_ "github.com/custodia-labs/docstract/extractors/docx"
	_ "github.com/custodia-labs/docstract/extractors/eml"
	_ "github.com/custodia-labs/docstract/extractors/html"
	_ "github.com/custodia-labs/docstract/extractors/pdf"
	_ "github.com/custodia-labs/docstract/extractors/plaintext"
	_ "github.com/custodia-labs/docstract/ocr/tesseract"
	_ "github.com/custodia-labs/docstract/postprocessors/chunker"
	_ "github.com/custodia-labs/docstract/validators/quality"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "docstract",
	Short: "Extract structured content from documents",
	Long: `docstract extracts structured text content from heterogeneous file
types (plain text, HTML, PDF and more) through a pluggable pipeline of
extractors, validators and post-processors.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a docstract.toml (overrides discovery)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration: an explicit --config
// path is loaded strictly, otherwise the working directory is searched
// upward, falling back to defaults.
func loadConfig() (*config.ExtractionConfig, error) {
	if configFlag != "" {
		cfg, err := config.FromFile(configFlag)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded configuration from %s", configFlag)
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Discover(cwd)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		logger.Debug("no configuration file found, using defaults")
		return config.Default(), nil
	}
	return cfg, nil
}

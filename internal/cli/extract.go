package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstract/internal/core/services"
	"github.com/custodia-labs/docstract/internal/logger"
	"github.com/custodia-labs/docstract/internal/storage/sqlite"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract content from a file",
	Long: `Run the extraction pipeline over a file: detect its type, dispatch
to the matching extractor, validate the result and apply the configured
post-processors.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the full document as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []services.ExtractionOption{}
	if cfg.Cache.Enabled {
		cache, err := sqlite.NewCache(cfg.Cache.Directory)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer cache.Close()
		logger.Debug("result cache at %s", cache.Path())
		opts = append(opts, services.WithCache(cache))
	}

	svc := services.NewExtractionService(cfg, opts...)

	doc, err := svc.ExtractFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", args[0], err)
	}

	if extractJSON {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	if doc.Title != "" {
		cmd.Printf("Title: %s\n", doc.Title)
	}
	cmd.Printf("Type: %s\n", doc.MIMEType)
	if len(doc.Chunks) > 0 {
		cmd.Printf("Chunks: %d\n", len(doc.Chunks))
	}
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstract/mimetype"
)

var mimeCmd = &cobra.Command{
	Use:   "mime [file]",
	Short: "Detect the MIME type of a file",
	Long:  `Detect a file's MIME type from its magic bytes, with extension fallback.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMime,
}

func init() {
	rootCmd.AddCommand(mimeCmd)
}

func runMime(cmd *cobra.Command, args []string) error {
	detected, err := mimetype.DetectMIMETypeFromPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to detect type: %w", err)
	}

	cmd.Println(detected)

	if exts := mimetype.ExtensionsForMIME(detected); len(exts) > 0 {
		cmd.Printf("Extensions: %s\n", strings.Join(exts, ", "))
	}
	return nil
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstract"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List registered capabilities",
	Long:  `List the extractors, OCR backends, validators and post-processors currently registered.`,
	Run:   runPlugins,
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
}

func runPlugins(cmd *cobra.Command, _ []string) {
	printKind(cmd, "Document extractors", docstract.ListDocumentExtractors())
	printKind(cmd, "OCR backends", docstract.ListOCRBackends())
	printKind(cmd, "Validators", docstract.ListValidators())
	printKind(cmd, "Post-processors", docstract.ListPostProcessors())
}

func printKind(cmd *cobra.Command, label string, names []string) {
	if len(names) == 0 {
		cmd.Printf("%s: (none)\n", label)
		return
	}
	cmd.Printf("%s: %s\n", label, strings.Join(names, ", "))
}

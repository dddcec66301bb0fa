package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iksnae/power-annotate/internal"
	"github.com/iksnae/power-annotate/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export annotations to a file",
	Long: `Export every annotation stored for the annotator, sorted by case id,
in one of: jsonl, csv, json, yaml, md.

The default output name is annotations_<annotator>.<ext> in the current
directory; use --out to override it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Create exporter
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		name := resolveAnnotator()
		byCase, err := st.List(name)
		if err != nil {
			return err
		}
		records := export.Records(byCase)

		outPath := exportOut
		if outPath == "" {
			outPath = fmt.Sprintf("annotations_%s.%s", internal.SanitizeAnnotator(name), exporter.Extension())
		}

		file, err := os.Create(outPath)
		if err != nil {
			return &internal.ExportError{Format: exportFormat, Path: outPath, Err: err}
		}

		if err := exporter.Export(records, file); err != nil {
			_ = file.Close()
			return &internal.ExportError{Format: exportFormat, Path: outPath, Err: err}
		}

		if err := file.Close(); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: outPath, Err: err}
		}

		internal.PrintSuccess(fmt.Sprintf("Exported %d annotation(s) to %s", len(records), outPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "jsonl", "Export format (jsonl, csv, md, yaml, json)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
}

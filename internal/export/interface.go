package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/iksnae/power-annotate/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(records []*internal.AnnotationRecord, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: jsonl, csv, md, yaml, json)", format)
	}
}

// Records flattens a store listing into a slice sorted by case id, giving
// exports a stable order independent of map iteration
func Records(byCase map[string]*internal.AnnotationRecord) []*internal.AnnotationRecord {
	records := make([]*internal.AnnotationRecord, 0, len(byCase))
	for _, r := range byCase {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CaseID < records[j].CaseID
	})
	return records
}

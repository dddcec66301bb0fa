package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/power-annotate/internal"
)

// MarkdownExporter exports annotations in Markdown format
type MarkdownExporter struct{}

// Export exports annotation records to Markdown format
func (e *MarkdownExporter) Export(records []*internal.AnnotationRecord, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# Annotations\n\n")
	_, _ = fmt.Fprintf(w, "**Records:** %d\n\n", len(records))

	if len(records) > 0 {
		_, _ = fmt.Fprintf(w, "**Annotator:** %s\n\n", records[0].Annotator)
	}

	_, _ = fmt.Fprintf(w, "| Case | Relationship | Winner | Power Sources | Annotated At |\n")
	_, _ = fmt.Fprintf(w, "|------|--------------|--------|---------------|--------------|\n")

	for _, rec := range records {
		_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			rec.CaseID,
			stringOrEmpty(rec.MetaSnapshot.RelationshipType),
			rec.Winner,
			strings.Join(rec.PowerSources, ", "),
			rec.Timestamp,
		)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

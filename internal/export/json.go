package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/power-annotate/internal"
)

// JSONExporter exports annotations in JSON format (pretty-printed array)
type JSONExporter struct{}

// Export exports annotation records to JSON format
func (e *JSONExporter) Export(records []*internal.AnnotationRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

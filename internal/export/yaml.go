package export

import (
	"io"

	"github.com/iksnae/power-annotate/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports annotations in YAML format
type YAMLExporter struct{}

// Export exports annotation records to YAML format
func (e *YAMLExporter) Export(records []*internal.AnnotationRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(records)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

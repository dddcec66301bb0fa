package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/power-annotate/internal"
)

// csvHeader lists the flattened columns. Nested snapshot fields use dotted
// keys; power sources join into one cell
var csvHeader = []string{
	"case_id",
	"annotator",
	"timestamp",
	"winner",
	"power_sources",
	"meta_snapshot.relationship_type",
	"meta_snapshot.role1",
	"meta_snapshot.role2",
	"meta_snapshot.name1",
	"meta_snapshot.name2",
}

// CSVExporter exports annotations as a flat table, one row per record
type CSVExporter struct{}

// Export exports annotation records to CSV format
func (e *CSVExporter) Export(records []*internal.AnnotationRecord, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.CaseID,
			rec.Annotator,
			rec.Timestamp,
			rec.Winner,
			strings.Join(rec.PowerSources, ";"),
			stringOrEmpty(rec.MetaSnapshot.RelationshipType),
			stringOrEmpty(rec.MetaSnapshot.Role1),
			stringOrEmpty(rec.MetaSnapshot.Role2),
			rec.MetaSnapshot.Name1,
			rec.MetaSnapshot.Name2,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.CaseID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}

// stringOrEmpty flattens a nullable snapshot field into a cell value
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

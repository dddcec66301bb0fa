package internal

import (
	"fmt"
	"strconv"
	"time"
)

// PowerSourceTags is the closed vocabulary of power-source tags an
// annotation may carry. The store never validates tags against this list;
// the annotate command does
var PowerSourceTags = []string{
	"ROLE",
	"RESOURCE",
	"GATEKEEP",
	"STATUS",
	"INFO/EXPERTISE",
	"TIME/URGENCY",
	"NORM/REPUTATION",
	"EMOTIONAL LEVERAGE",
	"COERCION",
	"COALITION",
}

// WinnerTie is the winner value used when neither participant holds power
const WinnerTie = "Tie"

// IsPowerSourceTag checks if tag belongs to the closed vocabulary
func IsPowerSourceTag(tag string) bool {
	for _, t := range PowerSourceTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Turn represents a single utterance in a conversation script
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Conversation represents the normalized conversation payload of a case.
// Script is always non-nil after normalization, even when the source
// payload was missing or malformed
type Conversation struct {
	Script []Turn `json:"script"`
}

// Scenario identifies the scenario a case was generated from. The id may
// be a string or a number in source data, so it is kept loosely typed
type Scenario struct {
	ID interface{} `json:"id,omitempty"`
}

// Key returns the scenario id as text for identity derivation, or "" when
// the id is absent or of an unusable type
func (s *Scenario) Key() string {
	if s == nil {
		return ""
	}
	switch v := s.ID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// CaseMeta holds the descriptive fields of a case, read-only after load
type CaseMeta struct {
	RelationshipType string    `json:"relationship_type,omitempty"`
	Name1            string    `json:"name1,omitempty"`
	Name2            string    `json:"name2,omitempty"`
	Role1            string    `json:"role1,omitempty"`
	Role2            string    `json:"role2,omitempty"`
	Scenario         *Scenario `json:"scenario,omitempty"`
}

// DisplayNames returns the participant names, substituting "Speaker 1" and
// "Speaker 2" when the source metadata left them empty. Identity
// derivation uses the raw values, not these defaults
func (m CaseMeta) DisplayNames() (string, string) {
	n1, n2 := m.Name1, m.Name2
	if n1 == "" {
		n1 = "Speaker 1"
	}
	if n2 == "" {
		n2 = "Speaker 2"
	}
	return n1, n2
}

// Relationship returns the relationship type, or "Unknown" when unset
func (m CaseMeta) Relationship() string {
	if m.RelationshipType == "" {
		return "Unknown"
	}
	return m.RelationshipType
}

// Case represents one conversation instance to be labeled. Cases are
// constructed once at load time and immutable thereafter
type Case struct {
	ID   string       `json:"id"`
	Meta CaseMeta     `json:"meta"`
	Raw  Conversation `json:"raw"`
}

// WinnerOptions returns the winner choices for this case: a tie or either
// participant, by display name
func (c *Case) WinnerOptions() []string {
	n1, n2 := c.Meta.DisplayNames()
	return []string{WinnerTie, n1, n2}
}

// Label renders the listing label for a case at the given source position
func (c *Case) Label(position int, annotated bool) string {
	mark := "⬜"
	if annotated {
		mark = "✅"
	}
	return fmt.Sprintf("%s [%05d] %s (%s)", mark, position, c.ID, c.Meta.Relationship())
}

// MetaSnapshot is the case metadata frozen into an annotation record at
// write time. Nullable fields serialize as JSON null when the case meta
// lacked them
type MetaSnapshot struct {
	RelationshipType *string `json:"relationship_type" yaml:"relationship_type"`
	Role1            *string `json:"role1" yaml:"role1"`
	Role2            *string `json:"role2" yaml:"role2"`
	Name1            string  `json:"name1" yaml:"name1"`
	Name2            string  `json:"name2" yaml:"name2"`
}

// AnnotationRecord represents one reviewer's judgment on one case. For a
// given (annotator, case id) pair at most one record exists in a store
type AnnotationRecord struct {
	CaseID       string       `json:"case_id" yaml:"case_id"`
	Annotator    string       `json:"annotator" yaml:"annotator"`
	Timestamp    string       `json:"timestamp" yaml:"timestamp"`
	Winner       string       `json:"winner" yaml:"winner"`
	PowerSources []string     `json:"power_sources" yaml:"power_sources"`
	MetaSnapshot MetaSnapshot `json:"meta_snapshot" yaml:"meta_snapshot"`
}

// NewAnnotationRecord builds a record for a case with the reviewer's
// judgment, freezing the case metadata and stamping the current UTC time.
// The tags slice is copied so later caller mutations cannot leak into the
// record
func NewAnnotationRecord(c *Case, annotator, winner string, tags []string) *AnnotationRecord {
	n1, n2 := c.Meta.DisplayNames()
	sources := make([]string, len(tags))
	copy(sources, tags)

	return &AnnotationRecord{
		CaseID:       c.ID,
		Annotator:    annotator,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Winner:       winner,
		PowerSources: sources,
		MetaSnapshot: MetaSnapshot{
			RelationshipType: optional(c.Meta.RelationshipType),
			Role1:            optional(c.Meta.Role1),
			Role2:            optional(c.Meta.Role2),
			Name1:            n1,
			Name2:            n2,
		},
	}
}

// optional maps the empty string to a JSON null
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

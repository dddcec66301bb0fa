package internal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
	"strings"
)

// maxLineSize bounds a single source line. Conversation payloads arrive
// JSON-encoded inline, so lines can run well past bufio's default limit
const maxLineSize = 10 * 1024 * 1024

// emptyKey is the composite identity key of a record with no usable
// metadata. Records whose key collapses to it get positional ids instead
const emptyKey = "|Unknown||"

// sourceRecord is the raw shape of one line in the case source. Meta and
// Raw stay undecoded until normalization so an odd payload in one field
// cannot fail the whole line
type sourceRecord struct {
	ID   interface{}     `json:"id"`
	Meta json.RawMessage `json:"meta"`
	Raw  json.RawMessage `json:"raw"`
}

// LoadCases reads a line-delimited JSON case source and returns the cases
// in source order. Blank lines are skipped. A line that is not a valid
// JSON object fails the whole load; a malformed conversation payload inside
// a valid line degrades to an empty conversation instead.
//
// Loading is deterministic: the same file content always yields the same
// ids in the same order, so results are safe to cache by path
func LoadCases(path string) ([]*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var cases []*Case
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec sourceRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, &LoadError{Path: path, Line: lineNo, Err: err}
		}

		meta := decodeMeta(rec.Meta)
		cases = append(cases, &Case{
			ID:   caseID(rec.ID, meta, len(cases)),
			Meta: meta,
			Raw:  normalizeRaw(rec.Raw),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Line: lineNo, Err: err}
	}

	LogDebug("loaded %d cases from %s", len(cases), path)
	return cases, nil
}

// decodeMeta decodes the meta field, tolerating an absent or non-object
// value by returning empty metadata
func decodeMeta(raw json.RawMessage) CaseMeta {
	if len(raw) == 0 {
		return CaseMeta{}
	}
	var meta CaseMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		LogDebug("unparseable case meta, substituting empty metadata: %v", err)
		return CaseMeta{}
	}
	return meta
}

// normalizeRaw decodes the conversation payload into its canonical shape.
// The payload may arrive as a JSON object or as a JSON-encoded string;
// anything that cannot be decoded becomes an empty conversation so one bad
// payload never fails the load
func normalizeRaw(raw json.RawMessage) Conversation {
	empty := Conversation{Script: []Turn{}}
	if len(raw) == 0 {
		return empty
	}

	data := []byte(raw)
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		data = []byte(encoded)
	}

	var conv Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		LogDebug("unparseable conversation payload, substituting empty script: %v", err)
		return empty
	}
	if conv.Script == nil {
		conv.Script = []Turn{}
	}
	return conv
}

// caseID returns the source-supplied id when present, otherwise derives a
// deterministic one from the case metadata
func caseID(raw interface{}, meta CaseMeta, position int) string {
	if id := stringValue(raw); id != "" {
		return id
	}
	return deriveCaseID(meta, position)
}

// deriveCaseID builds the composite key scenario|relationship|name1|name2
// and hashes it into a short stable id. A key with no usable content yields
// idx_<position> instead, keeping ids unique within one load even for fully
// anonymous records
func deriveCaseID(meta CaseMeta, position int) string {
	key := strings.Join([]string{
		meta.Scenario.Key(),
		meta.Relationship(),
		meta.Name1,
		meta.Name2,
	}, "|")
	if key == emptyKey {
		return fmt.Sprintf("idx_%d", position)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return "case_" + fmt.Sprintf("%016x", h.Sum64())[:10]
}

// stringValue renders a source-supplied id as text. Empty strings and zero
// numbers count as absent
func stringValue(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == 0 {
			return ""
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

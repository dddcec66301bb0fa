package testutil

import "testing"

// SampleCasesJSONL is a small, well-formed case source: one case with
// derivable identity, one with an explicit id and a string-encoded
// conversation, and one with no usable metadata and an unparseable payload
const SampleCasesJSONL = `{"meta":{"relationship_type":"Parent-Child","name1":"Amy","name2":"Ben","role1":"parent","role2":"child","scenario":{"id":"s1"}},"raw":{"script":[{"speaker":"Amy","text":"Clean your room."},{"speaker":"Ben","text":"Later."}]}}
{"id":"case_custom01","meta":{"relationship_type":"Boss-Employee","name1":"Dana","name2":"Eli"},"raw":"{\"script\":[{\"speaker\":\"Dana\",\"text\":\"I need this by five.\"}]}"}
{"meta":{},"raw":"not json"}
`

// SampleTutorialJSON is a two-step tutorial fixture
const SampleTutorialJSON = `[
  {
    "title": "Spotting role power",
    "instruction": "Parents often hold role power over children. Read the exchange and note who sets the terms.",
    "case": {
      "id": "tut_0",
      "meta": {"relationship_type": "Parent-Child", "name1": "Amy", "name2": "Ben"},
      "raw": {"script": [{"speaker": "Amy", "text": "Clean your room."}, {"speaker": "Ben", "text": "Fine."}]}
    },
    "suggested_label": {"winner": "Amy", "power_sources": ["ROLE"]}
  },
  {
    "title": "Ties happen",
    "instruction": "When neither side concedes or controls the exchange, label it a tie.",
    "case": {
      "id": "tut_1",
      "meta": {"relationship_type": "Friends", "name1": "Kim", "name2": "Lee"},
      "raw": {"script": [{"speaker": "Kim", "text": "Pizza tonight?"}, {"speaker": "Lee", "text": "Sushi."}]}
    },
    "suggested_label": {"winner": "Tie", "power_sources": []}
  }
]
`

// WriteCasesFixture writes the sample case source into dir
func WriteCasesFixture(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "cases.jsonl", SampleCasesJSONL)
}

// WriteTutorialFixture writes the sample tutorial into dir
func WriteTutorialFixture(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "tutorial.json", SampleTutorialJSON)
}

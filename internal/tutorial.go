package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SuggestedLabel is the reference answer attached to a tutorial step
type SuggestedLabel struct {
	Winner       string   `json:"winner"`
	PowerSources []string `json:"power_sources"`
}

// TutorialStep pairs an example case with guidance text and the label an
// experienced reviewer would give it
type TutorialStep struct {
	Title          string
	Instruction    string
	Case           *Case
	SuggestedLabel *SuggestedLabel
}

// tutorialStepRecord is the raw shape of one step in the tutorial file. The
// case payload stays undecoded so it can go through the same normalization
// as a loader case
type tutorialStepRecord struct {
	Title          string          `json:"title"`
	Instruction    string          `json:"instruction"`
	Case           json.RawMessage `json:"case"`
	SuggestedLabel *SuggestedLabel `json:"suggested_label"`
}

// LoadTutorial reads the tutorial file: a JSON array of steps. A missing
// file means no tutorial and returns (nil, nil); any other read or decode
// failure is an error. Step cases are normalized exactly like loader cases,
// including the string-encoded conversation tolerance
func LoadTutorial(path string) ([]TutorialStep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			LogDebug("no tutorial file at %s", path)
			return nil, nil
		}
		return nil, &TutorialError{Path: path, Err: err}
	}

	var recs []tutorialStepRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, &TutorialError{Path: path, Err: err}
	}

	steps := make([]TutorialStep, 0, len(recs))
	for i, rec := range recs {
		step := TutorialStep{
			Title:          rec.Title,
			Instruction:    rec.Instruction,
			SuggestedLabel: rec.SuggestedLabel,
		}
		if len(rec.Case) > 0 && string(rec.Case) != "null" {
			var src sourceRecord
			if err := json.Unmarshal(rec.Case, &src); err != nil {
				return nil, &TutorialError{Path: path, Err: fmt.Errorf("step %d: %w", i+1, err)}
			}
			meta := decodeMeta(src.Meta)
			step.Case = &Case{
				ID:   caseID(src.ID, meta, i),
				Meta: meta,
				Raw:  normalizeRaw(src.Raw),
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Walkthrough tracks a reviewer's position in the tutorial sequence. The
// position is always clamped to a valid step index
type Walkthrough struct {
	steps []TutorialStep
	pos   int
}

// NewWalkthrough builds a stepper over the given steps
func NewWalkthrough(steps []TutorialStep) *Walkthrough {
	return &Walkthrough{steps: steps}
}

// Len returns the number of steps
func (w *Walkthrough) Len() int {
	return len(w.steps)
}

// Pos returns the current zero-based step position
func (w *Walkthrough) Pos() int {
	return w.pos
}

// Current returns the step at the current position, or nil when the
// walkthrough is empty
func (w *Walkthrough) Current() *TutorialStep {
	if len(w.steps) == 0 {
		return nil
	}
	return &w.steps[w.pos]
}

// Next advances one step, stopping at the last step
func (w *Walkthrough) Next() {
	w.Jump(w.pos + 1)
}

// Prev moves back one step, stopping at the first step
func (w *Walkthrough) Prev() {
	w.Jump(w.pos - 1)
}

// Jump moves to the given position, clamped to the valid range
func (w *Walkthrough) Jump(pos int) {
	if max := len(w.steps) - 1; pos > max {
		pos = max
	}
	if pos < 0 {
		pos = 0
	}
	w.pos = pos
}

// AtStart reports whether the walkthrough is at the first step
func (w *Walkthrough) AtStart() bool {
	return w.pos == 0
}

// AtEnd reports whether the walkthrough is at the last step
func (w *Walkthrough) AtEnd() bool {
	return len(w.steps) == 0 || w.pos == len(w.steps)-1
}

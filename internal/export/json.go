package export

import (
	"bytes"
	"encoding/json"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// JSON serializes the full DocumentState losslessly. It is the only format
// guaranteed to round-trip through Import.
func JSON(s *doctree.DocumentState) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import parses serialized DocumentState JSON, validates referential
// integrity and returns a renumbered snapshot. Malformed or broken input
// fails with ImportError describing the first problem found; nothing is
// silently repaired.
func Import(data []byte) (*doctree.DocumentState, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var s doctree.DocumentState
	if err := dec.Decode(&s); err != nil {
		return nil, &doctree.ImportError{Reason: "invalid JSON: " + err.Error()}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	// Numbers are derived state; recompute rather than trust the payload.
	return doctree.Renumber(&s), nil
}

package layout

import (
	"github.com/hnimtadd/lineedit/editor/coordinate"
	"github.com/mitchellh/hashstructure/v2"
)

// Result is the simulator's output for one frame. It is computed fresh on
// every call to Simulate and never mutated afterwards.
type Result struct {
	Rows      []Row
	TotalRows int

	// CommandStart is where editable text begins, after the prompt.
	// X is the column, Y the row.
	CommandStart coordinate.Point[int]

	// Cursor is the display position of the supplied logical cursor
	// offset.
	Cursor coordinate.Point[int]

	// End is the position immediately after the last byte laid out. The
	// render driver lands here after writing the rows and moves to Cursor
	// from it.
	End coordinate.Point[int]

	// Width is the terminal width the layout was computed against.
	Width int

	// Truncated is true when the walk stopped at the row bound. The rows
	// that were computed remain internally consistent.
	Truncated bool

	// Prompt is the raw prompt bytes the layout was computed from. The
	// render driver writes them verbatim exactly once per session.
	Prompt []byte
}

// Fingerprint returns a hash of everything that affects the bytes a render
// of this result would emit. Two results with equal fingerprints and equal
// cursor positions produce identical frames, so the render driver can skip
// the second one entirely.
func (r *Result) Fingerprint() uint64 {
	h, err := hashstructure.Hash(struct {
		Rows         []Row
		CommandStart coordinate.Point[int]
		Cursor       coordinate.Point[int]
		Width        int
		Truncated    bool
	}{r.Rows, r.CommandStart, r.Cursor, r.Width, r.Truncated},
		hashstructure.FormatV2, nil)
	if err != nil {
		// Hashing plain data cannot fail; zero disables frame skipping.
		return 0
	}
	return h
}

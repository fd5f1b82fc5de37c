// Package frame retains where the previous render left the terminal
// cursor. The physical row of the cursor is never knowable, only deltas
// from a position the engine itself last wrote, so this is the one piece of
// state that survives between frames.
package frame

// State is the persisted per-session frame state. Callers own it and pass
// it by reference; nothing in this module holds a hidden instance, so
// independent editing sessions never share state.
type State struct {
	// Row and Col are the position last written to the terminal.
	Row int
	Col int

	// PromptEmitted records whether the prompt has been written. The
	// prompt is written exactly once per session and never rewritten.
	PromptEmitted bool
}

// AdvanceTo moves the tracked position to (row, col) and returns the motion
// the render driver must emit to get there: a signed row delta (negative
// means up) and the absolute target column. Columns are never moved
// relatively; the driver always sets the column outright.
func (s *State) AdvanceTo(row, col int) (deltaRows, columnAbs int) {
	deltaRows = row - s.Row
	s.Row = row
	s.Col = col
	return deltaRows, col
}

// MarkPromptEmitted is idempotent.
func (s *State) MarkPromptEmitted() {
	s.PromptEmitted = true
}

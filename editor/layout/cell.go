package layout

// Cell is one display cell of a simulated row. A cell occupies 1 or 2
// columns; combining codepoints do not get cells of their own, they extend
// the byte span of the cell they attach to.
type Cell struct {
	// The codepoint rendered in this cell. For a tab expansion this is a
	// space.
	CP uint32

	// Width in display columns, 1 or 2. Zero only for the degenerate case
	// of a combining codepoint at the very start of a row, which has no
	// cell to attach to.
	Width uint8

	// The byte span within the source text (prompt, command or menu,
	// depending on the row kind) that produced this cell. Len is 0 for
	// filler cells of a tab expansion past the first.
	Offset int
	Len    int
}

package layout

import (
	"errors"

	"github.com/hnimtadd/lineedit/editor/coordinate"
	"github.com/hnimtadd/lineedit/editor/tabstops"
	"github.com/hnimtadd/lineedit/editor/unit"
	"github.com/hnimtadd/lineedit/editor/utils"
	"github.com/hnimtadd/lineedit/editor/width"
)

// ContinuationFunc supplies the prefix text for a command row created by a
// newline inside the command text. The argument is the absolute row index
// of the new row. It is never invoked for rows created by wrapping.
type ContinuationFunc func(row int) string

// DefaultMaxRows bounds the number of simulated rows when Input.MaxRows is
// zero.
const DefaultMaxRows = 512

// ErrInvalidWidth is returned before any simulation begins when the
// terminal width is not positive. This is a caller bug, not a runtime
// condition to recover from.
var ErrInvalidWidth = errors.New("layout: terminal width must be positive")

// Input carries everything a layout is a pure function of.
type Input struct {
	// Prompt is pre-rendered prompt bytes, possibly containing
	// style-escape runs. Newlines in the prompt reset to column 0.
	Prompt []byte

	// Command is pre-rendered command bytes including any highlight
	// escape runs. CursorOffset is a byte index into Command, not a
	// display column.
	Command      []byte
	CursorOffset int

	// Continuation supplies per-row prefixes for multi-line commands.
	// Nil means no prefix.
	Continuation ContinuationFunc

	// Menu is optional trailing menu bytes laid out below the command.
	Menu []byte

	// Width is the terminal width in columns. Must be positive.
	Width int

	// MaxRows bounds the simulated row count; 0 means DefaultMaxRows.
	MaxRows int

	// Tabs supplies tab distances. Nil gets default interval-8 stops at
	// Width columns.
	Tabs *tabstops.Tabstops
}

type walker struct {
	in   Input
	tabs *tabstops.Tabstops

	maxRows int
	rows    []Row
	col     int

	// done is set when the row budget is exhausted; every walk loop exits
	// on it.
	done      bool
	truncated bool

	cursorSet bool
	cursor    coordinate.Point[int]
}

// Simulate lays out prompt, command and menu text on a terminal of the
// given width. It is a pure function of its input: identical inputs yield
// identical results.
func Simulate(in Input) (*Result, error) {
	if in.Width <= 0 {
		return nil, ErrInvalidWidth
	}
	if in.CursorOffset < 0 {
		in.CursorOffset = 0
	}
	if in.CursorOffset > len(in.Command) {
		in.CursorOffset = len(in.Command)
	}

	w := &walker{in: in, tabs: in.Tabs, maxRows: in.MaxRows}
	if w.maxRows <= 0 {
		w.maxRows = DefaultMaxRows
	}
	if w.tabs == nil {
		w.tabs = tabstops.NewTabstops(in.Width, tabstops.TABSTOP_INTERVAL)
	}

	w.openRow(RowPrompt, 0, "")
	w.walkText(in.Prompt, RowPrompt)

	// A prompt that ends flush against the right edge pushes the command
	// onto the next row, exactly as the terminal's own wrap would.
	if !w.done && w.col >= in.Width {
		w.openRow(RowCommand, 0, "")
	}
	start := coordinate.NewPoint(w.col, w.row())

	w.walkText(in.Command, RowCommand)

	// Command ending flush against the right edge: the cursor lands on a
	// fresh row, where the next typed character would go.
	if !w.done && w.col >= in.Width {
		w.openRow(RowCommand, 0, "")
	}
	if !w.cursorSet {
		w.cursor = coordinate.NewPoint(w.col, w.row())
		w.cursorSet = true
	}

	if len(in.Menu) > 0 && !w.done {
		w.openRow(RowMenu, 0, "")
		w.walkText(in.Menu, RowMenu)
	}

	end := coordinate.NewPoint(w.col, w.row())
	total := len(w.rows)
	cursor := w.cursor
	if cursor.Y > total-1 {
		// The normalized or never-captured cursor points past the
		// truncation bound; clamp to the last laid-out position.
		cursor = end
	}
	if start.Y > total-1 {
		start = end
	}

	return &Result{
		Rows:         w.rows,
		TotalRows:    total,
		CommandStart: start,
		Cursor:       cursor,
		End:          end,
		Width:        in.Width,
		Truncated:    w.truncated,
		Prompt:       append([]byte(nil), in.Prompt...),
	}, nil
}

func (w *walker) row() int  { return len(w.rows) - 1 }
func (w *walker) cur() *Row { return &w.rows[len(w.rows)-1] }

// openRow closes the current row and opens a fresh one, honoring the row
// budget. Reports whether a row was opened.
func (w *walker) openRow(kind RowKind, startCol int, prefix string) bool {
	if len(w.rows) >= w.maxRows {
		w.truncated = true
		w.done = true
		return false
	}
	utils.Assert(startCol < w.in.Width || startCol == 0, "start col out of range")
	w.rows = append(w.rows, Row{Kind: kind, StartCol: startCol, Prefix: prefix})
	w.col = startCol
	return true
}

func (w *walker) walkText(text []byte, kind RowKind) {
	isCmd := kind == RowCommand
	pos := 0
	for pos < len(text) && !w.done {
		if isCmd && !w.cursorSet && pos >= w.in.CursorOffset {
			w.markCursor()
		}
		u := unit.Next(text, pos, w.col, w.tabs)
		switch u.Kind {
		case unit.KindEscape, unit.KindControl:
			// Zero columns, no cells; carried through verbatim.
			w.appendText(kind, text[pos:pos+u.Len])
		case unit.KindNewline:
			w.newline(kind)
		case unit.KindTab:
			w.placeTab(u, text, pos, kind)
		case unit.KindPrint:
			w.placePrint(u, text, pos, kind)
		}
		pos += u.Len
	}
}

// markCursor records the current position as the cursor. A position flush
// against the right edge normalizes to the start of the next row, which is
// where the unit at the cursor offset will be placed.
func (w *walker) markCursor() {
	row, col := w.row(), w.col
	if col >= w.in.Width {
		row, col = row+1, 0
	}
	w.cursor = coordinate.NewPoint(col, row)
	w.cursorSet = true
}

func (w *walker) newline(kind RowKind) {
	switch kind {
	case RowCommand:
		prefix := ""
		if w.in.Continuation != nil {
			prefix = w.in.Continuation(len(w.rows))
		}
		pw := width.StringWidth(prefix)
		if pw >= w.in.Width {
			// A prefix as wide as the terminal leaves no room for text.
			prefix, pw = "", 0
		}
		w.openRow(RowCommand, pw, prefix)
	default:
		// Prompt and menu newlines always reset to column 0.
		w.openRow(kind, 0, "")
	}
}

func (w *walker) placePrint(u unit.Unit, text []byte, pos int, kind RowKind) {
	// Wrap before placing when the unit does not fit; a wide unit with one
	// column remaining wraps whole, it is never split across rows. A unit
	// wider than the terminal itself is placed anyway, overflow clamped.
	if w.col+u.Width > w.in.Width && u.Width <= w.in.Width {
		if !w.openRow(kind, 0, "") {
			return
		}
	}
	w.appendText(kind, text[pos:pos+u.Len])
	r := w.cur()
	if u.Width == 0 {
		// Combining codepoint: extend the cell it attaches to.
		if n := len(r.Cells); n > 0 {
			r.Cells[n-1].Len += u.Len
		} else {
			r.Cells = append(r.Cells, Cell{CP: u.CP, Width: 0, Offset: pos, Len: u.Len})
		}
		return
	}
	r.Cells = append(r.Cells, Cell{
		CP:     u.CP,
		Width:  uint8(u.Width),
		Offset: pos,
		Len:    u.Len,
	})
	w.col += u.Width
	if w.col > w.in.Width {
		w.col = w.in.Width
	}
}

// placeTab expands a tab into space cells up to the next tab stop, clipped
// at the right edge. Spaces rather than a raw tab byte go into the row
// text so the emitted frame does not depend on the terminal's own stops.
func (w *walker) placeTab(u unit.Unit, text []byte, pos int, kind RowKind) {
	dist := u.Width
	if w.col >= w.in.Width {
		if !w.openRow(kind, 0, "") {
			return
		}
		dist = w.tabs.Distance(w.col)
	}
	if w.col+dist > w.in.Width {
		dist = w.in.Width - w.col
	}
	r := w.cur()
	for k := 0; k < dist; k++ {
		c := Cell{CP: ' ', Width: 1}
		if k == 0 {
			c.Offset, c.Len = pos, 1
		}
		r.Cells = append(r.Cells, c)
	}
	w.appendSpaces(kind, dist)
	w.col += dist
}

// appendText accumulates raw source bytes into the current row for the
// command and menu phases. Prompt bytes are not accumulated; the render
// driver writes the prompt once from Result.Prompt and never again.
func (w *walker) appendText(kind RowKind, b []byte) {
	if kind == RowPrompt {
		return
	}
	r := w.cur()
	r.Text = append(r.Text, b...)
}

func (w *walker) appendSpaces(kind RowKind, n int) {
	if kind == RowPrompt {
		return
	}
	r := w.cur()
	for i := 0; i < n; i++ {
		r.Text = append(r.Text, ' ')
	}
}

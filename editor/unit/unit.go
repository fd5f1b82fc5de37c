// Package unit classifies the next decodable unit of input text for the
// layout walk. Classification is a closed set: every byte position in any
// input resolves to exactly one Kind, and every unit consumes at least one
// byte, so a walk always terminates.
package unit

import (
	"github.com/hnimtadd/lineedit/editor/tabstops"
	"github.com/hnimtadd/lineedit/editor/width"
)

type Kind int

const (
	// KindPrint is a decoded codepoint occupying 0, 1 or 2 columns.
	// Ill-formed UTF-8 decodes to the replacement character here, one byte
	// at a time.
	KindPrint Kind = iota

	// KindEscape is a complete style-escape run. Zero columns, no cells.
	KindEscape

	// KindNewline is a bare LF.
	KindNewline

	// KindTab is a horizontal tab. Width depends on the current column.
	KindTab

	// KindControl is any other C0 control byte (including an ESC that does
	// not open a recognized escape run). Rendered verbatim, zero columns.
	KindControl
)

// Unit is one classified step of the walk.
type Unit struct {
	Kind  Kind
	CP    uint32 // decoded codepoint; meaningful for KindPrint and KindControl
	Len   int    // bytes consumed, always >= 1
	Width int    // display columns occupied
}

// Next classifies the unit beginning at b[pos] with the cursor at display
// column col. tabs supplies tab distances and must not be nil when the text
// can contain tabs.
func Next(b []byte, pos, col int, tabs *tabstops.Tabstops) Unit {
	c := b[pos]
	switch {
	case c == '\n':
		return Unit{Kind: KindNewline, CP: '\n', Len: 1}
	case c == '\t':
		return Unit{Kind: KindTab, CP: '\t', Len: 1, Width: tabs.Distance(col)}
	case c == 0x1B:
		if n := width.EscapeLen(b, pos); n > 0 {
			return Unit{Kind: KindEscape, Len: n}
		}
		// Incomplete run at end of input: literal control byte.
		return Unit{Kind: KindControl, CP: uint32(c), Len: 1}
	case c < 0x20 || c == 0x7F:
		return Unit{Kind: KindControl, CP: uint32(c), Len: 1}
	default:
		cp, n := width.DecodeAt(b, pos)
		return Unit{Kind: KindPrint, CP: cp, Len: n, Width: width.Codepoint(cp)}
	}
}

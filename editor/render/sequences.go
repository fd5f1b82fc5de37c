package render

import (
	"bytes"
	"fmt"
)

// The driver positions the cursor with relative vertical motion and
// absolute horizontal motion only. Absolute row addressing is never usable:
// once scrollback or prior prompts exist, the physical row of this
// session's output is unknown.

const clearToEnd = "\x1b[0J"

func moveRows(buf *bytes.Buffer, delta int) {
	if delta > 0 {
		fmt.Fprintf(buf, "\x1b[%dB", delta)
	} else if delta < 0 {
		fmt.Fprintf(buf, "\x1b[%dA", -delta)
	}
}

// moveColumn sets the absolute column. col is 0-indexed; CUP-family
// sequences are 1-indexed.
func moveColumn(buf *bytes.Buffer, col int) {
	fmt.Fprintf(buf, "\x1b[%dG", col+1)
}

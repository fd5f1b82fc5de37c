package width

import (
	dw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Codepoint returns the number of display columns a codepoint occupies:
// 0 for combining/zero-width and C0/C1 controls, 1 for normal characters,
// 2 for wide (East-Asian, emoji-presentation) characters.
func Codepoint(cp uint32) int {
	// C0 and C1 controls, plus DEL, never occupy a column.
	if cp < 0x20 || (cp >= 0x7F && cp < 0xA0) {
		return 0
	}
	return dw.RuneWidth(rune(cp))
}

// StringWidth returns the visible width of s, skipping style-escape runs
// and measuring the rest by grapheme cluster. Intended for whole strings
// supplied by collaborators (continuation prefixes, menu headers); the
// layout walk itself advances codepoint by codepoint via DecodeAt.
func StringWidth(s string) int {
	b := []byte(s)
	total := 0
	for i := 0; i < len(b); {
		if n := EscapeLen(b, i); n > 0 {
			i += n
			continue
		}
		// Measure up to the next escape introducer by grapheme cluster.
		end := i
		for end < len(b) && b[end] != 0x1B {
			end++
		}
		state := -1
		rest := b[i:end]
		for len(rest) > 0 {
			var cluster []byte
			var w int
			cluster, rest, w, state = uniseg.FirstGraphemeCluster(rest, state)
			if len(cluster) == 0 {
				break
			}
			total += w
		}
		if end == i {
			// Lone ESC that EscapeLen did not recognize: literal, zero
			// columns.
			i++
			continue
		}
		i = end
	}
	return total
}

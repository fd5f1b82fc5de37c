package width

// EscapeLen reports the byte length of the style-escape run starting at
// position i, or 0 if b[i:] does not begin a complete recognized run.
//
// Recognized introducers are CSI (ESC [ ... final byte 0x40-0x7E), which
// carries SGR color/attribute codes, OSC (ESC ] ... BEL or ST), and APC
// (ESC _ ... BEL or ST). A run that is still open at end of input returns
// 0 so the caller treats its bytes as literal text; a run is never
// partially consumed.
func EscapeLen(b []byte, i int) int {
	if i+1 >= len(b) || b[i] != 0x1B {
		return 0
	}
	switch b[i+1] {
	case '[': // CSI
		for j := i + 2; j < len(b); j++ {
			if b[j] >= 0x40 && b[j] <= 0x7E {
				return j - i + 1
			}
		}
	case ']', '_': // OSC, APC
		for j := i + 2; j < len(b); j++ {
			if b[j] == 0x07 {
				return j - i + 1
			}
			if b[j] == 0x1B && j+1 < len(b) && b[j+1] == '\\' {
				return j - i + 2
			}
		}
	}
	return 0
}

package tabstops

// Unit is the type we use per tabstop unit.
type Unit = uint8

const (
	unitBits         = 8 // bits in Unit (uint8)
	preallocCols     = 512
	preallocCount    = preallocCols / unitBits
	TABSTOP_INTERVAL = 8 // Default tabstop interval
)

// Tabstops efficiently tracks tabstop locations with a bitset. One bit per
// column, columns below preallocCols never allocate.
type Tabstops struct {
	cols     int
	interval uint8
	prealloc [preallocCount]Unit
	dynamic  []Unit
}

// Helper: bit mask for each bit in a Unit
var masks = func() [unitBits]Unit {
	var m [unitBits]Unit
	for i := 0; i < unitBits; i++ {
		m[i] = 1 << i
	}
	return m
}()

func entry(col int) int { return col / unitBits }
func index(col int) int { return col % unitBits }

// NewTabstops creates a new Tabstops for the given number of columns and
// interval. An interval of 0 leaves every stop unset.
func NewTabstops(cols int, interval uint8) *Tabstops {
	t := &Tabstops{
		cols:     cols,
		interval: interval,
	}
	t.Resize(cols)
	t.Reset(interval)
	return t
}

// Set sets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Set(col int) {
	i, idx := entry(col), index(col)
	if i < preallocCount {
		t.prealloc[i] |= masks[idx]
		return
	}
	dynI := i - preallocCount
	if dynI < len(t.dynamic) {
		t.dynamic[dynI] |= masks[idx]
	}
}

// Unset unsets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Unset(col int) {
	i, idx := entry(col), index(col)
	if i < preallocCount {
		t.prealloc[i] &^= masks[idx]
		return
	}
	dynI := i - preallocCount
	if dynI < len(t.dynamic) {
		t.dynamic[dynI] &^= masks[idx]
	}
}

// Get returns true if a tabstop is set at the given column.
func (t *Tabstops) Get(col int) bool {
	i, idx := entry(col), index(col)
	mask := masks[idx]
	var unit Unit
	if i < preallocCount {
		unit = t.prealloc[i]
	} else {
		dynI := i - preallocCount
		if dynI < len(t.dynamic) {
			unit = t.dynamic[dynI]
		}
	}
	return unit&mask == mask
}

// Distance returns how many columns a tab at col advances: the distance to
// the next set stop after col. Past the last stop (or with no stops set) it
// falls back to the fixed interval so a tab always advances at least one
// column.
func (t *Tabstops) Distance(col int) int {
	for next := col + 1; next < t.cols; next++ {
		if t.Get(next) {
			return next - col
		}
	}
	interval := int(t.interval)
	if interval <= 0 {
		return 1
	}
	return interval - col%interval
}

// Resize ensures the Tabstops can support up to cols columns. Stops already
// set are preserved.
func (t *Tabstops) Resize(cols int) {
	t.cols = cols

	// do nothing if it fits.
	if cols <= preallocCols {
		return
	}

	needed := (cols - preallocCols + unitBits - 1) / unitBits
	if needed <= len(t.dynamic) {
		return
	}
	grown := make([]Unit, needed)
	copy(grown, t.dynamic)
	t.dynamic = grown
}

// Capacity returns the maximum number of columns this can support currently.
func (t *Tabstops) Capacity() int {
	return (preallocCount + len(t.dynamic)) * unitBits
}

// Reset unsets all tabstops and then sets initial tabstops at the given
// interval.
func (t *Tabstops) Reset(interval uint8) {
	for i := range t.prealloc {
		t.prealloc[i] = 0
	}
	for i := range t.dynamic {
		t.dynamic[i] = 0
	}
	t.interval = interval
	if interval > 0 {
		for i := int(interval); i < t.cols-1; i += int(interval) {
			t.Set(i)
		}
	}
}

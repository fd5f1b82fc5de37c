package layout

// RowKind marks which phase of the walk a row was opened in.
type RowKind int

const (
	// RowPrompt rows are written once per session and never rewritten.
	// The first row of every layout is a prompt row, even when the prompt
	// is empty; command text begins mid-row at CommandStart.
	RowPrompt RowKind = iota

	// RowCommand rows hold editable text, either continuation rows created
	// by a newline in the command or overflow rows created by wrapping.
	RowCommand

	// RowMenu rows hold trailing menu text below the command.
	RowMenu
)

// Row is one simulated terminal line.
type Row struct {
	Cells []Cell

	// StartCol is the visual column the first cell sits at. Nonzero only
	// for continuation-prefixed command rows.
	StartCol int

	// Prefix is the continuation-prefix text whose visible width equals
	// StartCol. Empty for wrapped and non-command rows.
	Prefix string

	Kind RowKind

	// Text is the raw source bytes laid out on this row during the command
	// and menu phases, including any style-escape runs. The render driver
	// writes it verbatim. Empty on rows the prompt fully owns; the prompt
	// bytes themselves live in Result.Prompt.
	Text []byte
}

// Width returns the total display width of the row's cells, excluding
// StartCol.
func (r *Row) Width() int {
	w := 0
	for i := range r.Cells {
		w += int(r.Cells[i].Width)
	}
	return w
}

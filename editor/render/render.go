// Package render turns a layout result into terminal writes. The terminal
// is write-only: the driver never queries it, it derives every motion from
// the frame state it updated itself on the previous frame.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hnimtadd/lineedit/editor/frame"
	"github.com/hnimtadd/lineedit/editor/layout"
	"github.com/hnimtadd/lineedit/logger"
)

// Driver writes frames to a terminal.
type Driver struct {
	w   io.Writer
	log logger.Logger

	// Fingerprint of the last rendered result, for whole-frame skipping.
	lastFingerprint uint64
	haveFingerprint bool
	skippedFrames   int
}

func NewDriver(w io.Writer, log logger.Logger) *Driver {
	if log == nil {
		log = logger.Nop()
	}
	return &Driver{w: w, log: log}
}

// Invalidate discards the frame fingerprint so the next Render repaints
// unconditionally. Called after a width change.
func (d *Driver) Invalidate() {
	d.haveFingerprint = false
}

// SkippedFrames returns how many renders were elided because the frame was
// byte-identical to the previous one.
func (d *Driver) SkippedFrames() int {
	return d.skippedFrames
}

// Render writes one frame. The prompt is written verbatim on the first
// frame of a session and never rewritten. Every frame thereafter moves to
// the command start with relative vertical and absolute horizontal motion,
// clears to end of screen, rewrites the command and menu rows, and parks
// the cursor at the layout's cursor position.
//
// On a write failure the frame state is left unchanged and the error is
// surfaced; the driver never retries, since the length of a partial write
// is unknown and retrying would corrupt cursor tracking.
func (d *Driver) Render(res *layout.Result, st *frame.State) error {
	if res == nil || res.Width <= 0 {
		return layout.ErrInvalidWidth
	}

	fp := res.Fingerprint()
	if st.PromptEmitted && d.haveFingerprint && fp == d.lastFingerprint &&
		st.Row == res.Cursor.Y && st.Col == res.Cursor.X {
		d.skippedFrames++
		return nil
	}

	var buf bytes.Buffer
	tmp := *st

	if !tmp.PromptEmitted {
		d.writePrompt(&buf, res)
		tmp.MarkPromptEmitted()
		tmp.Row, tmp.Col = res.CommandStart.Y, res.CommandStart.X
	}

	// Move to the command start and clear everything below it. The prompt
	// part of the command start row sits before the cursor, so it
	// survives the clear.
	delta, col := tmp.AdvanceTo(res.CommandStart.Y, res.CommandStart.X)
	moveRows(&buf, delta)
	moveColumn(&buf, col)
	buf.WriteString(clearToEnd)

	for i := res.CommandStart.Y; i < res.TotalRows; i++ {
		row := &res.Rows[i]
		if i > res.CommandStart.Y {
			buf.WriteString("\r\n")
			buf.WriteString(row.Prefix)
		}
		buf.Write(row.Text)
	}

	// Writing the rows advanced the terminal cursor to the end position;
	// move from there to the layout's cursor.
	tmp.Row, tmp.Col = res.End.Y, res.End.X
	delta, col = tmp.AdvanceTo(res.Cursor.Y, res.Cursor.X)
	moveRows(&buf, delta)
	moveColumn(&buf, col)

	if _, err := d.w.Write(buf.Bytes()); err != nil {
		d.log.Warn("frame write failed", "err", err)
		return fmt.Errorf("render: write frame: %w", err)
	}

	*st = tmp
	d.lastFingerprint = fp
	d.haveFingerprint = true
	if res.Truncated {
		d.log.Debug("layout truncated at row bound", "rows", res.TotalRows)
	}
	return nil
}

// writePrompt emits the prompt bytes once. Newlines become CR LF because
// the terminal is in raw mode. A prompt whose last row ends flush against
// the right edge leaves the terminal in its pending-wrap state; a space
// plus CR commits the wrap so the tracked position matches the simulated
// one (the space is wiped by the clear that follows).
func (d *Driver) writePrompt(buf *bytes.Buffer, res *layout.Result) {
	buf.Write(bytes.ReplaceAll(res.Prompt, []byte("\n"), []byte("\r\n")))
	if len(res.Prompt) > 0 &&
		res.Prompt[len(res.Prompt)-1] != '\n' &&
		res.CommandStart.Y > 0 && res.CommandStart.X == 0 {
		buf.WriteString(" \r")
	}
}

// Finish parks the cursor on a fresh line below the content so the shell's
// next prompt does not overwrite the session. Call once when the session
// ends.
func (d *Driver) Finish(st *frame.State, totalRows int) error {
	var buf bytes.Buffer
	tmp := *st
	delta, _ := tmp.AdvanceTo(totalRows-1, 0)
	moveRows(&buf, delta)
	buf.WriteString("\r\n")
	tmp.Row, tmp.Col = totalRows, 0
	if _, err := d.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render: finish: %w", err)
	}
	*st = tmp
	return nil
}

// Package lineedit is a line-editing runtime for an interactive shell: it
// lays out prompt, styled command text and menu text against a terminal of
// known width, and drives minimal terminal updates from the result. The
// terminal is treated as write-only; the editor is the sole authority on
// what is displayed.
package lineedit

import (
	"io"
	"sync/atomic"

	"github.com/hnimtadd/lineedit/editor/frame"
	"github.com/hnimtadd/lineedit/editor/layout"
	"github.com/hnimtadd/lineedit/editor/render"
	"github.com/hnimtadd/lineedit/editor/tabstops"
	"github.com/hnimtadd/lineedit/logger"
)

type Options struct {
	// Width is the terminal width in columns. Must be positive.
	Width int

	// Writer receives the rendered byte stream, normally the terminal
	// descriptor.
	Writer io.Writer

	// TabInterval is the default tab stop interval; 0 means 8.
	TabInterval uint8

	// MaxRows bounds the simulated row count; 0 means the layout default.
	MaxRows int

	Logger logger.Logger
}

// Editor is one editing session. It composes the layout simulator and the
// render driver and owns the session's frame state. An Editor must not be
// used from more than one goroutine; only NotifyResize is safe to call
// concurrently.
type Editor struct {
	width   int
	tabs    *tabstops.Tabstops
	maxRows int

	frame  frame.State
	driver *render.Driver
	logger logger.Logger

	// pendingWidth is set from resize notifications, which arrive in
	// signal-like contexts where only an atomic store is safe. It is
	// polled at the top of Refresh.
	pendingWidth atomic.Int64

	lastTotalRows int
}

func NewEditor(opts Options) (*Editor, error) {
	if opts.Width <= 0 {
		return nil, layout.ErrInvalidWidth
	}
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	interval := opts.TabInterval
	if interval == 0 {
		interval = tabstops.TABSTOP_INTERVAL
	}
	return &Editor{
		width:   opts.Width,
		tabs:    tabstops.NewTabstops(opts.Width, interval),
		maxRows: opts.MaxRows,
		driver:  render.NewDriver(opts.Writer, log),
		logger:  log,
	}, nil
}

// Width returns the width the next frame will be laid out against.
func (e *Editor) Width() int { return e.width }

// Tabstops exposes the session's tab stops so the host shell can set
// custom stops.
func (e *Editor) Tabstops() *tabstops.Tabstops { return e.tabs }

// NotifyResize records a new terminal width. Safe to call from a signal
// handler: it only stores a value, the re-render happens on the next
// Refresh. A width change invalidates every cached row, so the next frame
// is a full re-simulate.
func (e *Editor) NotifyResize(width int) {
	e.pendingWidth.Store(int64(width))
}

// Refresh simulates and renders one frame. prompt and command are
// pre-rendered bytes (style-escape runs allowed); cursor is a byte offset
// into command; cont supplies continuation prefixes for multi-line
// commands and may be nil; menu is optional trailing menu bytes.
//
// The returned Result is what was rendered; the caller's input layer uses
// its geometry to translate pointer or arrow-key coordinates back into
// byte offsets. A render failure leaves the frame state untouched and the
// command buffer is never affected.
func (e *Editor) Refresh(prompt, command []byte, cursor int, cont layout.ContinuationFunc, menu []byte) (*layout.Result, error) {
	e.pollResize()

	res, err := layout.Simulate(layout.Input{
		Prompt:       prompt,
		Command:      command,
		CursorOffset: cursor,
		Continuation: cont,
		Menu:         menu,
		Width:        e.width,
		MaxRows:      e.maxRows,
		Tabs:         e.tabs,
	})
	if err != nil {
		return nil, err
	}
	if err := e.driver.Render(res, &e.frame); err != nil {
		return nil, err
	}
	e.lastTotalRows = res.TotalRows
	return res, nil
}

func (e *Editor) pollResize() {
	w := int(e.pendingWidth.Swap(0))
	if w <= 0 || w == e.width {
		return
	}
	e.logger.Debug("terminal resized", "from", e.width, "to", w)
	e.width = w
	e.tabs.Resize(w)
	e.driver.Invalidate()
}

// Close parks the cursor on a fresh line below the session's content so
// whatever the shell prints next lands cleanly. The Editor must not be
// used afterwards.
func (e *Editor) Close() error {
	if e.lastTotalRows == 0 {
		return nil
	}
	return e.driver.Finish(&e.frame, e.lastTotalRows)
}

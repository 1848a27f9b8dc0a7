package dump

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hupe1980/slotlist"
)

// TextReporter writes a Text dump for every report.
type TextReporter[T any] struct {
	mu     sync.Mutex
	w      io.Writer
	opts   []Option
	logger *slotlist.Logger
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter[T any](w io.Writer, opts ...Option) *TextReporter[T] {
	return &TextReporter[T]{w: w, opts: opts, logger: slotlist.NoopLogger()}
}

// WithLogger sets the logger that receives write failures.
func (r *TextReporter[T]) WithLogger(l *slotlist.Logger) *TextReporter[T] {
	r.logger = l
	return r
}

// Report implements slotlist.Reporter.
func (r *TextReporter[T]) Report(reason string, snap *slotlist.Snapshot[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := Text(r.w, reason, snap, r.opts...); err != nil {
		r.logger.Warn("text dump failed", "reason", reason, "error", err)
	}
}

// HTMLLog writes every report as an HTML section holding the text dump
// and, when a graph directory is configured, a Graphviz image of the list.
type HTMLLog[T any] struct {
	mu       sync.Mutex
	w        io.Writer
	graphDir string
	render   bool
	timeout  time.Duration
	seq      int
	logger   *slotlist.Logger
	now      func() time.Time
}

// NewHTMLLog creates an HTML log writing to w.
func NewHTMLLog[T any](w io.Writer) *HTMLLog[T] {
	return &HTMLLog[T]{
		w:       w,
		timeout: 10 * time.Second,
		logger:  slotlist.NoopLogger(),
		now:     time.Now,
	}
}

// WithGraphs writes a dot file per report into dir. If render is set each
// dot file is also rendered to PNG and embedded in the log.
func (h *HTMLLog[T]) WithGraphs(dir string, render bool) *HTMLLog[T] {
	h.graphDir = dir
	h.render = render
	return h
}

// WithLogger sets the logger that receives write and render failures.
func (h *HTMLLog[T]) WithLogger(l *slotlist.Logger) *HTMLLog[T] {
	h.logger = l
	return h
}

// Report implements slotlist.Reporter.
func (h *HTMLLog[T]) Report(reason string, snap *slotlist.Snapshot[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++

	img := ""
	if h.graphDir != "" {
		var err error
		img, err = h.graph(snap)
		if err != nil {
			h.logger.Warn("graph dump failed", "reason", reason, "error", err)
		}
	}

	if _, err := io.WriteString(h.w, "<h1 align=\"center\">Dump List</h1>\n<pre>\n"); err != nil {
		h.logger.Warn("html dump failed", "error", err)
		return
	}
	if err := Text(h.w, reason, snap, WithClock(h.now)); err != nil {
		h.logger.Warn("html dump failed", "error", err)
		return
	}
	tail := "</pre>\n\n"
	if img != "" {
		tail = fmt.Sprintf("</pre>\n<img src=\"%s\">\n\n", img)
	}
	if _, err := io.WriteString(h.w, tail); err != nil {
		h.logger.Warn("html dump failed", "error", err)
	}
}

// graph writes the dot file (and image) of one report and returns the
// image path to embed, or "" if there is none.
func (h *HTMLLog[T]) graph(snap *slotlist.Snapshot[T]) (string, error) {
	if err := os.MkdirAll(h.graphDir, 0o755); err != nil {
		return "", err
	}
	base := filepath.Join(h.graphDir, fmt.Sprintf("dump-%04d", h.seq))

	f, err := os.Create(base + ".dot")
	if err != nil {
		return "", err
	}
	if err := Dot(f, snap); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if !h.render {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	if err := RenderPNG(ctx, base+".dot", base+".png"); err != nil {
		return "", err
	}
	return base + ".png", nil
}

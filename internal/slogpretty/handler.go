// The code in this package is derivative of https://gitlab.com/greyxor/slogor.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package slogpretty

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/tigerwill90/waypoint/internal/ansi"
)

const (
	maxBufferSize     = 16 << 10 // 16384
	initialBufferSize = 1024
)

var _ slog.Handler = (*Handler)(nil)

var logBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, initialBufferSize)
		return &b
	},
}

var (
	// DefaultHandler writes debug and above to os.Stdout, and errors to os.Stderr. Colors are
	// enabled when os.Stdout is a terminal.
	DefaultHandler = New(os.Stdout, os.Stderr, slog.LevelDebug, IsTerminal(os.Stdout))
	timeFormat     = fmt.Sprintf("%s %s", time.DateOnly, time.TimeOnly)
)

// IsTerminal reports whether f is attached to a terminal, including Cygwin and MSYS2 terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func freeBuf(b *[]byte) {
	if cap(*b) <= maxBufferSize {
		*b = (*b)[:0]
		logBufPool.Put(b)
	}
}

type groupOrAttrs struct {
	attr  slog.Attr
	group string
}

// Handler is a human friendly slog.Handler. Records at error level and above are written to the
// error writer, everything else to the output writer.
type Handler struct {
	out   io.Writer
	err   io.Writer
	lvl   slog.Leveler
	goa   []groupOrAttrs
	color bool
}

// New returns a Handler writing to out and errOut. Writes are serialized, so the same
// writer may be shared with other handlers.
func New(out, errOut io.Writer, lvl slog.Leveler, color bool) *Handler {
	if lvl == nil {
		lvl = slog.LevelInfo
	}
	return &Handler{
		out:   &lockedWriter{w: out},
		err:   &lockedWriter{w: errOut},
		lvl:   lvl,
		color: color,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl.Level()
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	bufp := logBufPool.Get().(*[]byte)
	buf := *bufp

	defer func() {
		*bufp = buf
		freeBuf(bufp)
	}()

	buf = append(buf, "[WAYPOINT] "...)

	if !record.Time.IsZero() {
		buf = ansi.Style(buf, h.color, ansi.Faint, record.Time.Format(timeFormat))
		buf = append(buf, ' ')
	}

	buf = append(buf, "| "...)
	buf = ansi.Style(buf, h.color, levelColor(record.Level), fmt.Sprintf("%-5s", record.Level.String()))
	buf = append(buf, " | "...)
	buf = append(buf, record.Message...)
	buf = append(buf, " | "...)

	prefix := ""
	for _, goa := range h.goa {
		if goa.group != "" {
			prefix += goa.group + "."
			continue
		}
		buf = h.appendAttr(buf, goa.attr, prefix)
	}

	record.Attrs(func(attr slog.Attr) bool {
		buf = h.appendAttr(buf, attr, prefix)
		return true
	})

	// Replace the latest space by an EOL.
	buf[len(buf)-1] = '\n'

	w := h.out
	if record.Level >= slog.LevelError {
		w = h.err
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write buffer: %w", err)
	}

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	goa := make([]groupOrAttrs, 0, len(h.goa)+len(attrs))
	goa = append(goa, h.goa...)
	for _, attr := range attrs {
		goa = append(goa, groupOrAttrs{attr: attr})
	}
	return h.with(goa)
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	goa := make([]groupOrAttrs, 0, len(h.goa)+1)
	goa = append(goa, h.goa...)
	goa = append(goa, groupOrAttrs{group: name})
	return h.with(goa)
}

func (h *Handler) with(goa []groupOrAttrs) *Handler {
	return &Handler{
		out:   h.out,
		err:   h.err,
		lvl:   h.lvl,
		goa:   goa,
		color: h.color,
	}
}

func (h *Handler) appendAttr(buf []byte, attr slog.Attr, prefix string) []byte {
	// Resolve the Attr's value before doing anything else.
	attr.Value = attr.Value.Resolve()

	// Ignore empty Attrs.
	if attr.Equal(slog.Attr{}) {
		return buf
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, ga := range attr.Value.Group() {
			buf = h.appendAttr(buf, ga, prefix)
		}
		return buf
	}

	buf = ansi.Style(buf, h.color, ansi.Faint, prefix+attr.Key+"=")
	buf = ansi.Style(buf, h.color, attrColor(attr.Key), attr.Value.String())
	return append(buf, ' ')
}

type lockedWriter struct {
	w io.Writer
	sync.Mutex
}

func (w *lockedWriter) Write(p []byte) (n int, err error) {
	w.Lock()
	n, err = w.w.Write(p)
	w.Unlock()
	return
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansi.FgRed
	case level >= slog.LevelWarn:
		return ansi.FgYellow
	case level >= slog.LevelInfo:
		return ansi.FgGreen
	default:
		return ansi.FgMagenta
	}
}

func attrColor(key string) string {
	switch key {
	case "key":
		return ansi.FgBlue
	case "path":
		return ansi.FgYellow
	case "error":
		return ansi.FgRed
	default:
		return ansi.FgCyan
	}
}

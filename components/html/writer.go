// Package html is a small helper for hand-written templ components. It keeps
// the first write error so callers can chain writes and check once.
package html

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type Writer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (hw *Writer) Raw(parts ...string) *Writer {
	for _, p := range parts {
		if hw.err != nil {
			return hw
		}
		_, hw.err = io.WriteString(hw.w, p)
	}
	return hw
}

// Text writes escaped text.
func (hw *Writer) Text(s string) *Writer {
	return hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (hw *Writer) Attr(name, value string) *Writer {
	return hw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// BoolAttr writes ` name` when on is true.
func (hw *Writer) BoolAttr(name string, on bool) *Writer {
	if on {
		return hw.Raw(" ", name)
	}
	return hw
}

// Class writes a class attribute from the non-empty classes.
func (hw *Writer) Class(classes ...string) *Writer {
	kept := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return hw.Attr("class", strings.Join(kept, " "))
}

// Render renders a nested component into the same writer.
func (hw *Writer) Render(ctx context.Context, c templ.Component) *Writer {
	if hw.err != nil || c == nil {
		return hw
	}
	hw.err = c.Render(ctx, hw.w)
	return hw
}

func (hw *Writer) Err() error {
	return hw.err
}

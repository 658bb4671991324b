package render

import (
	"bufio"
	"io"

	"gol-torus/internal/core"
)

// Text writes each rendered grid to w as rows of '#' (alive) and '.' (dead),
// followed by a blank line. The first write error is kept and later frames
// are dropped.
type Text struct {
	w   io.Writer
	err error
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Render writes one frame.
func (t *Text) Render(v core.View) {
	if t.err != nil {
		return
	}
	bw := bufio.NewWriter(t.w)
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			ch := byte('.')
			if v.Alive(r, c) {
				ch = '#'
			}
			bw.WriteByte(ch)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	t.err = bw.Flush()
}

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }

//go:build ebiten

package render

import (
	"image/color"

	"gol-torus/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image of the latest rendered grid.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	dirty      bool

	On, Off color.Color
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
		On:   color.Black,
		Off:  color.White,
	}
}

// Render converts v into the pixel buffer. Grids of another size are ignored.
func (gp *GridPainter) Render(v core.View) {
	if v.Rows() != gp.rows || v.Cols() != gp.cols {
		return
	}
	FillRGBA(gp.buf, v, gp.On, gp.Off)
	gp.dirty = true
}

// Blit uploads pending pixels and draws the grid scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter accepts.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }

//go:build ebiten

package ui

import (
	"image/color"

	"gol-torus/internal/scheduler"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	// BarHeight is the height in pixels of the status bar under the grid.
	BarHeight   = 36
	borderWidth = 2
	padding     = 6
)

var (
	barColor     = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	textColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	helpColor    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	pausedBorder = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// HUD renders the status bar and the paused border.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the status bar below a gridW x gridH area and, while paused, a
// red frame around the grid.
func (h *HUD) Draw(screen *ebiten.Image, st scheduler.Status, gridW, gridH int) {
	h.fillRect(screen, 0, gridH, gridW, BarHeight, barColor)

	face := basicfont.Face7x13
	text.Draw(screen, StatusLine(st), face, padding, gridH+15, textColor)
	text.Draw(screen, KeyHelp, face, padding, gridH+30, helpColor)

	if !st.Paused {
		return
	}
	h.fillRect(screen, 0, 0, gridW, borderWidth, pausedBorder)
	h.fillRect(screen, 0, gridH-borderWidth, gridW, borderWidth, pausedBorder)
	h.fillRect(screen, 0, 0, borderWidth, gridH, pausedBorder)
	h.fillRect(screen, gridW-borderWidth, 0, borderWidth, gridH, pausedBorder)
}

func (h *HUD) fillRect(dst *ebiten.Image, x, y, w, hgt int, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hgt))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(clr.R)/255.0, float64(clr.G)/255.0, float64(clr.B)/255.0, float64(clr.A)/255.0)
	dst.DrawImage(h.pixel, op)
}

package core

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Renderer consumes a grid once per tick.
type Renderer interface {
	Render(View)
}

// MultiRenderer fans a grid out to several renderers in order.
type MultiRenderer []Renderer

// Render forwards v to every non-nil renderer.
func (m MultiRenderer) Render(v View) {
	for _, r := range m {
		if r != nil {
			r.Render(v)
		}
	}
}

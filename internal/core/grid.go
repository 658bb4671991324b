package core

// View is a read-only window onto a grid of cells.
type View interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
	Population() int
}

// Grid stores a fixed-size 2D grid of boolean cells in row-major order. The
// topology is toroidal: Wrap reduces coordinates on both axes.
type Grid struct {
	rows, cols int
	data       []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so owners can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Alive reports the state of the cell at (row, col) after wrapping.
func (g *Grid) Alive(row, col int) bool {
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)]
}

// Set writes the cell at (row, col) after wrapping.
func (g *Grid) Set(row, col int, alive bool) {
	row, col = g.Wrap(row, col)
	g.data[g.Index(row, col)] = alive
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// ReadOnly wraps the grid so callers only see the View methods.
func (g *Grid) ReadOnly() View { return readOnly{g: g} }

type readOnly struct{ g *Grid }

func (r readOnly) Rows() int               { return r.g.rows }
func (r readOnly) Cols() int               { return r.g.cols }
func (r readOnly) Alive(row, col int) bool { return r.g.Alive(row, col) }
func (r readOnly) Population() int         { return r.g.Population() }

// LiveCells returns the coordinates of every live cell in row-major order.
func LiveCells(v View) [][2]int {
	var out [][2]int
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			if v.Alive(r, c) {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

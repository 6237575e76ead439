package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a dense rectangular block of cells addressed by
// (scale row, depth column), stored row-major in one flat slice.
// Rows index the scale axis (fine → coarse), columns the depth axis.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New returns a rows×cols grid with zero-valued cells.
// Returns ErrEmptyGrid if either dimension is < 1.
// Complexity: O(rows×cols).
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// FromRows deep-copies a non-empty rectangular [][]T into a Grid.
// Returns ErrEmptyGrid or ErrNonRectangular on bad input.
// Complexity: O(rows×cols).
func FromRows[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	g := &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
	for r, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		copy(g.cells[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// Rows returns the number of scale rows. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of depth columns. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the total cell count. Complexity: O(1).
func (g *Grid[T]) Len() int { return len(g.cells) }

// At returns the cell at scale row r, depth column c. Complexity: O(1).
func (g *Grid[T]) At(r, c int) T { return g.cells[r*g.cols+c] }

// Set stores v at scale row r, depth column c. Complexity: O(1).
func (g *Grid[T]) Set(r, c int, v T) { g.cells[r*g.cols+c] = v }

// AtIndex returns the cell at flat row-major index i. Complexity: O(1).
func (g *Grid[T]) AtIndex(i int) T { return g.cells[i] }

// SetIndex stores v at flat row-major index i. Complexity: O(1).
func (g *Grid[T]) SetIndex(i int, v T) { g.cells[i] = v }

// Index maps (r,c) to a flat row-major index: r*Cols + c. Complexity: O(1).
func (g *Grid[T]) Index(r, c int) int { return r*g.cols + c }

// Coordinate converts a flat row-major index back to (r,c). Complexity: O(1).
func (g *Grid[T]) Coordinate(i int) (r, c int) { return i / g.cols, i % g.cols }

// InBounds reports whether (r,c) lies within the grid. Complexity: O(1).
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Clone returns a deep copy of the grid. Complexity: O(rows×cols).
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{rows: g.rows, cols: g.cols, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Fill sets every cell to v. Complexity: O(rows×cols).
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// SameShape reports whether g and other have identical dimensions.
// Complexity: O(1).
func (g *Grid[T]) SameShape(rows, cols int) bool {
	return g.rows == rows && g.cols == cols
}

// Map returns a new grid whose cells are f applied to each cell of g.
// Complexity: O(rows×cols).
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := &Grid[U]{rows: g.rows, cols: g.cols, cells: make([]U, len(g.cells))}
	for i, v := range g.cells {
		out.cells[i] = f(v)
	}
	return out
}

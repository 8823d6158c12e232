// Package tetris implements the falling-block game-state engine: playfield,
// tetromino movement and rotation, ghost piece, line clearing and game over.
// It has no timer and no external dependencies. Callers drive gravity and
// read the exposed state to paint a view.
package tetris

// Shape identifies one of the seven canonical tetrominoes.
// ShapeNone marks an empty playfield cell.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shapes lists the seven canonical shapes in catalog order.
var Shapes = [...]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "."
	}
}

// Matrix is a square rotation state. True cells are filled.
type Matrix [][]bool

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return len(m)
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r := range m {
		out[r] = append([]bool(nil), m[r]...)
	}
	return out
}

// Rotate returns the matrix turned 90° clockwise: transpose, then reverse
// each row.
func (m Matrix) Rotate() Matrix {
	n := len(m)
	out := make(Matrix, n)
	for r := range n {
		out[r] = make([]bool, n)
		for c := range n {
			out[r][c] = m[n-1-c][r]
		}
	}
	return out
}

// Equal reports whether two matrices have the same size and cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// catalog holds the spawn orientation of every shape.
// The O block is a full 2x2 so rotating it is the identity.
var catalog = map[Shape]Matrix{
	ShapeI: parseMatrix(
		"....",
		"####",
		"....",
		"....",
	),
	ShapeJ: parseMatrix(
		"#..",
		"###",
		"...",
	),
	ShapeL: parseMatrix(
		"..#",
		"###",
		"...",
	),
	ShapeO: parseMatrix(
		"##",
		"##",
	),
	ShapeS: parseMatrix(
		".##",
		"##.",
		"...",
	),
	ShapeT: parseMatrix(
		".#.",
		"###",
		"...",
	),
	ShapeZ: parseMatrix(
		"##.",
		".##",
		"...",
	),
}

// parseMatrix builds a matrix from rows of '#' (filled) and '.' (empty).
func parseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c, ch := range row {
			m[r][c] = ch == '#'
		}
	}
	return m
}

// ShapeMatrix returns a copy of the spawn orientation for s.
// Returns nil for ShapeNone or unknown values.
func ShapeMatrix(s Shape) Matrix {
	m, ok := catalog[s]
	if !ok {
		return nil
	}
	return m.Clone()
}

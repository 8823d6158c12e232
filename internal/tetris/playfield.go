package tetris

// Default playfield dimensions.
const (
	DefaultRows    = 20
	DefaultColumns = 10
)

// Playfield is a Rows x Columns grid of locked cells, indexed [row][column].
// Row 0 is the top.
type Playfield [][]Shape

// NewPlayfield creates an all-empty playfield.
func NewPlayfield(rows, columns int) Playfield {
	p := make(Playfield, rows)
	for r := range p {
		p[r] = make([]Shape, columns)
	}
	return p
}

// Rows returns the number of rows.
func (p Playfield) Rows() int {
	return len(p)
}

// Columns returns the number of columns.
func (p Playfield) Columns() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// InBounds reports whether (row, column) lies inside the grid.
func (p Playfield) InBounds(row, column int) bool {
	return row >= 0 && row < p.Rows() && column >= 0 && column < p.Columns()
}

// Clone returns a deep copy.
func (p Playfield) Clone() Playfield {
	out := make(Playfield, len(p))
	for r := range p {
		out[r] = append([]Shape(nil), p[r]...)
	}
	return out
}

// rowFull reports whether a row has no empty cell.
func rowFull(row []Shape) bool {
	for _, cell := range row {
		if cell == ShapeNone {
			return false
		}
	}
	return true
}

// ClearLines removes every full row at once and inserts the same number of
// empty rows at the top. Remaining rows keep their relative order.
// Returns the new playfield and the number of rows removed.
func ClearLines(p Playfield) (Playfield, int) {
	kept := make([][]Shape, 0, len(p))
	for _, row := range p {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := len(p) - len(kept)
	if cleared == 0 {
		return p, 0
	}

	out := make(Playfield, 0, len(p))
	for range cleared {
		out = append(out, make([]Shape, p.Columns()))
	}
	out = append(out, kept...)
	return out, cleared
}

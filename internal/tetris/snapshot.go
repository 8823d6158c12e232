package tetris

import "strings"

// Snapshot is a comparable capture of the complete engine state, used for
// determinism checks and headless replay output.
type Snapshot struct {
	Field    string // Playfield rows joined by newlines, one letter per cell
	Shape    Shape
	Matrix   string // Active matrix rows joined by '/'
	Row      int
	Column   int
	GhostRow int
	Next     Shape
	Pieces   int
	Lines    int
	GameOver bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Field:    e.field.String(),
		Shape:    e.piece.Shape,
		Matrix:   e.piece.Matrix.String(),
		Row:      e.piece.Row,
		Column:   e.piece.Column,
		GhostRow: e.ghostRow,
		Next:     e.randomizer.Peek(),
		Pieces:   e.stats.Pieces,
		Lines:    e.stats.Lines,
		GameOver: e.over,
	}
}

// String renders the playfield with one letter per locked cell and '.' for
// empty cells.
func (p Playfield) String() string {
	var sb strings.Builder
	sb.Grow(p.Rows() * (p.Columns() + 1))
	for r, row := range p {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// String renders the matrix as '#'/'.' rows joined by '/'.
func (m Matrix) String() string {
	var sb strings.Builder
	for r, row := range m {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

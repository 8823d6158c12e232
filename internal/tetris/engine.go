package tetris

// SpawnRow is the anchor row of every new piece. With the catalog's spawn
// orientations this leaves the lowest filled row of each shape on row 0 and
// the rest hidden above the top.
const SpawnRow = -1

// Point is a playfield coordinate.
type Point struct {
	Row, Column int
}

// Tetromino is the active piece: a shape, its current rotation state and the
// anchor of the matrix's top-left corner in playfield coordinates.
type Tetromino struct {
	Shape  Shape
	Matrix Matrix
	Row    int
	Column int
}

// Cells returns the playfield coordinates of every filled matrix cell when
// the matrix is anchored at (row, column). Rows may be negative.
func (t Tetromino) Cells() []Point {
	return matrixCells(t.Matrix, t.Row, t.Column)
}

func matrixCells(m Matrix, row, column int) []Point {
	cells := make([]Point, 0, 4)
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				cells = append(cells, Point{Row: row + r, Column: column + c})
			}
		}
	}
	return cells
}

// Config sets the playfield dimensions.
type Config struct {
	Rows    int
	Columns int
}

// DefaultConfig returns the canonical 20x10 playfield.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Columns: DefaultColumns}
}

// Stats counts what happened since the engine was created.
type Stats struct {
	Pieces      int // Pieces locked
	Lines       int // Rows cleared in total
	LastCleared int // Rows cleared by the most recent lock
}

// Engine owns the playfield, the active piece and the spawn sequence.
// It is not safe for concurrent use; the owner serializes every call.
type Engine struct {
	field      Playfield
	piece      Tetromino
	ghostRow   int
	ghostCol   int
	randomizer Randomizer
	stats      Stats
	over       bool
}

// New creates an engine with an empty playfield and spawns the first piece.
func New(cfg Config, r Randomizer) *Engine {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Columns <= 0 {
		cfg.Columns = DefaultColumns
	}

	e := &Engine{
		field:      NewPlayfield(cfg.Rows, cfg.Columns),
		randomizer: r,
	}
	e.spawn()
	return e
}

// valid is the single collision predicate. A matrix anchored at
// (row, column) is valid iff every filled cell is inside the columns, above
// the floor, and either above the top or on an empty cell.
func (e *Engine) valid(m Matrix, row, column int) bool {
	rows, columns := e.field.Rows(), e.field.Columns()
	for r := range m {
		for c := range m[r] {
			if !m[r][c] {
				continue
			}
			fr, fc := row+r, column+c
			if fc < 0 || fc >= columns || fr >= rows {
				return false
			}
			if fr >= 0 && e.field[fr][fc] != ShapeNone {
				return false
			}
		}
	}
	return true
}

// MoveLeft shifts the active piece one column left.
// Returns false and leaves state unchanged if the move collides.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the active piece one column right.
// Returns false and leaves state unchanged if the move collides.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dc int) bool {
	if e.over {
		return false
	}
	moved := false
	if e.valid(e.piece.Matrix, e.piece.Row, e.piece.Column+dc) {
		e.piece.Column += dc
		moved = true
	}
	e.updateGhost()
	return moved
}

// MoveDown is the gravity tick and soft drop. It moves the piece one row
// down and returns true, or, if that collides, locks the piece, clears full
// rows, spawns the next piece and returns false.
func (e *Engine) MoveDown() bool {
	if e.over {
		return false
	}
	if e.valid(e.piece.Matrix, e.piece.Row+1, e.piece.Column) {
		e.piece.Row++
		e.updateGhost()
		return true
	}
	e.lock()
	return false
}

// DropDown hard-drops the piece: it falls to the ghost row and locks in the
// same call. Returns the number of rows fallen.
func (e *Engine) DropDown() int {
	if e.over {
		return 0
	}
	rows := 0
	for e.MoveDown() {
		rows++
	}
	return rows
}

// Rotate turns the active piece 90° clockwise around its anchor.
// The rotation is rejected, with no offset search, if the rotated matrix
// collides.
func (e *Engine) Rotate() bool {
	if e.over {
		return false
	}
	rotated := e.piece.Matrix.Rotate()
	if !e.valid(rotated, e.piece.Row, e.piece.Column) {
		return false
	}
	e.piece.Matrix = rotated
	e.updateGhost()
	return true
}

// lock writes the active piece into the playfield, clears full rows and
// spawns the next piece. Cells above the top are dropped; only the spawn
// decides game over.
func (e *Engine) lock() {
	for _, p := range e.piece.Cells() {
		if p.Row < 0 {
			continue
		}
		e.field[p.Row][p.Column] = e.piece.Shape
	}
	e.stats.Pieces++

	var cleared int
	e.field, cleared = ClearLines(e.field)
	e.stats.Lines += cleared
	e.stats.LastCleared = cleared

	e.spawn()
}

// spawn places the next shape at the top-center anchor. A spawn that
// already collides ends the game.
func (e *Engine) spawn() {
	shape := e.randomizer.Next()
	m := ShapeMatrix(shape)
	e.piece = Tetromino{
		Shape:  shape,
		Matrix: m,
		Row:    SpawnRow,
		Column: e.field.Columns()/2 - m.Size()/2,
	}
	if !e.valid(e.piece.Matrix, e.piece.Row, e.piece.Column) {
		e.over = true
	}
	e.updateGhost()
}

// updateGhost recomputes the landing row by simulated downward shifts.
func (e *Engine) updateGhost() {
	row := e.piece.Row
	for e.valid(e.piece.Matrix, row+1, e.piece.Column) {
		row++
	}
	e.ghostRow = row
	e.ghostCol = e.piece.Column
}

// Rows returns the playfield height.
func (e *Engine) Rows() int {
	return e.field.Rows()
}

// Columns returns the playfield width.
func (e *Engine) Columns() int {
	return e.field.Columns()
}

// Cell returns the locked shape at (row, column), or ShapeNone when the cell
// is empty or out of bounds.
func (e *Engine) Cell(row, column int) Shape {
	if !e.field.InBounds(row, column) {
		return ShapeNone
	}
	return e.field[row][column]
}

// Playfield returns a copy of the locked cells.
func (e *Engine) Playfield() Playfield {
	return e.field.Clone()
}

// Active returns a copy of the active piece.
func (e *Engine) Active() Tetromino {
	t := e.piece
	t.Matrix = t.Matrix.Clone()
	return t
}

// ActiveCells returns the playfield coordinates of the active piece.
// Cells above the top have negative rows.
func (e *Engine) ActiveCells() []Point {
	return e.piece.Cells()
}

// Ghost returns the landing anchor of the active piece.
func (e *Engine) Ghost() (row, column int) {
	return e.ghostRow, e.ghostCol
}

// GhostCells returns the playfield coordinates of the ghost piece.
func (e *Engine) GhostCells() []Point {
	return matrixCells(e.piece.Matrix, e.ghostRow, e.ghostCol)
}

// Next returns the shape that will spawn after the active piece locks.
func (e *Engine) Next() Shape {
	return e.randomizer.Peek()
}

// Stats returns lock and line counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// IsGameOver reports whether the game has ended. Once true it stays true
// and every mutating call is a no-op.
func (e *Engine) IsGameOver() bool {
	return e.over
}

package tetris

import "testing"

func TestClearLinesRemovesFullRowsAtOnce(t *testing.T) {
	p := NewPlayfield(DefaultRows, DefaultColumns)
	for r := range p {
		p[r][r%DefaultColumns] = ShapeT
	}
	for _, r := range []int{2, 5} {
		for c := range p[r] {
			p[r][c] = ShapeI
		}
	}

	// Expected: two empty rows, then every untouched row in order
	expected := NewPlayfield(2, DefaultColumns)
	for r := range p {
		if r == 2 || r == 5 {
			continue
		}
		expected = append(expected, append([]Shape(nil), p[r]...))
	}
	want := expected.String()

	out, cleared := ClearLines(p)

	if cleared != 2 {
		t.Errorf("ClearLines cleared %d rows, want 2", cleared)
	}
	if out.Rows() != DefaultRows {
		t.Errorf("ClearLines returned %d rows, want %d", out.Rows(), DefaultRows)
	}
	if got := out.String(); got != want {
		t.Errorf("ClearLines result:\n%s\nwant:\n%s", got, want)
	}
}

func TestClearLines(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		want    []string
		cleared int
	}{
		{
			name:    "nothing full",
			rows:    []string{"....", "I...", "II.I"},
			want:    []string{"....", "I...", "II.I"},
			cleared: 0,
		},
		{
			name:    "bottom row",
			rows:    []string{"....", "T...", "TTTT"},
			want:    []string{"....", "....", "T..."},
			cleared: 1,
		},
		{
			name:    "non adjacent rows",
			rows:    []string{"SSSS", "..Z.", "OOOO", "J..."},
			want:    []string{"....", "....", "..Z.", "J..."},
			cleared: 2,
		},
		{
			name:    "everything full",
			rows:    []string{"LLLL", "IIII"},
			want:    []string{"....", "...."},
			cleared: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, cleared := ClearLines(parsePlayfield(tc.rows...))
			if cleared != tc.cleared {
				t.Errorf("cleared = %d, want %d", cleared, tc.cleared)
			}
			if got, want := out.String(), parsePlayfield(tc.want...).String(); got != want {
				t.Errorf("ClearLines:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestPlayfieldCloneIsDeep(t *testing.T) {
	p := NewPlayfield(2, 2)
	c := p.Clone()
	c[0][0] = ShapeZ
	if p[0][0] != ShapeNone {
		t.Error("Clone should not share rows")
	}
}

func TestPlayfieldInBounds(t *testing.T) {
	p := NewPlayfield(20, 10)
	tests := []struct {
		row, col int
		expected bool
	}{
		{0, 0, true},
		{19, 9, true},
		{-1, 0, false},
		{20, 0, false},
		{0, -1, false},
		{0, 10, false},
	}
	for _, tc := range tests {
		if got := p.InBounds(tc.row, tc.col); got != tc.expected {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.expected)
		}
	}
}

// parsePlayfield builds a playfield from letter rows; '.' is empty.
func parsePlayfield(rows ...string) Playfield {
	byLetter := make(map[rune]Shape)
	for _, s := range Shapes {
		byLetter[rune(s.String()[0])] = s
	}
	p := make(Playfield, len(rows))
	for r, row := range rows {
		p[r] = make([]Shape, len(row))
		for c, ch := range row {
			p[r][c] = byLetter[ch]
		}
	}
	return p
}

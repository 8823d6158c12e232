package tetris

import "testing"

func TestBagDealsEveryShapeOnce(t *testing.T) {
	b := NewBag(12345)

	for bag := range 5 {
		seen := make(map[Shape]int)
		for range len(Shapes) {
			seen[b.Next()]++
		}
		for _, s := range Shapes {
			if seen[s] != 1 {
				t.Errorf("bag %d: shape %v dealt %d times, want 1", bag, s, seen[s])
			}
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	a, b := NewBag(99), NewBag(99)
	for i := range 50 {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestPeekMatchesNext(t *testing.T) {
	randomizers := map[string]Randomizer{
		"bag":      NewBag(1),
		"uniform":  NewUniform(1),
		"sequence": NewSequence(ShapeI, ShapeO),
	}

	for name, r := range randomizers {
		t.Run(name, func(t *testing.T) {
			for i := range 20 {
				peek := r.Peek()
				if next := r.Next(); next != peek {
					t.Fatalf("draw %d: Peek() = %v, Next() = %v", i, peek, next)
				}
			}
		})
	}
}

func TestUniformStaysInCatalog(t *testing.T) {
	u := NewUniform(7)
	for range 200 {
		s := u.Next()
		if ShapeMatrix(s) == nil {
			t.Fatalf("uniform produced unknown shape %v", s)
		}
	}
}

func TestNewRandomizer(t *testing.T) {
	tests := []struct {
		policy  string
		wantErr bool
	}{
		{PolicyBag, false},
		{PolicyUniform, false},
		{"", false},
		{"nes", true},
	}

	for _, tc := range tests {
		r, err := NewRandomizer(tc.policy, 1)
		if (err != nil) != tc.wantErr {
			t.Errorf("NewRandomizer(%q) error = %v, wantErr %v", tc.policy, err, tc.wantErr)
		}
		if err == nil && r == nil {
			t.Errorf("NewRandomizer(%q) returned nil randomizer", tc.policy)
		}
	}
}

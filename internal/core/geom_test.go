package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCenterIn(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := outer.CenterIn(6, 4)

	if inner != NewRect(7, 3, 6, 4) {
		t.Errorf("CenterIn(6, 4) = %+v, expected {7 3 6 4}", inner)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a <= ActionPause; a++ {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
	if got := ParseAction("Jump"); got != ActionNone {
		t.Errorf("ParseAction(\"Jump\") = %v, expected None", got)
	}
}

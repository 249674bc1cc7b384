package core

import "testing"

func TestRectContains(t *testing.T) {
	// A 12x5 overlay box centered on an 80x24 screen.
	box := NewRect((80-12)/2, (24-5)/2, 12, 5)

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 34, 9, true},
		{"bottom-right cell", 45, 13, true},
		{"right edge is exclusive", 46, 13, false},
		{"bottom edge is exclusive", 45, 14, false},
		{"left of box", 33, 10, false},
		{"above box", 40, 8, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectCenterAndEdges(t *testing.T) {
	cases := []struct {
		r                    Rect
		right, bottom, cx, cy int
	}{
		{NewRect(0, 0, 80, 24), 80, 24, 40, 12},
		{NewRect(34, 9, 12, 5), 46, 14, 40, 11},
		{NewRect(3, 2, 1, 1), 4, 3, 3, 2},
	}

	for _, tc := range cases {
		if tc.r.Right() != tc.right || tc.r.Bottom() != tc.bottom {
			t.Errorf("%+v: edges = (%d, %d), want (%d, %d)", tc.r, tc.r.Right(), tc.r.Bottom(), tc.right, tc.bottom)
		}
		cx, cy := tc.r.Center()
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("%+v: Center() = (%d, %d), want (%d, %d)", tc.r, cx, cy, tc.cx, tc.cy)
		}
	}
}

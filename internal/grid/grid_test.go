package grid

import "testing"

func TestNewGridIsEmpty(t *testing.T) {
	g := New()
	for x := 0; x < Dim; x++ {
		for z := 0; z < Dim; z++ {
			if got := g.Column(x, z); got != (Column{}) {
				t.Fatalf("Column(%d, %d) = %+v, want zero column", x, z, got)
			}
		}
	}
	if n := g.Filled(); n != 0 {
		t.Errorf("Filled() = %d, want 0", n)
	}
}

func TestSetHeightClamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero", 0, 0},
		{"mid", 7, 7},
		{"max", MaxHeight, MaxHeight},
		{"negative", -3, 0},
		{"far negative", -1000, 0},
		{"above max", MaxHeight + 1, MaxHeight},
		{"far above max", 1 << 20, MaxHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.SetHeight(4, 9, tt.in)
			if got := g.Height(4, 9); got != tt.want {
				t.Errorf("SetHeight(%d): Height = %d, want %d", tt.in, got, tt.want)
			}
			// Repeating the same write changes nothing.
			g.SetHeight(4, 9, tt.in)
			if got := g.Height(4, 9); got != tt.want {
				t.Errorf("second SetHeight(%d): Height = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestWritesDoNotLeakAcrossCells(t *testing.T) {
	g := New()
	want := map[[2]int]Column{}
	step := 0
	for x := 0; x < Dim; x += 3 {
		for z := 0; z < Dim; z += 5 {
			step++
			h := (step * 7) % (MaxHeight + 5)
			c := step % 8
			g.SetHeight(x, z, h)
			g.SetColour(x, z, c)
			want[[2]int{x, z}] = Column{Height: ClampHeight(h), Colour: c}
		}
	}
	for x := 0; x < Dim; x++ {
		for z := 0; z < Dim; z++ {
			got := g.Column(x, z)
			if got != want[[2]int{x, z}] {
				t.Errorf("Column(%d, %d) = %+v, want %+v", x, z, got, want[[2]int{x, z}])
			}
		}
	}
}

func TestSetColumnClampsHeight(t *testing.T) {
	g := New()
	g.SetColumn(0, 15, Column{Height: 99, Colour: 5})
	if got := g.Column(0, 15); got != (Column{Height: MaxHeight, Colour: 5}) {
		t.Errorf("Column = %+v", got)
	}
}

func TestReset(t *testing.T) {
	g := New()
	g.SetColumn(1, 1, Column{Height: 3, Colour: 2})
	g.SetColumn(15, 0, Column{Height: 20, Colour: 7})
	if n := g.Filled(); n != 23 {
		t.Fatalf("Filled() = %d, want 23", n)
	}
	g.Reset()
	for x := 0; x < Dim; x++ {
		for z := 0; z < Dim; z++ {
			if g.Height(x, z) != 0 || g.Colour(x, z) != 0 {
				t.Fatalf("cell (%d, %d) not reset: %+v", x, z, g.Column(x, z))
			}
		}
	}
}

func TestClampCoord(t *testing.T) {
	for in, want := range map[int]int{-1: 0, 0: 0, 8: 8, Dim - 1: Dim - 1, Dim: Dim - 1} {
		if got := ClampCoord(in); got != want {
			t.Errorf("ClampCoord(%d) = %d, want %d", in, got, want)
		}
	}
}

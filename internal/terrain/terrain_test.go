package terrain

import (
	"testing"

	"voxed/internal/grid"
	"voxed/internal/palette"
)

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	a, b := Generate(opts), Generate(opts)
	if *a != *b {
		t.Error("same seed produced different terrain")
	}
	opts.Seed = 43
	if c := Generate(opts); *c == *a {
		t.Error("different seeds produced identical terrain")
	}
}

func TestGenerateStaysInRange(t *testing.T) {
	tests := []struct {
		name string
		max  int
	}{
		{"default", 0},
		{"low", 3},
		{"full", grid.MaxHeight},
		{"over", grid.MaxHeight * 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = 7
			opts.MaxHeight = tt.max
			limit := tt.max
			if limit <= 0 {
				limit = DefaultOptions().MaxHeight
			}
			limit = grid.ClampHeight(limit)
			hm := Generate(opts)
			for x := range hm {
				for z := range hm[x] {
					col := hm[x][z]
					if col.Height < 0 || col.Height > limit {
						t.Fatalf("(%d,%d) height %d outside [0,%d]", x, z, col.Height, limit)
					}
					if col.Colour < 0 || col.Colour >= palette.NumColour {
						t.Fatalf("(%d,%d) colour %d out of palette", x, z, col.Colour)
					}
				}
			}
		})
	}
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		x := float32(i) * 0.37
		y := float32(i) * -0.91
		if v := fractalValueNoise2D(x, y, 99, 5, 2, 0.5); v < 0 || v > 1 {
			t.Fatalf("noise(%v,%v) = %v", x, y, v)
		}
	}
}

func TestBand(t *testing.T) {
	tests := map[float32]int{0: 0, 0.124: 0, 0.5: 4, 0.99: 7, 1: 7}
	for in, want := range tests {
		if got := band(in); got != want {
			t.Errorf("band(%v) = %d, want %d", in, got, want)
		}
	}
}

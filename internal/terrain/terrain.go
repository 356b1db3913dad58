package terrain

import (
	"time"

	"github.com/chewxy/math32"

	"voxed/internal/grid"
	"voxed/internal/palette"
)

// Options controls procedural column generation.
// Seed == 0 uses a time-based seed. Octaves, Frequency, Lacunarity and Gain shape the fractal noise.
// MaxHeight caps the tallest column (clamped to grid.MaxHeight).
type Options struct {
	Seed       int64
	MaxHeight  int
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns gently rolling hills about half the grid's height limit.
func DefaultOptions() Options {
	return Options{
		Seed:       0,
		MaxHeight:  grid.MaxHeight / 2,
		Octaves:    4,
		Frequency:  0.15,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MaxHeight <= 0 {
		o.MaxHeight = d.MaxHeight
	}
	o.MaxHeight = grid.ClampHeight(o.MaxHeight)
	if o.Octaves <= 0 {
		o.Octaves = d.Octaves
	}
	if o.Frequency <= 0 {
		o.Frequency = d.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Generate builds a full set of columns from fractal value noise. Heights fall in
// [0, MaxHeight]; colours band by height across the whole palette, low to high.
func Generate(opts Options) *[grid.Dim][grid.Dim]grid.Column {
	opts = opts.normalized()
	var out [grid.Dim][grid.Dim]grid.Column
	for x := 0; x < grid.Dim; x++ {
		for z := 0; z < grid.Dim; z++ {
			n := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if math32.IsNaN(n) || math32.IsInf(n, 0) {
				n = 0
			}
			n = math32.Min(math32.Max(n, 0), 1)
			h := int(math32.Floor(n*float32(opts.MaxHeight) + 0.5))
			out[x][z] = grid.Column{Height: h, Colour: band(n)}
		}
	}
	return &out
}

// band maps noise in [0,1] onto a palette index.
func band(n float32) int {
	return min(int(n*palette.NumColour), palette.NumColour-1)
}

// fractalValueNoise2D layers octaves of smooth value noise. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude := float32(1)
	freq := float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D interpolates hashed lattice values with smoothstep easing. Output is in [0,1].
func valueNoise2D(x, y float32, seed int32) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int32(fx), int32(fy)
	sx := smoothStep(x - fx)
	sy := smoothStep(y - fy)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)
	return lerp(lerp(v00, v10, sx), lerp(v01, v11, sx), sy)
}

// hash2D maps a lattice point to a deterministic value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is 3t² - 2t³ on [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

package lattice

import (
	"math"
	"math/rand"
)

// Field is an L×L height field stored row-major. Coordinates wrap
// toroidally, so every cell has four neighbors.
type Field struct {
	L    int
	data []float64
}

// New allocates a zero field of size L×L.
func New(l int) (*Field, error) {
	if l <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &Field{L: l, data: make([]float64, l*l)}, nil
}

// Uniform allocates a field with every cell set to h0.
func Uniform(l int, h0 float64) (*Field, error) {
	f, err := New(l)
	if err != nil {
		return nil, err
	}
	for i := range f.data {
		f.data[i] = h0
	}
	return f, nil
}

// Random allocates a field with heights drawn uniformly from [0, bound).
// The seed is explicit: the same seed always produces the same field.
func Random(l int, bound float64, seed int64) (*Field, error) {
	f, err := New(l)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range f.data {
		f.data[i] = rng.Float64() * bound
	}
	return f, nil
}

// FromSlice wraps an existing row-major slice as a field. The slice length
// must be a perfect square; the field takes ownership of the slice.
func FromSlice(data []float64) (*Field, error) {
	if len(data) == 0 {
		return nil, ErrNonPositiveSize
	}
	l := int(math.Round(math.Sqrt(float64(len(data)))))
	if l*l != len(data) {
		return nil, ErrNotSquare
	}
	return &Field{L: l, data: data}, nil
}

// Cells exposes the backing slice so callers can read or write directly.
func (f *Field) Cells() []float64 { return f.data }

// Len returns the cell count L².
func (f *Field) Len() int { return len(f.data) }

// Index returns the linear index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.L + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (f *Field) Wrap(x, y int) (int, int) {
	x = (x%f.L + f.L) % f.L
	y = (y%f.L + f.L) % f.L
	return x, y
}

// At returns the height at (x, y) with wrapping.
func (f *Field) At(x, y int) float64 {
	x, y = f.Wrap(x, y)
	return f.data[y*f.L+x]
}

// Set writes the height at (x, y) with wrapping.
func (f *Field) Set(x, y int, v float64) {
	x, y = f.Wrap(x, y)
	f.data[y*f.L+x] = v
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{L: f.L, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}

// Sum returns the total field mass.
func (f *Field) Sum() float64 {
	s := 0.0
	for _, v := range f.data {
		s += v
	}
	return s
}

// Mean returns the average height.
func (f *Field) Mean() float64 {
	if len(f.data) == 0 {
		return 0
	}
	return f.Sum() / float64(len(f.data))
}

// MinMax returns the smallest and largest heights.
func (f *Field) MinMax() (float64, float64) {
	min, max := f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// MaxAbs returns the largest height magnitude.
func (f *Field) MaxAbs() float64 {
	m := 0.0
	for _, v := range f.data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Roughness returns the RMS interface width: the standard deviation of the
// heights about their mean.
func (f *Field) Roughness() float64 {
	mean := f.Mean()
	s := 0.0
	for _, v := range f.data {
		d := v - mean
		s += d * d
	}
	return math.Sqrt(s / float64(len(f.data)))
}

// IsValid reports whether every height is finite.
func (f *Field) IsValid() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Row returns a copy of row y (useful for cross-section plots).
func (f *Field) Row(y int) []float64 {
	_, y = f.Wrap(0, y)
	row := make([]float64, f.L)
	copy(row, f.data[y*f.L:(y+1)*f.L])
	return row
}

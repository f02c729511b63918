package lattice

// Laplacian returns the discrete 5-point Laplacian of the field with
// periodic wraparound. The stencil weights sum to zero, so the result has
// zero total mass regardless of the input.
func (f *Field) Laplacian() *Field {
	out := &Field{L: f.L, data: make([]float64, len(f.data))}
	f.LaplacianInto(out.data)
	return out
}

// LaplacianInto writes the Laplacian into dst, which must have L² cells.
func (f *Field) LaplacianInto(dst []float64) {
	l := f.L
	for y := 0; y < l; y++ {
		up := ((y-1)%l + l) % l * l
		down := (y + 1) % l * l
		row := y * l
		for x := 0; x < l; x++ {
			left := ((x-1)%l + l) % l
			right := (x + 1) % l
			dst[row+x] = f.data[row+left] + f.data[row+right] +
				f.data[up+x] + f.data[down+x] - 4*f.data[row+x]
		}
	}
}

// GradientSquared returns |∇h|² via central differences with half-step
// spacing, i.e. ((h[x+1]-h[x-1])/2)² + ((h[y+1]-h[y-1])/2)² per cell.
//
// Both axes wrap periodically, the same convention as the Laplacian. The
// original notebooks left the gradient's boundary handling unspecified;
// picking the periodic wrap keeps the stepper translation invariant.
func (f *Field) GradientSquared() *Field {
	out := &Field{L: f.L, data: make([]float64, len(f.data))}
	f.GradientSquaredInto(out.data)
	return out
}

// GradientSquaredInto writes the squared gradient magnitude into dst.
func (f *Field) GradientSquaredInto(dst []float64) {
	l := f.L
	for y := 0; y < l; y++ {
		up := ((y-1)%l + l) % l * l
		down := (y + 1) % l * l
		row := y * l
		for x := 0; x < l; x++ {
			left := ((x-1)%l + l) % l
			right := (x + 1) % l
			gx := (f.data[row+right] - f.data[row+left]) / 2
			gy := (f.data[down+x] - f.data[up+x]) / 2
			dst[row+x] = gx*gx + gy*gy
		}
	}
}

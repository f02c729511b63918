package lattice

import "sync"

// FieldPool recycles L²-sized scratch slices for operator temporaries.
type FieldPool struct {
	pool sync.Pool
	size int
}

func NewFieldPool(cells int) *FieldPool {
	return &FieldPool{
		size: cells,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]float64, cells)
			},
		},
	}
}

func (p *FieldPool) Get() []float64 {
	return p.pool.Get().([]float64)
}

func (p *FieldPool) Put(s []float64) {
	if len(s) == p.size {
		for i := range s {
			s[i] = 0
		}
		p.pool.Put(s)
	}
}

func (p *FieldPool) GetAndCopy(src []float64) []float64 {
	dst := p.Get()
	copy(dst, src)
	return dst
}

package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles cell buffers between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a cleared grid of the given dimensions from the pool
func (p *GridPool) Get(dims Dims) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(dims)
	return g
}

// Put returns a grid to the pool as-is; Get clears it on the way out
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}

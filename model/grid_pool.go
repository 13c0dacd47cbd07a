package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids and their double buffers across restarts
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

// Get retrieves a grid from the pool, resizing it and applying the default seed
func (p *GridPool) Get(height, width int) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.Reset(height, width); err != nil {
		p.pool.Put(g)
		return nil, errors.Wrap(err, "[GridPool.Get]")
	}
	g.Seed()
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	// Clearing bumps the epoch, so views issued before Put are invalidated
	g.Clear()
	p.pool.Put(g)
}

package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Layout(t *testing.T) {
	// 3x5 = 15 cells in 2 bytes. Linear indices 3, 8 and 14 plus the origin.
	g := gridWith(t, 3, 5, cell{0, 0}, cell{0, 3}, cell{1, 3}, cell{2, 4})

	v := g.View()
	require.Equal(t, 2, v.Len())
	assert.Equal(t, []byte{0x09, 0x41}, v.Bytes())

	for i := 0; i < 15; i++ {
		want := i == 0 || i == 3 || i == 8 || i == 14
		assert.Equal(t, want, v.Alive(i), "bit %d", i)
	}
	assert.False(t, v.Alive(-1))
	assert.False(t, v.Alive(16))
}

func TestView_ZeroCopy(t *testing.T) {
	g, err := NewGrid(8, 8)
	require.NoError(t, err)

	v := g.View()
	assert.Same(t, &g.cells[0], &v.Bytes()[0])
}

func TestView_Invalidation(t *testing.T) {
	mutations := map[string]func(t *testing.T, g *Grid){
		"tick":    func(t *testing.T, g *Grid) { g.Tick() },
		"toggle":  func(t *testing.T, g *Grid) { require.NoError(t, g.Toggle(1, 1)) },
		"set":     func(t *testing.T, g *Grid) { require.NoError(t, g.Set(1, 1, true)) },
		"clear":   func(t *testing.T, g *Grid) { g.Clear() },
		"seed":    func(t *testing.T, g *Grid) { g.Seed() },
		"glider":  func(t *testing.T, g *Grid) { g.AddGlider(0, 0) },
		"reset":   func(t *testing.T, g *Grid) { require.NoError(t, g.Reset(4, 4)) },
		"blinker": func(t *testing.T, g *Grid) { g.AddBlinker(2, 2) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			g, err := NewGrid(6, 6)
			require.NoError(t, err)

			v := g.View()
			require.True(t, v.Valid())
			require.NoError(t, v.Check())

			mutate(t, g)
			assert.False(t, v.Valid())
			assert.True(t, errors.Is(v.Check(), ErrStaleView))
			assert.True(t, g.View().Valid())
		})
	}
}

func TestView_ReadsDoNotInvalidate(t *testing.T) {
	g, err := NewGrid(6, 6)
	require.NoError(t, err)
	v := g.View()

	_ = g.Render()
	_ = g.Hash()
	_ = g.CountLivingCells()
	_, err = g.Get(2, 2)
	require.NoError(t, err)
	_, err = g.LiveNeighbors(2, 2)
	require.NoError(t, err)
	assert.Error(t, g.Toggle(6, 6))

	assert.True(t, v.Valid())
}

func TestView_ZeroValue(t *testing.T) {
	var v View
	assert.False(t, v.Valid())
	assert.Zero(t, v.Len())
	assert.True(t, errors.Is(v.Check(), ErrStaleView))
}

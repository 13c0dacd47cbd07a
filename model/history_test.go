package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_EmptyIsNotStagnant(t *testing.T) {
	g := gridWith(t, 6, 6, cell{2, 2}, cell{2, 3}, cell{3, 2}, cell{3, 3})
	h := NewHistory(0)

	assert.False(t, h.IsStagnant(g))
	assert.Zero(t, h.Len())
}

func TestHistory_StillLife(t *testing.T) {
	g := gridWith(t, 6, 6, cell{2, 2}, cell{2, 3}, cell{3, 2}, cell{3, 3})
	h := NewHistory(5)

	h.Record(g)
	g.Tick()
	assert.True(t, h.IsStagnant(g))
}

func TestHistory_Oscillator(t *testing.T) {
	g := gridWith(t, 5, 5, cell{2, 1}, cell{2, 2}, cell{2, 3})
	h := NewHistory(5)

	h.Record(g)
	g.Tick()
	assert.False(t, h.IsStagnant(g))
	h.Record(g)
	g.Tick()
	assert.True(t, h.IsStagnant(g))
}

func TestHistory_GliderIsNotStagnant(t *testing.T) {
	g := emptyGrid(t, 20, 20)
	g.AddGlider(2, 2)
	h := NewHistory(5)

	for n := 0; n < 8; n++ {
		h.Record(g)
		g.Tick()
		assert.False(t, h.IsStagnant(g))
	}
}

func TestHistory_BoundedAndReset(t *testing.T) {
	g := emptyGrid(t, 20, 20)
	g.AddGlider(2, 2)
	h := NewHistory(3)

	for n := 0; n < 10; n++ {
		h.Record(g)
		g.Tick()
	}
	assert.Equal(t, 3, h.Len())

	h.Reset()
	assert.Zero(t, h.Len())
}

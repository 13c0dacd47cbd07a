package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names accepted by ApplyPattern.
const (
	PatternFormula = "formula"
	PatternRandom  = "random"
	PatternGliders = "gliders"
	PatternEmpty   = "empty"
)

// PatternNames lists every pattern ApplyPattern understands.
var PatternNames = []string{PatternFormula, PatternRandom, PatternGliders, PatternEmpty}

var gliderPattern = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// seeded reports the initial state of cell i: alive when exactly one of
// i%2 == 0 and i%7 == 0 holds.
func seeded(i int) bool {
	return (i%2 == 0) != (i%7 == 0)
}

// Seed replaces the grid contents with the deterministic starting pattern.
// Grids of equal dimensions always seed identically.
func (g *Grid) Seed() {
	clear(g.cells)
	for i := 0; i < g.height*g.width; i++ {
		if seeded(i) {
			g.put(i, true)
		}
	}
	g.epoch++
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	clear(g.cells)
	for i := 0; i < g.height*g.width; i++ {
		if rng.Float64() < density {
			g.put(i, true)
		}
	}
	g.epoch++
}

// putWrapped sets a cell, wrapping coordinates around the torus.
func (g *Grid) putWrapped(row, col int, alive bool) {
	r := ((row % g.height) + g.height) % g.height
	c := ((col % g.width) + g.width) % g.width
	g.put(r*g.width+c, alive)
}

// AddGlider adds a glider pattern with its top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	for dy, line := range gliderPattern {
		for dx, cell := range line {
			g.putWrapped(row+dy, col+dx, cell)
		}
	}
	g.epoch++
}

// AddBlinker adds a horizontal blinker starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	for dx := 0; dx < 3; dx++ {
		g.putWrapped(row, col+dx, true)
	}
	g.epoch++
}

// ApplyPattern replaces the grid contents with a named pattern.
// rng and density are only consulted by PatternRandom.
func (g *Grid) ApplyPattern(name string, rng *rand.Rand, density float64) error {
	switch name {
	case PatternFormula:
		g.Seed()
	case PatternRandom:
		if rng == nil {
			return errors.New("[ApplyPattern] random pattern requires a source")
		}
		g.Randomize(rng, density)
	case PatternGliders:
		g.Clear()
		g.addInterestingPatterns()
	case PatternEmpty:
		g.Clear()
	default:
		return errors.Wrapf(ErrUnknownPattern, "[ApplyPattern] %q", name)
	}
	return nil
}

// addInterestingPatterns places gliders and blinkers spread over the board.
func (g *Grid) addInterestingPatterns() {
	g.AddGlider(1, 1)
	if g.width >= 20 && g.height >= 15 {
		g.AddGlider(1, g.width-8)
	}
	g.AddBlinker(g.height/4, g.width/4)
	if g.width >= 30 {
		g.AddBlinker(3*g.height/4, 3*g.width/4)
	}
}

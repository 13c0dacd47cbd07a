package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol/rules"
)

const (
	glyphAlive = "◼"
	glyphDead  = "◻"
)

// Grid is a toroidal Game of Life board stored one bit per cell.
//
// Cell (row, col) has linear index row*width+col and lives in bit index%8
// (least significant first) of byte index/8. Bits past width*height are always 0.
//
// A Grid is not safe for concurrent use. Callers serialize every call, and any
// View obtained from the grid is invalidated by the next mutating call.
type Grid struct {
	height int
	width  int
	cells  []byte // current generation
	next   []byte // scratch generation, swapped with cells on Tick
	epoch  uint64
}

// byteLen is ceil(height*width/8).
func byteLen(height, width int) int {
	return (height*width + 7) / 8
}

func validDimensions(height, width int) bool {
	return height > 0 && width > 0 && height <= (math.MaxInt-7)/width
}

// NewGrid creates a grid with the given dimensions, seeded with the
// deterministic pattern described by Seed.
func NewGrid(height, width int) (*Grid, error) {
	g := &Grid{}
	if err := g.Reset(height, width); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	g.Seed()

	Logger().Debug("grid created",
		zap.Int("height", height),
		zap.Int("width", width),
		zap.Int("bytes", len(g.cells)),
	)
	return g, nil
}

// Reset resizes the grid to new dimensions and kills every cell.
// Existing buffers are reused when they are large enough.
func (g *Grid) Reset(height, width int) error {
	if !validDimensions(height, width) {
		return errors.Wrapf(ErrInvalidDimensions, "height=%d width=%d", height, width)
	}
	n := byteLen(height, width)
	g.cells = resize(g.cells, n)
	g.next = resize(g.next, n)
	g.height = height
	g.width = width
	g.epoch++
	return nil
}

func resize(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Dimensions returns (height, width).
func (g *Grid) Dimensions() (int, int) {
	return g.height, g.width
}

// Epoch returns a counter that changes on every mutation of the grid.
func (g *Grid) Epoch() uint64 {
	return g.epoch
}

func (g *Grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d, %d) outside %dx%d", row, col, g.height, g.width)
	}
	return row*g.width + col, nil
}

func (g *Grid) alive(idx int) bool {
	return g.cells[idx>>3]&(1<<(idx&7)) != 0
}

func (g *Grid) put(idx int, alive bool) {
	if alive {
		g.cells[idx>>3] |= 1 << (idx & 7)
	} else {
		g.cells[idx>>3] &^= 1 << (idx & 7)
	}
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, errors.Wrap(err, "[Get]")
	}
	return g.alive(idx), nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	idx, err := g.index(row, col)
	if err != nil {
		return errors.Wrap(err, "[Set]")
	}
	g.put(idx, alive)
	g.epoch++
	return nil
}

// Toggle inverts a single cell. Out-of-range coordinates leave the grid untouched.
func (g *Grid) Toggle(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		Logger().Debug("toggle rejected", zap.Int("row", row), zap.Int("col", col), zap.Error(err))
		return errors.Wrap(err, "[Toggle]")
	}
	g.cells[idx>>3] ^= 1 << (idx & 7)
	g.epoch++
	return nil
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
	g.epoch++
}

// liveNeighborCount counts live cells among the 8 toroidally wrapped neighbors.
// row and col must already be in range.
func (g *Grid) liveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.height) % g.height
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + g.width) % g.width
			if g.alive(r*g.width + c) {
				count++
			}
		}
	}
	return count
}

// LiveNeighbors returns the number of live neighbors of a cell, wrapping at the edges.
func (g *Grid) LiveNeighbors(row, col int) (int, error) {
	if _, err := g.index(row, col); err != nil {
		return 0, errors.Wrap(err, "[LiveNeighbors]")
	}
	return g.liveNeighborCount(row, col), nil
}

// Tick advances the grid by one generation.
//
// The next generation is computed entirely into the scratch buffer from the
// current one, then the two buffers are swapped. Tick never allocates.
func (g *Grid) Tick() {
	clear(g.next)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := row*g.width + col
			if rules.ApplyConwayRules(g.liveNeighborCount(row, col), g.alive(idx)) {
				g.next[idx>>3] |= 1 << (idx & 7)
			}
		}
	}
	g.cells, g.next = g.next, g.cells
	g.epoch++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, b := range g.cells {
		count += bits.OnesCount8(b)
	}
	return
}

// Hash returns an MD5 digest of the current cell buffer
func (g *Grid) Hash() string {
	sum := md5.Sum(g.cells)
	return fmt.Sprintf("%x", sum)
}

// Render returns one line per row, ◼ for a live cell and ◻ for a dead one.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*len(glyphAlive) + 1))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.alive(row*g.width + col) {
				b.WriteString(glyphAlive)
			} else {
				b.WriteString(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) String() string {
	return g.Render()
}

package model

import "github.com/pkg/errors"

// View is a borrowed, read-only window onto a grid's current cell buffer.
//
// No copy is made: Bytes aliases the grid's storage, laid out as documented
// on Grid. A View is valid only until the next mutating call on its grid
// (Tick, Toggle, Set, Clear, Reset or any pattern). After that the memory it
// references may hold a different generation or be reused as scratch space.
// Readers must not retain a View across engine calls and must never write
// through it.
type View struct {
	grid  *Grid
	data  []byte
	epoch uint64
}

// View returns a zero-copy view of the current generation.
func (g *Grid) View() View {
	return View{grid: g, data: g.cells, epoch: g.epoch}
}

// Bytes returns the borrowed buffer. It must be treated as read-only.
func (v View) Bytes() []byte {
	return v.data
}

// Len is ceil(width*height/8).
func (v View) Len() int {
	return len(v.data)
}

// Epoch returns the grid epoch the view was issued at.
func (v View) Epoch() uint64 {
	return v.epoch
}

// Valid reports whether the grid is unchanged since the view was issued.
func (v View) Valid() bool {
	return v.grid != nil && v.grid.epoch == v.epoch
}

// Check returns ErrStaleView if the view is no longer valid.
func (v View) Check() error {
	if !v.Valid() {
		return errors.Wrapf(ErrStaleView, "issued at epoch %d", v.epoch)
	}
	return nil
}

// Alive decodes bit i (row*width+col) from the view.
func (v View) Alive(i int) bool {
	if i < 0 || i>>3 >= len(v.data) {
		return false
	}
	return v.data[i>>3]&(1<<(i&7)) != 0
}

package rules

const (
	// SurviveLow and SurviveHigh bound the neighbor counts that keep a live cell alive.
	SurviveLow  = 2
	SurviveHigh = 3
	// Birth is the exact neighbor count that brings a dead cell to life.
	Birth = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

  - live with 2 or 3 live neighbors stays live
  - dead with exactly 3 live neighbors becomes live
  - everything else is dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == SurviveLow || neighbors == SurviveHigh
	}
	return neighbors == Birth
}

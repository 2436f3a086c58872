package rules

import "github.com/sheikhrachel/go-life/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Next returns the state a cell takes in the next generation
func Next(state model.CellState, liveNeighbors int) model.CellState {
	if ApplyConwayRules(liveNeighbors, state == model.Alive) {
		return model.Alive
	}
	return model.Dead
}

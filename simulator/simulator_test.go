package simulator

import (
	"math/rand"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func mustParse(t *testing.T, text string) *model.Grid {
	t.Helper()
	g, err := model.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func mustNew(t *testing.T, n int) *model.Grid {
	t.Helper()
	g, err := model.New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return g
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNeighbors(t *testing.T) {
	g := mustNew(t, 5)

	tests := []struct {
		name  string
		coord model.Coord
		want  int
	}{
		{"top left corner", model.Coord{Row: 0, Col: 0}, 3},
		{"top right corner", model.Coord{Row: 0, Col: 4}, 3},
		{"bottom left corner", model.Coord{Row: 4, Col: 0}, 3},
		{"bottom right corner", model.Coord{Row: 4, Col: 4}, 3},
		{"top edge", model.Coord{Row: 0, Col: 2}, 5},
		{"left edge", model.Coord{Row: 2, Col: 0}, 5},
		{"right edge", model.Coord{Row: 3, Col: 4}, 5},
		{"bottom edge", model.Coord{Row: 4, Col: 1}, 5},
		{"interior", model.Coord{Row: 2, Col: 2}, 8},
		{"interior next to edge", model.Coord{Row: 1, Col: 3}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Neighbors(g, tt.coord)
			if len(got) != tt.want {
				t.Fatalf("Neighbors(%v) returned %d coordinates, want %d: %v", tt.coord, len(got), tt.want, got)
			}

			seen := make(map[model.Coord]bool)
			for _, n := range got {
				if n == tt.coord {
					t.Errorf("Neighbors(%v) contains the cell itself", tt.coord)
				}
				if abs(n.Row-tt.coord.Row) > 1 || abs(n.Col-tt.coord.Col) > 1 {
					t.Errorf("Neighbors(%v) contains non-adjacent %v", tt.coord, n)
				}
				if !g.InBounds(n) {
					t.Errorf("Neighbors(%v) contains out of bounds %v", tt.coord, n)
				}
				if seen[n] {
					t.Errorf("Neighbors(%v) contains %v twice", tt.coord, n)
				}
				seen[n] = true
			}
		})
	}
}

func TestNeighborsSingleCellGrid(t *testing.T) {
	g := mustNew(t, 1)
	if got := Neighbors(g, model.Coord{}); len(got) != 0 {
		t.Fatalf("Neighbors on 1x1 grid = %v, want none", got)
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	full := mustParse(t, `
		OOOO
		OOOO
		OOOO
		OOOO`)

	tests := []struct {
		name  string
		grid  *model.Grid
		coord model.Coord
		want  int
	}{
		{"corner of full grid", full, model.Coord{Row: 0, Col: 0}, 3},
		{"edge of full grid", full, model.Coord{Row: 0, Col: 1}, 5},
		{"interior of full grid", full, model.Coord{Row: 1, Col: 2}, 8},
		{"empty grid", mustNew(t, 4), model.Coord{Row: 1, Col: 1}, 0},
		{"cell itself is not counted", mustParse(t, `
			...
			.O.
			...`), model.Coord{Row: 1, Col: 1}, 0},
		{"no wraparound", mustParse(t, `
			...O
			....
			....
			O..O`), model.Coord{Row: 0, Col: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLiveNeighbors(tt.grid, tt.coord); got != tt.want {
				t.Errorf("CountLiveNeighbors(%v) = %d, want %d", tt.coord, got, tt.want)
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := mustNew(t, 12)
	g.Randomize(0.4, rand.New(rand.NewSource(7)))
	before := g.Clone()

	_ = Step(g)
	_ = New(WithWorkers(4), WithPool(model.NewGridPool())).Step(g)

	if !g.Equal(before) {
		t.Fatalf("Step mutated its input:\n%s\nwant:\n%s", g, before)
	}
}

func TestStepBlockIsStill(t *testing.T) {
	g := mustParse(t, `
		......
		......
		..OO..
		..OO..
		......
		......`)

	next := Step(g)
	if !next.Equal(g) {
		t.Fatalf("block changed after Step:\n%s", next)
	}
	if next == g {
		t.Fatal("Step returned its input instead of a new grid")
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	horizontal := mustParse(t, `
		.....
		.....
		.OOO.
		.....
		.....`)
	vertical := mustParse(t, `
		.....
		..O..
		..O..
		..O..
		.....`)

	first := Step(horizontal)
	if !first.Equal(vertical) {
		t.Fatalf("after one Step got:\n%s\nwant:\n%s", first, vertical)
	}

	second := Step(first)
	if !second.Equal(horizontal) {
		t.Fatalf("after two Steps got:\n%s\nwant:\n%s", second, horizontal)
	}
}

func TestStepRules(t *testing.T) {
	center := model.Coord{Row: 2, Col: 2}

	tests := []struct {
		name string
		grid string
		want model.CellState
	}{
		{"underpopulation: isolated cell dies", `
			.....
			.....
			..O..
			.....
			.....`, model.Dead},
		{"underpopulation: one neighbor dies", `
			.....
			.O...
			..O..
			.....
			.....`, model.Dead},
		{"survival with two neighbors", `
			.....
			.O.O.
			..O..
			.....
			.....`, model.Alive},
		{"survival with three neighbors", `
			.....
			.OOO.
			..O..
			.....
			.....`, model.Alive},
		{"overpopulation with four neighbors", `
			.....
			.OOO.
			..OO.
			.....
			.....`, model.Dead},
		{"reproduction with three neighbors", `
			.....
			.OOO.
			.....
			.....
			.....`, model.Alive},
		{"no reproduction with two neighbors", `
			.....
			.O.O.
			.....
			.....
			.....`, model.Dead},
		{"no reproduction with four neighbors", `
			.....
			.O.O.
			.....
			.O.O.
			.....`, model.Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Step(mustParse(t, tt.grid))
			got, err := next.Get(center)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got != tt.want {
				t.Errorf("cell %v is %v, want %v", center, got, tt.want)
			}
		})
	}
}

func TestStepSingleCellDiesEverywhere(t *testing.T) {
	g := mustNew(t, 6)
	for _, c := range g.Coordinates() {
		lone := mustNew(t, 6)
		if err := lone.Set(c, model.Alive); err != nil {
			t.Fatalf("Set(%v): %v", c, err)
		}
		if n := Step(lone).CountLiving(); n != 0 {
			t.Errorf("lone cell at %v left %d living cells", c, n)
		}
	}
}

func TestStepZeroSizeGrid(t *testing.T) {
	if got := Step(&model.Grid{}); got == nil || got.Size() != 0 {
		t.Fatalf("Step on empty grid = %v, want empty grid", got)
	}
	if got := Step(nil); got == nil || got.Size() != 0 {
		t.Fatalf("Step(nil) = %v, want empty grid", got)
	}
}

func TestStepParallelMatchesSequential(t *testing.T) {
	g := mustNew(t, 37)
	g.Randomize(0.35, rand.New(rand.NewSource(42)))
	want := Step(g)

	pool := model.NewGridPool()
	for _, workers := range []int{1, 2, 3, 8, 64} {
		sim := New(WithWorkers(workers), WithPool(pool))
		got := sim.Step(g)
		if !got.Equal(want) {
			t.Errorf("workers=%d: parallel Step differs from sequential", workers)
		}
		model.GridToPool(got, pool)
	}
}

func TestRunGliderTranslates(t *testing.T) {
	start := mustNew(t, 8)
	if err := start.AddGlider(model.Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("AddGlider: %v", err)
	}
	want := mustNew(t, 8)
	if err := want.AddGlider(model.Coord{Row: 1, Col: 1}); err != nil {
		t.Fatalf("AddGlider: %v", err)
	}

	generations := New(WithWorkers(2)).Run(start, 4)
	if len(generations) != 4 {
		t.Fatalf("Run returned %d generations, want 4", len(generations))
	}
	for i, gen := range generations {
		if n := gen.CountLiving(); n != 5 {
			t.Errorf("generation %d has %d living cells, want 5", i+1, n)
		}
	}
	if last := generations[3]; !last.Equal(want) {
		t.Fatalf("glider after 4 generations:\n%s\nwant:\n%s", last, want)
	}
}

func TestRunNoGenerations(t *testing.T) {
	if got := New().Run(mustNew(t, 3), 0); len(got) != 0 {
		t.Fatalf("Run(0) returned %d grids", len(got))
	}
}

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/simulator"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	patternRandom = "random"
	patternMixed  = "mixed"
)

// game is the driver state: everything the engine itself does not own
type game struct {
	config   utils.Config
	logger   log.Logger
	rng      *rand.Rand
	pool     *model.GridPool
	sim      *simulator.Simulator
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *model.History

	grid          *model.Grid
	generation    int
	stagnantCount int
}

// newGame sets up the initial game state
func newGame(config utils.Config, logger log.Logger) (*game, error) {
	g := &game{
		config:   config,
		logger:   logger,
		rng:      rand.New(rand.NewSource(config.Seed)),
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		history:  model.NewHistory(0),
	}

	opts := []simulator.Option{simulator.WithWorkers(config.Workers)}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
		opts = append(opts, simulator.WithPool(g.pool))
	}
	g.sim = simulator.New(opts...)

	grid, err := seedGrid(config, g.rng)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to seed grid")
	}
	g.grid = grid

	level.Info(logger).Log(
		"msg", "game initialized",
		"size", config.Size,
		"pattern", config.Pattern,
		"workers", config.Workers,
		"pool", config.UseMemoryPool,
		"seed", config.Seed,
	)
	return g, nil
}

// seedGrid builds the starting grid for the configured pattern
func seedGrid(config utils.Config, rng *rand.Rand) (*model.Grid, error) {
	grid, err := model.New(config.Size)
	if err != nil {
		return nil, err
	}

	switch config.Pattern {
	case patternRandom, "":
		grid.Randomize(config.RandomDensity, rng)
	case patternMixed:
		grid.Randomize(config.RandomDensity, rng)
		// Patterns are best effort on grids too small to hold them
		_ = grid.AddGlider(model.Coord{Row: 1, Col: 1})
		_ = grid.AddBlinker(model.Coord{Row: config.Size / 2, Col: config.Size / 2})
		_ = grid.AddBlock(model.Coord{Row: 3 * config.Size / 4, Col: config.Size / 4})
	default:
		center := model.Coord{Row: config.Size / 2, Col: config.Size/2 - 1}
		if err = grid.AddPattern(config.Pattern, center); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

// displayInfo shows the initial game information
func (g *game) displayInfo() {
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		g.grid.Size(), g.grid.Size(), g.config.Pattern, g.grid.CountLiving())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateState records the current grid and returns status information
func (g *game) updateState(lastFrameTime time.Time) (int, float64, string, bool) {
	living := g.grid.CountLiving()
	density := float64(living) / float64(g.grid.Size()*g.grid.Size()) * 100

	g.stats.Update(g.generation, living, time.Since(lastFrameTime))

	// Check before recording so the current grid is compared with earlier ones only
	stagnant := g.history.IsStagnant(g.grid)
	g.history.Record(g.grid)

	status := "Active"
	if stagnant {
		status = "Stagnant"
	}
	if living == 0 {
		status = "Extinct"
	}

	return living, density, status, stagnant
}

// displayStatus shows the current game status
func (g *game) displayStatus(living int, density float64, status string) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, living, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, time.Since(g.stats.StartTime).Seconds())
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(living, stagnantCount int, config utils.Config) (bool, string) {
	if living == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restart replaces the grid with a freshly seeded one
func (g *game) restart() error {
	grid, err := seedGrid(g.config, g.rng)
	if err != nil {
		return errors.Wrap(err, "[restart] failed to seed grid")
	}

	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.history.Reset()
	g.stagnantCount = 0

	level.Debug(g.logger).Log("msg", "new patterns loaded", "living", grid.CountLiving())
	return nil
}

// shutdown prints the final statistics
func (g *game) shutdown() {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.generation, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

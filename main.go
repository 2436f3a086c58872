package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "run Conway's Game of Life in the terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: "config.json", Usage: "path to a JSON configuration file"},
		cli.IntFlag{Name: "size, s", Usage: "side length of the square grid"},
		cli.IntFlag{Name: "generations, g", Usage: "stop after this many generations (0 runs forever)"},
		cli.StringFlag{Name: "pattern, p", Usage: "seed pattern: random, mixed, block, blinker or glider"},
		cli.DurationFlag{Name: "frame-rate, f", Usage: "delay between generations"},
		cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := utils.NewLogger(os.Stderr, c.Bool("debug"))

	config, err := loadConfig(c, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game, err := newGame(config, logger)
	if err != nil {
		return err
	}
	game.displayInfo()

	return game.loop(ctx)
}

// loadConfig reads the config file, falling back to defaults, and applies flag overrides
func loadConfig(c *cli.Context, logger log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(c.String("config"))
	if err != nil {
		level.Info(logger).Log("msg", "using default configuration", "err", err)
		config = utils.DefaultConfig()
	}

	if c.IsSet("size") {
		config.Size = c.Int("size")
	}
	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	return config, config.Validate()
}

// loop renders and advances the game until ctx is done or the generation limit is reached
func (g *game) loop(ctx context.Context) error {
	lastFrameTime := time.Now()

	for {
		frameStart := time.Now()
		if err := g.renderer.Clear(); err != nil {
			level.Debug(g.logger).Log("msg", "failed to clear terminal", "err", err)
		}

		living, density, status, stagnant := g.updateState(lastFrameTime)
		lastFrameTime = frameStart

		if stagnant {
			g.stagnantCount++
		} else {
			g.stagnantCount = 0
		}

		g.displayStatus(living, density, status)
		g.renderer.Display(g.grid)

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			level.Info(g.logger).Log("msg", "reached maximum generations", "limit", g.config.MaxGenerations)
			g.shutdown()
			return nil
		}

		if restart, reason := checkRestartConditions(living, g.stagnantCount, g.config); restart && g.config.AutoRestart {
			level.Info(g.logger).Log("msg", "restarting", "reason", reason, "generation", g.generation)
			if err := g.restart(); err != nil {
				return err
			}
		}

		next := g.sim.Step(g.grid)
		model.GridToPool(g.grid, g.pool)
		g.grid = next
		g.generation++

		select {
		case <-ctx.Done():
			level.Info(g.logger).Log("msg", "shutting down", "generation", g.generation)
			g.shutdown()
			return nil
		case <-time.After(g.config.FrameRate):
		}
	}
}

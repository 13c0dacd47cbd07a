package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// game is the frame driver's state. The grid is only ever touched from the
// goroutine that owns the game.
type game struct {
	config  utils.Config
	grid    *model.Grid
	pool    *model.GridPool
	history *model.History
	stats   *utils.Stats
	rng     *rand.Rand
	logger  *zap.Logger

	generation     int
	lastRestartGen int
	stagnantCount  int
	lastFrame      time.Time
}

// newGame sets up the initial game state
func newGame(config utils.Config, logger *zap.Logger) (*game, error) {
	g := &game{
		config:    config,
		history:   model.NewHistory(0),
		stats:     utils.NewStats(),
		rng:       rand.New(rand.NewSource(config.RandomSeed)),
		logger:    logger,
		lastFrame: time.Now(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
	}

	grid, err := g.newGrid()
	if err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}
	g.grid = grid
	if err := g.reseed(); err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}

	logger.Info("game initialized",
		zap.Int("height", config.Height),
		zap.Int("width", config.Width),
		zap.String("pattern", config.Pattern),
		zap.Int("living", grid.CountLivingCells()),
	)
	return g, nil
}

func (g *game) newGrid() (*model.Grid, error) {
	if g.pool != nil {
		return g.pool.Get(g.config.Height, g.config.Width)
	}
	return model.NewGrid(g.config.Height, g.config.Width)
}

// reseed replaces the board with the configured pattern
func (g *game) reseed() error {
	if err := g.grid.ApplyPattern(g.config.Pattern, g.rng, g.config.RandomDensity); err != nil {
		return err
	}
	g.history.Reset()
	g.stagnantCount = 0
	return nil
}

// clear kills every cell and forgets the cycle history
func (g *game) clear() {
	g.grid.Clear()
	g.history.Reset()
	g.stagnantCount = 0
}

// restart handles the game restart logic
func (g *game) restart(reason string) error {
	g.logger.Info("restarting", zap.String("reason", reason), zap.Int("generation", g.generation))

	model.GridToPool(g.grid, g.pool)
	grid, err := g.newGrid()
	if err != nil {
		return errors.Wrap(err, "[restart]")
	}
	g.grid = grid
	g.lastRestartGen = g.generation
	return g.reseed()
}

// advance moves the game forward by one generation
func (g *game) advance() error {
	g.grid.Tick()
	g.generation++

	now := time.Now()
	living := g.grid.CountLivingCells()
	g.stats.Update(g.generation, living, now.Sub(g.lastFrame))
	g.lastFrame = now

	if g.history.IsStagnant(g.grid) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.history.Record(g.grid)

	if !g.config.AutoRestart {
		return nil
	}
	if shouldRestart, reason := checkRestartConditions(living, g.stagnantCount, g.config); shouldRestart {
		return g.restart(reason)
	}
	return nil
}

// done reports whether the generation limit has been reached
func (g *game) done() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

// status describes the current population
func (g *game) status() string {
	switch {
	case g.grid.CountLivingCells() == 0:
		return "Extinct"
	case g.stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	default:
		return "Active"
	}
}

// statusLine shows the current game status
func (g *game) statusLine() string {
	height, width := g.grid.Dimensions()
	living := g.grid.CountLivingCells()
	density := float64(living) / float64(height*width) * 100

	line := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f fps (min %.1f, max %.1f)",
		g.generation, living, density, g.status(), g.stats.MeanFPS, g.stats.MinFPS, g.stats.MaxFPS)
	if g.generation > g.lastRestartGen && g.lastRestartGen > 0 {
		line += fmt.Sprintf(" | Since restart: %d", g.generation-g.lastRestartGen)
	}
	return line
}

// frame renders a self-contained snapshot of the current generation
func (g *game) frame() string {
	var b strings.Builder
	b.WriteString(g.statusLine())
	b.WriteByte('\n')
	b.WriteString(g.grid.Render())
	b.WriteByte('\n')
	return b.String()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runHeadless drives the game without a TUI. One goroutine owns the grid and
// produces text snapshots, the other writes them out, so no grid memory is
// shared between the two.
func runHeadless(ctx context.Context, out io.Writer, config utils.Config, logger *zap.Logger, clearScreen bool) error {
	g, err := newGame(config, logger)
	if err != nil {
		return err
	}

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan string, 1)
		renderer  = model.NewTerminalRenderer()
	)

	eg.Go(func() error {
		defer close(frames)

		ticker := time.NewTicker(config.FrameRate)
		defer ticker.Stop()

		for {
			select {
			case frames <- g.frame():
			case <-egCtx.Done():
				return nil
			}
			if g.done() {
				logger.Info("reached maximum generations limit", zap.Int("generations", config.MaxGenerations))
				return nil
			}

			select {
			case <-ticker.C:
			case <-egCtx.Done():
				return nil
			}
			if err := g.advance(); err != nil {
				return errors.Wrap(err, "[runHeadless] advance")
			}
		}
	})

	eg.Go(func() error {
		for frame := range frames {
			if clearScreen {
				if err := renderer.Clear(out); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(out, frame); err != nil {
				return errors.Wrap(err, "[runHeadless] write frame")
			}
		}
		return nil
	})

	err = eg.Wait()
	logger.Info("shutting down",
		zap.Int("generations", g.generation),
		zap.Duration("runtime", g.stats.Runtime()),
		zap.Float64("mean_fps", g.stats.MeanFPS),
		zap.Float64("avg_population", g.stats.AveragePopulation),
	)
	return err
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// fallbackSize is used for a terminal-sized grid when no terminal is attached.
const fallbackSize = 64

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses flags, loads configuration and starts the requested driver.
func run(ctx context.Context, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("go-gol", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		configPath  = fs.String("config", "config.json", "Path to a JSON or HCL (.hcl) config file")
		width       = fs.Int("width", 0, "Grid width in cells (0 fits the terminal)")
		height      = fs.Int("height", 0, "Grid height in cells (0 fits the terminal)")
		pattern     = fs.String("pattern", "", "Initial pattern: formula, random, gliders or empty")
		generations = fs.Int("generations", 0, "Stop after this many generations (0 runs forever)")
		headless    = fs.Bool("headless", false, "Print text frames instead of running the TUI")
		paused      = fs.Bool("paused", false, "Start the TUI paused")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	configSet := false
	fs.Visit(func(f *flag.Flag) {
		configSet = configSet || f.Name == "config"
	})

	// A missing default config file is fine, a missing explicit one is not.
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if configSet || !errors.Is(err, os.ErrNotExist) {
			return err
		}
		config = utils.DefaultConfig()
	}

	// Flags override the file only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "pattern":
			config.Pattern = *pattern
		case "generations":
			config.MaxGenerations = *generations
		case "headless":
			config.Interactive = !*headless
		case "paused":
			config.StartPaused = *paused
		}
	})

	if err := config.Validate(); err != nil {
		return err
	}
	config = fitTerminal(config, out)

	logger, err := newDriverLogger(config)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	model.SetLogger(logger)

	if config.Interactive {
		return runInteractive(config, logger)
	}
	return runHeadless(ctx, out, config, logger, isTerminal(out))
}

// newDriverLogger keeps the TUI clean: without a log file, interactive mode logs nothing.
func newDriverLogger(config utils.Config) (*zap.Logger, error) {
	if config.Interactive && config.LogFile == "" {
		return zap.NewNop(), nil
	}
	return utils.NewLogger(config.LogLevel, config.LogFile)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// fitTerminal fills in a zero width or height from the terminal size.
func fitTerminal(config utils.Config, out io.Writer) utils.Config {
	if config.Width > 0 && config.Height > 0 {
		return config
	}

	cols, rows := 0, 0
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if c, r, err := term.GetSize(int(f.Fd())); err == nil {
			cols, rows = c, r
		}
	}

	cellWidth := model.NewTerminalRenderer().CellWidth()
	if config.Width == 0 {
		config.Width = fallbackSize
		if w := cols / cellWidth; w > 0 {
			config.Width = w
		}
	}
	if config.Height == 0 {
		config.Height = fallbackSize
		if h := rows - headerHeight - footerHeight; h > 0 {
			config.Height = h
		}
	}
	return config
}

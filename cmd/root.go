package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"canvasnav/internal/board"
	"canvasnav/internal/config"
	"canvasnav/internal/domain"
	"canvasnav/internal/eventbus"
	"canvasnav/internal/telemetry"
	"canvasnav/internal/ui"
)

// DemoCards is the size of the generated board
const DemoCards = 24

// Options holds the command line flags
type Options struct {
	ConfigPath  string
	BoardPath   string
	Demo        bool
	Layout      string
	LogPath     string
	NoTelemetry bool
	InitPath    string
}

var opts Options

var rootCmd = &cobra.Command{
	Use:   "canvasnav [board.toml]",
	Short: "Keyboard-driven card board for the terminal",
	Long: `canvasnav shows a board of cards in a responsive grid.
Left and right follow card order, up and down follow what is on screen.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&opts.BoardPath, "board", "b", "", "Board file to open")
	flags.BoolVar(&opts.Demo, "demo", false, "Open a generated demo board")
	flags.StringVar(&opts.Layout, "layout", "", "Card layout: grid or masonry")
	flags.StringVar(&opts.LogPath, "log", "", "Log file (overrides config)")
	flags.BoolVar(&opts.NoTelemetry, "no-telemetry", false, "Do not count navigation events")
	flags.StringVar(&opts.InitPath, "init", "", "Write a demo board file to this path and exit")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && opts.BoardPath == "" {
		opts.BoardPath = args[0]
	}
	if opts.InitPath != "" {
		if err := initBoard(opts.InitPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote demo board to %s\n", opts.InitPath)
		return nil
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	_, statErr := os.Stat(configSvc.Path())
	cfg := loadConfig(configSvc, opts)

	logFile := setupLogging(firstNonEmpty(opts.LogPath, cfg.LogFile))
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Config path: %s", configSvc.Path())

	store := board.NewMemoryCardStore()
	b, loadErr := loadBoard(opts, cfg)
	store.Replace(b)
	log.Printf("Board %q with %d cards", b.Title, store.Len())

	if cfg.Telemetry && !opts.NoTelemetry {
		tracker := telemetry.NewTracker()
		tracker.Attach(bus)
		defer func() {
			tracker.Detach()
			s := tracker.Stats()
			log.Printf("Telemetry: %d selections, %d activations, %d filter changes", s.Selections, s.Activations, s.FilterChanges)
		}()
	}

	model := ui.NewModel(cfg, configSvc, store, bus)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward events the UI cares about
	for _, et := range []eventbus.EventType{eventbus.EventBoardLoaded, eventbus.EventError, eventbus.EventConfigSaved, eventbus.EventAppReady} {
		bus.Subscribe(et, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	bus.Publish(eventbus.BoardLoadedEvent{Title: b.Title, Cards: store.Len()})
	if loadErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: loadErr.Error(), Err: loadErr})
	}
	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: statErr == nil})

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadConfig loads the config file and applies flag overrides. A broken file falls back to defaults.
func loadConfig(svc config.ConfigService, o Options) *config.Config {
	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if o.Layout != "" {
		cfg.UISettings.Layout = o.Layout
		cfg.Normalize()
	}
	return cfg
}

// loadBoard picks the board to show. When the board file cannot be read the
// demo board is returned together with the error.
func loadBoard(o Options, cfg *config.Config) (domain.Board, error) {
	path := firstNonEmpty(o.BoardPath, cfg.BoardFile)
	if o.Demo || path == "" {
		return board.Demo(DemoCards), nil
	}
	b, err := board.LoadFile(path)
	if err != nil {
		log.Printf("Failed to load board %s: %v", path, err)
		return board.Demo(DemoCards), fmt.Errorf("could not open %s: %w", path, err)
	}
	return b, nil
}

// initBoard writes a demo board to path. An existing file is left alone.
func initBoard(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := board.SaveFile(path, board.Demo(DemoCards)); err != nil {
		return fmt.Errorf("could not write demo board: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards output when the file cannot be opened
func setupLogging(path string) *os.File {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// The terminal belongs to the UI, so nothing may be printed there
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

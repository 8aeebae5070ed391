package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"quire/app"
	"quire/app/config"
	"quire/app/debug"
	"quire/app/engine"
	"quire/app/utils/clipboard"
	"quire/tui"
)

var errNoTerminal = errors.New("quire needs a terminal to run")

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.New()
}

// settings reads the config and applies the command line overrides
func settings(cmd *cli.Command) (config.Settings, error) {
	conf, err := loadConfig(cmd.String("config"))
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	s, err := conf.Settings()
	if err != nil {
		return s, fmt.Errorf("invalid config %s: %w", conf.File(), err)
	}

	if storage := cmd.String("storage"); storage != "" {
		s.Storage = storage
	}
	if path := cmd.String("db"); path != "" {
		s.DatabasePath = path
	}
	if cmd.Bool("debug") {
		s.LogLevel = debug.Debug.String()
	}

	return s, s.Validate()
}

func run(ctx context.Context, cmd *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	defer debug.Close()

	s, err := settings(cmd)
	if err != nil {
		return err
	}

	debug.SetLevel(debug.ParseLevel(s.LogLevel))
	debug.LogInfo("starting", app.Name(), app.FullVersion())

	if err := clipboard.Init(); err != nil {
		debug.LogWarn("clipboard:", err)
	}

	eng := engine.New(engine.WithDatabasePath(s.DatabasePath))
	defer func() {
		if err := eng.Close(); err != nil {
			debug.LogErr(err)
		}
	}()

	m, err := tui.New(ctx, eng, s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "quire",
		Usage:   "Modal note taking in the terminal",
		Version: app.FullVersion(),
		Action:  run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the config file",
				Sources: cli.EnvVars("QUIRE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "storage",
				Aliases: []string{"s"},
				Usage:   "Where the notebook is kept: instant or file",
				Sources: cli.EnvVars("QUIRE_STORAGE"),
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "Path to the notebook database",
				Sources: cli.EnvVars("QUIRE_DB"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Log debug messages",
				Sources: cli.EnvVars("QUIRE_DEBUG"),
			},
		},
	}
}

func main() {
	cmd := newCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

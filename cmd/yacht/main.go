package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/yacht/internal/config"
	"github.com/jask/yacht/internal/database"
	"github.com/jask/yacht/internal/database/repository"
	"github.com/jask/yacht/internal/logging"
	"github.com/jask/yacht/internal/service"
	"github.com/jask/yacht/internal/tui"
)

const usage = `usage: yacht [play|history|init] [flags]

  play      play a game in the terminal (default)
  history   browse recorded games
  init      write the effective configuration to the config file
`

func main() {
	ctx := context.Background()

	cmd, args := subcommand(os.Args[1:])
	fs := pflag.NewFlagSet("yacht "+cmd, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	config.Flags(fs)

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	switch cmd {
	case "history":
		err = runHistory(ctx, cfg)
	case "init":
		err = runInit(cfg, os.Stdout)
	default:
		err = runPlay(ctx, cfg, os.Stdin, os.Stdout, logger)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func subcommand(args []string) (string, []string) {
	if len(args) > 0 {
		switch args[0] {
		case "play", "history", "init":
			return args[0], args[1:]
		}
	}
	return "play", args
}

func runHistory(ctx context.Context, cfg config.Config) error {
	db, err := database.Setup(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	services := tui.Services{
		Results:     &service.ResultsService{Games: repository.NewGameRepo(db)},
		Maintenance: &service.MaintenanceService{DB: db},
	}
	p := tea.NewProgram(tui.New(ctx, services), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runInit(cfg config.Config, out io.Writer) error {
	path := config.Path()
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jask/yacht/internal/config"
	"github.com/jask/yacht/internal/console"
	"github.com/jask/yacht/internal/database"
	"github.com/jask/yacht/internal/database/repository"
	"github.com/jask/yacht/internal/game"
	"github.com/jask/yacht/internal/service"
)

// runPlay runs one game on in/out, then records and exports the result.
func runPlay(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	con := console.New(in, out)
	con.Welcome()
	if err := offerRules(con, cfg.Game.ShowRules); err != nil {
		return err
	}

	mode, err := cfg.ModeValue()
	if err != nil {
		return err
	}
	seed, err := cfg.SeedValue()
	if err != nil {
		return err
	}

	players := cfg.Game.Players
	if players == 0 {
		if players, err = con.AskPlayerCount(); err != nil {
			return err
		}
	}
	names := cfg.Game.Names
	if len(names) != players {
		if names, err = con.AskPlayerNames(players); err != nil {
			return err
		}
	}

	engine, err := game.New(game.Config{
		Mode:    mode,
		Players: players,
		Seed:    seed,
		Shuffle: cfg.Game.Shuffle,
	}, con, game.WithLogger(logger))
	if err != nil {
		return err
	}
	con.Notify(fmt.Sprintf("Mode: %s  Seed: %d", strings.ToUpper(mode.String()[:1])+mode.String()[1:], engine.Seed()))

	standings, err := engine.Run(names)
	if err != nil {
		return err
	}
	con.ShowStandings(standings)

	res := service.Result{Mode: mode, Seed: engine.Seed(), Standings: standings}
	if cfg.Database.Enabled {
		if err := record(ctx, cfg.Database.Path, res, logger); err != nil {
			logger.Warn().Err(err).Msg("results not recorded")
			con.Notify("Error: could not save the game to history: " + err.Error())
		} else {
			con.Notify("Game saved to history.")
		}
	}

	return export(con, &service.ExportService{Format: cfg.Results.Format}, cfg.Results.Export, res)
}

func offerRules(con *console.Console, show string) error {
	switch show {
	case config.ShowRulesAlways:
		con.ShowRules()
	case config.ShowRulesNever:
	default:
		ok, err := con.Confirm("Do you want to read the rules?")
		if err != nil {
			return err
		}
		if ok {
			con.ShowRules()
		} else {
			con.Notify("---you already know the rules, let's go---")
		}
	}
	return nil
}

func record(ctx context.Context, path string, res service.Result, logger zerolog.Logger) error {
	db, err := database.Setup(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	results := &service.ResultsService{Games: repository.NewGameRepo(db), Log: logger}
	_, err = results.Record(ctx, res)
	return err
}

// export writes to path when one is configured, otherwise offers to save
// and keeps offering another path after a failed write.
func export(con *console.Console, svc *service.ExportService, path string, res service.Result) error {
	if path != "" {
		abs, err := svc.WriteFile(path, res)
		if err != nil {
			return err
		}
		con.Notify("Results saved successfully to: " + abs)
		return nil
	}

	ok, err := con.Confirm("Do you want to save the results to a file?")
	if err != nil || !ok {
		return err
	}
	for {
		name, err := con.ReadLine("Enter file name (e.g., scores.txt): ")
		if err != nil {
			return err
		}
		abs, err := svc.WriteFile(name, res)
		if err == nil {
			con.Notify("Results saved successfully to: " + abs)
			return nil
		}
		con.Notify("Error saving file: " + err.Error())
		retry, err := con.Confirm("Try another path?")
		if err != nil || !retry {
			return err
		}
	}
}

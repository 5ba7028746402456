// Command dynastysim runs a headless dynasty simulation and reports each
// year's events.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"

	"github.com/talgya/dynastia/internal/engine"
	"github.com/talgya/dynastia/internal/entropy"
)

type cliConfig struct {
	Seed                  uint64 `env:"DYNASTIA_SEED" envDefault:"0"`
	Years                 int    `env:"DYNASTIA_YEARS" envDefault:"100"`
	Rivals                int    `env:"DYNASTIA_RIVALS" envDefault:"4"`
	Origin                string `env:"DYNASTIA_ORIGIN" envDefault:"Kingdom of England"`
	FlatExcomPenalty      bool   `env:"DYNASTIA_FLAT_EXCOM_PENALTY" envDefault:"false"`
	ForbidSiblingMarriage bool   `env:"DYNASTIA_FORBID_SIBLING_MARRIAGE" envDefault:"false"`
	Verbose               bool   `env:"DYNASTIA_VERBOSE" envDefault:"false"`
}

func main() {
	var cli cliConfig
	if err := env.Parse(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	var src entropy.Source
	if cli.Seed != 0 {
		src = entropy.NewRand(cli.Seed)
		slog.Info("seeded run", "seed", cli.Seed)
	} else {
		src = entropy.NewCryptoSeeded()
	}

	cfg := engine.DefaultConfig()
	cfg.NumRivalDynasties = cli.Rivals
	cfg.PlayerOrigin = cli.Origin
	cfg.ForbidSiblingMarriage = cli.ForbidSiblingMarriage
	if cli.FlatExcomPenalty {
		cfg.ExcomPenalty = engine.ExcomPenaltyFlat
	}

	eng := engine.New(cfg, src)
	state := eng.StartNewGame()

	slog.Info("dynasty founded",
		"name", state.DynastyName,
		"origin", state.PlayerOrigin,
		"founder", state.Monarch().FullName(),
		"rivals", len(state.Rivals),
	)
	for _, n := range state.Notifications {
		fmt.Println(n)
	}

	for i := 0; i < cli.Years; i++ {
		next := eng.AdvanceYear(state)
		if next == state {
			break
		}
		state = next

		for _, n := range state.Notifications {
			fmt.Printf("[year %d] %s\n", state.CurrentYear, n)
		}
		if cli.Verbose {
			breakdown := engine.EffectiveDynastyStatus(state)
			slog.Debug("year complete",
				"year", state.CurrentYear,
				"people", len(state.AllPeople),
				"status", fmt.Sprintf("%.2f", breakdown.TotalEffectiveStatus),
				"treasury", state.Treasury,
			)
		}
	}

	breakdown := engine.EffectiveDynastyStatus(state)
	living := 0
	for _, p := range state.AllPeople {
		if p.Alive {
			living++
		}
	}

	fmt.Println()
	switch {
	case state.Extinct():
		fmt.Printf("The %s is extinct after %d years.\n", state.DynastyName, state.CurrentYear)
	case state.Monarch() != nil:
		fmt.Printf("The %s endures. %s reigns in year %d.\n",
			state.DynastyName, state.Monarch().FullName(), state.CurrentYear)
	default:
		fmt.Printf("The %s endures without a clear monarch in year %d.\n",
			state.DynastyName, state.CurrentYear)
	}
	fmt.Printf("People recorded: %s (%s living)\n",
		humanize.Comma(int64(len(state.AllPeople))), humanize.Comma(int64(living)))
	fmt.Printf("Treasury: %s gold | Effective status: %.2f\n",
		humanize.Comma(int64(state.Treasury)), breakdown.TotalEffectiveStatus)
	for _, r := range state.Rivals {
		allied := ""
		if r.AlliedWithPlayer {
			allied = " (allied)"
		}
		fmt.Printf("Rival: %s — status %.2f, treasury %s%s\n",
			r.Name, r.Status, humanize.Comma(int64(r.Treasury)), allied)
	}
}

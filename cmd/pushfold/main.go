package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Solve    SolveCmd    `cmd:"" help:"solve heads-up push/fold for the given stacks and blinds"`
	Chart    ChartCmd    `cmd:"" help:"render a previously saved strategy blueprint"`
	Showdown ShowdownCmd `cmd:"" help:"evaluate a single showdown with the hand-rank table"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pushfold"),
		kong.Description("Nash-equilibrium push/fold solver for heads-up all-in-or-fold hold'em"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	switch ctx.Command() {
	case "solve":
		if err := cli.Solve.Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("solve failed")
		}
	case "chart <blueprint>":
		if err := cli.Chart.Run(); err != nil {
			log.Fatal().Err(err).Msg("chart failed")
		}
	case "showdown <hands>":
		if err := cli.Showdown.Run(); err != nil {
			log.Fatal().Err(err).Msg("showdown failed")
		}
	default:
		log.Fatal().Msgf("unknown command: %s", ctx.Command())
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

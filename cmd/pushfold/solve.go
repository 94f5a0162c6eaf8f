package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lox/pushfold/internal/handrank"
	"github.com/lox/pushfold/internal/solver"
)

type SolveCmd struct {
	Ranks         string `help:"path to the two-plus-two hand-rank table" default:"handranks.dat"`
	SmallBlind    int    `help:"small blind size" default:"1"`
	BigBlind      int    `help:"big blind size" default:"2"`
	ButtonStack   int    `help:"button stack size (includes the posted blind)" default:"20"`
	BigBlindStack int    `help:"big blind stack size (includes the posted blind)" default:"20"`
	Iterations    int    `help:"number of CFR iterations" default:"1000000"`
	Seed          int64  `help:"random seed; 0 uses a time seed" default:"0"`
	Workers       int    `help:"parallel iteration workers" default:"1"`
	Out           string `help:"path to write the strategy blueprint (JSON)"`
}

func (cmd *SolveCmd) Run(ctx context.Context) error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info().Str("path", cmd.Ranks).Msg("loading hand-rank table")
	table, err := handrank.Load(cmd.Ranks)
	if err != nil {
		return err
	}

	cfg := solver.Config{
		SmallBlind:    cmd.SmallBlind,
		BigBlind:      cmd.BigBlind,
		ButtonStack:   cmd.ButtonStack,
		BigBlindStack: cmd.BigBlindStack,
		Iterations:    cmd.Iterations,
		Seed:          seed,
		Workers:       cmd.Workers,
	}
	trainer, err := solver.NewTrainer(cfg, handrank.NewEvaluator(table))
	if err != nil {
		return err
	}

	log.Info().
		Int("iterations", cfg.Iterations).
		Int("small_blind", cfg.SmallBlind).
		Int("big_blind", cfg.BigBlind).
		Int("button_stack", cfg.ButtonStack).
		Int("big_blind_stack", cfg.BigBlindStack).
		Int64("seed", seed).
		Msg("solving")

	start := time.Now()
	err = trainer.Run(ctx, func(p solver.Progress) {
		log.Info().
			Int("iteration", p.Iteration).
			Dur("elapsed", time.Since(start)).
			Msg("progress")
	})
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("solved")

	if cmd.Out != "" {
		if err := trainer.Blueprint().Save(cmd.Out); err != nil {
			return fmt.Errorf("save blueprint: %w", err)
		}
		log.Info().Str("path", cmd.Out).Msg("blueprint written")
	}

	button, bigBlind := trainer.AverageStrategies()
	fmt.Println(renderGrid("Button push", button))
	fmt.Println(renderGrid("Big blind call", bigBlind))
	return nil
}

// Command autoplay deals a hand and plays it to completion with AI at all
// four seats, logging the play and the final score.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/lmittmann/tint"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/app"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/bot"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/config"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
	"github.com/JFrunk/bridge-bidding-app-sub002/internal/ports/logging"
)

func main() {
	var (
		seed        = flag.Int64("seed", time.Now().UnixNano(), "deal seed")
		contractArg = flag.String("contract", "3NT by S", "contract, e.g. \"4S by E\" or \"2HX by W\"")
		difficulty  = flag.String("difficulty", "", "good, smart or expert (default from config)")
		vulnerable  = flag.Bool("vulnerable", false, "declaring side is vulnerable")
		configPath  = flag.String("config", "", "optional JSON config file")
		verbose     = flag.Bool("v", false, "log every card")
	)
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slogger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
	}))

	if err := run(slogger, *seed, *contractArg, *difficulty, *vulnerable, *configPath); err != nil {
		slogger.Error("autoplay failed", "err", err)
		os.Exit(1)
	}
}

func run(slogger *slog.Logger, seed int64, contractArg, difficulty string, vulnerable bool, configPath string) error {
	if configPath != "" {
		if err := config.LoadGameConfig(configPath); err != nil {
			return err
		}
	}
	gameCfg := config.GetGameConfig()
	if difficulty == "" {
		difficulty = gameCfg.DefaultDifficulty
	}
	level, err := parseLevel(difficulty)
	if err != nil {
		return err
	}

	contract, err := domain.ParseContract(contractArg)
	if err != nil {
		return err
	}

	logger := logging.NewSlogLogger(slogger)
	botCfg := botConfig(logger, gameCfg)

	svc := app.NewService(rand.New(rand.NewSource(seed)))
	sess, events, err := svc.DealSession(contract, vulnerable)
	if err != nil {
		return err
	}
	slogger.Info("deal started",
		"session", sess.ID, "contract", contract.String(),
		"difficulty", level.String(), "seed", seed)

	agents := make(map[domain.Seat]*bot.Agent, domain.SeatCount)
	for _, seat := range domain.Seats {
		agent, err := bot.NewAgent(seat.String(), level, botCfg)
		if err != nil {
			return err
		}
		agents[seat] = agent
	}

	played, err := svc.AutoPlay(context.Background(), sess, agents)
	if err != nil {
		return err
	}
	report(slogger, append(events, played...))

	snap := botCfg.Stats.Snapshot()
	slogger.Info("decisions",
		"total", snap.Decisions,
		"solver", snap.SolverDecisions,
		"fallback", snap.FallbackDecisions,
		"avg_latency", snap.AvgLatency.String())
	return nil
}

func parseLevel(difficulty string) (bot.Level, error) {
	switch difficulty {
	case "good":
		return bot.LevelGood, nil
	case "smart":
		return bot.LevelSmart, nil
	case "expert":
		return bot.LevelExpert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", difficulty)
}

// botConfig applies the file configuration over the defaults.
func botConfig(logger runtime.Logger, gameCfg *config.GameConfig) bot.Config {
	cfg := bot.DefaultConfig(logger)
	cfg.GoodPlies = gameCfg.GoodPlies
	cfg.SmartPlies = gameCfg.SmartPlies
	cfg.FallbackPlies = gameCfg.FallbackPlies
	cfg.SolverTimeout = gameCfg.SolverTimeout()
	cfg.SolverMaxCards = gameCfg.SolverMaxCards
	cfg.DisableSolver = gameCfg.DisableSolver

	if gameCfg.DiscardTolerance != nil {
		cfg.Tuning.DiscardTolerance = *gameCfg.DiscardTolerance
	}
	if w := gameCfg.Weights; w != nil {
		applyWeight(&cfg.Tuning.Weights.TrickWon, w.TrickWon)
		applyWeight(&cfg.Tuning.Weights.SureWinner, w.SureWinner)
		applyWeight(&cfg.Tuning.Weights.MasterTrump, w.MasterTrump)
		applyWeight(&cfg.Tuning.Weights.RuffPotential, w.RuffPotential)
		applyWeight(&cfg.Tuning.Weights.LengthPotential, w.LengthPotential)
		applyWeight(&cfg.Tuning.Weights.ExposurePenalty, w.ExposurePenalty)
	}
	return cfg
}

func applyWeight(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func report(slogger *slog.Logger, events []app.Event) {
	trick := 0
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.HandDealtPayload:
			slogger.Debug("hand dealt", "seat", p.Seat.String(), "hand", p.Hand.String())
		case app.CardPlayedPayload:
			slogger.Debug("card played", "seat", p.Seat.String(), "card", p.Card.String())
		case app.DummyRevealedPayload:
			slogger.Info("dummy revealed", "seat", p.Dummy.String(), "hand", p.Hand.String())
		case app.TrickCompletedPayload:
			trick++
			slogger.Info("trick complete", "trick", trick, "winner", p.Winner.String())
		case app.HandScoredPayload:
			slogger.Info("hand scored",
				"tricks", p.Score.TricksWon,
				"made", p.Score.Made,
				"total", p.Score.Total)
		}
	}
}

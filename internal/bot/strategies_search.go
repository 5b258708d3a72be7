package bot

import (
	"context"
	"time"

	"github.com/JFrunk/bridge-bidding-app-sub002/internal/domain"
	botinternal "github.com/JFrunk/bridge-bidding-app-sub002/internal/bot/internal"
)

// SearchBrain plays with the heuristic minimax engine at a fixed ply
// budget. The Good and Smart tiers are the same brain at different depths.
type SearchBrain struct {
	cfg    Config
	plies  int
	search *botinternal.Searcher
}

func newSearchBrain(cfg Config, plies int) *SearchBrain {
	return &SearchBrain{
		cfg:    cfg,
		plies:  plies,
		search: botinternal.NewSearcher(cfg.Tuning),
	}
}

// ChooseCard runs the search and records the decision.
func (b *SearchBrain) ChooseCard(ctx context.Context, ps *domain.PlayState, seat domain.Seat) (domain.Card, error) {
	start := time.Now()
	card, err := b.search.ChooseCard(ctx, ps, seat, b.plies)
	if err != nil {
		return domain.Card{}, err
	}
	b.cfg.Stats.Record(DecisionHeuristic, time.Since(start))
	return card, nil
}

package bot

import "fmt"

// NewBrain creates a strategy for the requested difficulty tier. The set
// of tiers is closed; a new difficulty extends this switch.
func NewBrain(level Level, cfg Config) (Brain, error) {
	switch level {
	case LevelGood:
		return newSearchBrain(cfg, cfg.GoodPlies), nil
	case LevelSmart:
		return newSearchBrain(cfg, cfg.SmartPlies), nil
	case LevelExpert:
		return newExpertBrain(cfg), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

package bot

import (
	"sync/atomic"
	"time"
)

// DecisionKind classifies how a decision was produced.
type DecisionKind int

const (
	// DecisionHeuristic is a decision by the heuristic search tiers.
	DecisionHeuristic DecisionKind = iota
	// DecisionSolver is a decision by the exact double-dummy solver.
	DecisionSolver
	// DecisionFallback is an expert-tier decision that degraded to the
	// heuristic search.
	DecisionFallback
)

// Stats aggregates decision counters across sessions. All updates are
// atomic; this is the only state shared between play sessions.
type Stats struct {
	decisions atomic.Int64
	solver    atomic.Int64
	fallback  atomic.Int64
	latency   atomic.Int64 // cumulative nanoseconds
}

// NewStats returns an empty counter set.
func NewStats() *Stats {
	return &Stats{}
}

// Record registers one completed decision.
func (s *Stats) Record(kind DecisionKind, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.decisions.Add(1)
	s.latency.Add(int64(elapsed))
	switch kind {
	case DecisionSolver:
		s.solver.Add(1)
	case DecisionFallback:
		s.fallback.Add(1)
	}
}

// Snapshot is a consistent-enough view of the counters for observability.
type Snapshot struct {
	Decisions         int64
	SolverDecisions   int64
	FallbackDecisions int64
	FallbackRate      float64
	AvgLatency        time.Duration
}

// Snapshot returns the current totals, the fallback rate over expert-tier
// decisions, and the average decision latency.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Decisions:         s.decisions.Load(),
		SolverDecisions:   s.solver.Load(),
		FallbackDecisions: s.fallback.Load(),
	}
	if expert := snap.SolverDecisions + snap.FallbackDecisions; expert > 0 {
		snap.FallbackRate = float64(snap.FallbackDecisions) / float64(expert)
	}
	if snap.Decisions > 0 {
		snap.AvgLatency = time.Duration(s.latency.Load() / snap.Decisions)
	}
	return snap
}

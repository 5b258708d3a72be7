package bot

import (
	"sync"
	"testing"
	"time"
)

func TestStatsRecord(t *testing.T) {
	s := NewStats()
	s.Record(DecisionHeuristic, 10*time.Millisecond)
	s.Record(DecisionSolver, 20*time.Millisecond)
	s.Record(DecisionSolver, 20*time.Millisecond)
	s.Record(DecisionFallback, 30*time.Millisecond)

	snap := s.Snapshot()
	if snap.Decisions != 4 {
		t.Errorf("Decisions = %d, want 4", snap.Decisions)
	}
	if snap.SolverDecisions != 2 || snap.FallbackDecisions != 1 {
		t.Errorf("solver/fallback = %d/%d, want 2/1", snap.SolverDecisions, snap.FallbackDecisions)
	}
	// One fallback out of three expert-tier decisions.
	if want := 1.0 / 3.0; snap.FallbackRate != want {
		t.Errorf("FallbackRate = %v, want %v", snap.FallbackRate, want)
	}
	if snap.AvgLatency != 20*time.Millisecond {
		t.Errorf("AvgLatency = %v, want 20ms", snap.AvgLatency)
	}
}

func TestStatsEmptySnapshot(t *testing.T) {
	snap := NewStats().Snapshot()
	if snap.Decisions != 0 || snap.FallbackRate != 0 || snap.AvgLatency != 0 {
		t.Errorf("empty snapshot = %+v, want zeroes", snap)
	}
}

func TestStatsNilReceiver(t *testing.T) {
	var s *Stats
	s.Record(DecisionHeuristic, time.Millisecond) // must not panic
}

func TestStatsConcurrentRecord(t *testing.T) {
	s := NewStats()
	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Record(DecisionSolver, time.Millisecond)
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	if want := int64(workers * perWorker); snap.Decisions != want || snap.SolverDecisions != want {
		t.Errorf("Decisions = %d, SolverDecisions = %d, want %d", snap.Decisions, snap.SolverDecisions, want)
	}
}

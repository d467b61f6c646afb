package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/drift/input"
)

// SessionStats aggregates the action stream and heat trajectory of a run.
type SessionStats struct {
	counts      [4]int
	heatSamples []float64
}

// Summary is a condensed view of a session for logging.
type Summary struct {
	Impulses     int
	Forces       int
	Stabilises   int
	Accelerates  int
	HeatMean     float64
	HeatP50      float64
	HeatP90      float64
	HeatMax      float64
	TicksSampled int
}

// RecordAction counts one processed action.
func (s *SessionStats) RecordAction(kind input.Kind) {
	if int(kind) < len(s.counts) {
		s.counts[kind]++
	}
}

// SampleHeat records the player heat at the end of a tick.
func (s *SessionStats) SampleHeat(heat float32) {
	s.heatSamples = append(s.heatSamples, float64(heat))
}

// Summarize computes the session summary.
func (s *SessionStats) Summarize() Summary {
	sum := Summary{
		Impulses:     s.counts[input.KindImpulse],
		Forces:       s.counts[input.KindForce],
		Stabilises:   s.counts[input.KindStabilise],
		Accelerates:  s.counts[input.KindAccelerate],
		TicksSampled: len(s.heatSamples),
	}

	if len(s.heatSamples) == 0 {
		return sum
	}

	sorted := make([]float64, len(s.heatSamples))
	copy(sorted, s.heatSamples)
	sort.Float64s(sorted)

	sum.HeatMean = stat.Mean(sorted, nil)
	sum.HeatP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	sum.HeatP90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	sum.HeatMax = sorted[len(sorted)-1]

	return sum
}

package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/drift/input"
)

func TestSessionStatsCounts(t *testing.T) {
	var s SessionStats
	s.RecordAction(input.KindImpulse)
	s.RecordAction(input.KindImpulse)
	s.RecordAction(input.KindForce)
	s.RecordAction(input.KindStabilise)
	s.RecordAction(input.KindAccelerate)
	s.RecordAction(input.KindForce)
	s.RecordAction(input.KindForce)

	sum := s.Summarize()
	if sum.Impulses != 2 || sum.Forces != 3 || sum.Stabilises != 1 || sum.Accelerates != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 2/3/1/1",
			sum.Impulses, sum.Forces, sum.Stabilises, sum.Accelerates)
	}
}

func TestSessionStatsHeatSummary(t *testing.T) {
	var s SessionStats
	for _, h := range []float32{0, 0.5, 1.0} {
		s.SampleHeat(h)
	}

	sum := s.Summarize()
	if math.Abs(sum.HeatMean-0.5) > 0.001 {
		t.Errorf("mean = %v, want 0.5", sum.HeatMean)
	}
	if math.Abs(sum.HeatP50-0.5) > 0.001 {
		t.Errorf("p50 = %v, want 0.5", sum.HeatP50)
	}
	if math.Abs(sum.HeatP90-1.0) > 0.001 {
		t.Errorf("p90 = %v, want 1.0", sum.HeatP90)
	}
	if sum.HeatMax != 1.0 {
		t.Errorf("max = %v, want 1.0", sum.HeatMax)
	}
	if sum.TicksSampled != 3 {
		t.Errorf("ticks sampled = %d, want 3", sum.TicksSampled)
	}
}

func TestSessionStatsEmpty(t *testing.T) {
	var s SessionStats
	sum := s.Summarize()
	if sum.HeatMean != 0 || sum.HeatP50 != 0 || sum.HeatP90 != 0 || sum.HeatMax != 0 {
		t.Error("empty session should summarize to zeros")
	}
}

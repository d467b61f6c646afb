package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/drift/input"
)

func TestRecorderDisabledIsNil(t *testing.T) {
	r, err := NewRecorder("", 60)
	if err != nil {
		t.Fatalf("disabled recorder errored: %v", err)
	}
	if r != nil {
		t.Fatal("empty dir should disable recording")
	}

	// All methods must be safe on the nil recorder
	r.Record(ActionRecord{})
	if err := r.EndTick(); err != nil {
		t.Errorf("nil EndTick: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, 2)
	if err != nil {
		t.Fatalf("creating recorder: %v", err)
	}

	want := []struct {
		tick int32
		ev   input.Event
		heat float32
	}{
		{0, input.Event{Kind: input.KindImpulse, Direction: input.Vec{X: 1}}, 0.2},
		{0, input.Event{Kind: input.KindForce, Direction: input.Vec{X: 1}}, 0.22},
		{3, input.Event{Kind: input.KindStabilise}, 0},
		{7, input.Event{Kind: input.KindAccelerate}, 0.2},
	}

	for _, w := range want {
		r.Record(NewActionRecord(w.tick, w.ev, w.heat))
		// Flush interval of 2 exercises the headered and headerless paths
		if err := r.EndTick(); err != nil {
			t.Fatalf("EndTick: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("closing recorder: %v", err)
	}

	replay, err := LoadReplay(filepath.Join(dir, "actions.csv"))
	if err != nil {
		t.Fatalf("loading recorded log: %v", err)
	}
	if replay.LastTick() != 7 {
		t.Errorf("last tick = %d, want 7", replay.LastTick())
	}

	events, err := replay.EventsFor(0)
	if err != nil {
		t.Fatalf("EventsFor(0): %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("tick 0: want 2 events, got %d", len(events))
	}
	if events[0].Kind != input.KindImpulse || events[1].Kind != input.KindForce {
		t.Errorf("tick 0 order = [%v %v]", events[0].Kind, events[1].Kind)
	}
	if events[0].Direction.X != 1 {
		t.Errorf("tick 0 direction = %v", events[0].Direction)
	}

	events, err = replay.EventsFor(3)
	if err != nil {
		t.Fatalf("EventsFor(3): %v", err)
	}
	if len(events) != 1 || events[0].Kind != input.KindStabilise {
		t.Errorf("tick 3: got %v", events)
	}

	events, err = replay.EventsFor(7)
	if err != nil {
		t.Fatalf("EventsFor(7): %v", err)
	}
	if len(events) != 1 || events[0].Kind != input.KindAccelerate {
		t.Errorf("tick 7: got %v", events)
	}

	if !replay.Done() {
		t.Error("replay should be fully consumed")
	}
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, 1)
	if err != nil {
		t.Fatalf("creating recorder: %v", err)
	}

	for tick := int32(0); tick < 3; tick++ {
		r.Record(NewActionRecord(tick, input.Event{Kind: input.KindStabilise}, 0))
		if err := r.EndTick(); err != nil {
			t.Fatalf("EndTick: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("closing recorder: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "actions.csv"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	// One header line plus three records
	if lines != 4 {
		t.Errorf("log has %d lines, want 4:\n%s", lines, data)
	}
}

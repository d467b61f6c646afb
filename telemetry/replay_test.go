package telemetry

import (
	"strings"
	"testing"

	"github.com/pthm-cable/drift/input"
)

func TestReadReplay(t *testing.T) {
	log := strings.Join([]string{
		"tick,action,dir_x,dir_y,heat",
		"0,impulse,1,0,0.2",
		"2,force,0,-1,0.22",
		"2,stabilise,0,0,0",
	}, "\n")

	replay, err := ReadReplay(strings.NewReader(log))
	if err != nil {
		t.Fatalf("parsing log: %v", err)
	}

	events, err := replay.EventsFor(0)
	if err != nil {
		t.Fatalf("EventsFor(0): %v", err)
	}
	if len(events) != 1 || events[0].Kind != input.KindImpulse {
		t.Errorf("tick 0: got %v", events)
	}

	// A tick with no records yields no events
	events, err = replay.EventsFor(1)
	if err != nil {
		t.Fatalf("EventsFor(1): %v", err)
	}
	if len(events) != 0 {
		t.Errorf("tick 1: want no events, got %v", events)
	}

	events, err = replay.EventsFor(2)
	if err != nil {
		t.Fatalf("EventsFor(2): %v", err)
	}
	if len(events) != 2 || events[0].Kind != input.KindForce || events[1].Kind != input.KindStabilise {
		t.Errorf("tick 2: got %v", events)
	}
	if events[0].Direction.Y != -1 {
		t.Errorf("tick 2 direction = %v", events[0].Direction)
	}
}

func TestReadReplayRejectsUnknownAction(t *testing.T) {
	log := "tick,action,dir_x,dir_y,heat\n0,teleport,0,0,0\n"
	replay, err := ReadReplay(strings.NewReader(log))
	if err != nil {
		t.Fatalf("parsing log: %v", err)
	}
	if _, err := replay.EventsFor(0); err == nil {
		t.Error("unknown action should fail on replay")
	}
}

func TestReadReplayRejectsOutOfOrder(t *testing.T) {
	log := "tick,action,dir_x,dir_y,heat\n5,stabilise,0,0,0\n2,stabilise,0,0,0\n"
	if _, err := ReadReplay(strings.NewReader(log)); err == nil {
		t.Error("out-of-order log should be rejected")
	}
}

func TestReplayEmptyLog(t *testing.T) {
	replay := &Replay{}
	if replay.LastTick() != -1 {
		t.Errorf("empty log last tick = %d, want -1", replay.LastTick())
	}
	if !replay.Done() {
		t.Error("empty log should be done")
	}
}

// Package telemetry provides action logging, replay, and session stats.
package telemetry

import (
	"fmt"

	"github.com/pthm-cable/drift/input"
)

// ActionRecord is one logged control action. The heat column is the
// player hull's heat after the tick that processed the action, so a
// replayed log can be checked against the recorded trajectory.
type ActionRecord struct {
	Tick   int32   `csv:"tick"`
	Action string  `csv:"action"`
	DirX   float32 `csv:"dir_x"`
	DirY   float32 `csv:"dir_y"`
	Heat   float32 `csv:"heat"`
}

// NewActionRecord builds a record for one event processed on a tick.
func NewActionRecord(tick int32, ev input.Event, heat float32) ActionRecord {
	return ActionRecord{
		Tick:   tick,
		Action: ev.Kind.String(),
		DirX:   ev.Direction.X,
		DirY:   ev.Direction.Y,
		Heat:   heat,
	}
}

// Event reconstructs the input event a record was made from.
func (r ActionRecord) Event() (input.Event, error) {
	kind, err := parseKind(r.Action)
	if err != nil {
		return input.Event{}, err
	}
	return input.Event{
		Kind:      kind,
		Direction: input.Vec{X: r.DirX, Y: r.DirY},
	}, nil
}

func parseKind(name string) (input.Kind, error) {
	switch name {
	case "impulse":
		return input.KindImpulse, nil
	case "force":
		return input.KindForce, nil
	case "stabilise":
		return input.KindStabilise, nil
	case "accelerate":
		return input.KindAccelerate, nil
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

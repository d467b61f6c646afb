package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/drift/input"
)

// Replay feeds a recorded action log back into the simulation. Records
// are grouped by tick; because the control step is a pure function of
// dt, events, and prior state, replaying a log with the same config and
// dt reproduces the original run exactly.
type Replay struct {
	records []ActionRecord
	cursor  int
}

// LoadReplay reads a recorded actions.csv.
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening replay log: %w", err)
	}
	defer f.Close()
	return ReadReplay(f)
}

// ReadReplay parses a recorded action log from a reader.
func ReadReplay(in io.Reader) (*Replay, error) {
	var records []ActionRecord
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("parsing replay log: %w", err)
	}

	// Records must be in tick order; the recorder writes them that way,
	// but a hand-edited log may not be.
	for i := 1; i < len(records); i++ {
		if records[i].Tick < records[i-1].Tick {
			return nil, fmt.Errorf("replay log out of order at row %d (tick %d after %d)",
				i, records[i].Tick, records[i-1].Tick)
		}
	}

	return &Replay{records: records}, nil
}

// EventsFor returns the events recorded for the given tick, in their
// original emission order. Ticks must be requested in increasing order.
func (r *Replay) EventsFor(tick int32) ([]input.Event, error) {
	var events []input.Event
	for r.cursor < len(r.records) && r.records[r.cursor].Tick <= tick {
		rec := r.records[r.cursor]
		r.cursor++
		if rec.Tick < tick {
			continue // skipped past by the caller
		}
		ev, err := rec.Event()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.cursor-1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Done reports whether every record has been consumed.
func (r *Replay) Done() bool {
	return r.cursor >= len(r.records)
}

// LastTick returns the tick of the final record, or -1 for an empty log.
func (r *Replay) LastTick() int32 {
	if len(r.records) == 0 {
		return -1
	}
	return r.records[len(r.records)-1].Tick
}

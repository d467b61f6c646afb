package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/drift/config"
)

// Recorder writes the per-tick action log as CSV, plus a snapshot of the
// configuration the session ran with, into an output directory.
type Recorder struct {
	dir         string
	actionsFile *os.File
	out         io.Writer

	pending       []ActionRecord
	flushInterval int
	sinceFlush    int

	// Track if the header has been written
	headerWritten bool
}

// NewRecorder creates a recorder writing into dir.
// Returns nil if dir is empty (recording disabled).
func NewRecorder(dir string, flushInterval int) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	actionsPath := filepath.Join(dir, "actions.csv")
	f, err := os.Create(actionsPath)
	if err != nil {
		return nil, fmt.Errorf("creating actions.csv: %w", err)
	}

	return &Recorder{
		dir:           dir,
		actionsFile:   f,
		out:           f,
		flushInterval: flushInterval,
	}, nil
}

// WriteConfig saves the active configuration as YAML next to the log.
func (r *Recorder) WriteConfig(cfg *config.Config) error {
	if r == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(r.dir, "config.yaml"))
}

// Record buffers one action record. Buffered records are written every
// flushInterval ticks and on Close.
func (r *Recorder) Record(rec ActionRecord) {
	if r == nil {
		return
	}
	r.pending = append(r.pending, rec)
}

// EndTick counts down to the next flush. Call once per simulation tick.
func (r *Recorder) EndTick() error {
	if r == nil {
		return nil
	}
	r.sinceFlush++
	if r.sinceFlush < r.flushInterval {
		return nil
	}
	r.sinceFlush = 0
	return r.Flush()
}

// Flush writes all buffered records.
func (r *Recorder) Flush() error {
	if r == nil || len(r.pending) == 0 {
		return nil
	}

	if !r.headerWritten {
		// First write includes the header
		if err := gocsv.Marshal(r.pending, r.out); err != nil {
			return fmt.Errorf("writing actions: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(r.pending, r.out); err != nil {
			return fmt.Errorf("writing actions: %w", err)
		}
	}

	r.pending = r.pending[:0]
	return nil
}

// Close flushes buffered records and closes the log file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	if err := r.Flush(); err != nil {
		r.actionsFile.Close()
		return err
	}
	return r.actionsFile.Close()
}

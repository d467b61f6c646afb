package components

import "testing"

func TestCooldownReadyAtConstruction(t *testing.T) {
	for _, seconds := range []float32{0.1, 1.0, 2.0, 30.0} {
		cd := NewCooldown(seconds)
		if !cd.Ready() {
			t.Errorf("NewCooldown(%v) should be ready immediately", seconds)
		}
	}
}

func TestCooldownScenario(t *testing.T) {
	cd := NewCooldown(2.0)
	if !cd.Ready() {
		t.Fatal("fresh cooldown should be ready")
	}

	cd.Start()
	if cd.Ready() {
		t.Error("cooldown should not be ready right after Start")
	}
	if cd.Tick(0.75) {
		t.Error("ready after 0.75s of 2.0s")
	}
	if !cd.Tick(1.5) {
		t.Error("not ready after 2.25s of 2.0s")
	}
	if !cd.Tick(10.0) {
		t.Error("overshooting ticks must keep the cooldown ready")
	}

	// Restart and count back up in even steps
	cd.Start()
	if cd.Ready() {
		t.Error("cooldown should not be ready after restart")
	}
	if cd.Tick(0.75) {
		t.Error("ready after 0.75s")
	}
	if cd.Tick(0.75) {
		t.Error("ready after 1.5s")
	}
	if !cd.Tick(0.75) {
		t.Error("not ready after 2.25s")
	}
}

func TestCooldownSaturates(t *testing.T) {
	cd := NewCooldown(1.0)
	cd.Start()
	cd.Tick(100)
	if cd.Elapsed != cd.Duration {
		t.Errorf("elapsed should saturate at duration, got %v", cd.Elapsed)
	}

	// Ticking a finished cooldown never un-readies it
	for i := 0; i < 5; i++ {
		if !cd.Tick(0.5) {
			t.Fatal("ticking a ready cooldown must keep it ready")
		}
	}
}

func TestCooldownZeroDuration(t *testing.T) {
	cd := NewCooldown(0)
	if !cd.Ready() {
		t.Error("zero-duration cooldown should be ready")
	}
	cd.Start()
	if !cd.Ready() {
		t.Error("zero-duration cooldown should be ready even after Start")
	}
}

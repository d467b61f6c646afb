package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 6, 3, 100)

	// Arena fits at native scale: 12*100 <= 1280, 6*100 <= 720
	if cam.Scale != 100 {
		t.Errorf("expected native scale 100, got %f", cam.Scale)
	}
}

func TestNewClampsScaleToFit(t *testing.T) {
	cam := New(600, 720, 6, 3, 100)

	// Arena width 12 units must fit 600 px: scale 50
	if cam.Scale != 50 {
		t.Errorf("expected fitted scale 50, got %f", cam.Scale)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 6, 3, 100)

	// Arena origin maps to the viewport center
	sx, sy := cam.WorldToScreen(0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}

	// World Y up means screen Y down
	_, syUp := cam.WorldToScreen(0, 1)
	if syUp >= sy {
		t.Errorf("world up should move up the screen: %f vs %f", syUp, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 6, 3, 100)

	testCases := []struct{ wx, wy float32 }{
		{0, 0},
		{-6, -3},
		{6, 3},
		{1.5, -0.75},
	}

	for _, tc := range testCases {
		sx, sy := cam.WorldToScreen(tc.wx, tc.wy)
		wx, wy := cam.ScreenToWorld(sx, sy)
		if math.Abs(float64(wx-tc.wx)) > 0.001 || math.Abs(float64(wy-tc.wy)) > 0.001 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.wx, tc.wy, sx, sy, wx, wy)
		}
	}
}

func TestLength(t *testing.T) {
	cam := New(1280, 720, 6, 3, 100)
	if cam.Length(0.3) != 30 {
		t.Errorf("expected 30 px, got %f", cam.Length(0.3))
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720, 6, 3, 100)
	cam.Resize(600, 720, 100)
	if cam.Scale != 50 {
		t.Errorf("expected refitted scale 50, got %f", cam.Scale)
	}
	if cam.ViewportW != 600 {
		t.Errorf("viewport not updated: %f", cam.ViewportW)
	}
}

package planewar

import (
	"testing"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

func TestLabelRevision(t *testing.T) {
	l := NewLabel("Score: 0", pixel.V(0, 0), FontNormal, colornames.White, LayerPlay)
	if l.Revision() != 1 {
		t.Fatalf("Expected revision 1, got %d", l.Revision())
	}
	if l.Set("Score: 0") || l.Revision() != 1 {
		t.Errorf("Expected setting the same text to be a no-op")
	}
	if !l.Set("Score: 10") || l.Revision() != 2 || l.Text() != "Score: 10" {
		t.Errorf("Expected a new revision, got %d %q", l.Revision(), l.Text())
	}
}

func TestLabelHit(t *testing.T) {
	l := NewLabel("Replay", pixel.V(320, 200), FontNormal, colornames.White, LayerLost)
	l.Size = pixel.V(140, 48)
	if !l.Hit(pixel.V(380, 220)) {
		t.Errorf("Expected a click inside the button to hit")
	}
	if l.Hit(pixel.V(400, 200)) {
		t.Errorf("Expected a click outside the button to miss")
	}
	l.Hidden = true
	if l.Hit(pixel.V(320, 200)) {
		t.Errorf("Expected a hidden button to ignore clicks")
	}
}

func TestHudLayers(t *testing.T) {
	h := newHud(pixel.R(0, 0, 640, 480), 0)
	got := map[string]bool{}
	for _, l := range h.on(LayerPaused) {
		got[l.Text()] = true
	}
	if !got["Paused"] || !got["Score: 0"] || got["Replay"] {
		t.Errorf("Expected pause text and score on the pause screen, got %v", got)
	}
}

func TestHealthText(t *testing.T) {
	tests := []struct {
		health, total int
		want          string
	}{
		{100, 100, "Health: 100.0%"},
		{97, 100, "Health: 97.0%"},
		{1, 3, "Health: 33.3%"},
		{0, 100, "Health: 0.0%"},
		{5, 0, "Health: 0.0%"},
	}
	for _, tt := range tests {
		if got := healthText(tt.health, tt.total); got != tt.want {
			t.Errorf("healthText(%d, %d): Expected %q, got %q", tt.health, tt.total, tt.want, got)
		}
	}
}

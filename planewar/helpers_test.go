package planewar

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/faiface/pixel"
	"github.com/rs/zerolog"
)

func testDeps() Deps {
	return Deps{
		Log:   zerolog.Nop(),
		Rand:  rand.New(rand.NewSource(1)),
		Go:    func(f func()) { f() },
		Sleep: func(time.Duration) {},
	}
}

func newTestWorld() *world {
	w := newWorld(pixel.R(0, 0, 640, 480), rand.New(rand.NewSource(1)), Art{})
	w.launch = func(f func()) { f() }
	w.sleep = func(time.Duration) {}
	return w
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultConfig(), Art{}, NewCarryover(100), 0, testDeps())
	s.Start()
	if s.State() != StatePlaying {
		t.Fatalf("Expected session to be playing after Start, got %v", s.State())
	}
	return s
}

func countKind(w *world, k Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.alive && e.kind == k {
			n++
		}
	}
	return n
}

func kindsOf(w *world, k Kind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.alive && e.kind == k {
			out = append(out, e)
		}
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b pixel.Vec) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

type recordingAudio struct {
	sounds []string
	music  []string
	stops  int
}

func (a *recordingAudio) PlaySound(name string)            { a.sounds = append(a.sounds, name) }
func (a *recordingAudio) PlayMusic(name string, _ float64) { a.music = append(a.music, name) }
func (a *recordingAudio) StopMusic()                       { a.stops++ }

type recordingScreen struct {
	cleared []Layer
	drawn   []Layer
	labels  map[Layer][]string
}

func (s *recordingScreen) Clear(layers Layer) { s.cleared = append(s.cleared, layers) }

func (s *recordingScreen) Draw(layer Layer, entities []*Entity, labels []*Label) []pixel.Rect {
	s.drawn = append(s.drawn, layer)
	if s.labels == nil {
		s.labels = map[Layer][]string{}
	}
	var rects []pixel.Rect
	for _, l := range labels {
		s.labels[layer] = append(s.labels[layer], l.Text())
	}
	for _, e := range entities {
		rects = append(rects, e.VisualBounds())
	}
	return rects
}

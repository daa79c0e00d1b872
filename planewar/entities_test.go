package planewar

import (
	"testing"

	"github.com/faiface/pixel"
)

func testFrames(n int) []*pixel.Sprite {
	frames := make([]*pixel.Sprite, n)
	for i := range frames {
		frames[i] = pixel.NewSprite(nil, pixel.R(0, 0, 32, 32))
	}
	return frames
}

func TestAnimateIndependentOfSplit(t *testing.T) {
	splits := map[string][]float64{
		"one step":     {1.0},
		"even steps":   {0.2, 0.2, 0.2, 0.2, 0.2},
		"uneven steps": {0.05, 0.3, 0.15, 0.1, 0.4},
		"tiny steps":   {0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1},
	}
	for name, steps := range splits {
		t.Run(name, func(t *testing.T) {
			e := NewEntity(KindExplosion, 0, 0, explosionSize, testFrames(3))
			for _, dt := range steps {
				e.animate(dt)
			}
			// 1.0s at 0.2s per swap is 5 swaps, 5 mod 3 frames
			if e.frame != 2 {
				t.Errorf("Expected frame 2, got %d", e.frame)
			}
		})
	}
}

func TestAnimateSingleFrameIsNoop(t *testing.T) {
	e := NewEntity(KindEnemy, 0, 0, enemySize, testFrames(1))
	e.animate(10)
	if e.frame != 0 || e.untilSwap != defaultInterval {
		t.Errorf("Expected untouched animation, got frame %d untilSwap %v", e.frame, e.untilSwap)
	}
}

func TestSpriteAndVisualBounds(t *testing.T) {
	e := NewEntity(KindEnemy, 100, 100, enemySize, nil)
	if e.Sprite() != nil {
		t.Errorf("Expected no sprite without art")
	}
	if e.VisualBounds() != e.Bounds() {
		t.Errorf("Expected visual bounds to fall back to the collision box, got %v", e.VisualBounds())
	}

	e = NewEntity(KindEnemy, 100, 100, enemySize, testFrames(2))
	if got, want := e.VisualBounds(), pixel.R(84, 84, 116, 116); got != want {
		t.Errorf("Expected visual bounds %v, got %v", want, got)
	}
	if got, want := e.Bounds(), pixel.R(60, 70, 140, 130); got != want {
		t.Errorf("Expected collision box %v, got %v", want, got)
	}
}

func TestKillPlayerTakesAfterburner(t *testing.T) {
	w := newTestWorld()
	p := w.add(NewPlayer(320, 240, Art{}))
	ab := w.add(p.afterburner)

	w.kill(p)
	if p.alive || ab.alive {
		t.Errorf("Expected player and afterburner dead, got %v and %v", p.alive, ab.alive)
	}
	if p.layers != 0 || p.sets != 0 || p.update != 0 {
		t.Errorf("Expected player removed from every set")
	}

	w.sweep()
	if len(w.entities) != 0 {
		t.Errorf("Expected sweep to drop dead entities, %d left", len(w.entities))
	}
}

func TestKillEnemyTakesItsBullets(t *testing.T) {
	w := newTestWorld()
	e := w.add(NewEnemy(320, 400, 2, w.rng, Art{}))
	other := w.add(NewEnemyBullet(10, 10, Art{}))

	e.fireCooldown = 0
	b1 := w.enemyFire(e)
	e.fireCooldown = 0
	b2 := w.enemyFire(e)
	if b1 == nil || b2 == nil {
		t.Fatalf("Expected two bullets")
	}

	w.kill(e)
	if b1.alive || b2.alive {
		t.Errorf("Expected the enemy's bullets to die with it")
	}
	if !other.alive {
		t.Errorf("Expected unrelated bullets to survive")
	}
}

func TestIDsAreUnique(t *testing.T) {
	w := newTestWorld()
	seen := map[uint64]bool{}
	for i := 0; i < 50; i++ {
		e := w.add(NewExplosion(0, 0, Art{}))
		if seen[e.ID()] {
			t.Fatalf("Duplicate id %d", e.ID())
		}
		seen[e.ID()] = true
	}
}

func TestKindString(t *testing.T) {
	if KindLargeFireball.String() != "largefireball" {
		t.Errorf("Expected largefireball, got %s", KindLargeFireball)
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Kind(99))
	}
}

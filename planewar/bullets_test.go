package planewar

import (
	"testing"

	"github.com/faiface/pixel"
)

func TestHomingRecomputesThenFreezes(t *testing.T) {
	w := newTestWorld()
	b := w.add(NewHomingBullet(320, 400, 100, 0.5, nil))

	updateHoming(w, b, frameContext{dt: 0.25, target: pixel.V(420, 400), hasTarget: true})
	if !nearVec(b.direction, pixel.V(1, 0)) || b.locked {
		t.Fatalf("Expected to steer right while homing, got %v locked=%v", b.direction, b.locked)
	}
	if !nearVec(b.origin, pixel.V(345, 400)) {
		t.Fatalf("Expected to move 25px, got %v", b.origin)
	}

	// homing runs out this frame: one last aim, then frozen
	updateHoming(w, b, frameContext{dt: 0.25, target: pixel.V(345, 300), hasTarget: true})
	if !b.locked || !nearVec(b.direction, down) {
		t.Fatalf("Expected final heading straight down and locked, got %v locked=%v", b.direction, b.locked)
	}

	updateHoming(w, b, frameContext{dt: 0.1, target: pixel.V(600, 400), hasTarget: true})
	if !nearVec(b.direction, down) {
		t.Errorf("Expected heading to stay frozen, got %v", b.direction)
	}
}

func TestHomingWithoutTargetKeepsHeading(t *testing.T) {
	w := newTestWorld()
	b := w.add(NewHomingBullet(320, 400, 100, 0.5, nil))
	updateHoming(w, b, frameContext{dt: 0.1})
	if !nearVec(b.direction, down) || !nearVec(b.origin, pixel.V(320, 390)) {
		t.Errorf("Expected to keep flying down, got %v at %v", b.direction, b.origin)
	}
}

func TestHomingBulletDiesOffScreen(t *testing.T) {
	w := newTestWorld()
	b := w.add(NewHomingBullet(320, 5, 300, 0.5, nil))
	updateHoming(w, b, frameContext{dt: 0.1})
	if b.alive {
		t.Errorf("Expected homing bullet below the screen to die")
	}
}

func TestChaseShotSeeksItsTarget(t *testing.T) {
	w := newTestWorld()
	p := w.add(NewPlayer(320, 100, Art{}))
	boss := w.add(NewBoss(520, 380, w.screen, Art{}))

	shot := w.chaseFire(p, boss)
	if shot == nil {
		t.Fatalf("Expected a chase shot")
	}
	if shot.sets != setPlayerShots {
		t.Errorf("Expected the chase shot to count as a player shot")
	}
	if w.chaseFire(p, boss) != nil {
		t.Errorf("Expected chase cooldown to block a second shot")
	}

	// the frame context target is the player, the shot must ignore it
	updateHoming(w, shot, frameContext{dt: 0.01, target: p.origin, hasTarget: true})
	want, _ := towards(pixel.V(320, 120), boss.origin)
	if !nearVec(shot.direction, want) {
		t.Errorf("Expected heading %v towards the boss, got %v", want, shot.direction)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	w := newTestWorld()
	p := w.add(NewPlayer(320, 240, Art{}))

	b := w.playerFire(p)
	if b == nil {
		t.Fatalf("Expected the first shot to fire")
	}
	if b.kind != KindPlayerBullet || !nearVec(b.direction, pixel.V(0, 1)) || b.speed != playerShotSpeed {
		t.Errorf("Expected an upward player bullet, got %v %v %v", b.kind, b.direction, b.speed)
	}
	if w.playerFire(p) != nil {
		t.Errorf("Expected cooldown to block the second shot")
	}
	updatePlayer(w, p, frameContext{dt: playerFireCooldown})
	if w.playerFire(p) == nil {
		t.Errorf("Expected to fire again once the cooldown ran out")
	}

	w.kill(p)
	p.fireCooldown = 0
	if w.playerFire(p) != nil {
		t.Errorf("Expected a dead player not to fire")
	}
}

func TestEnemyFire(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		wantKind Kind
		wantCD   float64
		fires    bool
	}{
		{"tier 0 never fires", 0, 0, 0, false},
		{"tier 1 never fires", 1, 0, 0, false},
		{"tier 2 fires straight", 2, KindEnemyBullet, enemyFireCooldown, true},
		{"tier 3 fires homing", 3, KindHomingBullet, enemyHomingFireCooldown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			e := w.add(NewEnemy(320, 400, tt.level, w.rng, Art{}))
			if tt.fires && w.enemyFire(e) != nil {
				t.Fatalf("Expected the spawn cooldown to hold fire")
			}
			e.fireCooldown = 0
			b := w.enemyFire(e)
			if !tt.fires {
				if b != nil {
					t.Errorf("Expected no bullet")
				}
				return
			}
			if b == nil {
				t.Fatalf("Expected a bullet")
			}
			if b.kind != tt.wantKind {
				t.Errorf("Expected %v, got %v", tt.wantKind, b.kind)
			}
			if e.fireCooldown != tt.wantCD {
				t.Errorf("Expected cooldown reset to %v, got %v", tt.wantCD, e.fireCooldown)
			}
			if len(e.bullets) != 1 || e.bullets[0] != b {
				t.Errorf("Expected the enemy to remember its bullet")
			}
		})
	}
}

package planewar

import (
	"testing"

	"github.com/faiface/pixel"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name  string
		start pixel.Vec
		x, y  float64
		dt    float64
		want  pixel.Vec
	}{
		{"right", pixel.V(320, 240), 1, 0, 0.1, pixel.V(350, 240)},
		{"signs are normalised", pixel.V(320, 240), 5, -3, 0.1, pixel.V(350, 210)},
		{"diagonal moves both axes fully", pixel.V(320, 240), -1, 1, 0.1, pixel.V(290, 270)},
		{"clamped left", pixel.V(10, 240), -1, 0, 1, pixel.V(30, 240)},
		{"clamped top", pixel.V(320, 470), 0, 1, 1, pixel.V(320, 460)},
		{"clamped bottom right", pixel.V(630, 5), 1, -1, 1, pixel.V(610, 20)},
		{"no input", pixel.V(100, 100), 0, 0, 1, pixel.V(100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			p := w.add(NewPlayer(tt.start.X, tt.start.Y, Art{}))
			w.movePlayer(p, tt.x, tt.y, tt.dt)
			if !nearVec(p.origin, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, p.origin)
			}
		})
	}
}

func TestAfterburnerFollowsUpwardMovement(t *testing.T) {
	w := newTestWorld()
	p := w.add(NewPlayer(320, 240, Art{}))
	ab := w.add(p.afterburner)
	ab.layers = 0

	w.movePlayer(p, 0, 1, 0.01)
	if ab.layers != LayerPlay {
		t.Errorf("Expected afterburner shown while moving up")
	}
	if ab.origin.Y >= p.Bounds().Min.Y {
		t.Errorf("Expected afterburner under the craft, got %v for player box %v", ab.origin, p.Bounds())
	}

	w.movePlayer(p, 0, 0, 0.01)
	if ab.layers != 0 {
		t.Errorf("Expected afterburner hidden while idle")
	}

	w.movePlayer(p, 0, 1, 0.01)
	w.movePlayer(p, 1, 0, 0.01)
	if ab.layers != 0 {
		t.Errorf("Expected afterburner hidden while moving sideways")
	}
	if !ab.alive {
		t.Errorf("Expected hiding the afterburner to keep it alive")
	}
}

func TestEnemyMovement(t *testing.T) {
	w := newTestWorld()

	gone := w.add(NewEnemy(320, 10, 0, w.rng, Art{}))
	gone.speed = 200
	updateEnemy(w, gone, frameContext{dt: 0.5})
	if gone.alive {
		t.Errorf("Expected enemy fully below the screen to be killed")
	}

	partial := w.add(NewEnemy(320, 20, 0, w.rng, Art{}))
	partial.speed = 200
	updateEnemy(w, partial, frameContext{dt: 0.1})
	if !partial.alive || !near(partial.origin.Y, 0) {
		t.Errorf("Expected enemy partially below the screen to keep going, got alive=%v at %v", partial.alive, partial.origin)
	}

	edge := w.add(NewEnemy(10, 470, 0, w.rng, Art{}))
	edge.speed = 100
	updateEnemy(w, edge, frameContext{dt: 0.01})
	if !nearVec(edge.origin, pixel.V(40, 450)) {
		t.Errorf("Expected enemy pulled back on screen to (40, 450), got %v", edge.origin)
	}

	timers := w.add(NewEnemy(320, 240, 3, w.rng, Art{}))
	updateEnemy(w, timers, frameContext{dt: 0.1})
	if !near(timers.fullTime, 0.15) || !near(timers.fireCooldown, 1.4) {
		t.Errorf("Expected timers to count down, got fullTime %v fireCooldown %v", timers.fullTime, timers.fireCooldown)
	}
}

func TestStraightBulletsLeaveTheScreen(t *testing.T) {
	w := newTestWorld()
	up := w.add(NewPlayerBullet(320, 470, Art{}))
	updateStraight(w, up, frameContext{dt: 0.01})
	if !up.alive {
		t.Errorf("Expected bullet still partly on screen to live")
	}
	updateStraight(w, up, frameContext{dt: 0.1})
	if up.alive {
		t.Errorf("Expected bullet above the screen to die, at %v", up.origin)
	}

	ball := w.add(NewFireball(630, 240, pixel.V(1, 0), Art{}))
	updateStraight(w, ball, frameContext{dt: 0.1})
	if ball.alive {
		t.Errorf("Expected fireball past the right edge to die, at %v", ball.origin)
	}
}

func TestExplosionLifetime(t *testing.T) {
	w := newTestWorld()
	x := w.add(NewExplosion(100, 100, Art{}))
	w.advance(LayerPlay, frameContext{dt: 0.03})
	if !x.alive || x.chainTime > 0.05 || x.chainTime <= 0 {
		t.Errorf("Expected chain window still open after 0.03s, got %v", x.chainTime)
	}
	w.advance(LayerPlay, frameContext{dt: 0.3})
	if !x.alive {
		t.Errorf("Expected explosion to outlive its chain window")
	}
	w.advance(LayerPlay, frameContext{dt: 0.3})
	if x.alive {
		t.Errorf("Expected explosion gone after 0.63s")
	}
}

func TestAdvanceOnlyTouchesItsLayer(t *testing.T) {
	w := newTestWorld()
	play := w.add(NewExplosion(100, 100, Art{}))
	lost := w.add(NewExplosion(100, 100, Art{}))
	lost.update = LayerLost

	w.advance(LayerLost, frameContext{dt: 0.1})
	if !near(play.lifeTime, explosionLife) {
		t.Errorf("Expected play layer explosion untouched, got %v", play.lifeTime)
	}
	if !near(lost.lifeTime, explosionLife-0.1) {
		t.Errorf("Expected lost layer explosion advanced, got %v", lost.lifeTime)
	}
}

func TestLargeFireballAttachesThenLocks(t *testing.T) {
	w := newTestWorld()
	host := w.add(NewBoss(320, 380, w.screen, Art{}))
	fb := w.add(NewLargeFireball(host, Art{}))
	ctx := frameContext{dt: 1.0, target: pixel.V(320, 100), hasTarget: true}

	updateLargeFireball(w, fb, ctx)
	host.origin = pixel.V(300, 380)
	ctx.dt = 0.4
	updateLargeFireball(w, fb, ctx)
	if fb.origin != host.origin {
		t.Errorf("Expected fireball riding the boss at %v, got %v", host.origin, fb.origin)
	}

	ctx.dt = 0.2
	updateLargeFireball(w, fb, ctx)
	want, _ := towards(pixel.V(300, 380), pixel.V(320, 100))
	if !fb.locked || !nearVec(fb.direction, want) {
		t.Errorf("Expected heading locked to %v, got %v", want, fb.direction)
	}
	if !near(fb.speed, 100) {
		t.Errorf("Expected speed 100 after 0.2s of acceleration, got %v", fb.speed)
	}

	ctx.target = pixel.V(0, 0)
	ctx.dt = 0.1
	updateLargeFireball(w, fb, ctx)
	if !nearVec(fb.direction, want) {
		t.Errorf("Expected heading to stay locked, got %v", fb.direction)
	}
	if !near(fb.speed, 150) {
		t.Errorf("Expected speed 150, got %v", fb.speed)
	}
}

func TestDecoyFiresThenExpires(t *testing.T) {
	w := newTestWorld()
	d := w.add(NewDecoy(50, 380, w.rng, Art{}))

	updateDecoy(w, d, frameContext{dt: 0.5})
	if countKind(w, KindEnemyBullet) != 0 {
		t.Errorf("Expected no shot before the first second")
	}
	updateDecoy(w, d, frameContext{dt: 0.5})
	if countKind(w, KindEnemyBullet) != 1 {
		t.Errorf("Expected one shot after a second, got %d", countKind(w, KindEnemyBullet))
	}
	for i := 0; i < 14; i++ {
		updateDecoy(w, d, frameContext{dt: 1})
	}
	if d.alive {
		t.Errorf("Expected decoy gone after 15s")
	}
}

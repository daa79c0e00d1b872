package planewar

import (
	"time"

	"github.com/faiface/pixel"
)

type skill int

const (
	skillHomingTriple skill = iota
	skillRadialBurst
	skillVolley
	skillBarrage
	skillLargeFireball
	skillDecoys
	skillCount
)

var skillNames = [skillCount]string{
	"homing-triple", "radial-burst", "volley", "barrage", "large-fireball", "decoys",
}

func (s skill) String() string {
	if s < 0 || s >= skillCount {
		return "none"
	}
	return skillNames[s]
}

var skillCooldowns = [skillCount]float64{5, 7, 10, 12.5, 15, 20}

type bossData struct {
	direction   float64
	left, right float64
	cooldowns   [skillCount]float64
	master      float64
	chance      float64

	target    pixel.Vec
	hasTarget bool

	// lastSkill is the most recent launch, -1 before the first.
	lastSkill skill
}

func newBossData(screen pixel.Rect) *bossData {
	return &bossData{
		direction: 1,
		left:      screen.Min.X,
		right:     screen.Max.X,
		cooldowns: skillCooldowns,
		chance:    bossSkillChance,
		lastSkill: -1,
	}
}

// skillTask is what a running skill may use. It never reaches the world
// itself, every effect goes through do.
type skillTask struct {
	queue *commandQueue
	sleep func(time.Duration)
	boss  *Entity
}

func (t skillTask) do(c command) bool {
	return t.queue.post(func(w *world) {
		if t.boss.alive {
			c(w)
		}
	})
}

var skills = [skillCount]func(skillTask){
	skillHomingTriple:  castHomingTriple,
	skillRadialBurst:   castRadialBurst,
	skillVolley:        castVolley,
	skillBarrage:       castBarrage,
	skillLargeFireball: castLargeFireball,
	skillDecoys:        castDecoys,
}

func updateBoss(w *world, b *Entity, ctx frameContext) {
	bd := b.boss
	bd.target, bd.hasTarget = ctx.target, ctx.hasTarget

	b.origin.X += float64(w.rng.Intn(bossMaxPatrol+1)) * ctx.dt * bd.direction
	box := b.Bounds()
	if box.Max.X >= bd.right {
		b.origin.X -= box.Max.X - bd.right
		bd.direction = -bd.direction
	}
	if box = b.Bounds(); box.Min.X <= bd.left {
		b.origin.X += bd.left - box.Min.X
		bd.direction = -bd.direction
	}
	b.origin = clampInto(b.Bounds(), w.screen).Center()

	var ready []skill
	for i := range bd.cooldowns {
		bd.cooldowns[i] -= ctx.dt
		if bd.cooldowns[i] <= 0 {
			ready = append(ready, skill(i))
		}
	}
	bd.master -= ctx.dt

	if len(ready) == 0 || bd.master > 0 || w.rng.Float64() >= bd.chance {
		return
	}
	s := ready[w.rng.Intn(len(ready))]
	bd.cooldowns[s] = skillCooldowns[s]
	bd.master = bossMasterCD
	bd.lastSkill = s

	task := skillTask{queue: w.commands, sleep: w.sleep, boss: b}
	w.launch(func() { skills[s](task) })
}

func (w *world) bossShot(b *Entity) *Entity {
	s := w.add(NewEnemyBullet(b.origin.X, b.origin.Y, w.art))
	s.layers = LayerPlay | LayerBoss
	return s
}

func (w *world) bossFireball(at, dir pixel.Vec, frames []*pixel.Sprite) *Entity {
	f := NewFireball(at.X, at.Y, dir, w.art)
	f.frames = frames
	f.layers = LayerPlay | LayerBoss
	return w.add(f)
}

func castHomingTriple(t skillTask) {
	t.do(func(w *world) {
		for _, dx := range []float64{-30, 30, 0} {
			at := t.boss.origin.Add(pixel.V(dx, 0))
			h := NewHomingBullet(at.X, at.Y, 300, 1.5, w.art[ArtEnemyShot])
			h.layers = LayerPlay | LayerBoss
			w.add(h)
		}
	})
}

func castRadialBurst(t skillTask) {
	t.do(func(w *world) {
		for deg := 0; deg < 360; deg += 20 {
			w.bossFireball(t.boss.origin, polar(float64(deg)), w.art[ArtFireball])
		}
	})
}

// castVolley sends three shots at the player every 50ms, straight down without one.
func castVolley(t skillTask) {
	for i := 0; i < 25; i++ {
		ok := t.do(func(w *world) {
			b := t.boss
			dir := down
			if b.boss.hasTarget {
				if d, found := towards(b.origin, b.boss.target); found {
					dir = d
				}
			}
			for _, dx := range []float64{-30, 0, 30} {
				w.bossFireball(b.origin.Add(pixel.V(dx, 0)), dir, w.art[ArtEnemyShot])
			}
		})
		if !ok {
			return
		}
		t.sleep(50 * time.Millisecond)
	}
}

func castBarrage(t skillTask) {
	for i := 0; i < 10; i++ {
		if !t.do(func(w *world) { w.bossShot(t.boss) }) {
			return
		}
		t.sleep(750 * time.Millisecond)
	}
}

func castLargeFireball(t skillTask) {
	t.do(func(w *world) {
		w.add(NewLargeFireball(t.boss, w.art))
	})
}

// castDecoys narrows the patrol while two decoys are out, then restores it.
func castDecoys(t skillTask) {
	ok := t.do(func(w *world) {
		bd := t.boss.boss
		bd.left, bd.right = w.screen.Min.X+decoyMargin, w.screen.Max.X-decoyMargin
		y := w.screen.Max.Y - bossTopMargin
		w.add(NewDecoy(w.screen.Min.X+50, y, w.rng, w.art))
		w.add(NewDecoy(w.screen.Max.X-50, y, w.rng, w.art))
	})
	if !ok {
		return
	}
	t.sleep(time.Duration(decoyLife * float64(time.Second)))
	t.do(func(w *world) {
		bd := t.boss.boss
		bd.left, bd.right = w.screen.Min.X, w.screen.Max.X
	})
}

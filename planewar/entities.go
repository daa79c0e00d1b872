package planewar

import (
	"math/rand"

	"github.com/faiface/pixel"
)

// ENTITIES

type Kind int

const (
	KindPlayer Kind = iota
	KindAfterburner
	KindEnemy
	KindBoss
	KindDecoy
	KindPlayerBullet
	KindEnemyBullet
	KindHomingBullet
	KindFireball
	KindLargeFireball
	KindExplosion
	kindCount
)

var kindNames = [kindCount]string{
	"player", "afterburner", "enemy", "boss", "decoy", "playerbullet",
	"enemybullet", "homingbullet", "fireball", "largefireball", "explosion",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Layer is a draw layer, and the bucket that advances an entity each frame.
type Layer uint8

const (
	LayerPlay Layer = 1 << iota
	LayerBoss
	LayerPaused
	LayerLost
	LayerWon
)

// collision sets
type collider uint8

const (
	setEnemies collider = 1 << iota
	setChain
	setPlayerShots
	setEnemyShots
	setPersistent
	setBoss
)

// Art holds the sprite lists entities are drawn with, keyed by name.
// Missing entries are fine: the entity just isn't drawn.
type Art map[string][]*pixel.Sprite

const (
	ArtPlayer        = "player"
	ArtAfterburner   = "afterburner"
	ArtEnemy         = "enemy" // variants, one is picked per enemy
	ArtBoss          = "boss"
	ArtPlayerShot    = "shot"
	ArtEnemyShot     = "enemy-shot"
	ArtFireball      = "fireball"
	ArtLargeFireball = "large-fireball"
	ArtExplosion     = "explosion"
)

// For now just a god entity struct, kinds only use the fields they need.
type Entity struct {
	id    uint64
	kind  Kind
	alive bool

	origin pixel.Vec
	size   pixel.Vec
	layers Layer
	update Layer
	sets   collider

	frames    []*pixel.Sprite
	frame     int
	interval  float64
	untilSwap float64

	speed     float64
	direction pixel.Vec
	accel     float64

	fireCooldown  float64
	fireTotal     float64
	chaseCooldown float64

	// player
	afterburner *Entity

	// enemy
	fullTime float64
	canFire  bool
	homing   bool
	bullets  []*Entity

	// homing bullets
	homingTime float64
	locked     bool
	seek       *Entity

	// explosions
	lifeTime  float64
	chainTime float64

	// large fireball, decoys
	attachTime float64
	host       *Entity
	liveTime   float64

	boss *bossData
}

func (e *Entity) ID() uint64        { return e.id }
func (e *Entity) Kind() Kind        { return e.kind }
func (e *Entity) Alive() bool       { return e.alive }
func (e *Entity) Origin() pixel.Vec { return e.origin }
func (e *Entity) Frame() int        { return e.frame }

// Bounds is the collision box.
func (e *Entity) Bounds() pixel.Rect {
	return boxAt(e.origin, e.size)
}

// Sprite is the current animation frame, nil when the entity has no art.
func (e *Entity) Sprite() *pixel.Sprite {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[e.frame]
}

// VisualBounds is the area the current sprite covers.
func (e *Entity) VisualBounds() pixel.Rect {
	if s := e.Sprite(); s != nil && s.Frame().Area() > 0 {
		return boxAt(e.origin, s.Frame().Size())
	}
	return e.Bounds()
}

// animate advances the frame index once per full interval, keeping the remainder.
func (e *Entity) animate(dt float64) {
	if len(e.frames) < 2 || e.interval <= 0 {
		return
	}
	e.untilSwap -= dt
	for e.untilSwap <= 1e-9 {
		e.untilSwap += e.interval
		e.frame = (e.frame + 1) % len(e.frames)
	}
}

func NewEntity(kind Kind, x, y float64, size pixel.Vec, frames []*pixel.Sprite) *Entity {
	e := new(Entity)
	e.kind = kind
	e.alive = true
	e.origin = pixel.V(x, y)
	e.size = size
	e.frames = frames
	e.interval = defaultInterval
	e.untilSwap = defaultInterval
	e.layers = LayerPlay
	e.update = LayerPlay
	return e
}

func NewPlayer(x, y float64, art Art) *Entity {
	p := NewEntity(KindPlayer, x, y, playerSize, art[ArtPlayer])
	p.speed = playerSpeed
	p.fireTotal = playerFireCooldown
	p.afterburner = NewEntity(KindAfterburner, x, y, afterburnerSize, art[ArtAfterburner])
	return p
}

func NewEnemy(x, y float64, level int, rng *rand.Rand, art Art) *Entity {
	tier := difficulties[level]
	var frames []*pixel.Sprite
	if variants := art[ArtEnemy]; len(variants) > 0 {
		frames = variants[rng.Intn(len(variants)):][:1]
	}
	e := NewEntity(KindEnemy, x, y, enemySize, frames)
	e.sets = setEnemies
	e.speed = float64(tier.minSpeed + rng.Intn(tier.maxSpeed-tier.minSpeed+1))
	e.fullTime = tier.fullTime
	e.canFire = tier.fire
	e.homing = tier.homing
	e.fireTotal = enemyFireCooldown
	if e.homing {
		e.fireTotal = enemyHomingFireCooldown
	}
	e.fireCooldown = e.fireTotal
	return e
}

func NewPlayerBullet(x, y float64, art Art) *Entity {
	b := NewEntity(KindPlayerBullet, x, y, shotSize, art[ArtPlayerShot])
	b.sets = setPlayerShots
	b.speed = playerShotSpeed
	b.direction = pixel.V(0, 1)
	return b
}

func NewEnemyBullet(x, y float64, art Art) *Entity {
	b := NewEntity(KindEnemyBullet, x, y, shotSize, art[ArtEnemyShot])
	b.sets = setEnemyShots
	b.speed = enemyShotSpeed
	b.direction = down
	return b
}

// NewHomingBullet chases the target it is given for homingTime seconds, then flies straight.
func NewHomingBullet(x, y, speed, homingTime float64, frames []*pixel.Sprite) *Entity {
	b := NewEntity(KindHomingBullet, x, y, shotSize, frames)
	b.sets = setEnemyShots
	b.speed = speed
	b.homingTime = homingTime
	b.direction = down
	return b
}

func NewFireball(x, y float64, dir pixel.Vec, art Art) *Entity {
	b := NewEntity(KindFireball, x, y, fireballSize, art[ArtFireball])
	b.sets = setEnemyShots
	b.speed = fireballSpeed
	b.direction = dir
	return b
}

func NewLargeFireball(host *Entity, art Art) *Entity {
	b := NewEntity(KindLargeFireball, host.origin.X, host.origin.Y, largeFireballSize, art[ArtLargeFireball])
	b.sets = setPersistent
	b.layers = LayerPlay | LayerBoss | LayerLost
	b.host = host
	b.attachTime = largeFireballWait
	b.accel = largeFireballAcc
	b.direction = down
	return b
}

func NewDecoy(x, y float64, rng *rand.Rand, art Art) *Entity {
	var frames []*pixel.Sprite
	if variants := art[ArtEnemy]; len(variants) > 0 {
		frames = variants[rng.Intn(len(variants)):][:1]
	}
	d := NewEntity(KindDecoy, x, y, enemySize, frames)
	d.sets = setPersistent
	d.layers = LayerPlay | LayerBoss | LayerLost
	d.liveTime = decoyLife
	d.fireTotal = decoyFireCooldown
	d.fireCooldown = decoyFireCooldown
	return d
}

func NewBoss(x, y float64, screen pixel.Rect, art Art) *Entity {
	b := NewEntity(KindBoss, x, y, bossSize, art[ArtBoss])
	b.sets = setBoss
	b.layers = LayerBoss
	b.update = LayerBoss
	b.boss = newBossData(screen)
	return b
}

// NewExplosion lasts explosionLife seconds but only chains into enemies for explosionChain.
func NewExplosion(x, y float64, art Art) *Entity {
	e := NewEntity(KindExplosion, x, y, explosionSize, art[ArtExplosion])
	e.sets = setChain
	e.interval = explosionInterval
	e.untilSwap = explosionInterval
	e.lifeTime = explosionLife
	e.chainTime = explosionChain
	return e
}

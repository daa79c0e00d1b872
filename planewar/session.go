package planewar

import (
	"math/rand"
	"time"

	"github.com/faiface/pixel"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type State int

const (
	StateSetup State = iota
	StatePlaying
	StatePaused
	StateLost
	StateWon
)

var stateNames = [...]string{"setup", "playing", "paused", "lost", "won"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) Ended() bool {
	return s == StateLost || s == StateWon
}

// Screen receives a frame, one layer at a time, and reports the regions that changed.
// Clear takes a mask and empties every layer in it.
type Screen interface {
	Clear(layers Layer)
	Draw(layer Layer, entities []*Entity, labels []*Label) []pixel.Rect
}

// Deps are the session's collaborators. Zero fields get working defaults.
type Deps struct {
	Log   zerolog.Logger
	Audio Audio
	Rand  *rand.Rand
	// Go runs a boss skill in the background.
	Go    func(func())
	Sleep func(time.Duration)
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = nopAudio{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Go == nil {
		d.Go = func(f func()) { go f() }
	}
	if d.Sleep == nil {
		d.Sleep = time.Sleep
	}
	return d
}

// Session is one play-through, from the first frame to the win or lose screen.
type Session struct {
	id    string
	cfg   Config
	log   zerolog.Logger
	audio Audio
	world *world
	hud   *hud

	state      State
	fullscreen bool
	debug      bool
	showFPS    bool
	quit       bool
	replay     bool
	chord      map[string]bool

	player *Entity
	boss   *Entity
	score  int
	level  int
	carry  Carryover
	fps    float64
}

func NewSession(cfg Config, art Art, carry Carryover, best int, deps Deps) *Session {
	deps = deps.withDefaults()
	id := uuid.NewString()
	w := newWorld(cfg.Screen(), deps.Rand, art)
	w.launch = deps.Go
	w.sleep = deps.Sleep
	return &Session{
		id:    id,
		cfg:   cfg,
		log:   deps.Log.With().Str("component", "session").Str("session", id).Logger(),
		audio: deps.Audio,
		world: w,
		hud:   newHud(cfg.Screen(), best),
		state: StateSetup,
		chord: map[string]bool{},
		carry: carry,
	}
}

func (s *Session) ID() string            { return s.id }
func (s *Session) State() State          { return s.state }
func (s *Session) Score() int            { return s.score }
func (s *Session) Difficulty() int       { return s.level }
func (s *Session) Carryover() Carryover  { return s.carry }
func (s *Session) Fullscreen() bool      { return s.fullscreen }
func (s *Session) Debug() bool           { return s.debug }
func (s *Session) Quit() bool            { return s.quit }
func (s *Session) ReplayRequested() bool { return s.replay }
func (s *Session) Player() *Entity       { return s.player }
func (s *Session) Boss() *Entity         { return s.boss }

// SetFPS feeds the measured frame rate to the FPS label.
func (s *Session) SetFPS(fps float64) { s.fps = fps }

// Start puts the player on screen and starts the music.
func (s *Session) Start() {
	if s.state != StateSetup {
		return
	}
	c := s.world.screen.Center()
	s.player = s.world.add(NewPlayer(c.X, c.Y, s.world.art))
	ab := s.world.add(s.player.afterburner)
	ab.layers = 0
	s.hud.health.Set(healthText(s.carry.BossHealth, s.carry.BossTotal))

	s.audio.PlayMusic(MusicMain, 1)
	s.state = StatePlaying
	s.log.Info().Bool("boss_fight", s.carry.BossFight).Int("boss_health", s.carry.BossHealth).Msg("session started")
}

// Step advances the session by dt seconds.
func (s *Session) Step(in Input, dt float64) {
	dt = clampDelta(dt)
	s.world.applyCommands()
	s.handle(in)

	if s.state == StatePlaying {
		s.play(in, dt)
	}

	ctx := frameContext{dt: dt}
	switch s.state {
	case StatePaused:
		s.world.advance(LayerPaused, ctx)
	case StateLost:
		s.world.advance(LayerLost, ctx)
	case StateWon:
		s.world.advance(LayerWon, ctx)
	}

	s.refreshHud()
	s.world.sweep()
}

func (s *Session) play(in Input, dt float64) {
	x, y := in.Axis()
	s.world.movePlayer(s.player, x, y, dt)
	s.world.advance(LayerPlay, s.frameContext(dt))

	s.resolve(in)

	if s.boss != nil && s.boss.alive {
		s.world.advance(LayerBoss, s.frameContext(dt))
	}
}

func (s *Session) frameContext(dt float64) frameContext {
	ctx := frameContext{dt: dt}
	if s.player != nil && s.player.alive {
		ctx.target, ctx.hasTarget = s.player.origin, true
	}
	return ctx
}

func (s *Session) handle(in Input) {
	if in.Closed {
		s.quit = true
	}
	for _, ev := range in.Events {
		switch ev.Type {
		case EventKeyDown:
			s.chordKey(ev.Key)
			s.handleAction(ev.Action)
		case EventMouseUp:
			if s.state.Ended() && s.hud.replay.Hit(ev.Pos) {
				s.replay = true
			}
		}
	}
}

func (s *Session) handleAction(a Action) {
	switch a {
	case ActionPause:
		switch s.state {
		case StatePlaying:
			s.state = StatePaused
		case StatePaused:
			s.state = StatePlaying
		}
	case ActionFPS:
		s.showFPS = !s.showFPS
	case ActionQuit:
		s.quit = true
	case ActionFullscreen:
		if s.state == StatePlaying {
			s.state = StatePaused
		}
		s.fullscreen = !s.fullscreen
	case ActionConfirm:
		if s.state.Ended() {
			s.replay = true
		}
	}
}

// chordKey toggles debug once b, u and g have all been pressed.
func (s *Session) chordKey(key string) {
	switch key {
	case "b", "u", "g":
		s.chord[key] = true
	}
	if len(s.chord) == 3 {
		s.debug = !s.debug
		s.chord = map[string]bool{}
		s.log.Info().Bool("debug", s.debug).Msg("debug toggled")
	}
}

func (s *Session) refreshHud() {
	s.hud.score.Set(scoreText(s.score))
	s.hud.fps.Hidden = !s.showFPS
	if s.showFPS {
		s.hud.fps.Set(fpsText(s.fps))
	}
	s.hud.debug.Hidden = !s.debug
	s.hud.health.Hidden = !s.carry.BossFight
}

func (s *Session) end(state State) {
	if s.state.Ended() {
		return
	}
	s.state = state
	if state == StateLost && s.carry.BossFight {
		s.audio.StopMusic()
	}
	if state == StateWon {
		s.hud.won.Set(winText(s.score))
	}
	s.world.shutdown()
	s.log.Info().Stringer("state", state).Int("score", s.score).Int("difficulty", s.level).Msg("session ended")
}

// Close drops any boss skill effects still in flight.
func (s *Session) Close() {
	s.world.shutdown()
}

// Render hands the layers that are live in the current state to scr.
func (s *Session) Render(scr Screen) []pixel.Rect {
	var dirty []pixel.Rect
	draw := func(layer Layer) {
		scr.Clear(layer)
		dirty = append(dirty, scr.Draw(layer, s.world.drawn(layer), s.hud.on(layer))...)
	}
	switch s.state {
	case StatePlaying:
		scr.Clear(LayerPaused | LayerLost | LayerWon)
		draw(LayerPlay)
		if s.carry.BossFight {
			draw(LayerBoss)
		} else {
			scr.Clear(LayerBoss)
		}
	case StatePaused:
		draw(LayerPaused)
	case StateLost:
		draw(LayerLost)
	case StateWon:
		draw(LayerWon)
	}
	return dirty
}

package planewar

import (
	"time"

	"github.com/faiface/pixel"
	"github.com/rs/zerolog"
)

// Carryover is the boss state that outlives a session, so a boss worn down
// in one attempt stays worn down in the next.
type Carryover struct {
	BossTotal  int
	BossHealth int
	BossFight  bool
}

func NewCarryover(total int) Carryover {
	return Carryover{BossTotal: total, BossHealth: total}
}

// Next is the carryover a replay starts from. A beaten boss comes back at full
// health with the fight off; dying mid-fight heals the boss by 25.
func (c Carryover) Next() Carryover {
	if c.BossHealth <= 0 {
		c.BossHealth = c.BossTotal
		c.BossFight = false
	}
	if c.BossFight {
		c.BossHealth += bossDeathPenalty
		if c.BossHealth > c.BossTotal {
			c.BossHealth = c.BossTotal
		}
	}
	return c
}

// Game owns the current session and everything that lives across replays.
type Game struct {
	cfg   Config
	art   Art
	deps  Deps
	log   zerolog.Logger
	local LocalData
	carry Carryover
	clock *FrameClock
	now   func() time.Time

	session  *Session
	dt       float64
	recorded bool
}

func NewGame(cfg Config, art Art, local LocalData, deps Deps) *Game {
	deps = deps.withDefaults()
	g := &Game{
		cfg:   cfg,
		art:   art,
		deps:  deps,
		log:   deps.Log.With().Str("component", "game").Logger(),
		local: local,
		carry: NewCarryover(cfg.BossHealth),
		clock: NewFrameClock(),
		now:   time.Now,
	}
	g.start()
	return g
}

func (g *Game) start() {
	g.session = NewSession(g.cfg, g.art, g.carry, g.local.Highscore().Score, g.deps)
	g.recorded = false
	g.session.Start()
}

func (g *Game) Session() *Session { return g.session }
func (g *Game) Local() LocalData  { return g.local }
func (g *Game) Quit() bool        { return g.session.Quit() }

// Frame runs one step of the current session and renders it.
func (g *Game) Frame(in Input, scr Screen) []pixel.Rect {
	g.session.SetFPS(g.clock.FPS())
	g.session.Step(in, g.dt)
	if g.session.State().Ended() && !g.recorded {
		g.record()
	}
	dirty := g.session.Render(scr)
	if g.session.ReplayRequested() {
		g.Replay()
	}
	return dirty
}

// Pace blocks until the next frame is due and measures the frame time.
func (g *Game) Pace() {
	g.dt = clampDelta(g.clock.Tick(g.cfg.MaxRate))
}

// Replay starts a new session from the current carryover.
func (g *Game) Replay() {
	prev := g.session
	prev.Close()
	g.carry = prev.Carryover().Next()
	g.log.Info().Str("previous", prev.ID()).Int("boss_health", g.carry.BossHealth).Bool("boss_fight", g.carry.BossFight).Msg("replay")
	g.start()
	// window settings follow the player into the next session
	g.session.fullscreen = prev.fullscreen
	g.session.showFPS = prev.showFPS
}

func (g *Game) record() {
	g.recorded = true
	s := g.session
	g.local.NewScore(ScoreEntry{
		Name:    g.cfg.PlayerName,
		Score:   s.Score(),
		Won:     s.State() == StateWon,
		Session: s.ID(),
		Time:    g.now(),
	})
	if g.cfg.DataFile == "" {
		return
	}
	if err := g.local.WriteToFile(g.cfg.DataFile); err != nil {
		g.log.Error().Err(err).Str("path", g.cfg.DataFile).Msg("could not save scores")
		return
	}
	g.log.Debug().Int("score", s.Score()).Msg("score saved")
}

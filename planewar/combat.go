package planewar

// resolve runs the collision and combat passes of a playing frame. The order
// matters: later passes see what earlier ones killed or spawned.
func (s *Session) resolve(in Input) {
	s.ramEnemies()
	s.shotByEnemies()
	s.enemiesFire()
	s.playerFire(in)
	s.shootEnemies()
	s.chainExplosions()
	s.raiseDifficulty()
	s.triggerBoss()
	s.checkBossDeath()
	s.checkWinScore()
	s.fightBoss()
	s.refill()
}

func (s *Session) playerAlive() bool {
	return s.player != nil && s.player.alive
}

func (s *Session) explode(e *Entity, layers Layer) *Entity {
	x := NewExplosion(e.origin.X, e.origin.Y, s.world.art)
	x.layers = layers
	return s.world.add(x)
}

// deathExplosion is drawn on the lose screen too, and keeps animating
// there once the player is gone.
func (s *Session) deathExplosion(e *Entity) {
	x := s.explode(e, LayerPlay|LayerLost)
	if !s.playerAlive() {
		x.update = LayerLost
	}
}

// killPlayer is a no-op in debug mode.
func (s *Session) killPlayer(cause string) {
	if s.debug || !s.playerAlive() {
		return
	}
	s.world.kill(s.player)
	s.log.Info().Str("cause", cause).Int("score", s.score).Msg("player died")
	s.end(StateLost)
}

func (s *Session) ramEnemies() {
	if !s.playerAlive() {
		return
	}
	for _, e := range s.world.group(setEnemies) {
		if !overlaps(s.player.Bounds(), e.Bounds()) {
			continue
		}
		s.world.kill(e)
		s.killPlayer("rammed enemy")
		s.deathExplosion(e)
		s.deathExplosion(s.player)
	}
}

func (s *Session) shotByEnemies() {
	if !s.playerAlive() {
		return
	}
	for _, b := range s.world.group(setEnemyShots) {
		if !overlaps(s.player.Bounds(), b.Bounds()) {
			continue
		}
		s.world.kill(b)
		s.killPlayer("shot down")
		s.deathExplosion(s.player)
	}
}

func (s *Session) enemiesFire() {
	for _, e := range s.world.group(setEnemies) {
		if e.canFire {
			s.world.enemyFire(e)
		}
	}
}

func (s *Session) playerFire(in Input) {
	if !s.playerAlive() {
		return
	}
	if in.Pressed(ActionFire) && s.world.playerFire(s.player) != nil {
		s.audio.PlaySound(SoundShot)
	}
	if in.Pressed(ActionChase) && s.carry.BossFight && s.boss != nil && s.boss.alive {
		if s.world.chaseFire(s.player, s.boss) != nil {
			s.audio.PlaySound(SoundShot)
		}
	}
}

// hitEnemies consumes every member of set overlapping an enemy. The enemy
// only dies once its spawn protection ran out.
func (s *Session) hitEnemies(set collider, consume func(*Entity)) {
	hitters := s.world.group(set)
	for _, e := range s.world.group(setEnemies) {
		hit := false
		for _, h := range hitters {
			if !h.alive || h.sets&set == 0 || !overlaps(e.Bounds(), h.Bounds()) {
				continue
			}
			consume(h)
			hit = true
		}
		if hit && e.fullTime <= 0 {
			s.destroyEnemy(e)
		}
	}
}

func (s *Session) destroyEnemy(e *Entity) {
	s.score += enemyKillScore
	s.explode(e, LayerPlay)
	s.world.kill(e)
}

func (s *Session) shootEnemies() {
	s.hitEnemies(setPlayerShots, s.world.kill)
}

// chainExplosions lets fresh explosions take out neighbours. An explosion
// stops chaining once it hit something or its chain window closed.
func (s *Session) chainExplosions() {
	for _, x := range s.world.group(setChain) {
		if x.chainTime <= 0 {
			x.sets &^= setChain
		}
	}
	s.hitEnemies(setChain, func(x *Entity) {
		x.sets &^= setChain
	})
}

func (s *Session) raiseDifficulty() {
	if t := tierFor(s.score); t > s.level {
		s.level = t
		s.log.Debug().Int("difficulty", t).Int("score", s.score).Msg("difficulty raised")
	}
}

func (s *Session) triggerBoss() {
	if !s.carry.BossFight && s.score >= s.cfg.BossScore {
		s.carry.BossFight = true
		s.log.Info().Int("score", s.score).Msg("boss fight triggered")
	}
	if !s.carry.BossFight || s.boss != nil || s.state.Ended() {
		return
	}
	s.audio.PlayMusic(MusicBoss, bossMusicVolume)
	screen := s.world.screen
	s.boss = s.world.add(NewBoss(screen.Center().X, screen.Max.Y-bossTopMargin, screen, s.world.art))
	s.hud.health.Set(healthText(s.carry.BossHealth, s.carry.BossTotal))
	s.log.Info().Int("boss_health", s.carry.BossHealth).Msg("boss spawned")
}

// checkWinScore ends the session as won once the optional score target is met.
func (s *Session) checkWinScore() {
	if s.cfg.WinScore > 0 && s.score >= s.cfg.WinScore {
		s.end(StateWon)
	}
}

func (s *Session) checkBossDeath() {
	if s.boss == nil || !s.boss.alive || s.carry.BossHealth > 0 {
		return
	}
	x := s.explode(s.boss, LayerPlay|LayerWon)
	x.sets = 0
	x.update = LayerWon
	s.world.kill(s.boss)
	s.end(StateWon)
}

func (s *Session) damageBoss(n int) {
	s.carry.BossHealth -= n
	if s.carry.BossHealth < 0 {
		s.carry.BossHealth = 0
	}
}

func (s *Session) fightBoss() {
	if !s.carry.BossFight {
		return
	}
	defer func() {
		s.hud.health.Set(healthText(s.carry.BossHealth, s.carry.BossTotal))
	}()
	if s.player != nil {
		s.player.fireTotal = bossFireCooldown
	}
	if s.boss == nil || !s.boss.alive {
		return
	}

	box := s.boss.Bounds()
	for _, b := range s.world.group(setPlayerShots) {
		if overlaps(box, b.Bounds()) {
			s.world.kill(b)
			s.damageBoss(bossHitDamage)
		}
	}

	if !s.playerAlive() {
		return
	}
	if overlaps(s.player.Bounds(), box) {
		s.damageBoss(bossRamDamage)
		s.killPlayer("rammed boss")
		s.deathExplosion(s.player)
	}
	if !s.playerAlive() {
		return
	}
	for _, p := range s.world.group(setPersistent) {
		if overlaps(s.player.Bounds(), p.Bounds()) {
			s.killPlayer("hit by " + p.kind.String())
			s.deathExplosion(s.player)
			return
		}
	}
}

func (s *Session) refill() {
	if s.carry.BossFight || s.state.Ended() {
		return
	}
	if s.world.count(setEnemies) == 0 {
		s.world.spawnBatch(s.level)
	}
}

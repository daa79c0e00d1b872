package planewar

// tierFor maps a score onto a difficulty tier.
func tierFor(score int) int {
	for tier, threshold := range difficultyScores {
		if score < threshold {
			return tier
		}
	}
	return len(difficultyScores)
}

// spawnBatch puts a batch of enemies for the tier along the top edge.
func (w *world) spawnBatch(level int) []*Entity {
	if level < 0 {
		level = 0
	} else if level >= len(difficulties) {
		level = len(difficulties) - 1
	}
	tier := difficulties[level]
	n := tier.minBatch + w.rng.Intn(tier.maxBatch-tier.minBatch+1)

	batch := make([]*Entity, 0, n)
	for i := 0; i < n; i++ {
		x := w.screen.Min.X + w.screen.W()*w.rng.Float64()
		e := NewEnemy(x, w.screen.Max.Y, level, w.rng, w.art)
		e.origin = clampInto(e.Bounds(), w.screen).Center()
		batch = append(batch, w.add(e))
	}
	return batch
}

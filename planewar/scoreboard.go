package planewar

import (
	"sort"
	"time"
)

type ScoreEntry struct {
	Name    string    `yaml:"name"`
	Score   int       `yaml:"score"`
	Won     bool      `yaml:"won"`
	Session string    `yaml:"session"`
	Time    time.Time `yaml:"time"`
}

func (data LocalData) Highscore() ScoreEntry {
	highscore := ScoreEntry{}

	for _, scoreEntry := range data.Scoreboard {
		if scoreEntry.Score > highscore.Score {
			highscore = scoreEntry
		}
	}

	return highscore
}

func (data *LocalData) NewScore(score ScoreEntry) {
	data.Scoreboard = append(data.Scoreboard, score)
}

// Top returns up to n entries, best first. Ties go to the earlier run.
func (data *LocalData) Top(n int) []ScoreEntry {
	top := make([]ScoreEntry, len(data.Scoreboard))
	copy(top, data.Scoreboard)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].Time.Before(top[j].Time)
	})
	if n >= 0 && n < len(top) {
		top = top[:n]
	}
	return top
}

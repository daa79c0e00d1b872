package planewar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/faiface/pixel"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const GameTitle = "Plane War"

// Key bindings are pixelgl button names ("E", "Space", "Escape", ...).
type Keys struct {
	Pause      string `yaml:"pause"`
	Quit       string `yaml:"quit"`
	Fire       string `yaml:"fire"`
	Fullscreen string `yaml:"fullscreen"`
	FPS        string `yaml:"fps"`
	Chase      string `yaml:"chase"`
}

// Config is read once at startup. Changing it needs a restart.
type Config struct {
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`
	// MaxRate caps frames per second, 0 means unbounded.
	MaxRate    int    `yaml:"max_rate"`
	AssetDir   string `yaml:"asset_dir"`
	DataFile   string `yaml:"data_file"`
	PlayerName string `yaml:"player_name"`
	BossHealth int    `yaml:"boss_health"`
	BossScore  int    `yaml:"boss_score"`
	// WinScore ends the session as won once reached, 0 disables it.
	WinScore int  `yaml:"win_score"`
	Keys     Keys `yaml:"keys"`
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		MaxRate:      120,
		AssetDir:     "./data",
		DataFile:     "./gamedata.yml",
		PlayerName:   "Player",
		BossHealth:   100,
		BossScore:    350,
		Keys: Keys{
			Pause:      "E",
			Quit:       "Escape",
			Fire:       "Space",
			Fullscreen: "F",
			FPS:        "Q",
			Chase:      "C",
		},
	}
}

// Screen is the playfield in pixel coordinates, origin bottom-left.
func (c Config) Screen() pixel.Rect {
	return pixel.R(0, 0, c.ScreenWidth, c.ScreenHeight)
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string, log zerolog.Logger) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("component", "config").Str("path", path).Msg("no config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %vx%v", c.ScreenWidth, c.ScreenHeight)
	}
	if c.MaxRate < 0 {
		return fmt.Errorf("max_rate must not be negative, got %d", c.MaxRate)
	}
	if c.BossHealth <= 0 {
		return fmt.Errorf("boss_health must be positive, got %d", c.BossHealth)
	}
	return nil
}

// difficulty describes one tier of regular enemy batches.
type difficulty struct {
	minSpeed, maxSpeed int
	minBatch, maxBatch int
	// fullTime is the spawn invulnerability, so chain explosions can't wipe a fresh batch.
	fullTime float64
	fire     bool
	homing   bool
}

var difficulties = [...]difficulty{
	{minSpeed: 150, maxSpeed: 200, minBatch: 1, maxBatch: 3, fullTime: 0.5},
	{minSpeed: 175, maxSpeed: 225, minBatch: 2, maxBatch: 4, fullTime: 0.4},
	{minSpeed: 175, maxSpeed: 250, minBatch: 2, maxBatch: 5, fullTime: 0.3, fire: true},
	{minSpeed: 175, maxSpeed: 250, minBatch: 3, maxBatch: 5, fullTime: 0.25, fire: true, homing: true},
}

// score needed for each tier above 0
var difficultyScores = [...]int{100, 200, 300}

const (
	playerSpeed        = 300.0
	playerFireCooldown = 0.25
	bossFireCooldown   = 0.05
	playerShotSpeed    = 500.0

	chaseShotCooldown = 1.0
	chaseShotSpeed    = 450.0
	chaseShotHoming   = 1.0

	enemyFireCooldown       = 1.0
	enemyHomingFireCooldown = 1.5
	enemyShotSpeed          = 300.0
	enemyHomingSpeed        = 225.0
	enemyHomingTime         = 0.75
	enemyKillScore          = 10

	explosionLife     = 0.5
	explosionChain    = 0.05
	explosionInterval = 0.2

	defaultInterval = 0.2

	bossHitDamage     = 1
	bossRamDamage     = 10
	bossDeathPenalty  = 25
	bossMusicVolume   = 0.3
	maxFrameDelta     = 0.1
	bossTopMargin     = 100.0
	bossMaxPatrol     = 200
	bossSkillChance   = 0.1
	bossMasterCD      = 6.0
	decoyMargin       = 120.0
	decoyLife         = 15.0
	decoyFireCooldown = 1.0
	fireballSpeed     = 300.0
	largeFireballWait = 1.5
	largeFireballAcc  = 500.0
)

// collision box sizes, smaller than the sprites to keep hits forgiving
var (
	playerSize        = pixel.V(60, 40)
	enemySize         = pixel.V(80, 60)
	bossSize          = pixel.V(80, 60)
	shotSize          = pixel.V(6, 16)
	fireballSize      = pixel.V(16, 16)
	largeFireballSize = pixel.V(80, 60)
	explosionSize     = pixel.V(64, 64)
	afterburnerSize   = pixel.V(16, 24)
)

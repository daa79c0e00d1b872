package resource

import (
	"context"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/pixel"
	"github.com/nathanKramer/planewar/planewar"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"
)

// Entry is one file of the manifest. Key is the name the game asks for.
type Entry struct {
	Key      string
	File     string
	Required bool
}

type FontEntry struct {
	Key  string
	File string
	Size float64
}

type Manifest struct {
	Pictures []Entry
	Sounds   []Entry
	Music    []Entry
	Fonts    []FontEntry
}

// picture keys
const (
	PicBackground    = "background"
	PicPlayer        = "player"
	PicEnemy1        = "enemy-1"
	PicEnemy2        = "enemy-2"
	PicEnemy3        = "enemy-3"
	PicBoss          = "boss"
	PicExplosion     = "explosion"
	PicShot          = "shot"
	PicFireball      = "fireball"
	PicLargeFireball = "large-fireball"
	PicAfterburner   = "afterburner"
)

var DefaultManifest = Manifest{
	Pictures: []Entry{
		{PicBackground, "background.gif", true},
		{PicPlayer, "plane_1.png", true},
		{PicEnemy1, "enemy_1.png", true},
		{PicEnemy2, "enemy_2.png", true},
		{PicEnemy3, "enemy_3.png", true},
		{PicBoss, "boss.png", true},
		{PicExplosion, "explosion_1.gif", true},
		{PicShot, "shot.gif", true},
		{PicFireball, "fire_ball.png", false},
		{PicLargeFireball, "fireball_128.png", false},
		{PicAfterburner, "fire.png", false},
	},
	Sounds: []Entry{
		{planewar.SoundShot, "car_door.wav", false},
	},
	Music: []Entry{
		{planewar.MusicMain, "mus_anothermedium.ogg", false},
		{planewar.MusicBoss, "asgore.mp3", false},
	},
	Fonts: []FontEntry{
		{planewar.FontNormal, "Kenney Pixel.ttf", 45},
		{planewar.FontLarge, "Kenney Pixel.ttf", 80},
	},
}

// Assets is everything a run needs, loaded once and shared by every session.
type Assets struct {
	Art        planewar.Art
	Background *pixel.PictureData
	Sounds     map[string]*beep.Buffer
	Music      map[string]*Track
	Fonts      map[string]font.Face
}

// Close releases the music streams.
func (a *Assets) Close() {
	for _, t := range a.Music {
		t.Stream.Close()
	}
}

// Preload loads the whole manifest concurrently. The first required file
// that fails cancels the rest.
func (l *Loader) Preload(ctx context.Context, m Manifest) (*Assets, error) {
	a := &Assets{
		Sounds: map[string]*beep.Buffer{},
		Music:  map[string]*Track{},
		Fonts:  map[string]font.Face{},
	}
	pics := map[string]*pixel.PictureData{}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	load := func(f func() error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f()
		})
	}

	for _, e := range m.Pictures {
		e := e
		load(func() error {
			pic, err := l.Picture(e.File, e.Required, nil)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			pics[e.Key] = pic
			return nil
		})
	}
	for _, e := range m.Sounds {
		e := e
		load(func() error {
			buffer, err := l.Sound(e.File, e.Required)
			if err != nil || buffer == nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			a.Sounds[e.Key] = buffer
			return nil
		})
	}
	for _, e := range m.Music {
		e := e
		load(func() error {
			track, err := l.Music(e.File, e.Required)
			if err != nil || track == nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			a.Music[e.Key] = track
			return nil
		})
	}
	for _, e := range m.Fonts {
		e := e
		load(func() error {
			face, err := l.Face(e.File, e.Size, false)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			a.Fonts[e.Key] = face
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.Close()
		return nil, err
	}

	a.Background = pics[PicBackground]
	a.Art = buildArt(pics)
	l.log.Info().
		Int("pictures", len(pics)).
		Int("sounds", len(a.Sounds)).
		Int("music", len(a.Music)).
		Msg("assets loaded")
	return a, nil
}

func buildArt(pics map[string]*pixel.PictureData) planewar.Art {
	or := func(key, fallback string) *pixel.PictureData {
		if pic := pics[key]; pic != nil {
			return pic
		}
		return pics[fallback]
	}

	art := planewar.Art{}
	add := func(name string, frames ...*pixel.PictureData) {
		for _, pic := range frames {
			if s := Sprite(pic); s != nil {
				art[name] = append(art[name], s)
			}
		}
	}
	shot := pics[PicShot]
	explosion := pics[PicExplosion]

	add(planewar.ArtPlayer, pics[PicPlayer])
	add(planewar.ArtAfterburner, pics[PicAfterburner])
	add(planewar.ArtEnemy, pics[PicEnemy1], pics[PicEnemy2], pics[PicEnemy3])
	add(planewar.ArtBoss, pics[PicBoss])
	add(planewar.ArtPlayerShot, shot)
	add(planewar.ArtEnemyShot, Rotated(shot))
	add(planewar.ArtFireball, or(PicFireball, PicShot))
	add(planewar.ArtLargeFireball, or(PicLargeFireball, PicShot))
	add(planewar.ArtExplosion, explosion, Rotated(explosion))
	return art
}

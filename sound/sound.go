// Package sound plays effects and looping music on the beep speaker.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/nathanKramer/planewar/planewar"
	"github.com/nathanKramer/planewar/resource"
	"github.com/rs/zerolog"
)

const defaultSampleRate = beep.SampleRate(44100)

// effect volumes, as a linear gain
var volumes = map[string]float64{
	planewar.SoundShot: 0.1,
}

// Player implements planewar.Audio. Missing sounds and a missing audio
// device only show up in the debug log.
type Player struct {
	log    zerolog.Logger
	rate   beep.SampleRate
	sounds map[string]*beep.Buffer
	music  map[string]*resource.Track

	ready  bool
	play   func(beep.Streamer)
	lock   func()
	unlock func()
	song   *beep.Ctrl
}

// New opens the speaker at the sample rate of the main theme and wires the
// loaded buffers and tracks to it.
func New(sounds map[string]*beep.Buffer, music map[string]*resource.Track, log zerolog.Logger) *Player {
	p := newPlayer(sounds, music, log)
	if t, ok := music[planewar.MusicMain]; ok {
		p.rate = t.Format.SampleRate
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		p.log.Debug().Err(err).Msg("no audio device, sound disabled")
		p.ready = false
	}
	return p
}

func newPlayer(sounds map[string]*beep.Buffer, music map[string]*resource.Track, log zerolog.Logger) *Player {
	return &Player{
		log:    log.With().Str("component", "sound").Logger(),
		rate:   defaultSampleRate,
		sounds: sounds,
		music:  music,
		ready:  true,
		play:   func(s beep.Streamer) { speaker.Play(s) },
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

func (p *Player) PlaySound(name string) {
	if !p.ready {
		return
	}
	buffer, ok := p.sounds[name]
	if !ok || buffer == nil {
		p.log.Debug().Str("sound", name).Msg("unknown sound")
		return
	}
	gain, ok := volumes[name]
	if !ok {
		gain = 1
	}
	s := p.resample(buffer.Format(), buffer.Streamer(0, buffer.Len()))
	p.play(volume(s, gain))
}

// PlayMusic loops the named track from the start, replacing whatever
// played before.
func (p *Player) PlayMusic(name string, gain float64) {
	if !p.ready {
		return
	}
	track, ok := p.music[name]
	if !ok || track == nil {
		p.log.Debug().Str("music", name).Msg("unknown music")
		p.StopMusic()
		return
	}

	p.lock()
	if p.song != nil {
		p.song.Streamer = nil
	}
	err := track.Stream.Seek(0)
	p.unlock()
	if err != nil {
		p.log.Debug().Err(err).Str("music", name).Msg("could not rewind music")
		return
	}

	song := &beep.Ctrl{Streamer: volume(p.resample(track.Format, beep.Loop(-1, track.Stream)), gain)}
	p.lock()
	p.song = song
	p.unlock()
	p.play(song)
}

func (p *Player) StopMusic() {
	if !p.ready {
		return
	}
	p.lock()
	defer p.unlock()
	if p.song != nil {
		p.song.Streamer = nil
		p.song = nil
	}
}

func (p *Player) resample(f beep.Format, s beep.Streamer) beep.Streamer {
	if f.SampleRate == p.rate || f.SampleRate == 0 {
		return s
	}
	return beep.Resample(4, f.SampleRate, p.rate, s)
}

func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain == 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(gain),
		Silent:   gain <= 0,
	}
}

package planewar

// Sound names the session asks for.
const (
	SoundShot = "shot"
	MusicMain = "bgm"
	MusicBoss = "boss"
)

// Audio plays sounds and music. Implementations swallow their own failures,
// a game never stops because a sound didn't play.
type Audio interface {
	PlaySound(name string)
	PlayMusic(name string, volume float64)
	StopMusic()
}

type nopAudio struct{}

func (nopAudio) PlaySound(string)          {}
func (nopAudio) PlayMusic(string, float64) {}
func (nopAudio) StopMusic()                {}

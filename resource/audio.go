package resource

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Track is a music stream, decoded as it plays.
type Track struct {
	Stream beep.StreamSeekCloser
	Format beep.Format
}

func (l *Loader) decode(name string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(l.path(name))
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext, _ := extension(name)
	switch ext {
	case "mp3":
		streamer, format, err = mp3.Decode(file)
	case "wav":
		streamer, format, err = wav.Decode(file)
	case "ogg":
		streamer, format, err = vorbis.Decode(file)
	default:
		err = fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func (l *Loader) loadSound(name string) (*beep.Buffer, error) {
	streamer, format, err := l.decode(name)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buffer, nil
}

// Sound loads a short effect fully into memory. Optional sounds that fail
// come back nil.
func (l *Loader) Sound(name string, required bool) (*beep.Buffer, error) {
	v, err := l.Load(name, required, nil)
	if err != nil {
		return nil, err
	}
	buffer, _ := v.(*beep.Buffer)
	return buffer, nil
}

// Music opens a stream for looping playback. Optional tracks that fail
// come back nil. The caller closes the stream.
func (l *Loader) Music(name string, required bool) (*Track, error) {
	ext, err := extension(name)
	if err != nil {
		return nil, err
	}
	if extensions[ext] != kindSound {
		l.log.Debug().Str("name", name).Msg("not a music file")
		return nil, nil
	}
	streamer, format, err := l.decode(name)
	if err != nil {
		if !required {
			l.log.Warn().Err(err).Str("name", name).Msg("missing music")
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return &Track{Stream: streamer, Format: format}, nil
}

// Package resource loads pictures, sounds, music and fonts from the asset
// directory. Every load is either required, where a failure is returned to
// the caller, or optional, where a failure is logged and a fallback is used.
package resource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidName is returned for names that can't identify a resource,
// whatever the required flag says.
var ErrInvalidName = errors.New("invalid resource name")

type kind int

const (
	kindUnknown kind = iota
	kindPicture
	kindSound
	kindFont
)

var extensions = map[string]kind{
	"png":  kindPicture,
	"gif":  kindPicture,
	"jpg":  kindPicture,
	"jpeg": kindPicture,
	"wav":  kindSound,
	"mp3":  kindSound,
	"ogg":  kindSound,
	"ttf":  kindFont,
}

type Loader struct {
	Dir string
	log zerolog.Logger
}

func NewLoader(dir string, log zerolog.Logger) *Loader {
	return &Loader{Dir: dir, log: log.With().Str("component", "resource").Logger()}
}

// Load picks a decoder from the extension of name: pictures come back as
// *pixel.PictureData, sounds as *beep.Buffer and fonts as *truetype.Font.
// Names with an extension nobody decodes return fallback.
func (l *Loader) Load(name string, required bool, fallback any) (any, error) {
	ext, err := extension(name)
	if err != nil {
		return nil, err
	}

	var v any
	switch extensions[ext] {
	case kindPicture:
		v, err = l.loadPicture(name)
	case kindSound:
		v, err = l.loadSound(name)
	case kindFont:
		v, err = l.loadFont(name)
	default:
		l.log.Debug().Str("name", name).Msg("unsupported extension, using fallback")
		return fallback, nil
	}
	if err != nil {
		return l.fail(name, required, fallback, err)
	}
	return v, nil
}

func (l *Loader) fail(name string, required bool, fallback any, err error) (any, error) {
	if required {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	l.log.Warn().Err(err).Str("name", name).Msg("missing resource, using fallback")
	return fallback, nil
}

func (l *Loader) path(name string) string {
	if filepath.IsAbs(name) || l.Dir == "" {
		return name
	}
	return filepath.Join(l.Dir, name)
}

func extension(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrInvalidName, name)
	}
	return strings.ToLower(ext), nil
}

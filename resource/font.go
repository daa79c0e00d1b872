package resource

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func (l *Loader) loadFont(name string) (*truetype.Font, error) {
	ttfData, err := os.ReadFile(l.path(name))
	if err != nil {
		return nil, err
	}
	return truetype.Parse(ttfData)
}

// Face loads a TrueType font at size. When the font is optional and fails
// to load, the basic bitmap face is used instead.
func (l *Loader) Face(name string, size float64, required bool) (font.Face, error) {
	v, err := l.Load(name, required, nil)
	if err != nil {
		return nil, err
	}
	ttf, ok := v.(*truetype.Font)
	if !ok {
		return basicfont.Face7x13, nil
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size: size,
		DPI:  72,
	}), nil
}

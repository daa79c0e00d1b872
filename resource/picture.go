package resource

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/faiface/pixel"
)

func (l *Loader) loadPicture(name string) (*pixel.PictureData, error) {
	file, err := os.Open(l.path(name))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return pixel.PictureDataFromImage(img), nil
}

// Picture loads an image. fallback may be nil.
func (l *Loader) Picture(name string, required bool, fallback *pixel.PictureData) (*pixel.PictureData, error) {
	v, err := l.Load(name, required, fallback)
	if err != nil {
		return nil, err
	}
	pic, _ := v.(*pixel.PictureData)
	return pic, nil
}

// Rotated returns a copy of pic turned half a circle, i.e. flipped on both axes.
func Rotated(pic *pixel.PictureData) *pixel.PictureData {
	if pic == nil {
		return nil
	}
	out := pixel.MakePictureData(pic.Rect)
	n := len(pic.Pix)
	for i, c := range pic.Pix {
		out.Pix[n-1-i] = c
	}
	return out
}

// Sprite covers the whole picture, or is nil without one.
func Sprite(pic *pixel.PictureData) *pixel.Sprite {
	if pic == nil {
		return nil
	}
	return pixel.NewSprite(pic, pic.Bounds())
}

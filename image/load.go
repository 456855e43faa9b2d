package image

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

// Load decodes a PNG, JPEG or WebP image from path.
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, errors.Wrap(e, "opening image")
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, errors.Wrapf(e, "decoding %s", path)
	}

	return i, nil
}

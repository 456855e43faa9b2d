package report

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/pkg/errors"
	"github.com/yakumocabin/color-change-program/series"
)

const (
	cell    = 200
	columns = 4
)

// RGBA converts a clipped sRGB color to an 8-bit color, truncating like the
// hex string.
func RGBA(rgb chromath.RGB) color.RGBA {
	return color.RGBA{uint8(rgb[0] * 255), uint8(rgb[1] * 255), uint8(rgb[2] * 255), 255}
}

// Swatch returns a square image filled with the result's color.
func Swatch(r *series.Result) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	fill(img, img.Bounds(), RGBA(r.RGB))
	return img
}

// Sheet lays out every result of s as cells of a grid, four per row.
func Sheet(s *series.Series) *image.RGBA {
	results := s.Results()
	n := len(results)
	rows := (n + columns - 1) / columns
	w := columns
	if n < columns {
		w = n
	}
	img := image.NewRGBA(image.Rect(0, 0, w*cell, rows*cell))

	x, y := 0, 0
	for _, r := range results {
		fill(img, image.Rect(x, y, x+cell, y+cell), RGBA(r.RGB))
		x = (x + cell) % (columns * cell)
		if x == 0 {
			y += cell
		}
	}
	return img
}

func fill(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for w := rect.Min.X; w < rect.Max.X; w++ {
		for h := rect.Min.Y; h < rect.Max.Y; h++ {
			img.SetRGBA(w, h, c)
		}
	}
}

// WriteSwatches writes <name>_color.png for every result into dir.
func WriteSwatches(dir string, s *series.Series) error {
	results := s.Results()
	for i := range results {
		r := &results[i]
		if e := writePNG(filepath.Join(dir, FileName(r.Name)+"_color.png"), Swatch(r)); e != nil {
			return e
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return errors.Wrap(e, "creating swatch")
	}
	defer f.Close()

	if e := png.Encode(f, img); e != nil {
		return errors.Wrapf(e, "encoding %s", path)
	}
	return f.Close()
}

// FileName makes a sample name safe to use as a file name.
func FileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		return "sample"
	}
	return name
}

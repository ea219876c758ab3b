// Package render turns a maze grid into a lossless black and white raster,
// one pixel per cell.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a lossless image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

const (
	wallIndex = 0
	openIndex = 1
)

var (
	ErrUnknownFormat = errors.New("unknown image format")

	// palette maps walls to black and open cells to white.
	palette = color.Palette{
		wallIndex: color.Gray{Y: 0x00},
		openIndex: color.Gray{Y: 0xff},
	}
)

// ParseFormat converts a format name or file extension into a Format. The
// empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// ContentType returns the MIME type of the encoded image.
func (f Format) ContentType() string {
	switch f {
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	}
	return "image/png"
}

// Image converts g into a two colour paletted image.
func Image(g *maze.Grid) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Width(), g.Height()), palette)
	for row := 0; row < g.Height(); row++ {
		base := row * img.Stride
		for col := 0; col < g.Width(); col++ {
			if g.ValueAt(maze.CellPosition{Row: row, Col: col}).Open() {
				img.Pix[base+col] = openIndex
			}
		}
	}
	return img
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g *maze.Grid, f Format) error {
	img := Image(g)
	switch f {
	case FormatPNG:
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		return encoder.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

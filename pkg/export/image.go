package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/style"
)

// PNGExporter rasterizes the banner onto a monospace cell grid.
// Cell metrics come from the fixed 7x13 face; per-character colors from
// the banner's color mapping are honored.
type PNGExporter struct {
	// Background overrides the banner's background color ("" = banner
	// background, or white when the banner has none)
	Background string
	// Foreground is used for cells the banner does not color
	Foreground string
}

const (
	pngCellWidth  = 7
	pngCellHeight = 13
	pngAscent     = 11
	pngMargin     = 20
)

// Export writes the banner to path as a PNG
func (e *PNGExporter) Export(b *banner.Banner, path string) error {
	bg, err := e.backgroundColor(b)
	if err != nil {
		return err
	}
	fg, err := e.foregroundColor()
	if err != nil {
		return err
	}

	width := b.Width()*pngCellWidth + 2*pngMargin
	height := b.Height()*pngCellHeight + 2*pngMargin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for row, line := range b.Lines {
		for col, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			cellColor := fg
			if c, ok := b.CellColor(row, col); ok {
				r, g, bl := c.RGB255()
				cellColor = color.RGBA{r, g, bl, 255}
			}
			drawer := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(cellColor),
				Face: face,
				Dot: fixed.P(
					pngMargin+col*pngCellWidth,
					pngMargin+row*pngCellHeight+pngAscent,
				),
			}
			drawer.DrawString(string(asciiGlyph(ch)))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode PNG")
	}
	return writeFile(path, buf.Bytes())
}

func (e *PNGExporter) backgroundColor(b *banner.Banner) (color.Color, error) {
	if e.Background != "" {
		return parseImageColor(e.Background)
	}
	if bg, ok := b.Background(); ok {
		r, g, bl := bg.RGB255()
		return color.RGBA{r, g, bl, 255}, nil
	}
	return color.White, nil
}

func (e *PNGExporter) foregroundColor() (color.Color, error) {
	if e.Foreground != "" {
		return parseImageColor(e.Foreground)
	}
	return color.Black, nil
}

// asciiGlyph substitutes runes the 7x13 face cannot draw. Box-drawing
// borders and the shadow rune degrade to their ASCII equivalents.
func asciiGlyph(ch rune) rune {
	if ch <= 126 {
		return ch
	}
	switch ch {
	case '─', '━', '═':
		return '-'
	case '│', '┃', '║':
		return '|'
	case '┌', '┐', '└', '┘', '╔', '╗', '╚', '╝', '╭', '╮', '╰', '╯', '┏', '┓', '┗', '┛':
		return '+'
	case '░':
		return '.'
	default:
		return '#'
	}
}

func parseImageColor(name string) (color.Color, error) {
	c, err := style.ParseColor(name)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

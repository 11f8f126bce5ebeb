// Package banner implements the styling-and-layout pipeline: it takes
// multi-line glyph output from the font backend and applies compaction,
// alignment, padding, shadow offsetting, border composition, and
// color/gradient mapping while preserving rectangular block geometry.
package banner

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/logging"
	"github.com/figgo/figgo/pkg/style"
)

// shadowRune is drawn where the offset glyph copy lands on whitespace
const shadowRune = '░'

// Banner is a finished rectangular text block: all lines have equal
// length, and the border (when present) fully encloses the padded text.
type Banner struct {
	Text  string
	Style style.Style
	Lines []string

	spec        *style.ColorSpec
	borderColor *colorful.Color
	shadowColor *colorful.Color
	background  *colorful.Color
}

// Render runs the full pipeline for text under the given style
func Render(text string, st style.Style, fm *fonts.Manager) (*Banner, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	log := logging.GetLogger("banner")
	log.Debug().Str("font", st.Font).Str("border", string(st.Border)).
		Int("padding", st.Padding).Bool("shadow", st.Shadow).Msg("Rendering banner")

	lines, err := fm.Render(st.Font, text)
	if err != nil {
		return nil, err
	}

	if st.Compact {
		lines = compact(lines)
	}
	lines = normalize(lines)
	lines = alignBlock(lines, st.Width, st.Align)
	lines = pad(lines, st.Padding)
	if st.Shadow {
		lines = applyShadow(lines)
	}
	lines = applyBorder(lines, st.Border)

	b := &Banner{Text: text, Style: st, Lines: lines}
	if err := b.resolveColors(); err != nil {
		return nil, err
	}
	return b, nil
}

// Plain returns the uncolored text block
func (b *Banner) Plain() string {
	return strings.Join(b.Lines, "\n")
}

// Width returns the block width in cells
func (b *Banner) Width() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return len([]rune(b.Lines[0]))
}

// Height returns the number of lines in the block
func (b *Banner) Height() int {
	return len(b.Lines)
}

// Colored reports whether any color mapping applies to this banner
func (b *Banner) Colored() bool {
	return b.spec != nil || b.background != nil ||
		(b.Style.Border != style.BorderNone && b.borderColor != nil) ||
		(b.Style.Shadow && b.shadowColor != nil)
}

// Background returns the parsed background color, if any
func (b *Banner) Background() (colorful.Color, bool) {
	if b.background == nil {
		return colorful.Color{}, false
	}
	return *b.background, true
}

// CellColor returns the foreground color for the cell at (row, col).
// Border cells use the border color, shadow cells the shadow color, and
// everything else follows the color spec interpolated across the width.
func (b *Banner) CellColor(row, col int) (colorful.Color, bool) {
	if row < 0 || row >= b.Height() || col < 0 || col >= b.Width() {
		return colorful.Color{}, false
	}

	if b.Style.Border != style.BorderNone && b.borderColor != nil &&
		(row == 0 || row == b.Height()-1 || col == 0 || col == b.Width()-1) {
		return *b.borderColor, true
	}

	if b.Style.Shadow && b.shadowColor != nil && b.runeAt(row, col) == shadowRune {
		return *b.shadowColor, true
	}

	if b.spec == nil {
		return colorful.Color{}, false
	}
	if b.Width() <= 1 {
		return b.spec.At(0), true
	}
	return b.spec.At(float64(col) / float64(b.Width()-1)), true
}

func (b *Banner) runeAt(row, col int) rune {
	runes := []rune(b.Lines[row])
	if col >= len(runes) {
		return ' '
	}
	return runes[col]
}

// resolveColors parses every color field once so the per-cell lookups
// stay allocation-free
func (b *Banner) resolveColors() error {
	spec, err := style.ParseColorSpec(b.Style.Color)
	if err != nil {
		return err
	}
	b.spec = spec

	for _, field := range []struct {
		value  string
		target **colorful.Color
	}{
		{b.Style.BorderColor, &b.borderColor},
		{b.Style.ShadowColor, &b.shadowColor},
		{b.Style.Background, &b.background},
	} {
		if field.value == "" {
			continue
		}
		c, err := style.ParseColor(field.value)
		if err != nil {
			return err
		}
		*field.target = &c
	}
	return nil
}

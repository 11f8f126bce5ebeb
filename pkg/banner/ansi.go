package banner

import (
	"strings"

	"github.com/muesli/termenv"
)

// ANSI returns the banner with truecolor escape sequences applied.
// Uncolored banners without text attributes come back as the plain block.
func (b *Banner) ANSI() string {
	if !b.Colored() && !b.Style.Bold && !b.Style.Italic && !b.Style.Underline {
		return b.Plain()
	}

	profile := termenv.TrueColor
	bg, hasBg := b.Background()

	var sb strings.Builder
	for row, line := range b.Lines {
		runes := []rune(line)
		for col := 0; col < len(runes); {
			// group a run of cells sharing one color to keep escape
			// sequences from tripling the output size
			runColor, runOk := b.CellColor(row, col)
			start := col
			for col < len(runes) {
				c, ok := b.CellColor(row, col)
				if ok != runOk || (ok && c != runColor) {
					break
				}
				col++
			}

			styled := termenv.String(string(runes[start:col]))
			if runOk {
				styled = styled.Foreground(profile.Color(runColor.Hex()))
			}
			if hasBg {
				styled = styled.Background(profile.Color(bg.Hex()))
			}
			if b.Style.Bold {
				styled = styled.Bold()
			}
			if b.Style.Italic {
				styled = styled.Italic()
			}
			if b.Style.Underline {
				styled = styled.Underline()
			}
			sb.WriteString(styled.String())
		}
		if row < len(b.Lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

package banner

import (
	"strings"

	"github.com/figgo/figgo/pkg/style"
)

// compact drops lines that contain only whitespace
func compact(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

// normalize right-pads every line to the block width. This establishes
// the equal-length invariant that every later stage preserves.
func normalize(lines []string) []string {
	width := 0
	for _, line := range lines {
		if w := len([]rune(line)); w > width {
			width = w
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + strings.Repeat(" ", width-len([]rune(line)))
	}
	return out
}

// alignBlock positions the block within width. Blocks already wider
// than width are left untouched. Right alignment and centering work on
// each line's visible content rather than the padded block, so after
// centering a line's leading and trailing whitespace differ by at most
// one column.
func alignBlock(lines []string, width int, align style.Alignment) []string {
	if len(lines) == 0 {
		return lines
	}
	blockWidth := len([]rune(lines[0]))
	if width <= blockWidth {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		switch align {
		case style.AlignRight:
			content := strings.TrimRight(line, " ")
			out[i] = strings.Repeat(" ", width-len([]rune(content))) + content
		case style.AlignCenter:
			content := strings.Trim(line, " ")
			slack := width - len([]rune(content))
			left := slack / 2
			out[i] = strings.Repeat(" ", left) + content + strings.Repeat(" ", slack-left)
		default:
			out[i] = line + strings.Repeat(" ", width-blockWidth)
		}
	}
	return out
}

// pad surrounds the block with p blank rows and p space columns
func pad(lines []string, p int) []string {
	if p <= 0 || len(lines) == 0 {
		return lines
	}
	width := len([]rune(lines[0]))
	blank := strings.Repeat(" ", width+2*p)
	margin := strings.Repeat(" ", p)

	out := make([]string, 0, len(lines)+2*p)
	for i := 0; i < p; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, margin+line+margin)
	}
	for i := 0; i < p; i++ {
		out = append(out, blank)
	}
	return out
}

// Shadow offset: one row down, two columns right
const (
	shadowRowDelta = 1
	shadowColDelta = 2
)

// applyShadow grows the block by the fixed offset and draws a copy of
// the glyph mask with the shadow rune wherever the offset copy lands on
// whitespace. Original glyphs are never overwritten.
func applyShadow(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	width := len([]rune(lines[0]))
	height := len(lines)

	grid := make([][]rune, height+shadowRowDelta)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width+shadowColDelta))
	}
	for r, line := range lines {
		copy(grid[r], []rune(line))
	}

	for r := 0; r < height; r++ {
		src := []rune(lines[r])
		for c := 0; c < width; c++ {
			if src[c] == ' ' {
				continue
			}
			tr, tc := r+shadowRowDelta, c+shadowColDelta
			if grid[tr][tc] == ' ' {
				grid[tr][tc] = shadowRune
			}
		}
	}

	out := make([]string, len(grid))
	for r := range grid {
		out[r] = string(grid[r])
	}
	return out
}

// applyBorder encloses the block with the border runes and a one-space
// gutter. The "none" style returns the block unchanged.
func applyBorder(lines []string, border style.BorderStyle) []string {
	if border == style.BorderNone || len(lines) == 0 {
		return lines
	}
	chars := border.Chars()
	width := len([]rune(lines[0]))

	out := make([]string, 0, len(lines)+2)
	out = append(out, chars.TopLeft+strings.Repeat(chars.Horizontal, width+2)+chars.TopRight)
	for _, line := range lines {
		out = append(out, chars.Vertical+" "+line+" "+chars.Vertical)
	}
	out = append(out, chars.BottomLeft+strings.Repeat(chars.Horizontal, width+2)+chars.BottomRight)
	return out
}

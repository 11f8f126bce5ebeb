package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figgo/figgo/pkg/style"
)

func blockWidths(lines []string) []int {
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = len([]rune(line))
	}
	return widths
}

func TestNormalizeEqualLengths(t *testing.T) {
	lines := normalize([]string{"ab", "a", "abcd", ""})

	for _, w := range blockWidths(lines) {
		assert.Equal(t, 4, w)
	}
}

func TestCompact(t *testing.T) {
	lines := compact([]string{"", "  ", "x", "\t", "y"})
	assert.Equal(t, []string{"x", "y"}, lines)
}

func TestPadGeometry(t *testing.T) {
	// Property: line length equals unpadded width plus 2P
	for _, p := range []int{0, 1, 2, 5} {
		base := normalize([]string{"hello", "hi"})
		padded := pad(base, p)

		require.Len(t, padded, len(base)+2*p, "padding %d", p)
		for _, w := range blockWidths(padded) {
			assert.Equal(t, 5+2*p, w, "padding %d", p)
		}
	}
}

func TestAlignCenterSkewAtMostOne(t *testing.T) {
	for _, width := range []int{10, 11, 20, 21} {
		lines := alignBlock([]string{"abc"}, width, style.AlignCenter)
		line := lines[0]

		leading := len(line) - len(strings.TrimLeft(line, " "))
		trailing := len(line) - len(strings.TrimRight(line, " "))
		skew := leading - trailing
		if skew < 0 {
			skew = -skew
		}
		assert.LessOrEqual(t, skew, 1, "width %d", width)
		assert.Len(t, line, width)
	}
}

func TestAlignCenterRaggedLines(t *testing.T) {
	// A short line padded up to the block width must not drag its
	// normalization slack along as trailing whitespace
	lines := alignBlock(normalize([]string{"abcdef", "ab"}), 12, style.AlignCenter)

	for i, line := range lines {
		leading := len(line) - len(strings.TrimLeft(line, " "))
		trailing := len(line) - len(strings.TrimRight(line, " "))
		skew := leading - trailing
		if skew < 0 {
			skew = -skew
		}
		assert.LessOrEqual(t, skew, 1, "line %d", i)
		assert.Len(t, line, 12, "line %d", i)
	}
}

func TestAlignRightFlushesContent(t *testing.T) {
	lines := alignBlock(normalize([]string{"abcdef", "ab"}), 10, style.AlignRight)

	assert.Equal(t, "    abcdef", lines[0])
	assert.Equal(t, "        ab", lines[1])
}

func TestAlignRightAndLeft(t *testing.T) {
	right := alignBlock([]string{"ab"}, 5, style.AlignRight)
	assert.Equal(t, "   ab", right[0])

	left := alignBlock([]string{"ab"}, 5, style.AlignLeft)
	assert.Equal(t, "ab   ", left[0])
}

func TestAlignLeavesWideBlocksAlone(t *testing.T) {
	lines := alignBlock([]string{"abcdef"}, 4, style.AlignCenter)
	assert.Equal(t, []string{"abcdef"}, lines)
}

func TestBorderNoneIsIdentity(t *testing.T) {
	lines := normalize([]string{"abc", "de"})
	assert.Equal(t, lines, applyBorder(lines, style.BorderNone))
}

func TestBorderFullyEncloses(t *testing.T) {
	lines := applyBorder(normalize([]string{"abc"}), style.BorderSingle)

	require.Len(t, lines, 3)
	assert.Equal(t, "┌─────┐", lines[0])
	assert.Equal(t, "│ abc │", lines[1])
	assert.Equal(t, "└─────┘", lines[2])
}

func TestBorderASCII(t *testing.T) {
	lines := applyBorder(normalize([]string{"hi", "yo"}), style.BorderASCII)

	assert.Equal(t, "+----+", lines[0])
	assert.Equal(t, "| hi |", lines[1])
	assert.Equal(t, "| yo |", lines[2])
	assert.Equal(t, "+----+", lines[3])
}

func TestShadowGeometry(t *testing.T) {
	original := normalize([]string{"##", "##"})
	shadowed := applyShadow(original)

	// Dimensions grow by exactly the fixed offset
	require.Len(t, shadowed, len(original)+shadowRowDelta)
	for _, w := range blockWidths(shadowed) {
		assert.Equal(t, 2+shadowColDelta, w)
	}

	// Original glyphs survive in place
	for r, line := range original {
		for c, ch := range []rune(line) {
			if ch != ' ' {
				assert.Equal(t, ch, []rune(shadowed[r])[c], "cell (%d,%d)", r, c)
			}
		}
	}

	// The offset copy lands only on whitespace
	assert.Equal(t, "##  ", shadowed[0])
	assert.Equal(t, "##░░", shadowed[1])
	assert.Equal(t, "  ░░", shadowed[2])
}

func TestShadowDoesNotOverwriteGlyphs(t *testing.T) {
	shadowed := applyShadow(normalize([]string{"####", "####", "####"}))

	// Interior glyph cells keep their rune even though the shadow copy
	// overlaps them
	assert.Equal(t, "####  ", shadowed[0])
	assert.Equal(t, "####░░", shadowed[1])
}

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figgo/figgo/pkg/errors"
)

func TestParseBorderStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    BorderStyle
		wantErr bool
	}{
		{"none", BorderNone, false},
		{"single", BorderSingle, false},
		{"double", BorderDouble, false},
		{"rounded", BorderRounded, false},
		{"bold", BorderBold, false},
		{"ascii", BorderASCII, false},
		{"star", BorderStar, false},
		{"hash", BorderHash, false},
		{"wavy", BorderNone, true},
		{"", BorderNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBorderStyle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrBorderInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBorderChars(t *testing.T) {
	single := BorderSingle.Chars()
	assert.Equal(t, "┌", single.TopLeft)
	assert.Equal(t, "┘", single.BottomRight)
	assert.Equal(t, "─", single.Horizontal)
	assert.Equal(t, "│", single.Vertical)

	// "none" has no runes at all
	assert.Equal(t, BorderChars{}, BorderNone.Chars())
}

func TestParseAlignment(t *testing.T) {
	for _, valid := range []string{"left", "center", "right"} {
		got, err := ParseAlignment(valid)
		require.NoError(t, err)
		assert.Equal(t, Alignment(valid), got)
	}

	_, err := ParseAlignment("justify")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlignInvalid))
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Style)
		wantCode errors.ErrorCode
	}{
		{"default is valid", func(s *Style) {}, ""},
		{"gradient color is valid", func(s *Style) { s.Color = "gradient:red-yellow" }, ""},
		{"hex color is valid", func(s *Style) { s.Color = "#ff8800" }, ""},
		{"bad border", func(s *Style) { s.Border = "zigzag" }, errors.ErrBorderInvalid},
		{"bad align", func(s *Style) { s.Align = "justify" }, errors.ErrAlignInvalid},
		{"negative padding", func(s *Style) { s.Padding = -1 }, errors.ErrInvalidInput},
		{"negative width", func(s *Style) { s.Width = -80 }, errors.ErrInvalidInput},
		{"bad color", func(s *Style) { s.Color = "ultraviolet" }, errors.ErrColorInvalid},
		{"bad gradient", func(s *Style) { s.Color = "gradient:red" }, errors.ErrColorInvalid},
		{"bad border color", func(s *Style) { s.BorderColor = "plaid" }, errors.ErrColorInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Default()
			tt.mutate(&st)
			err := st.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode),
				"got code %s, want %s", errors.GetErrorCode(err), tt.wantCode)
		})
	}
}

func TestNormalize(t *testing.T) {
	var st Style
	st.Normalize()

	assert.Equal(t, Default(), st)
}

func TestApplyScheme(t *testing.T) {
	st := Default()
	require.NoError(t, st.ApplyScheme(SchemeOcean))

	assert.Equal(t, "gradient:blue-cyan", st.Color)
	assert.Equal(t, "blue", st.BorderColor)
	assert.Equal(t, "bright_blue", st.ShadowColor)

	// Layout options are untouched
	assert.Equal(t, 80, st.Width)
	assert.Equal(t, BorderNone, st.Border)

	assert.Error(t, st.ApplyScheme("plasma"))
}

func TestApplySchemeNeonEnablesShadow(t *testing.T) {
	st := Default()
	require.NoError(t, st.ApplyScheme(SchemeNeon))
	assert.True(t, st.Shadow)
}

// Package style holds the flat banner style configuration: fonts, colors,
// borders, padding, alignment, and the named templates that bundle them.
package style

import (
	"github.com/figgo/figgo/pkg/errors"
)

// BorderStyle names a set of corner/edge runes used to enclose a text block
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"
	BorderSingle  BorderStyle = "single"
	BorderDouble  BorderStyle = "double"
	BorderRounded BorderStyle = "rounded"
	BorderBold    BorderStyle = "bold"
	BorderASCII   BorderStyle = "ascii"
	BorderStar    BorderStyle = "star"
	BorderHash    BorderStyle = "hash"
)

// BorderStyles lists all recognized border styles in display order
var BorderStyles = []BorderStyle{
	BorderNone, BorderSingle, BorderDouble, BorderRounded,
	BorderBold, BorderASCII, BorderStar, BorderHash,
}

// BorderChars holds the runes for one border style
type BorderChars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var borderChars = map[BorderStyle]BorderChars{
	BorderNone:    {},
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderDouble:  {"╔", "╗", "╚", "╝", "═", "║"},
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderBold:    {"┏", "┓", "┗", "┛", "━", "┃"},
	BorderASCII:   {"+", "+", "+", "+", "-", "|"},
	BorderStar:    {"*", "*", "*", "*", "*", "*"},
	BorderHash:    {"#", "#", "#", "#", "#", "#"},
}

// Chars returns the border runes for this style
func (b BorderStyle) Chars() BorderChars {
	return borderChars[b]
}

// Valid reports whether the border style is recognized
func (b BorderStyle) Valid() bool {
	_, ok := borderChars[b]
	return ok
}

// ParseBorderStyle converts a string flag value into a BorderStyle
func ParseBorderStyle(s string) (BorderStyle, error) {
	b := BorderStyle(s)
	if !b.Valid() {
		return BorderNone, errors.Newf(errors.ErrBorderInvalid,
			"unknown border style %q (valid: none, single, double, rounded, bold, ascii, star, hash)", s)
	}
	return b, nil
}

// Alignment positions a text block within the configured width
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether the alignment is recognized
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// ParseAlignment converts a string flag value into an Alignment
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(s)
	if !a.Valid() {
		return AlignLeft, errors.Newf(errors.ErrAlignInvalid,
			"unknown alignment %q (valid: left, center, right)", s)
	}
	return a, nil
}

// Style is the flat record of every banner option. It has no lifecycle
// beyond construction and use; templates persist it as TOML.
type Style struct {
	Font        string      `toml:"font" yaml:"font" json:"font"`
	Color       string      `toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	Background  string      `toml:"background,omitempty" yaml:"background,omitempty" json:"background,omitempty"`
	Border      BorderStyle `toml:"border" yaml:"border" json:"border"`
	BorderColor string      `toml:"border_color,omitempty" yaml:"border_color,omitempty" json:"border_color,omitempty"`
	Padding     int         `toml:"padding" yaml:"padding" json:"padding"`
	Width       int         `toml:"width" yaml:"width" json:"width"`
	Align       Alignment   `toml:"align" yaml:"align" json:"align"`
	Compact     bool        `toml:"compact" yaml:"compact" json:"compact"`
	Shadow      bool        `toml:"shadow" yaml:"shadow" json:"shadow"`
	ShadowColor string      `toml:"shadow_color,omitempty" yaml:"shadow_color,omitempty" json:"shadow_color,omitempty"`
	Bold        bool        `toml:"bold" yaml:"bold" json:"bold"`
	Italic      bool        `toml:"italic" yaml:"italic" json:"italic"`
	Underline   bool        `toml:"underline" yaml:"underline" json:"underline"`
}

// Default returns the baseline style used when no flags or template are given
func Default() Style {
	return Style{
		Font:        "standard",
		Border:      BorderNone,
		Width:       80,
		Align:       AlignLeft,
		ShadowColor: "bright_black",
	}
}

// Normalize fills zero values left behind by partial template files
// so that a loaded Style behaves like one built from Default()
func (s *Style) Normalize() {
	if s.Font == "" {
		s.Font = "standard"
	}
	if s.Border == "" {
		s.Border = BorderNone
	}
	if s.Width == 0 {
		s.Width = 80
	}
	if s.Align == "" {
		s.Align = AlignLeft
	}
	if s.ShadowColor == "" {
		s.ShadowColor = "bright_black"
	}
}

// Validate checks every field that can come from user input
func (s Style) Validate() error {
	if !s.Border.Valid() {
		return errors.Newf(errors.ErrBorderInvalid, "unknown border style %q", string(s.Border))
	}
	if !s.Align.Valid() {
		return errors.Newf(errors.ErrAlignInvalid, "unknown alignment %q", string(s.Align))
	}
	if s.Padding < 0 {
		return errors.Newf(errors.ErrInvalidInput, "padding must not be negative, got %d", s.Padding)
	}
	if s.Width < 0 {
		return errors.Newf(errors.ErrInvalidInput, "width must not be negative, got %d", s.Width)
	}
	if _, err := ParseColorSpec(s.Color); err != nil {
		return err
	}
	for _, c := range []string{s.Background, s.BorderColor, s.ShadowColor} {
		if c == "" {
			continue
		}
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

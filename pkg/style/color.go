package style

import (
	"sort"
	"strings"

	"github.com/figgo/figgo/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// gradientPrefix marks a two-color interpolated spec, e.g. "gradient:red-yellow"
const gradientPrefix = "gradient:"

// palette maps the sixteen named terminal colors to their hex values
var palette = map[string]string{
	"black":          "#000000",
	"red":            "#cc0000",
	"green":          "#00a600",
	"yellow":         "#999900",
	"blue":           "#0000b2",
	"magenta":        "#b200b2",
	"cyan":           "#00a6b2",
	"white":          "#bfbfbf",
	"bright_black":   "#666666",
	"bright_red":     "#e50000",
	"bright_green":   "#00d900",
	"bright_yellow":  "#e5e500",
	"bright_blue":    "#0000ff",
	"bright_magenta": "#e500e5",
	"bright_cyan":    "#00e5e5",
	"bright_white":   "#e5e5e5",
}

// ColorNames returns the sorted names of the built-in palette
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor resolves a palette name or "#rrggbb" hex value
func ParseColor(name string) (colorful.Color, error) {
	if hex, ok := palette[strings.ToLower(name)]; ok {
		name = hex
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return colorful.Color{}, errors.Wrapf(err, errors.ErrColorInvalid,
				"invalid hex color %q", name)
		}
		return c, nil
	}
	return colorful.Color{}, errors.Newf(errors.ErrColorInvalid,
		"unknown color %q (use a palette name or #rrggbb)", name)
}

// ColorSpec is a parsed color option: either a single color or a
// two-color gradient interpolated across the banner width
type ColorSpec struct {
	Gradient bool
	From     colorful.Color
	To       colorful.Color
}

// ParseColorSpec parses a --color flag value. An empty spec means
// "no coloring" and returns nil without error.
func ParseColorSpec(spec string) (*ColorSpec, error) {
	if spec == "" {
		return nil, nil
	}
	if strings.HasPrefix(spec, gradientPrefix) {
		parts := strings.SplitN(strings.TrimPrefix(spec, gradientPrefix), "-", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, errors.Newf(errors.ErrColorInvalid,
				"invalid gradient spec %q (expected gradient:<from>-<to>)", spec)
		}
		from, err := ParseColor(parts[0])
		if err != nil {
			return nil, err
		}
		to, err := ParseColor(parts[1])
		if err != nil {
			return nil, err
		}
		return &ColorSpec{Gradient: true, From: from, To: to}, nil
	}
	c, err := ParseColor(spec)
	if err != nil {
		return nil, err
	}
	return &ColorSpec{From: c, To: c}, nil
}

// At returns the color at position t in [0,1] across the banner width.
// Single colors are constant; gradients blend in Luv space, which keeps
// perceived brightness even across the ramp.
func (c *ColorSpec) At(t float64) colorful.Color {
	if !c.Gradient || t <= 0 {
		return c.From
	}
	if t >= 1 {
		return c.To
	}
	return c.From.BlendLuv(c.To, t).Clamped()
}

package style

import (
	"sort"

	"github.com/figgo/figgo/pkg/errors"
)

// ColorScheme is a predefined color overlay applied on top of a Style
type ColorScheme string

const (
	SchemeRainbow    ColorScheme = "rainbow"
	SchemeOcean      ColorScheme = "ocean"
	SchemeFire       ColorScheme = "fire"
	SchemeForest     ColorScheme = "forest"
	SchemeSunset     ColorScheme = "sunset"
	SchemeNeon       ColorScheme = "neon"
	SchemeMonochrome ColorScheme = "monochrome"
)

type schemeOverlay struct {
	color       string
	borderColor string
	shadowColor string
	shadow      bool
}

var schemes = map[ColorScheme]schemeOverlay{
	SchemeRainbow:    {color: "gradient:red-yellow", borderColor: "magenta"},
	SchemeOcean:      {color: "gradient:blue-cyan", borderColor: "blue", shadowColor: "bright_blue"},
	SchemeFire:       {color: "gradient:red-yellow", borderColor: "red", shadowColor: "bright_red"},
	SchemeForest:     {color: "gradient:green-bright_green", borderColor: "green", shadowColor: "green"},
	SchemeSunset:     {color: "gradient:magenta-yellow", borderColor: "magenta"},
	SchemeNeon:       {color: "gradient:bright_magenta-bright_cyan", borderColor: "bright_magenta", shadow: true},
	SchemeMonochrome: {color: "white", borderColor: "bright_black", shadowColor: "bright_black"},
}

// SchemeNames returns the sorted names of all color schemes
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ApplyScheme overlays a named color scheme onto the style. Only the
// color-related fields are touched; layout options are left alone.
func (s *Style) ApplyScheme(scheme ColorScheme) error {
	overlay, ok := schemes[scheme]
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unknown color scheme %q", string(scheme))
	}
	s.Color = overlay.color
	s.BorderColor = overlay.borderColor
	if overlay.shadowColor != "" {
		s.ShadowColor = overlay.shadowColor
	}
	if overlay.shadow {
		s.Shadow = true
	}
	return nil
}

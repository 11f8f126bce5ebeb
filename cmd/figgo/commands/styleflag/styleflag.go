// Package styleflag binds the banner style flags shared by generate,
// templates save, and preview, and resolves them against configuration
// defaults, templates, and color schemes.
package styleflag

import (
	"github.com/spf13/cobra"

	"github.com/figgo/figgo/pkg/config"
	"github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/style"
)

// Bind registers the banner style flags on cmd
func Bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("font", "f", "", "Font name (run 'figgo fonts' to list)")
	flags.StringP("color", "c", "", "Text color: name, #hex, or gradient:<from>-<to>")
	flags.String("background", "", "Background color for colored output")
	flags.StringP("border", "b", "", "Border style (none, single, double, rounded, bold, ascii, star, hash)")
	flags.String("border-color", "", "Border color")
	flags.IntP("padding", "p", 0, "Blank cells between text and border")
	flags.IntP("width", "w", 0, "Banner width used for alignment")
	flags.StringP("align", "a", "", "Text alignment (left, center, right)")
	flags.Bool("compact", false, "Drop blank glyph lines")
	flags.Bool("shadow", false, "Add a drop shadow")
	flags.String("shadow-color", "", "Shadow color")
	flags.Bool("bold", false, "Bold terminal output")
	flags.Bool("italic", false, "Italic terminal output")
	flags.Bool("underline", false, "Underlined terminal output")
	flags.StringP("template", "t", "", "Start from a named template")
	flags.StringP("scheme", "s", "", "Apply a color scheme (rainbow, ocean, fire, forest, sunset, neon, monochrome)")
}

// Resolve builds the effective style: configuration defaults, then the
// template, then the scheme, then any flag the user actually set.
func Resolve(cmd *cobra.Command, cfg *config.Config, tm *style.TemplateManager) (style.Style, error) {
	flags := cmd.Flags()

	st := style.Default()
	if cfg.Font != "" {
		st.Font = cfg.Font
	}
	if cfg.Width > 0 {
		st.Width = cfg.Width
	}

	if name, _ := flags.GetString("template"); name != "" {
		loaded, err := tm.Load(name)
		if err != nil {
			return style.Style{}, err
		}
		st = loaded
	}

	if scheme, _ := flags.GetString("scheme"); scheme != "" {
		if err := st.ApplyScheme(style.ColorScheme(scheme)); err != nil {
			return style.Style{}, err
		}
	}

	if flags.Changed("font") {
		st.Font, _ = flags.GetString("font")
	}
	if flags.Changed("color") {
		st.Color, _ = flags.GetString("color")
	}
	if flags.Changed("background") {
		st.Background, _ = flags.GetString("background")
	}
	if flags.Changed("border") {
		value, _ := flags.GetString("border")
		border, err := style.ParseBorderStyle(value)
		if err != nil {
			return style.Style{}, err
		}
		st.Border = border
	}
	if flags.Changed("border-color") {
		st.BorderColor, _ = flags.GetString("border-color")
	}
	if flags.Changed("padding") {
		st.Padding, _ = flags.GetInt("padding")
	}
	if flags.Changed("width") {
		st.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("align") {
		value, _ := flags.GetString("align")
		align, err := style.ParseAlignment(value)
		if err != nil {
			return style.Style{}, err
		}
		st.Align = align
	}
	if flags.Changed("compact") {
		st.Compact, _ = flags.GetBool("compact")
	}
	if flags.Changed("shadow") {
		st.Shadow, _ = flags.GetBool("shadow")
	}
	if flags.Changed("shadow-color") {
		st.ShadowColor, _ = flags.GetString("shadow-color")
	}
	if flags.Changed("bold") {
		st.Bold, _ = flags.GetBool("bold")
	}
	if flags.Changed("italic") {
		st.Italic, _ = flags.GetBool("italic")
	}
	if flags.Changed("underline") {
		st.Underline, _ = flags.GetBool("underline")
	}

	if err := st.Validate(); err != nil {
		return style.Style{}, err
	}
	return st, nil
}

// FontManager builds the font manager, honoring the configured custom
// font directory
func FontManager(cfg *config.Config) *fonts.Manager {
	if cfg.Fonts.Dir != "" {
		return fonts.NewManagerWithDir(cfg.Fonts.Dir)
	}
	return fonts.NewManager()
}

// TemplateManager builds the template manager, honoring the configured
// user template directory
func TemplateManager(cfg *config.Config) *style.TemplateManager {
	if cfg.Templates.Dir != "" {
		return style.NewTemplateManagerWithDir(cfg.Templates.Dir)
	}
	return style.NewTemplateManager()
}

package interactive

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/figgo/figgo/cmd/figgo/commands/styleflag"
	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/config"
	"github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/style"
	"github.com/figgo/figgo/pkg/ui"
)

const noScheme = "none"

// NewCommand creates the interactive command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fm := styleflag.FontManager(cfg)
			tm := styleflag.TemplateManager(cfg)

			st, text, err := buildStyle(cfg, fm)
			if err != nil {
				return err
			}

			b, err := banner.Render(text, st, fm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			if ui.ColorEnabled(cfg.Color) && b.Colored() {
				fmt.Fprintln(out, b.ANSI())
			} else {
				fmt.Fprintln(out, b.Plain())
			}

			save, err := pterm.DefaultInteractiveConfirm.Show(MsgPromptSave)
			if err != nil {
				return err
			}
			if !save {
				return nil
			}

			name, err := pterm.DefaultInteractiveTextInput.Show(MsgPromptTemplateName)
			if err != nil {
				return err
			}
			path, err := tm.Save(name, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s "+MsgSavedFormat,
				ui.SuccessIndicator, name, ui.PathStyle.Render(path))
			return nil
		},
	}
}

// buildStyle walks the user through the style options one prompt at a time
func buildStyle(cfg *config.Config, fm *fonts.Manager) (style.Style, string, error) {
	st := style.Default()
	if cfg.Font != "" {
		st.Font = cfg.Font
	}
	if cfg.Width > 0 {
		st.Width = cfg.Width
	}

	text, err := pterm.DefaultInteractiveTextInput.Show(MsgPromptText)
	if err != nil {
		return style.Style{}, "", err
	}

	font, err := pterm.DefaultInteractiveSelect.
		WithOptions(fm.List()).
		WithDefaultOption(st.Font).
		WithMaxHeight(10).
		Show(MsgPromptFont)
	if err != nil {
		return style.Style{}, "", err
	}
	st.Font = font

	borders := make([]string, len(style.BorderStyles))
	for i, b := range style.BorderStyles {
		borders[i] = string(b)
	}
	border, err := pterm.DefaultInteractiveSelect.
		WithOptions(borders).
		WithDefaultOption(string(st.Border)).
		Show(MsgPromptBorder)
	if err != nil {
		return style.Style{}, "", err
	}
	st.Border = style.BorderStyle(border)

	schemes := append([]string{noScheme}, style.SchemeNames()...)
	scheme, err := pterm.DefaultInteractiveSelect.
		WithOptions(schemes).
		WithDefaultOption(noScheme).
		Show(MsgPromptScheme)
	if err != nil {
		return style.Style{}, "", err
	}
	if scheme != noScheme {
		if err := st.ApplyScheme(style.ColorScheme(scheme)); err != nil {
			return style.Style{}, "", err
		}
	}

	shadow, err := pterm.DefaultInteractiveConfirm.Show(MsgPromptShadow)
	if err != nil {
		return style.Style{}, "", err
	}
	st.Shadow = st.Shadow || shadow

	return st, text, nil
}

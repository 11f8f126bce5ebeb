package generate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/figgo/figgo/cmd/figgo/commands/styleflag"
	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/config"
	"github.com/figgo/figgo/pkg/export"
	"github.com/figgo/figgo/pkg/ui"
)

// NewCommand creates the generate command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate <text>...",
		Aliases: []string{"gen"},
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			st, err := styleflag.Resolve(cmd, cfg, styleflag.TemplateManager(cfg))
			if err != nil {
				return err
			}

			log.Debug().Str("text", text).Str("font", st.Font).Msg("Generating banner")

			b, err := banner.Render(text, st, styleflag.FontManager(cfg))
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output != "" {
				return exportBanner(cmd, b, output)
			}

			noColor, _ := cmd.Flags().GetBool("no-color")
			if !noColor && ui.ColorEnabled(cfg.Color) && b.Colored() {
				fmt.Fprintln(cmd.OutOrStdout(), b.ANSI())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), b.Plain())
			}
			return nil
		},
	}

	styleflag.Bind(cmd)
	cmd.Flags().StringP("output", "o", "", "Write the banner to a file instead of stdout")
	cmd.Flags().String("format", "", "Output format (text, html, png, svg, json, yaml); detected from the file extension when omitted")
	cmd.Flags().Bool("no-color", false, "Disable ANSI colors on stdout")

	return cmd
}

func exportBanner(cmd *cobra.Command, b *banner.Banner, output string) error {
	var format export.Format
	if value, _ := cmd.Flags().GetString("format"); value != "" {
		parsed, err := export.ParseFormat(value)
		if err != nil {
			return err
		}
		format = parsed
	} else {
		format = export.DetectFormat(output)
	}

	exporter, err := export.New(format)
	if err != nil {
		return err
	}
	if err := exporter.Export(b, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s "+MsgExportedFormat,
		ui.SuccessIndicator, string(format), output)
	return nil
}

package preview

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/figgo/figgo/cmd/figgo/commands/styleflag"
	"github.com/figgo/figgo/pkg/config"
	"github.com/figgo/figgo/pkg/ui"
)

// NewCommand creates the preview command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preview <text>...",
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
			fm := styleflag.FontManager(cfg)
			text := strings.Join(args, " ")

			names, _ := cmd.Flags().GetStringSlice("font")
			if len(names) == 0 {
				if category, _ := cmd.Flags().GetString("category"); category != "" {
					names = fm.ByCategory(category)
					if len(names) == 0 {
						return fmt.Errorf(MsgErrUnknownCategory, category)
					}
				} else {
					names = fm.List()
				}
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit > 0 && len(names) > limit {
				names = names[:limit]
			}

			renderer := ui.NewTerminalRenderer()
			out := cmd.OutOrStdout()
			for _, name := range names {
				sample, err := fm.Sample(name, text)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, renderer.RenderSample(name, sample))
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("font", nil, "Fonts to preview (repeatable); defaults to all")
	cmd.Flags().String("category", "", "Preview every font in a category")
	cmd.Flags().Int("limit", 10, "Maximum number of fonts to preview (0 = no limit)")

	return cmd
}

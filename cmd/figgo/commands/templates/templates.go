package templates

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/figgo/figgo/cmd/figgo/commands/styleflag"
	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/config"
	"github.com/figgo/figgo/pkg/ui"
)

// NewCommand creates the templates command and its subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			list, err := styleflag.TemplateManager(cfg).List()
			if err != nil {
				return err
			}

			renderer := ui.NewTerminalRenderer()
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderTemplateList(list))
			return nil
		},
	}

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newSaveCmd())

	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <template>",
		Short: MsgShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			st, err := styleflag.TemplateManager(cfg).Load(args[0])
			if err != nil {
				return err
			}

			text, _ := cmd.Flags().GetString("text")
			b, err := banner.Render(text, st, styleflag.FontManager(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.TitleStyle.Render(args[0]))
			fmt.Fprintln(out)
			if ui.ColorEnabled(cfg.Color) && b.Colored() {
				fmt.Fprintln(out, b.ANSI())
			} else {
				fmt.Fprintln(out, b.Plain())
			}
			return nil
		},
	}

	cmd.Flags().String("text", "Sample", "Text rendered for the preview")

	return cmd
}

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "save <name>",
		Short:   MsgSaveShort,
		Long:    MsgSaveLong,
		Example: MsgSaveExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tm := styleflag.TemplateManager(cfg)

			st, err := styleflag.Resolve(cmd, cfg, tm)
			if err != nil {
				return err
			}

			path, err := tm.Save(args[0], st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s "+MsgSavedFormat,
				ui.SuccessIndicator, args[0], ui.PathStyle.Render(path))
			return nil
		},
	}

	styleflag.Bind(cmd)

	return cmd
}

package fonts

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/figgo/figgo/cmd/figgo/commands/styleflag"
	"github.com/figgo/figgo/pkg/config"
	fontcatalog "github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/ui"
)

// NewCommand creates the fonts command and its subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fonts",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fm := styleflag.FontManager(cfg)

			names, err := matchFonts(cmd, fm)
			if err != nil {
				return err
			}

			renderer := ui.NewTerminalRenderer()
			if sample, _ := cmd.Flags().GetString("sample"); sample != "" {
				return printSamples(cmd, fm, renderer, names, sample)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderFontList(names))
			return nil
		},
	}

	cmd.Flags().String("search", "", "Only fonts whose name contains this string")
	cmd.Flags().String("category", "", "Only fonts in this category (run 'figgo fonts categories')")
	cmd.Flags().String("recommend", "", "Only fonts recommended for this use case (headers, titles, code, logos, fun)")
	cmd.Flags().String("sample", "", "Render this text in every matched font instead of listing names")

	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newCategoriesCmd())

	return cmd
}

// matchFonts applies the list filters in a fixed order: category, then
// use case, then search
func matchFonts(cmd *cobra.Command, fm *fontcatalog.Manager) ([]string, error) {
	names := fm.List()

	if category, _ := cmd.Flags().GetString("category"); category != "" {
		names = fm.ByCategory(category)
		if len(names) == 0 {
			return nil, fmt.Errorf(MsgErrUnknownCategory, category)
		}
	}
	if useCase, _ := cmd.Flags().GetString("recommend"); useCase != "" {
		recommended := fm.Recommended(useCase)
		if len(recommended) == 0 {
			return nil, fmt.Errorf(MsgErrUnknownUseCase, useCase)
		}
		names = intersect(names, recommended)
	}
	if query, _ := cmd.Flags().GetString("search"); query != "" {
		names = intersect(names, fm.Search(query))
	}
	return names, nil
}

func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, name := range b {
		inB[name] = true
	}
	var out []string
	for _, name := range a {
		if inB[name] {
			out = append(out, name)
		}
	}
	return out
}

func printSamples(cmd *cobra.Command, fm *fontcatalog.Manager, renderer *ui.TerminalRenderer, names []string, text string) error {
	for _, name := range names {
		sample, err := fm.Sample(name, text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSample(name, sample))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <font>",
		Short: MsgInfoShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fm := styleflag.FontManager(cfg)

			info, err := fm.Info(args[0])
			if err != nil {
				return err
			}

			renderer := ui.NewTerminalRenderer()
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderFontInfo(info))

			sample, err := fm.Sample(args[0], "")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), sample)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <path.flf>",
		Short: MsgAddShort,
		Long:  MsgAddLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fm := styleflag.FontManager(cfg)

			var meta *fontcatalog.Meta
			description, _ := cmd.Flags().GetString("description")
			author, _ := cmd.Flags().GetString("author")
			if description != "" || author != "" {
				meta = &fontcatalog.Meta{Description: description, Author: author}
			}

			if err := fm.Add(args[0], meta); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s "+MsgFontAddedFormat,
				ui.SuccessIndicator, args[0])
			return nil
		},
	}

	cmd.Flags().String("description", "", "Description stored with the font")
	cmd.Flags().String("author", "", "Author stored with the font")

	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: MsgCategoriesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fm := styleflag.FontManager(cfg)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.TitleStyle.Render("Categories"))
			for _, category := range fm.Categories() {
				fmt.Fprintf(out, "  %s %s (%d fonts)\n",
					ui.InfoIndicator, category, len(fm.ByCategory(category)))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.TitleStyle.Render("Use cases"))
			for _, useCase := range fm.UseCases() {
				fmt.Fprintf(out, "  %s %s (%d fonts)\n",
					ui.InfoIndicator, useCase, len(fm.Recommended(useCase)))
			}
			return nil
		},
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/style"
)

// TerminalRenderer formats figgo's list and detail output for terminals
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a renderer with the default width
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{width: 80}
}

// SetWidth updates the terminal width used for column layout
func (r *TerminalRenderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// RenderFontList lays font names out in columns across the terminal width
func (r *TerminalRenderer) RenderFontList(names []string) string {
	if len(names) == 0 {
		return MutedStyle.Render("No fonts found")
	}

	colWidth := 0
	for _, name := range names {
		if len(name) > colWidth {
			colWidth = len(name)
		}
	}
	colWidth += 2
	cols := r.width / colWidth
	if cols < 1 {
		cols = 1
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render(fmt.Sprintf("Available Fonts (%d)", len(names))) + "\n\n")
	for i, name := range names {
		result.WriteString(fmt.Sprintf("%-*s", colWidth, name))
		if (i+1)%cols == 0 {
			result.WriteString("\n")
		}
	}
	return strings.TrimRight(result.String(), " \n")
}

// RenderFontInfo renders the catalog details for one font
func (r *TerminalRenderer) RenderFontInfo(info fonts.Info) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Render(info.Name) + "\n\n")

	source := "bundled"
	if info.Custom {
		source = "custom"
	}
	result.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render("source:"), source))
	if info.Description != "" {
		result.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render("about:"), info.Description))
	}
	if info.Author != "" {
		result.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render("author:"), info.Author))
	}
	result.WriteString(fmt.Sprintf("  %s %d rows, up to %d columns per glyph\n",
		MutedStyle.Render("size:"), info.Height, info.Width))
	if len(info.Categories) > 0 {
		result.WriteString(fmt.Sprintf("  %s %s\n",
			MutedStyle.Render("categories:"), strings.Join(info.Categories, ", ")))
	}
	if len(info.Recommended) > 0 {
		result.WriteString(fmt.Sprintf("  %s %s\n",
			MutedStyle.Render("good for:"), strings.Join(info.Recommended, ", ")))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderTemplateList renders templates as a table
func (r *TerminalRenderer) RenderTemplateList(templates []style.Template) string {
	if len(templates) == 0 {
		return MutedStyle.Render("No templates found")
	}

	data := pterm.TableData{{"NAME", "FONT", "COLOR", "BORDER", "SOURCE"}}
	for _, t := range templates {
		source := "user"
		if t.Builtin {
			source = "built-in"
		}
		color := t.Style.Color
		if color == "" {
			color = "-"
		}
		data = append(data, []string{
			t.Name, t.Style.Font, color, string(t.Style.Border), source,
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Srender only fails on writer errors; fall back to bare names
		names := make([]string, len(templates))
		for i, t := range templates {
			names[i] = t.Name
		}
		return strings.Join(names, "\n")
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderSample renders one font preview block with its name as heading
func (r *TerminalRenderer) RenderSample(name, sample string) string {
	var result strings.Builder
	result.WriteString(SubtitleStyle.Render(name) + "\n")
	result.WriteString(sample)
	return result.String()
}

// RenderError formats an error for stderr
func (r *TerminalRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render("Error:")+" "+err.Error())
}

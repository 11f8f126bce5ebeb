package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/style"
)

func TestRenderFontListEmpty(t *testing.T) {
	r := NewTerminalRenderer()
	assert.Contains(t, r.RenderFontList(nil), "No fonts found")
}

func TestRenderFontListColumns(t *testing.T) {
	r := NewTerminalRenderer()
	out := r.RenderFontList([]string{"standard", "slant", "doom"})

	assert.Contains(t, out, "Available Fonts (3)")
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "doom")
}

func TestRenderFontInfo(t *testing.T) {
	r := NewTerminalRenderer()
	out := r.RenderFontInfo(fonts.Info{
		Name:       "slant",
		Categories: []string{"slanted"},
		Height:     6,
		Width:      8,
	})

	assert.Contains(t, out, "slant")
	assert.Contains(t, out, "bundled")
	assert.Contains(t, out, "slanted")
}

func TestRenderTemplateList(t *testing.T) {
	r := NewTerminalRenderer()
	out := r.RenderTemplateList([]style.Template{
		{Name: "retro", Style: style.Default(), Builtin: true},
		{Name: "mine", Style: style.Default()},
	})

	assert.Contains(t, out, "retro")
	assert.Contains(t, out, "built-in")
	assert.Contains(t, out, "user")
}

func TestColorEnabledHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(true))
}

func TestColorEnabledHonorsConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, ColorEnabled(false))
}

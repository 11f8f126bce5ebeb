package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/fonts"
	"github.com/figgo/figgo/pkg/style"
)

func testBanner(t *testing.T, mutate func(*style.Style)) *banner.Banner {
	t.Helper()
	st := style.Default()
	if mutate != nil {
		mutate(&st)
	}
	b, err := banner.Render("Go", st, fonts.NewManagerWithDir(t.TempDir()))
	require.NoError(t, err)
	return b
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"text", "html", "png", "svg", "json", "yaml", "HTML"} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParseFormat("pdf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"banner.txt", FormatText},
		{"banner.html", FormatHTML},
		{"banner.htm", FormatHTML},
		{"banner.png", FormatPNG},
		{"banner.svg", FormatSVG},
		{"banner.json", FormatJSON},
		{"banner.yaml", FormatYAML},
		{"banner.yml", FormatYAML},
		{"banner", FormatText},
		{"BANNER.SVG", FormatSVG},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.path), tt.path)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Format("pdf"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))
}

func TestTextExport(t *testing.T) {
	b := testBanner(t, nil)
	path := filepath.Join(t.TempDir(), "banner.txt")

	e := &TextExporter{}
	require.NoError(t, e.Export(b, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Plain()+"\n", string(data))
}

func TestTextExportWithMetadata(t *testing.T) {
	b := testBanner(t, func(s *style.Style) {
		s.Border = style.BorderSingle
		s.Padding = 1
		s.Color = "red"
	})
	path := filepath.Join(t.TempDir(), "banner.txt")

	e := &TextExporter{IncludeColors: false, IncludeMetadata: true}
	require.NoError(t, e.Export(b, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# figgo banner")
	assert.Contains(t, content, "# font: standard")
	assert.Contains(t, content, "# border: single")
	assert.Contains(t, content, "# color: red")
	assert.NotContains(t, content, "\x1b[", "metadata export asked for no colors")
}

func TestTextExportCreatesParentDirs(t *testing.T) {
	b := testBanner(t, nil)
	path := filepath.Join(t.TempDir(), "deep", "nested", "banner.txt")

	require.NoError(t, (&TextExporter{}).Export(b, path))
	assert.FileExists(t, path)
}

func TestHTMLExport(t *testing.T) {
	b := testBanner(t, nil)
	path := filepath.Join(t.TempDir(), "banner.html")

	e := &HTMLExporter{Standalone: true, Theme: "terminal"}
	require.NoError(t, e.Export(b, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, `<pre class="banner"`)
	assert.Contains(t, content, `data-font="standard"`)
	assert.Contains(t, content, "#00ff00")
}

func TestHTMLSnippetExport(t *testing.T) {
	b := testBanner(t, nil)
	path := filepath.Join(t.TempDir(), "banner.html")

	e := &HTMLExporter{Standalone: false, Theme: "default"}
	require.NoError(t, e.Export(b, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "<pre")
}

func TestPNGExport(t *testing.T) {
	b := testBanner(t, func(s *style.Style) {
		s.Color = "gradient:blue-cyan"
		s.Border = style.BorderASCII
	})
	path := filepath.Join(t.TempDir(), "banner.png")

	require.NoError(t, (&PNGExporter{}).Export(b, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, b.Width()*pngCellWidth+2*pngMargin, img.Bounds().Dx())
	assert.Equal(t, b.Height()*pngCellHeight+2*pngMargin, img.Bounds().Dy())
}

func TestPNGExportRejectsBadColor(t *testing.T) {
	b := testBanner(t, nil)
	path := filepath.Join(t.TempDir(), "banner.png")

	err := (&PNGExporter{Background: "plaid"}).Export(b, path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrColorInvalid))
}

func TestSVGExport(t *testing.T) {
	b := testBanner(t, func(s *style.Style) {
		s.Color = "gradient:red-yellow"
		s.Shadow = true
	})
	path := filepath.Join(t.TempDir(), "banner.svg")

	require.NoError(t, (&SVGExporter{}).Export(b, path))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))

	svg := doc.SelectElement("svg")
	require.NotNil(t, svg)
	assert.NotNil(t, svg.FindElement("//linearGradient"))
	assert.NotNil(t, svg.FindElement("//filter"))
	texts := svg.FindElements("//text")
	assert.Len(t, texts, b.Height())
}

func TestSVGExportSolidColor(t *testing.T) {
	b := testBanner(t, func(s *style.Style) { s.Color = "green" })
	path := filepath.Join(t.TempDir(), "banner.svg")

	require.NoError(t, (&SVGExporter{}).Export(b, path))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))
	assert.Nil(t, doc.FindElement("//linearGradient"))
	assert.Nil(t, doc.FindElement("//filter"))
}

func TestJSONRoundTrip(t *testing.T) {
	b := testBanner(t, func(s *style.Style) {
		s.Color = "gradient:magenta-cyan"
		s.Border = style.BorderRounded
		s.Padding = 2
		s.Shadow = true
		s.Align = style.AlignCenter
	})
	path := filepath.Join(t.TempDir(), "banner.json")

	require.NoError(t, (&JSONExporter{}).Export(b, path))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, b.Text, doc.Text)
	assert.Equal(t, b.Style, doc.Style)
	assert.Equal(t, b.Plain(), doc.Output.Plain)
}

func TestYAMLRoundTrip(t *testing.T) {
	b := testBanner(t, func(s *style.Style) {
		s.Color = "blue"
		s.Border = style.BorderHash
	})
	path := filepath.Join(t.TempDir(), "banner.yaml")

	require.NoError(t, (&YAMLExporter{}).Export(b, path))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, b.Style, doc.Style)
}

func TestLoadDocumentRejectsNonStructured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banner.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))
}

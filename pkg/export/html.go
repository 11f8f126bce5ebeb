package export

import (
	"fmt"
	"html"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/style"
)

// HTMLExporter writes the banner as an HTML document (or snippet) with
// the block wrapped in a <pre> to preserve its geometry
type HTMLExporter struct {
	Standalone bool
	Theme      string
}

// Export writes the banner to path
func (e *HTMLExporter) Export(b *banner.Banner, path string) error {
	var content string
	if e.Standalone {
		content = e.document(b)
	} else {
		content = e.css(b) + "\n" + e.pre(b)
	}
	return writeFile(path, []byte(content))
}

func (e *HTMLExporter) document(b *banner.Banner) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
%s
</head>
<body>
    <div class="banner-container">
        %s
    </div>
</body>
</html>
`, html.EscapeString(b.Text), e.css(b), e.pre(b))
}

func (e *HTMLExporter) pre(b *banner.Banner) string {
	return fmt.Sprintf(`<pre class="banner" data-font="%s">%s</pre>`,
		html.EscapeString(b.Style.Font), html.EscapeString(b.Plain()))
}

func (e *HTMLExporter) css(b *banner.Banner) string {
	base := `<style>
    .banner-container {
        display: flex;
        justify-content: center;
        align-items: center;
        min-height: 100vh;
        margin: 0;
        padding: 20px;
        box-sizing: border-box;
    }
    .banner {
        font-family: 'Courier New', Courier, monospace;
        line-height: 1.2;
        white-space: pre;
        margin: 0;
        padding: 20px;
        border-radius: 8px;
        overflow-x: auto;
    }
`
	theme, ok := htmlThemes[e.Theme]
	if !ok {
		theme = htmlThemes["default"]
	}
	return base + theme(b) + "\n</style>"
}

// textColorHex maps the banner's color option onto a CSS color;
// gradients fall back to a neutral foreground
func textColorHex(b *banner.Banner, fallback string) string {
	spec, err := style.ParseColorSpec(b.Style.Color)
	if err != nil || spec == nil || spec.Gradient {
		return fallback
	}
	return spec.At(0).Hex()
}

func borderColorHex(b *banner.Banner, fallback string) string {
	if b.Style.BorderColor == "" {
		return fallback
	}
	c, err := style.ParseColor(b.Style.BorderColor)
	if err != nil {
		return fallback
	}
	return c.Hex()
}

var htmlThemes = map[string]func(*banner.Banner) string{
	"default": func(b *banner.Banner) string {
		return `
    body {
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    }
    .banner {
        background: rgba(255, 255, 255, 0.95);
        color: #333;
        box-shadow: 0 10px 40px rgba(0, 0, 0, 0.2);
    }`
	},
	"dark": func(b *banner.Banner) string {
		return fmt.Sprintf(`
    body {
        background: #1a1a1a;
    }
    .banner {
        background: #2d2d2d;
        color: %s;
        border: 1px solid #444;
    }`, textColorHex(b, "#00ff00"))
	},
	"terminal": func(b *banner.Banner) string {
		return `
    body {
        background: #000;
    }
    .banner {
        background: #000;
        color: #00ff00;
        border: 1px solid #00ff00;
        text-shadow: 0 0 3px #00ff00;
    }`
	},
	"paper": func(b *banner.Banner) string {
		return `
    body {
        background: #f5f5f5;
    }
    .banner {
        background: white;
        color: #222;
        border: 1px solid #ddd;
        box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
    }`
	},
	"neon": func(b *banner.Banner) string {
		text := textColorHex(b, "#00ffff")
		border := borderColorHex(b, "#ff00ff")
		return fmt.Sprintf(`
    body {
        background: linear-gradient(45deg, #000428 0%%, #004e92 100%%);
    }
    .banner {
        background: rgba(0, 0, 0, 0.8);
        color: %s;
        border: 2px solid %s;
        box-shadow: 0 0 30px %s;
        text-shadow: 0 0 10px currentColor;
    }`, text, border, border)
	},
	"retro": func(b *banner.Banner) string {
		return `
    body {
        background: linear-gradient(180deg, #2d1b69 0%, #0f0c29 100%);
    }
    .banner {
        background: #1a1a2e;
        color: #f39c12;
        border: 3px double #f39c12;
    }`
	},
}

// HTMLThemes lists the available theme names
func HTMLThemes() []string {
	names := make([]string, 0, len(htmlThemes))
	for name := range htmlThemes {
		names = append(names, name)
	}
	return names
}

// Package export serializes finished banners to external representations:
// plain text, HTML, PNG, SVG, and structured JSON/YAML documents.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/logging"
)

// Format names an output representation
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatHTML, FormatPNG, FormatSVG, FormatJSON, FormatYAML}

// ParseFormat converts a --format flag value into a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrFormatUnsupported,
		"unsupported format %q (valid: text, html, png, svg, json, yaml)", s)
}

// DetectFormat guesses the format from the output file extension,
// falling back to plain text
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".png":
		return FormatPNG
	case ".svg":
		return FormatSVG
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Exporter writes a finished banner to a file
type Exporter interface {
	Export(b *banner.Banner, path string) error
}

// New returns the exporter for a format with default options
func New(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return &TextExporter{IncludeColors: true}, nil
	case FormatHTML:
		return &HTMLExporter{Standalone: true, Theme: "default"}, nil
	case FormatPNG:
		return &PNGExporter{}, nil
	case FormatSVG:
		return &SVGExporter{}, nil
	case FormatJSON:
		return &JSONExporter{}, nil
	case FormatYAML:
		return &YAMLExporter{}, nil
	default:
		return nil, errors.Newf(errors.ErrFormatUnsupported, "unsupported format %q", string(format))
	}
}

// writeFile creates parent directories and writes the serialized banner
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	log := logging.GetLogger("export")
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Banner exported")
	return nil
}

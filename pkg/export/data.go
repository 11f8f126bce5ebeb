package export

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/style"
)

// Document is the structured-data representation of a banner. Exporting
// and re-parsing a Document reproduces the style configuration exactly.
type Document struct {
	Text   string      `json:"text" yaml:"text"`
	Style  style.Style `json:"style" yaml:"style"`
	Output struct {
		Plain   string `json:"plain" yaml:"plain"`
		Colored string `json:"colored,omitempty" yaml:"colored,omitempty"`
	} `json:"output" yaml:"output"`
}

// NewDocument builds the structured representation of a banner
func NewDocument(b *banner.Banner) Document {
	doc := Document{Text: b.Text, Style: b.Style}
	doc.Output.Plain = b.Plain()
	if b.Colored() {
		doc.Output.Colored = b.ANSI()
	}
	return doc
}

// JSONExporter writes the banner as an indented JSON document
type JSONExporter struct{}

// Export writes the banner to path
func (e *JSONExporter) Export(b *banner.Banner, path string) error {
	data, err := json.MarshalIndent(NewDocument(b), "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode JSON document")
	}
	return writeFile(path, append(data, '\n'))
}

// YAMLExporter writes the banner as a YAML document
type YAMLExporter struct{}

// Export writes the banner to path
func (e *YAMLExporter) Export(b *banner.Banner, path string) error {
	data, err := yaml.Marshal(NewDocument(b))
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode YAML document")
	}
	return writeFile(path, data)
}

// LoadDocument reads a structured export back, detecting the format
// from the file extension
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrapf(err, errors.ErrInvalidInput, "cannot read %s", path)
	}

	var doc Document
	switch DetectFormat(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return Document{}, errors.Newf(errors.ErrFormatUnsupported,
			"%s is not a structured banner export", path)
	}
	if err != nil {
		return Document{}, errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse %s", path)
	}
	return doc, nil
}

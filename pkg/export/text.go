package export

import (
	"fmt"
	"strings"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/style"
)

// TextExporter writes the banner as a plain text file, optionally with
// ANSI colors and a comment header describing how it was generated
type TextExporter struct {
	IncludeColors   bool
	IncludeMetadata bool
}

// Export writes the banner to path
func (e *TextExporter) Export(b *banner.Banner, path string) error {
	var content string
	if e.IncludeColors {
		content = b.ANSI()
	} else {
		content = b.Plain()
	}

	if e.IncludeMetadata {
		content = e.metadata(b) + "\n" + content
	}

	return writeFile(path, []byte(content+"\n"))
}

func (e *TextExporter) metadata(b *banner.Banner) string {
	lines := []string{
		"# figgo banner",
		fmt.Sprintf("# text: %s", b.Text),
		fmt.Sprintf("# font: %s", b.Style.Font),
	}
	if b.Style.Color != "" {
		lines = append(lines, fmt.Sprintf("# color: %s", b.Style.Color))
	}
	if b.Style.Border != style.BorderNone {
		lines = append(lines, fmt.Sprintf("# border: %s", b.Style.Border))
	}
	if b.Style.Padding > 0 {
		lines = append(lines, fmt.Sprintf("# padding: %d", b.Style.Padding))
	}
	lines = append(lines, "# "+strings.Repeat("=", 60))
	return strings.Join(lines, "\n")
}

package export

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/figgo/figgo/pkg/banner"
	"github.com/figgo/figgo/pkg/style"
)

// SVGExporter writes the banner as a vector document: one <text>
// element per line in a monospace face, with gradient fills and an
// optional drop-shadow filter.
type SVGExporter struct {
	FontSize int // defaults to 14
}

const svgMargin = 20

// Export writes the banner to path as an SVG
func (e *SVGExporter) Export(b *banner.Banner, path string) error {
	fontSize := e.FontSize
	if fontSize <= 0 {
		fontSize = 14
	}
	charWidth := float64(fontSize) * 0.6
	lineHeight := float64(fontSize) * 1.2

	width := int(float64(b.Width())*charWidth) + 2*svgMargin
	height := int(float64(b.Height())*lineHeight) + 2*svgMargin

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", fmt.Sprintf("%d", width))
	svg.CreateAttr("height", fmt.Sprintf("%d", height))

	defs := svg.CreateElement("defs")
	fill, err := e.fill(b, defs)
	if err != nil {
		return err
	}
	if b.Style.Shadow {
		addShadowFilter(defs)
	}

	bgRect := svg.CreateElement("rect")
	bgRect.CreateAttr("width", "100%")
	bgRect.CreateAttr("height", "100%")
	bgRect.CreateAttr("fill", backgroundFill(b))

	group := svg.CreateElement("g")
	group.CreateAttr("font-family", "'Courier New', Courier, monospace")
	group.CreateAttr("font-size", fmt.Sprintf("%dpx", fontSize))
	group.CreateAttr("fill", fill)
	if b.Style.Shadow {
		group.CreateAttr("filter", "url(#shadow)")
	}

	y := float64(svgMargin) + lineHeight
	for _, line := range b.Lines {
		text := group.CreateElement("text")
		text.CreateAttr("x", fmt.Sprintf("%d", svgMargin))
		text.CreateAttr("y", fmt.Sprintf("%.1f", y))
		// xml:space keeps the leading whitespace that carries alignment
		text.CreateAttr("xml:space", "preserve")
		text.SetText(line)
		y += lineHeight
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// fill resolves the text fill: a gradient definition when the banner
// uses one, a solid color otherwise
func (e *SVGExporter) fill(b *banner.Banner, defs *etree.Element) (string, error) {
	spec, err := style.ParseColorSpec(b.Style.Color)
	if err != nil {
		return "", err
	}
	if spec == nil {
		return "#333333", nil
	}
	if !spec.Gradient {
		return spec.At(0).Hex(), nil
	}

	grad := defs.CreateElement("linearGradient")
	grad.CreateAttr("id", "banner-gradient")
	grad.CreateAttr("x1", "0%")
	grad.CreateAttr("y1", "0%")
	grad.CreateAttr("x2", "100%")
	grad.CreateAttr("y2", "0%")
	for _, stop := range []struct {
		offset string
		color  colorful.Color
	}{
		{"0%", spec.At(0)},
		{"100%", spec.At(1)},
	} {
		el := grad.CreateElement("stop")
		el.CreateAttr("offset", stop.offset)
		el.CreateAttr("stop-color", stop.color.Hex())
	}
	return "url(#banner-gradient)", nil
}

func backgroundFill(b *banner.Banner) string {
	if bg, ok := b.Background(); ok {
		return bg.Hex()
	}
	return "white"
}

func addShadowFilter(defs *etree.Element) {
	filter := defs.CreateElement("filter")
	filter.CreateAttr("id", "shadow")
	filter.CreateAttr("x", "-50%")
	filter.CreateAttr("y", "-50%")
	filter.CreateAttr("width", "200%")
	filter.CreateAttr("height", "200%")

	blur := filter.CreateElement("feGaussianBlur")
	blur.CreateAttr("in", "SourceAlpha")
	blur.CreateAttr("stdDeviation", "2")

	offset := filter.CreateElement("feOffset")
	offset.CreateAttr("dx", "2")
	offset.CreateAttr("dy", "2")
	offset.CreateAttr("result", "offsetblur")

	transfer := filter.CreateElement("feComponentTransfer")
	funcA := transfer.CreateElement("feFuncA")
	funcA.CreateAttr("type", "linear")
	funcA.CreateAttr("slope", "0.5")

	merge := filter.CreateElement("feMerge")
	merge.CreateElement("feMergeNode")
	merge.CreateElement("feMergeNode").CreateAttr("in", "SourceGraphic")
}

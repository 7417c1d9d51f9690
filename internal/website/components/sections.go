package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
)

// SectionLayout places the text and media columns of a marketing section.
type SectionLayout struct {
	// Columns is the grid width on wide screens (default: 2)
	Columns int
	// TextSpan and MediaSpan are the columns taken by each side (default: 1)
	TextSpan  int
	MediaSpan int
	// MediaFirst puts the media column on the left
	MediaFirst bool
}

// MarketingSection is a hand-laid block of copy next to screenshots.
type MarketingSection struct {
	// ID is the optional anchor id
	ID string
	// Heading is the section title
	Heading string
	// Body is Markdown copy
	Body string
	// Extra is rendered below the body (e.g. a connector row)
	Extra g.Node
	// Images are stacked in the media column
	Images []website.Image
	// Media replaces Images when set (e.g. a mounted widget)
	Media g.Node
	// Layout controls the grid
	Layout SectionLayout
}

// RenderSection generates a marketing section.
func RenderSection(s MarketingSection) (g.Node, error) {
	body, err := website.RenderMarkdown(s.Body)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", s.Heading, err)
	}

	l := s.Layout
	if l.Columns == 0 {
		l.Columns = 2
	}
	if l.TextSpan == 0 {
		l.TextSpan = 1
	}
	if l.MediaSpan == 0 {
		l.MediaSpan = 1
	}

	media := s.Media
	if media == nil {
		media = g.Map(s.Images, image)
	}

	grid := "marketing-grid"
	if l.MediaFirst {
		grid += " media-first"
	}

	return h.Section(h.Class("marketing"), g.If(s.ID != "", h.ID(s.ID)),
		h.Div(h.Class("container "+grid),
			h.Style(fmt.Sprintf("--cols:%d;--text-span:%d;--media-span:%d", l.Columns, l.TextSpan, l.MediaSpan)),
			h.Div(h.Class("marketing-text"),
				h.H2(g.Text(s.Heading)),
				h.Div(h.Class("marketing-body"), g.Raw(body)),
				s.Extra,
			),
			h.Div(h.Class("marketing-media"), media),
		),
	), nil
}

func image(img website.Image) g.Node {
	return h.Img(
		g.If(img.Class != "", h.Class(img.Class)),
		h.Src(img.Src),
		h.Alt(img.Alt),
		g.Attr("loading", "lazy"),
	)
}

// ConnectorRow shows integration logos followed by a short caption.
type ConnectorRow struct {
	Logos   []website.Image
	Caption string
}

// Node returns the logo row.
func (r ConnectorRow) Node() g.Node {
	return h.Div(h.Class("connectors"),
		g.Map(r.Logos, image),
		g.If(r.Caption != "", h.Span(h.Class("connectors-caption"), g.Text(r.Caption))),
	)
}

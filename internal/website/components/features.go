package components

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
)

// FeaturesOptions configures the features section.
type FeaturesOptions struct {
	// Eyebrow is the small uppercase heading above the grid
	Eyebrow string
	// Lead is the paragraph below the eyebrow
	Lead string
	// Features is the list of features to display, in display order
	Features []website.Feature
	// Columns is the number of columns on wide screens (default: 3)
	Columns int
}

// Card is one rendered feature. Key is the feature name and identifies the
// card across re-renders.
type Card struct {
	Key         string
	Icon        website.Icon
	Name        string
	Description g.Node
}

// Render writes the card markup.
func (c Card) Render(w io.Writer) error {
	var glyph g.Node
	if c.Icon != nil {
		glyph = g.Node(c.Icon)
	}
	return h.Article(h.Class("feature-card"), g.Attr("data-key", c.Key),
		h.Div(h.Class("feature-card-body"),
			h.Span(h.Class("feature-icon"), g.Attr("aria-hidden", "true"), glyph),
			h.H3(h.Class("feature-title"), g.Text(c.Name)),
			h.Div(h.Class("feature-desc"), c.Description),
		),
	).Render(w)
}

// ValidateFeatures checks one render pass worth of features: every entry
// needs a name and a description, and names must be unique.
func ValidateFeatures(features []website.Feature) error {
	seen := make(map[string]int, len(features))
	for i, f := range features {
		if f.Name() == "" {
			return &website.MissingFieldError{Index: i, Field: "name"}
		}
		if f.Description().IsZero() {
			return &website.MissingFieldError{Index: i, Name: f.Name(), Field: "description"}
		}
		if first, ok := seen[f.Name()]; ok {
			return &website.DuplicateKeyError{Name: f.Name(), First: first, Second: i}
		}
		seen[f.Name()] = i
	}
	return nil
}

// BuildCards maps features to cards, one per feature, in input order.
// The whole slice is validated first; on error no cards are returned.
func BuildCards(features []website.Feature) ([]Card, error) {
	if err := ValidateFeatures(features); err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(features))
	for i, f := range features {
		desc, err := f.Description().Node()
		if err != nil {
			return nil, fmt.Errorf("feature %q at index %d: %w", f.Name(), i, err)
		}
		cards = append(cards, Card{
			Key:         f.Name(),
			Icon:        f.Icon(),
			Name:        f.Name(),
			Description: desc,
		})
	}
	return cards, nil
}

// RenderFeatures generates the feature grid section.
func RenderFeatures(opts FeaturesOptions) (g.Node, error) {
	cards, err := BuildCards(opts.Features)
	if err != nil {
		return nil, err
	}

	return h.Section(h.Class("features"),
		g.If(opts.Eyebrow != "", g.Attr("aria-labelledby", "features-title")),
		h.Div(h.Class("container"),
			g.If(opts.Eyebrow != "", h.H2(h.ID("features-title"), h.Class("features-eyebrow"), g.Text(opts.Eyebrow))),
			g.If(opts.Lead != "", h.P(h.Class("features-lead"), g.Text(opts.Lead))),
			h.Div(h.Class("feature-grid "+gridClass(opts.Columns)),
				g.Map(cards, func(c Card) g.Node { return c }),
			),
		),
	), nil
}

func gridClass(columns int) string {
	switch columns {
	case 2:
		return "cols-2"
	case 4:
		return "cols-4"
	default:
		return "cols-3"
	}
}

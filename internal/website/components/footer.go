package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
)

// FooterOptions configures the footer component.
type FooterOptions struct {
	Config  website.FooterConfig
	Tagline string
}

// Footer generates the page footer.
func Footer(opts FooterOptions) g.Node {
	c := opts.Config

	var legal []string
	if c.License != "" {
		legal = append(legal, c.License+" License")
	}
	if c.Copyright != "" {
		legal = append(legal, c.Copyright)
	}

	return h.Footer(h.Role("contentinfo"),
		h.Div(h.Class("container"),
			g.If(opts.Tagline != "", h.P(g.Text(opts.Tagline))),
			h.Nav(g.Attr("aria-label", "Footer navigation"),
				g.If(c.DocsURL != "", navLink(website.NavLink{Label: "Documentation", URL: c.DocsURL, External: true})),
				g.If(c.GitHubURL != "", navLink(website.NavLink{Label: "GitHub", URL: c.GitHubURL, External: true})),
				g.Map(c.Links, navLink),
			),
			g.Map(legal, func(s string) g.Node { return h.Span(g.Text(s), g.Text(" ")) }),
		),
	)
}

// Package components provides the sections of the homepage as gomponents nodes.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
)

// NavbarOptions configures the navbar component.
type NavbarOptions struct {
	// Logo is the logo text (usually the product name)
	Logo string
	// Links are the navigation links
	Links []website.NavLink
	// GitHubURL is shown as a button on the right
	GitHubURL string
}

// Navbar generates the top navigation bar with a skip link.
func Navbar(opts NavbarOptions) g.Node {
	return g.Group{
		h.A(h.Href("#main-content"), h.Class("skip-link"), g.Text("Skip to main content")),
		h.Nav(h.Class("nav"), h.Role("navigation"), g.Attr("aria-label", "Main navigation"),
			h.Div(h.Class("container nav-inner"),
				h.A(h.Href("/"), h.Class("logo"), g.Attr("aria-label", "Home"), g.Text(opts.Logo)),
				h.Div(h.Class("nav-links"),
					g.Map(opts.Links, navLink),
					g.If(opts.GitHubURL != "", navLink(website.NavLink{Label: "GitHub", URL: opts.GitHubURL, External: true})),
				),
			),
		),
	}
}

func navLink(link website.NavLink) g.Node {
	return h.A(h.Href(link.URL), h.Class("btn-ghost"),
		g.If(link.External, g.Group{h.Target("_blank"), h.Rel("noopener noreferrer")}),
		g.Text(link.Label),
	)
}

// Package landing composes complete pages from the components.
package landing

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/internal/website/components"
)

// SlideshowID is the element id the editor slideshow mounts on.
const SlideshowID = "editor-slideshow"

// Options configures the homepage.
type Options struct {
	// Eyebrow and Lead head the features section
	Eyebrow string
	Lead    string
	// Features in display order
	Features []website.Feature
	// Sections follow the features, in order
	Sections []components.MarketingSection
	// Slideshow is unmounted at the end of the body when set; sections
	// are responsible for mounting it
	Slideshow components.Widget
	// Nav and Footer wrap the main content
	Nav    components.NavbarOptions
	Footer components.FooterOptions
	// CustomCSS is appended to the generated styles
	CustomCSS string
	// Scripts are appended to the body (e.g. the dev reload client)
	Scripts []g.Node
}

// DefaultOptions returns the Windmill homepage around the given features.
func DefaultOptions(features []website.Feature) Options {
	slideshow := DefaultSlideshow()
	return Options{
		Eyebrow:   "Everything in one-platform",
		Lead:      "Windmill is a single source of truth to develop, share, and run all your automations and internal apps.",
		Features:  features,
		Sections:  DefaultSections(slideshow),
		Slideshow: slideshow,
		Nav: components.NavbarOptions{
			Logo: "Windmill",
			Links: []website.NavLink{
				{Label: "Docs", URL: "/docs/intro"},
				{Label: "Blog", URL: "/blog"},
			},
			GitHubURL: "https://github.com/windmill-labs/windmill",
		},
		Footer: components.FooterOptions{
			Tagline: "Open-source developer platform for scripts, workflows and internal apps",
			Config: website.FooterConfig{
				GitHubURL: "https://github.com/windmill-labs/windmill",
				DocsURL:   "/docs/intro",
				License:   "AGPLv3",
				Copyright: "Windmill Labs",
			},
		},
	}
}

// Page builds the homepage document. Nothing is rendered when the features
// or a section fail validation.
func Page(cfg website.PageConfig, opts Options) (g.Node, error) {
	features, err := components.RenderFeatures(components.FeaturesOptions{
		Eyebrow:  opts.Eyebrow,
		Lead:     opts.Lead,
		Features: opts.Features,
		Columns:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("render features: %w", err)
	}

	sections := make(g.Group, 0, len(opts.Sections))
	for _, s := range opts.Sections {
		n, err := components.RenderSection(s)
		if err != nil {
			return nil, err
		}
		sections = append(sections, n)
	}

	var unmount g.Node
	if opts.Slideshow != nil {
		unmount = opts.Slideshow.Unmount(SlideshowID)
	}

	return website.Document(cfg, opts.CustomCSS,
		components.Navbar(opts.Nav),
		h.Main(h.ID("main-content"), features, sections),
		components.Footer(opts.Footer),
		unmount,
		g.Group(opts.Scripts),
	), nil
}

// RenderHomepage writes the homepage document to w.
func RenderHomepage(w io.Writer, cfg website.PageConfig, opts Options) error {
	page, err := Page(cfg, opts)
	if err != nil {
		return err
	}
	return page.Render(w)
}

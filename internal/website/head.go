package website

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const defaultFavicon = `data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>🌀</text></svg>`

// Head generates the <head> section with SEO, Open Graph, and JSON-LD.
func Head(cfg PageConfig, customCSS string) g.Node {
	themeColor := cfg.ThemeColor
	if themeColor == "" {
		themeColor = Colors["primary"]
	}
	favicon := cfg.Favicon
	if favicon == "" {
		favicon = defaultFavicon
	}

	css := RenderStyles()
	if customCSS != "" {
		css += "\n" + customCSS
	}

	return g.El("head",
		h.Meta(h.Charset("UTF-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
		h.TitleEl(g.Text(cfg.Title)),
		g.If(cfg.Description != "", h.Meta(h.Name("description"), h.Content(cfg.Description))),
		g.If(len(cfg.Keywords) > 0, h.Meta(h.Name("keywords"), h.Content(strings.Join(cfg.Keywords, ", ")))),
		g.If(cfg.URL != "", h.Link(h.Rel("canonical"), h.Href(cfg.URL))),
		h.Meta(h.Name("theme-color"), h.Content(themeColor)),
		h.Meta(h.Name("robots"), h.Content("index, follow")),
		openGraph(cfg),
		twitterCard(cfg),
		jsonLD(cfg),
		h.Link(h.Rel("icon"), h.Href(favicon)),
		h.StyleEl(g.Raw(css)),
	)
}

func property(name, value string) g.Node {
	return h.Meta(g.Attr("property", name), h.Content(value))
}

func openGraph(cfg PageConfig) g.Node {
	return g.Group{
		property("og:type", "website"),
		g.If(cfg.Title != "", property("og:title", cfg.Title)),
		g.If(cfg.Description != "", property("og:description", cfg.Description)),
		g.If(cfg.URL != "", property("og:url", cfg.URL)),
		g.If(cfg.OGImage != "", property("og:image", cfg.OGImage)),
		property("og:locale", language(cfg)),
	}
}

func twitterCard(cfg PageConfig) g.Node {
	return g.Group{
		h.Meta(h.Name("twitter:card"), h.Content("summary_large_image")),
		g.If(cfg.Title != "", h.Meta(h.Name("twitter:title"), h.Content(cfg.Title))),
		g.If(cfg.Description != "", h.Meta(h.Name("twitter:description"), h.Content(cfg.Description))),
		g.If(cfg.OGImage != "", h.Meta(h.Name("twitter:image"), h.Content(cfg.OGImage))),
	}
}

func jsonLD(cfg PageConfig) g.Node {
	// json.Marshal escapes <, > and &, so the payload cannot close the script tag.
	data, _ := json.Marshal(map[string]string{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                cfg.Title,
		"description":         cfg.Description,
		"url":                 cfg.URL,
		"applicationCategory": "DeveloperApplication",
		"operatingSystem":     "Cross-platform",
	})
	return h.Script(h.Type("application/ld+json"), g.Raw(string(data)))
}

func language(cfg PageConfig) string {
	if cfg.Language == "" {
		return "en"
	}
	return cfg.Language
}

// Document wraps body content in a complete HTML document.
func Document(cfg PageConfig, customCSS string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang(language(cfg)),
			Head(cfg, customCSS),
			h.Body(body...),
		),
	)
}

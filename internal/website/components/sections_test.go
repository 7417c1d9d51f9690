package components_test

import (
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/internal/website/components"
)

func TestRenderSection_Defaults(t *testing.T) {
	node, err := components.RenderSection(components.MarketingSection{
		ID:      "ops",
		Heading: "Production grade",
		Body:    "Secrets are **tightly** permissioned.",
		Images:  []website.Image{{Src: "/img/run.png", Alt: "Run", Class: "shadowed"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	html := render(t, node)
	for _, want := range []string{
		`<section class="marketing" id="ops">`,
		`style="--cols:2;--text-span:1;--media-span:1"`,
		`<h2>Production grade</h2>`,
		`<strong>tightly</strong>`,
		`<img class="shadowed" src="/img/run.png" alt="Run" loading="lazy">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
	if strings.Contains(html, "media-first") {
		t.Error("media-first set without MediaFirst")
	}
}

func TestRenderSection_MediaReplacesImages(t *testing.T) {
	node, err := components.RenderSection(components.MarketingSection{
		Heading: "Editor",
		Images:  []website.Image{{Src: "/img/ignored.png"}},
		Media:   h.Div(h.ID("widget")),
		Extra:   h.P(g.Text("extra")),
		Layout:  components.SectionLayout{Columns: 5, TextSpan: 2, MediaSpan: 3, MediaFirst: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	html := render(t, node)
	if strings.Contains(html, "ignored.png") {
		t.Error("images rendered although media is set")
	}
	for _, want := range []string{
		`marketing-grid media-first`,
		`--cols:5;--text-span:2;--media-span:3`,
		`<div id="widget"></div>`,
		`<p>extra</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
}

func TestRenderSection_SanitizesBody(t *testing.T) {
	node, err := components.RenderSection(components.MarketingSection{
		Heading: "x",
		Body:    `<img src=x onerror="alert(1)"> [link](javascript:alert(1))`,
	})
	if err != nil {
		t.Fatal(err)
	}
	html := render(t, node)
	if strings.Contains(html, "onerror") || strings.Contains(html, "javascript:") {
		t.Errorf("unsafe markup survived: %s", html)
	}
}

func TestConnectorRow(t *testing.T) {
	html := render(t, components.ConnectorRow{
		Logos:   []website.Image{{Src: "/pg.svg", Alt: "PostgreSQL"}, {Src: "/slack.svg", Alt: "Slack"}},
		Caption: "and more",
	}.Node())

	if strings.Count(html, "<img") != 2 {
		t.Errorf("expected 2 logos: %s", html)
	}
	if !strings.Contains(html, `<span class="connectors-caption">and more</span>`) {
		t.Errorf("missing caption: %s", html)
	}
}

func TestSlideshow_MountUnmount(t *testing.T) {
	var w components.Widget = components.Slideshow{
		Interval: 4 * time.Second,
		Slides: []website.Image{
			{Src: "/a.png", Alt: "A"},
			{Src: "/b.png", Alt: "B"},
		},
	}

	mount := render(t, w.Mount("shots"))
	for _, want := range []string{
		`id="shots"`,
		`data-widget="slideshow"`,
		`data-interval="4000"`,
		`aria-label="2 of 2"`,
		`})("shots");`,
	} {
		if !strings.Contains(mount, want) {
			t.Errorf("mount missing %q in %s", want, mount)
		}
	}
	if strings.Contains(mount, "%!") {
		t.Errorf("format verb leaked into script: %s", mount)
	}

	unmount := render(t, w.Unmount("shots"))
	if !strings.Contains(unmount, `getElementById("shots")`) || !strings.Contains(unmount, "pagehide") {
		t.Errorf("unexpected unmount script: %s", unmount)
	}
}

func TestSlideshow_DefaultInterval(t *testing.T) {
	html := render(t, components.Slideshow{}.Mount("s"))
	if !strings.Contains(html, `data-interval="5000"`) {
		t.Errorf("expected default interval: %s", html)
	}
}

func TestNavbarAndFooter(t *testing.T) {
	nav := render(t, components.Navbar(components.NavbarOptions{
		Logo:      "Windmill",
		Links:     []website.NavLink{{Label: "Docs", URL: "/docs"}},
		GitHubURL: "https://github.com/windmill-labs/windmill",
	}))
	if !strings.Contains(nav, `href="#main-content"`) {
		t.Error("missing skip link")
	}
	if !strings.Contains(nav, `<a href="/docs" class="btn-ghost">Docs</a>`) {
		t.Errorf("internal link rendered wrong: %s", nav)
	}
	if !strings.Contains(nav, `target="_blank" rel="noopener noreferrer">GitHub</a>`) {
		t.Errorf("external link rendered wrong: %s", nav)
	}

	footer := render(t, components.Footer(components.FooterOptions{
		Tagline: "Open source",
		Config:  website.FooterConfig{License: "AGPLv3", Copyright: "Windmill Labs"},
	}))
	for _, want := range []string{"Open source", "AGPLv3 License", "Windmill Labs"} {
		if !strings.Contains(footer, want) {
			t.Errorf("footer missing %q: %s", want, footer)
		}
	}
}

package website

import (
	"fmt"
	"sort"
	"strings"
)

// Color palette. Text colors keep a 4.5:1 contrast ratio on their backgrounds.
var Colors = map[string]string{
	"bg":        "#FFFFFF",
	"bgCard":    "#F9FAFB", // feature cards
	"text":      "#111827",
	"textMuted": "#6B7280",
	"primary":   "#2563EB", // eyebrow headings, links
	"badge":     "#3B82F6", // icon badge behind feature glyphs
	"onBadge":   "#FFFFFF",
	"border":    "#E5E7EB",
	"ring":      "rgba(0,0,0,0.05)",
}

// FontFamily is the system font stack.
var FontFamily = `system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif`

// FontMono is used for captions such as the connector row.
var FontMono = `ui-monospace, SFMono-Regular, Menlo, Consolas, monospace`

// Breakpoints for the mobile-first layout (min-width).
var Breakpoints = map[string]string{
	"sm": "640px",
	"lg": "1024px",
}

// StyleOption allows customizing the generated CSS
type StyleOption func(*styleConfig)

type styleConfig struct {
	customColors map[string]string
	includeReset bool
}

// WithCustomColors overrides default colors
func WithCustomColors(colors map[string]string) StyleOption {
	return func(cfg *styleConfig) {
		for k, v := range colors {
			cfg.customColors[k] = v
		}
	}
}

// WithReset includes a CSS reset
func WithReset(include bool) StyleOption {
	return func(cfg *styleConfig) {
		cfg.includeReset = include
	}
}

// RenderStyles generates the CSS for the homepage. Output is deterministic.
func RenderStyles(opts ...StyleOption) string {
	cfg := &styleConfig{
		customColors: make(map[string]string),
		includeReset: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	colors := make(map[string]string, len(Colors))
	for k, v := range Colors {
		colors[k] = v
	}
	for k, v := range cfg.customColors {
		colors[k] = v
	}

	var sb strings.Builder
	if cfg.includeReset {
		sb.WriteString(cssReset())
	}
	sb.WriteString(cssVariables(colors))
	sb.WriteString(cssBase())
	sb.WriteString(cssFeatures())
	sb.WriteString(cssSections())
	sb.WriteString(cssSlideshow())
	sb.WriteString(cssAccessibility())
	sb.WriteString(cssResponsive())
	return sb.String()
}

func cssReset() string {
	return `
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{-webkit-text-size-adjust:100%;scroll-behavior:smooth}
body{line-height:1.6;-webkit-font-smoothing:antialiased}
img,svg{display:block;max-width:100%}
a{color:inherit}
`
}

func cssVariables(colors map[string]string) string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]string, 0, len(names))
	for _, name := range names {
		vars = append(vars, fmt.Sprintf("--color-%s:%s", name, colors[name]))
	}
	return fmt.Sprintf(":root{%s;--font-sans:%s;--font-mono:%s}\n", strings.Join(vars, ";"), FontFamily, FontMono)
}

func cssBase() string {
	return `
body{font-family:var(--font-sans);background:var(--color-bg);color:var(--color-text)}
.container{width:100%;max-width:80rem;margin:0 auto;padding:0 1rem}
.nav{border-bottom:1px solid var(--color-border)}
.nav-inner{display:flex;align-items:center;justify-content:space-between;height:4rem}
.nav-links{display:none;gap:1rem}
.logo{font-weight:700;font-size:1.25rem;text-decoration:none}
.btn-ghost{text-decoration:none;color:var(--color-textMuted)}
.btn-ghost:hover{color:var(--color-text)}
footer{border-top:1px solid var(--color-border);padding:3rem 0;text-align:center;color:var(--color-textMuted);font-size:.875rem}
footer nav{display:flex;flex-wrap:wrap;justify-content:center;gap:1.5rem;margin-bottom:1rem}
`
}

func cssFeatures() string {
	return `
.features{padding:4rem 0 2.5rem;text-align:center}
.features .container{max-width:28rem}
.features-eyebrow{font-size:1rem;font-weight:600;text-transform:uppercase;letter-spacing:.05em;color:var(--color-primary)}
.features-lead{margin:1.25rem auto 0;max-width:65ch;font-size:1.25rem;color:var(--color-textMuted)}
.feature-grid{display:grid;grid-template-columns:1fr;gap:2rem;margin-top:3rem;text-align:left}
.feature-card{padding-top:1.5rem}
.feature-card-body{border-radius:.5rem;background:var(--color-bgCard);padding:0 1.5rem 2rem;height:100%}
.feature-icon{display:inline-flex;align-items:center;justify-content:center;margin-top:-1.5rem;border-radius:.375rem;background:var(--color-badge);color:var(--color-onBadge);padding:.75rem;box-shadow:0 10px 15px -3px rgba(0,0,0,.1)}
.feature-icon svg{width:1.5rem;height:1.5rem}
.feature-title{margin-top:2rem;font-size:1.125rem;font-weight:500}
.feature-desc{margin-top:1.25rem;color:var(--color-textMuted)}
`
}

func cssSections() string {
	return `
.marketing{padding:2.5rem 0}
.marketing-grid{display:grid;grid-template-columns:1fr;gap:2.5rem}
.marketing h2{font-size:1.875rem;font-weight:800;letter-spacing:-.025em}
.marketing-body{margin-top:1rem;font-size:1.125rem;color:var(--color-textMuted)}
.marketing-body p+p{margin-top:1.5rem}
.marketing-body ul{list-style:disc;padding-left:2rem;margin:1rem 0}
.marketing-body strong{font-weight:700}
.marketing-media{display:flex;flex-direction:column;justify-content:center;gap:2.5rem;padding:1rem}
.marketing-media img{width:100%;margin:auto}
.shadowed{border-radius:.75rem;box-shadow:0 20px 25px -5px rgba(0,0,0,.1);outline:1px solid var(--color-ring)}
.connectors{display:flex;flex-direction:row;flex-wrap:wrap;gap:1rem;margin-top:1rem;justify-content:center;align-items:center}
.connectors img{height:2.5rem;width:auto}
.connectors-caption{font-family:var(--font-mono);font-size:.75rem}
`
}

func cssSlideshow() string {
	return `
.slideshow{position:relative;overflow:hidden}
.slideshow-slide{display:none}
.slideshow-slide.active,.slideshow:not([data-mounted]) .slideshow-slide:first-child{display:block}
`
}

func cssAccessibility() string {
	return `
.skip-link{position:absolute;top:-40px;left:0;background:var(--color-primary);color:#fff;padding:.5rem 1rem;z-index:100}
.skip-link:focus{top:0}
.sr-only{position:absolute;width:1px;height:1px;overflow:hidden;clip:rect(0,0,0,0)}
@media(prefers-reduced-motion:reduce){html{scroll-behavior:auto}}
`
}

func cssResponsive() string {
	return fmt.Sprintf(`
@media(min-width:%s){.features .container{max-width:48rem}.feature-grid{grid-template-columns:repeat(2,1fr)}.nav-links{display:flex}}
@media(min-width:%s){
.features .container{max-width:80rem}
.feature-grid.cols-3{grid-template-columns:repeat(3,1fr)}
.feature-grid.cols-4{grid-template-columns:repeat(4,1fr)}
.marketing-grid{grid-template-columns:repeat(var(--cols,2),1fr)}
.marketing-text{grid-column:span var(--text-span,1)}
.marketing-media{grid-column:span var(--media-span,1)}
.marketing-grid.media-first .marketing-media{order:-1}
}
`, Breakpoints["sm"], Breakpoints["lg"])
}

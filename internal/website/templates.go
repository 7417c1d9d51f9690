// Package website provides the data records, document shell and rich-text helpers
// used to build the Windmill marketing homepage. Components live in the components
// subpackage; full pages are composed in landing.
package website

import (
	"fmt"
	"io"
	"strings"
)

// PageConfig defines the configuration for a page including SEO metadata.
type PageConfig struct {
	// Title is the page title (shown in browser tab and search results)
	Title string
	// Description is the meta description for SEO
	Description string
	// URL is the canonical URL of the page
	URL string
	// Keywords are SEO keywords for the page
	Keywords []string
	// OGImage is the Open Graph image URL (for social sharing)
	OGImage string
	// Language is the page language (default: "en")
	Language string
	// ThemeColor is the mobile browser theme color
	ThemeColor string
	// Favicon is the path to the favicon
	Favicon string
}

// Icon is an opaque renderable glyph. Any gomponents node satisfies it.
type Icon interface {
	Render(w io.Writer) error
}

// Format selects how a Description is turned into markup.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Description is text or rich content shown on a feature card.
type Description struct {
	Body   string
	Format Format
}

// PlainText returns a description rendered as escaped text.
func PlainText(s string) Description {
	return Description{Body: s, Format: FormatText}
}

// Markdown returns a description rendered from Markdown.
func Markdown(s string) Description {
	return Description{Body: s, Format: FormatMarkdown}
}

// IsZero reports whether the description carries no visible content.
// Markdown that sanitizes down to nothing counts as empty.
func (d Description) IsZero() bool {
	if strings.TrimSpace(d.Body) == "" {
		return true
	}
	if d.Format != FormatMarkdown {
		return false
	}
	out, err := RenderMarkdown(d.Body)
	if err != nil {
		return false
	}
	return blankHTML(out)
}

// Feature is one immutable marketing feature entry. Build it with NewFeature.
type Feature struct {
	name        string
	description Description
	icon        Icon
}

// NewFeature validates the required fields and returns a Feature.
// The icon may be nil.
func NewFeature(name string, description Description, icon Icon) (Feature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Feature{}, &MissingFieldError{Index: -1, Field: "name"}
	}
	if description.IsZero() {
		return Feature{}, &MissingFieldError{Index: -1, Name: name, Field: "description"}
	}
	switch description.Format {
	case "":
		description.Format = FormatText
	case FormatText, FormatMarkdown:
	default:
		return Feature{}, fmt.Errorf("feature %q: %w %q", name, ErrUnknownFormat, description.Format)
	}
	return Feature{name: name, description: description, icon: icon}, nil
}

// MustFeature is like NewFeature but panics on invalid input.
// It is meant for hard-coded content.
func MustFeature(name string, description Description, icon Icon) Feature {
	f, err := NewFeature(name, description, icon)
	if err != nil {
		panic(err)
	}
	return f
}

// Name is the display label and identity key of the feature.
func (f Feature) Name() string { return f.name }

// Description returns the feature description.
func (f Feature) Description() Description { return f.description }

// Icon returns the glyph handle, possibly nil.
func (f Feature) Icon() Icon { return f.icon }

// Image references a picture served from the static directory.
type Image struct {
	// Src is the image URL
	Src string
	// Alt is the alternative text
	Alt string
	// Class is an optional extra CSS class
	Class string
}

// NavLink represents a navigation link.
type NavLink struct {
	// Label is the link text
	Label string
	// URL is the link destination
	URL string
	// External indicates if the link opens in a new tab
	External bool
}

// FooterConfig configures the footer section.
type FooterConfig struct {
	GitHubURL string
	DocsURL   string
	License   string
	Copyright string
	Links     []NavLink
}

// DefaultPageConfig returns a PageConfig with sensible defaults.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Title:       "Windmill",
		Description: "Windmill is a single source of truth to develop, share, and run all your automations and internal apps.",
		Keywords:    []string{"scripts", "automation", "internal tools", "workflows", "python"},
		Language:    "en",
		ThemeColor:  Colors["primary"],
	}
}

package website

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// Configured once and safe for concurrent use.
var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)
	sanitizer = bluemonday.UGCPolicy()
	textOnly  = bluemonday.StrictPolicy()
)

// RenderMarkdown converts Markdown to sanitized HTML.
// Raw HTML in the source is dropped.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// blankHTML reports whether sanitized HTML shows neither text nor an image.
func blankHTML(out string) bool {
	if strings.Contains(out, "<img") {
		return false
	}
	return strings.TrimSpace(html.UnescapeString(textOnly.Sanitize(out))) == ""
}

// Node returns the description as a node. Text is escaped; Markdown is
// converted and sanitized.
func (d Description) Node() (g.Node, error) {
	switch d.Format {
	case FormatMarkdown:
		out, err := RenderMarkdown(d.Body)
		if err != nil {
			return nil, err
		}
		return g.Raw(out), nil
	case FormatText, "":
		return g.Text(d.Body), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, d.Format)
	}
}

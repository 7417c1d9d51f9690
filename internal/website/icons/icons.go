// Package icons is the glyph provider for feature cards. Glyphs are outline
// strokes on a 24x24 grid rendered as inline SVG.
package icons

import (
	"errors"
	"fmt"
	"sort"

	g "maragu.dev/gomponents"

	"github.com/windmill-labs/windmill-homepage/internal/website"
)

// ErrUnknownIcon is returned by Lookup for names outside the set.
var ErrUnknownIcon = errors.New("unknown icon")

// Glyph names.
const (
	LightningBolt    = "lightning-bolt"
	Clock            = "clock"
	Home             = "home"
	LockClosed       = "lock-closed"
	ShieldCheck      = "shield-check"
	ExternalLink     = "external-link"
	SwitchHorizontal = "switch-horizontal"
	Eye              = "eye"
)

var paths = map[string][]string{
	LightningBolt: {"M13 10V3L4 14h7v7l9-11h-7z"},
	Clock:         {"M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z"},
	Home: {
		"M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3m-6 0a1 1 0 001-1v-4a1 1 0 011-1h2a1 1 0 011 1v4a1 1 0 001 1m-6 0h6",
	},
	LockClosed: {
		"M12 15v2m-6 4h12a2 2 0 002-2v-6a2 2 0 00-2-2H6a2 2 0 00-2 2v6a2 2 0 002 2zm10-10V7a4 4 0 00-8 0v4h8z",
	},
	ShieldCheck: {
		"M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.040A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z",
	},
	ExternalLink:     {"M10 6H6a2 2 0 00-2 2v10a2 2 0 002 2h10a2 2 0 002-2v-4M14 4h6m0 0v6m0-6L10 14"},
	SwitchHorizontal: {"M8 7h12m0 0l-4-4m4 4l-4 4m0 6H4m0 0l4 4m-4-4l4-4"},
	Eye: {
		"M15 12a3 3 0 11-6 0 3 3 0 016 0z",
		"M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z",
	},
}

// Lookup returns the glyph registered under name.
func Lookup(name string) (website.Icon, error) {
	d, ok := paths[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownIcon, name, Names())
	}
	return outline(d), nil
}

// Must is like Lookup but panics for unknown names.
func Must(name string) website.Icon {
	icon, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return icon
}

// Names returns the registered glyph names in sorted order.
func Names() []string {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func outline(d []string) g.Node {
	strokes := make(g.Group, 0, len(d))
	for _, p := range d {
		strokes = append(strokes, g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", p),
		))
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke", "currentColor"),
		g.Attr("aria-hidden", "true"),
		strokes,
	)
}

package components

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/windmill-labs/windmill-homepage/internal/website"
)

// Widget is a pre-built client-side widget placed on the page. Mount renders
// the container and starts the widget; Unmount renders the teardown hook.
// The page treats both as opaque markup.
type Widget interface {
	Mount(id string) g.Node
	Unmount(id string) g.Node
}

// Slideshow cycles through screenshots.
type Slideshow struct {
	Slides   []website.Image
	Interval time.Duration
}

var _ Widget = Slideshow{}

// Mount renders the slides and starts rotation. Without JavaScript the first
// slide stays visible.
func (s Slideshow) Mount(id string) g.Node {
	interval := s.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	slides := make(g.Group, 0, len(s.Slides))
	for i, img := range s.Slides {
		slides = append(slides, h.Div(h.Class("slideshow-slide"),
			g.Attr("aria-roledescription", "slide"),
			g.Attr("aria-label", fmt.Sprintf("%d of %d", i+1, len(s.Slides))),
			h.Img(h.Class("shadowed"), h.Src(img.Src), h.Alt(img.Alt), g.Attr("loading", "lazy")),
		))
	}

	return g.Group{
		h.Div(h.ID(id), h.Class("slideshow"),
			g.Attr("data-widget", "slideshow"),
			g.Attr("data-interval", strconv.FormatInt(interval.Milliseconds(), 10)),
			g.Attr("aria-roledescription", "carousel"),
			slides,
		),
		h.Script(g.Rawf(slideshowMount, strconv.Quote(id))),
	}
}

// Unmount renders the hook that stops rotation when the page is hidden.
func (s Slideshow) Unmount(id string) g.Node {
	return h.Script(g.Rawf(slideshowUnmount, strconv.Quote(id)))
}

const slideshowMount = `(function(id){var el=document.getElementById(id);if(!el)return;var s=el.querySelectorAll('.slideshow-slide');if(!s.length)return;var i=0;s[0].classList.add('active');el.dataset.mounted='1';el._timer=setInterval(function(){s[i].classList.remove('active');i=(i+1)%%s.length;s[i].classList.add('active')},+el.dataset.interval)})(%s);`

const slideshowUnmount = `window.addEventListener('pagehide',function(){var el=document.getElementById(%s);if(el&&el._timer){clearInterval(el._timer);delete el.dataset.mounted}});`

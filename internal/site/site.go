// Package site turns a content catalog into a ready-to-serve homepage snapshot.
package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	g "maragu.dev/gomponents"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/internal/website/landing"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
	"github.com/windmill-labs/windmill-homepage/pkg/metrics"
	"github.com/windmill-labs/windmill-homepage/pkg/pool"
	"github.com/windmill-labs/windmill-homepage/pkg/tracing"
)

// Snapshot is one rendered version of the homepage.
type Snapshot struct {
	Catalog  *content.Catalog
	HTML     []byte
	ETag     string
	Features int
	BuiltAt  time.Time
}

// Site renders snapshots. The zero value renders with DefaultPageConfig and
// records no metrics.
type Site struct {
	Page    website.PageConfig
	Metrics *metrics.Metrics
	// Scripts are appended to every rendered page
	Scripts []g.Node

	now func() time.Time
}

// New returns a Site for the given page settings.
func New(page website.PageConfig, m *metrics.Metrics) *Site {
	return &Site{Page: page, Metrics: m}
}

// Build renders cat into a snapshot. The catalog copy overrides the default
// eyebrow and lead when set.
func (s *Site) Build(ctx context.Context, cat *content.Catalog) (snap *Snapshot, err error) {
	if cat == nil {
		return nil, errors.New("site: nil catalog")
	}
	ctx, span := tracing.StartSpan(ctx, "site.Build",
		attribute.Int("features.count", len(cat.Features)),
	)
	start := time.Now()
	defer func() {
		pageBytes, count := 0, 0
		if snap != nil {
			pageBytes, count = len(snap.HTML), snap.Features
		}
		if s.Metrics != nil {
			s.Metrics.RecordRender(Result(err), time.Since(start), pageBytes, count)
		}
		tracing.End(span, err)
	}()

	features, err := cat.BuildFeatures()
	if err != nil {
		return nil, err
	}

	opts := landing.DefaultOptions(features)
	if cat.Eyebrow != "" {
		opts.Eyebrow = cat.Eyebrow
	}
	if cat.Lead != "" {
		opts.Lead = cat.Lead
	}
	opts.Scripts = s.Scripts

	page := s.Page
	if page.Title == "" {
		page = website.DefaultPageConfig()
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)
	if err := landing.RenderHomepage(buf, page, opts); err != nil {
		return nil, err
	}

	html := bytes.Clone(buf.Bytes())
	sum := sha256.Sum256(html)
	snap = &Snapshot{
		Catalog:  cat,
		HTML:     html,
		ETag:     `"` + hex.EncodeToString(sum[:8]) + `"`,
		Features: len(features),
		BuiltAt:  s.clock(),
	}

	logging.L(ctx).Debug("homepage rendered",
		logging.Int("features", snap.Features),
		logging.Int("bytes", len(snap.HTML)),
		logging.String("etag", snap.ETag),
	)
	return snap, nil
}

// PageConfig returns the default page settings served from baseURL.
func PageConfig(baseURL string) website.PageConfig {
	cfg := website.DefaultPageConfig()
	if baseURL != "" {
		cfg.URL = baseURL
	}
	return cfg
}

func (s *Site) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Result classifies a render error for metrics labels.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, website.ErrDuplicateKey):
		return "duplicate_key"
	case errors.Is(err, website.ErrMissingField):
		return "missing_field"
	case errors.Is(err, website.ErrUnknownFormat):
		return "unknown_format"
	default:
		return "error"
	}
}

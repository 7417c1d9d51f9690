// Package export writes the rendered homepage to disk for static hosting.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/site"
)

// WriteHomepage renders cat and replaces path with the result. The file is
// swapped in one step: readers see the old page or the new one, and a failed
// render leaves the old file untouched.
func WriteHomepage(ctx context.Context, path string, s *site.Site, cat *content.Catalog) (*site.Snapshot, error) {
	snap, err := s.Build(ctx, cat)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(snap.HTML)); err != nil {
		return nil, fmt.Errorf("export: write %s: %w", path, err)
	}
	return snap, nil
}

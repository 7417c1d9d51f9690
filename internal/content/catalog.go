// Package content loads the feature catalog shown on the homepage. The catalog
// is plain configuration: it is read once, turned into validated features and
// handed to the renderer.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/internal/website/components"
	"github.com/windmill-labs/windmill-homepage/internal/website/icons"
)

//go:embed default.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned when a catalog file has no content at all.
var ErrEmptyCatalog = errors.New("content: empty catalog")

// Catalog is the feature section content.
type Catalog struct {
	Eyebrow  string  `yaml:"eyebrow" json:"eyebrow" msgpack:"eyebrow"`
	Lead     string  `yaml:"lead" json:"lead" msgpack:"lead"`
	Features []Entry `yaml:"features" json:"features" msgpack:"features"`
}

// Entry is one feature as written in the catalog file.
type Entry struct {
	Name        string `yaml:"name" json:"name" msgpack:"name"`
	Description string `yaml:"description" json:"description" msgpack:"description"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty" msgpack:"format,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty" msgpack:"icon,omitempty"`
}

// Parse decodes a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyCatalog
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("content: decode catalog: %w", err)
	}
	return &c, nil
}

// Load reads the catalog at path. An empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("content: built-in catalog: %v", err))
	}
	return c
}

// BuildFeatures resolves icons and builds validated features in catalog order.
// An entry without an icon gets no glyph.
func (c *Catalog) BuildFeatures() ([]website.Feature, error) {
	features := make([]website.Feature, 0, len(c.Features))
	for i, e := range c.Features {
		var icon website.Icon
		if e.Icon != "" {
			var err error
			if icon, err = icons.Lookup(e.Icon); err != nil {
				return nil, fmt.Errorf("content: features[%d]: %w", i, err)
			}
		}

		f, err := website.NewFeature(e.Name, website.Description{
			Body:   e.Description,
			Format: website.Format(e.Format),
		}, icon)
		if err != nil {
			var mf *website.MissingFieldError
			if errors.As(err, &mf) {
				mf.Index = i
				return nil, fmt.Errorf("content: %w", mf)
			}
			return nil, fmt.Errorf("content: features[%d]: %w", i, err)
		}
		features = append(features, f)
	}
	return features, nil
}

// Validate runs a dry render pass over the catalog.
func (c *Catalog) Validate() error {
	features, err := c.BuildFeatures()
	if err != nil {
		return err
	}
	if _, err := components.BuildCards(features); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	return nil
}

package components_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	g "maragu.dev/gomponents"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/internal/website/components"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func keys(cards []components.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Key
	}
	return out
}

func names(features []website.Feature) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = f.Name()
	}
	return out
}

func defaultFeatures(t *testing.T) []website.Feature {
	t.Helper()
	features, err := content.Default().BuildFeatures()
	if err != nil {
		t.Fatalf("default features: %v", err)
	}
	return features
}

func TestBuildCards_SingleFeature(t *testing.T) {
	icon := g.Raw(`<svg id="i1"></svg>`)
	f := website.MustFeature("A", website.PlainText("d1"), icon)

	cards, err := components.BuildCards([]website.Feature{f})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}

	html := render(t, cards[0])
	for _, want := range []string{
		`<article class="feature-card" data-key="A">`,
		`<svg id="i1"></svg>`,
		`<h3 class="feature-title">A</h3>`,
		`<div class="feature-desc">d1</div>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("card missing %q\n%s", want, html)
		}
	}
}

func TestBuildCards_Empty(t *testing.T) {
	cards, err := components.BuildCards(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Fatalf("expected empty card list, got %#v", cards)
	}

	section, err := components.RenderFeatures(components.FeaturesOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html := render(t, section); strings.Contains(html, "<article") {
		t.Errorf("expected no cards, got %s", html)
	}
}

func TestBuildCards_DuplicateName(t *testing.T) {
	features := []website.Feature{
		website.MustFeature("X", website.PlainText("first"), nil),
		website.MustFeature("Y", website.PlainText("other"), nil),
		website.MustFeature("X", website.PlainText("second"), nil),
	}

	cards, err := components.BuildCards(features)
	if cards != nil {
		t.Errorf("expected no partial output, got %d cards", len(cards))
	}
	if !errors.Is(err, website.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	var dup *website.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateKeyError, got %T", err)
	}
	want := website.DuplicateKeyError{Name: "X", First: 0, Second: 2}
	if diff := cmp.Diff(want, *dup); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}

	node, err := components.RenderFeatures(components.FeaturesOptions{Features: features})
	if node != nil || err == nil {
		t.Errorf("expected nil node and error, got %v, %v", node, err)
	}
}

func TestBuildCards_MissingField(t *testing.T) {
	features := []website.Feature{
		website.MustFeature("A", website.PlainText("d"), nil),
		{},
	}

	_, err := components.BuildCards(features)

	var missing *website.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingFieldError, got %v", err)
	}
	if missing.Index != 1 || missing.Field != "name" {
		t.Errorf("unexpected error fields: %+v", missing)
	}
	if !errors.Is(err, website.ErrMissingField) {
		t.Error("expected errors.Is ErrMissingField")
	}
}

func TestBuildCards_DefaultCatalogKeepsOrder(t *testing.T) {
	features := defaultFeatures(t)
	if len(features) != 9 {
		t.Fatalf("expected 9 default features, got %d", len(features))
	}

	cards, err := components.BuildCards(features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(names(features), keys(cards)); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
	if cards[0].Key != "UI? Done" || cards[8].Key != "Audit logs" {
		t.Errorf("unexpected first/last keys: %q, %q", cards[0].Key, cards[8].Key)
	}
}

func TestRenderFeatures_Idempotent(t *testing.T) {
	opts := components.FeaturesOptions{Eyebrow: "Features", Features: defaultFeatures(t)}

	first, err := components.RenderFeatures(opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := components.RenderFeatures(opts)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(render(t, first), render(t, second)); diff != "" {
		t.Errorf("renders differ:\n%s", diff)
	}
}

func TestBuildCards_AppendKeepsPriorCards(t *testing.T) {
	features := defaultFeatures(t)
	before, err := components.BuildCards(features[:5])
	if err != nil {
		t.Fatal(err)
	}
	after, err := components.BuildCards(features[:6])
	if err != nil {
		t.Fatal(err)
	}

	if len(after) != len(before)+1 {
		t.Fatalf("expected %d cards, got %d", len(before)+1, len(after))
	}
	if diff := cmp.Diff(keys(before), keys(after[:len(before)])); diff != "" {
		t.Errorf("prior keys changed (-before +after):\n%s", diff)
	}
	for i := range before {
		if render(t, before[i]) != render(t, after[i]) {
			t.Errorf("card %d changed after append", i)
		}
	}
}

func TestBuildCards_Descriptions(t *testing.T) {
	features := []website.Feature{
		website.MustFeature("Text", website.PlainText("<script>alert(1)</script>"), nil),
		website.MustFeature("Rich", website.Markdown("**bold** <script>alert(1)</script>"), nil),
	}

	cards, err := components.BuildCards(features)
	if err != nil {
		t.Fatal(err)
	}

	text := render(t, cards[0])
	if strings.Contains(text, "<script>") || !strings.Contains(text, "&lt;script&gt;") {
		t.Errorf("plain text not escaped: %s", text)
	}

	rich := render(t, cards[1])
	if !strings.Contains(rich, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %s", rich)
	}
	if strings.Contains(rich, "<script>") {
		t.Errorf("markdown not sanitized: %s", rich)
	}
}

func TestBuildCards_NilIcon(t *testing.T) {
	cards, err := components.BuildCards([]website.Feature{
		website.MustFeature("A", website.PlainText("d"), nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	if html := render(t, cards[0]); !strings.Contains(html, `<span class="feature-icon" aria-hidden="true"></span>`) {
		t.Errorf("expected empty icon badge: %s", html)
	}
}

func TestRenderFeatures_Columns(t *testing.T) {
	tests := []struct {
		columns int
		want    string
	}{
		{0, "feature-grid cols-3"},
		{2, "feature-grid cols-2"},
		{4, "feature-grid cols-4"},
		{7, "feature-grid cols-3"},
	}

	for _, tt := range tests {
		node, err := components.RenderFeatures(components.FeaturesOptions{Columns: tt.columns})
		if err != nil {
			t.Fatal(err)
		}
		if html := render(t, node); !strings.Contains(html, `class="`+tt.want+`"`) {
			t.Errorf("columns %d: expected %q in %s", tt.columns, tt.want, html)
		}
	}
}

func TestRenderFeatures_Headings(t *testing.T) {
	node, err := components.RenderFeatures(components.FeaturesOptions{
		Eyebrow: "Everything",
		Lead:    "One place",
	})
	if err != nil {
		t.Fatal(err)
	}

	html := render(t, node)
	for _, want := range []string{
		`aria-labelledby="features-title"`,
		`<h2 id="features-title" class="features-eyebrow">Everything</h2>`,
		`<p class="features-lead">One place</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %s", want, html)
		}
	}
}

package digest

import (
	"reflect"
	"testing"
)

func TestEnsureList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"nil", nil, nil},
		{"list unchanged", []any{"a", "b"}, []any{"a", "b"}},
		{"scalar wrapped", "solo", []any{"solo"}},
		{"object wrapped", map[string]any{"k": "v"}, []any{map[string]any{"k": "v"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EnsureList(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	doc := Normalize(map[string]any{}, Options{})

	if doc.Title != "X Feed Digest" {
		t.Errorf("Title = %q, want default", doc.Title)
	}

	if doc.PageTitle != "X Feed Digest" {
		t.Errorf("PageTitle = %q, want bare title", doc.PageTitle)
	}

	if doc.HeaderTitle != "X Feed Digest" {
		t.Errorf("HeaderTitle = %q, want title", doc.HeaderTitle)
	}

	if doc.SummaryTitle != "High Signal Summary" {
		t.Errorf("SummaryTitle = %q, want default", doc.SummaryTitle)
	}

	if doc.Lang != "en" {
		t.Errorf("Lang = %q, want en", doc.Lang)
	}
}

func TestNormalize_PageTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "title and date joined with em dash",
			raw:  map[string]any{"title": "T", "date": "Friday"},
			want: "T — Friday",
		},
		{
			name: "explicit page_title wins",
			raw:  map[string]any{"title": "T", "date": "Friday", "page_title": "Custom"},
			want: "Custom",
		},
		{
			name: "empty page_title falls back to computed",
			raw:  map[string]any{"title": "T", "page_title": ""},
			want: "T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if doc := Normalize(tt.raw, Options{}); doc.PageTitle != tt.want {
				t.Errorf("PageTitle = %q, want %q", doc.PageTitle, tt.want)
			}
		})
	}
}

func TestNormalize_DateOverride(t *testing.T) {
	doc := Normalize(map[string]any{"title": "T", "date": "old"}, Options{Date: "new"})

	if doc.Date != "new" {
		t.Errorf("Date = %q, want override", doc.Date)
	}

	if doc.PageTitle != "T — new" {
		t.Errorf("PageTitle = %q, want title with overridden date", doc.PageTitle)
	}
}

func TestNormalize_Summary(t *testing.T) {
	raw := map[string]any{
		"summary": []any{
			"plain line",
			map[string]any{"html": "<b>raw</b>"},
			map[string]any{"text": "typed"},
			map[string]any{"other": "ignored"},
		},
	}

	doc := Normalize(raw, Options{})

	want := []Content{
		{Kind: PlainText, Value: "plain line"},
		{Kind: RawHTML, Value: "<b>raw</b>"},
		{Kind: PlainText, Value: "typed"},
		{Kind: PlainText, Value: ""},
	}

	if !reflect.DeepEqual(doc.Summary, want) {
		t.Errorf("Summary = %v, want %v", doc.Summary, want)
	}
}

func TestNormalize_SummaryScalarCoerced(t *testing.T) {
	doc := Normalize(map[string]any{"summary": "just one"}, Options{})

	if len(doc.Summary) != 1 || doc.Summary[0].Value != "just one" {
		t.Errorf("Summary = %v, want single coerced entry", doc.Summary)
	}
}

func TestNormalizeItem_Tags(t *testing.T) {
	tests := []struct {
		name      string
		item      map[string]any
		wantClass string
		wantLabel string
	}{
		{
			name:      "tag lower-cased and sanitized, label title-cased",
			item:      map[string]any{"tag": "UPDATE"},
			wantClass: "update",
			wantLabel: "Update",
		},
		{
			name:      "explicit label wins",
			item:      map[string]any{"tag": "update", "tag_label": "Fresh"},
			wantClass: "update",
			wantLabel: "Fresh",
		},
		{
			name:      "unsafe characters stripped from class",
			item:      map[string]any{"tag": "AI/Tech!"},
			wantClass: "aitech",
			wantLabel: "Aitech",
		},
		{
			name:      "empty tag means no badge",
			item:      map[string]any{"tag": "", "tag_label": "Ignored"},
			wantClass: "",
			wantLabel: "Ignored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"sections": []any{map[string]any{"items": []any{tt.item}}}}
			item := Normalize(raw, Options{}).Sections[0].Items[0]

			if item.TagClass != tt.wantClass {
				t.Errorf("TagClass = %q, want %q", item.TagClass, tt.wantClass)
			}

			if item.TagLabel != tt.wantLabel {
				t.Errorf("TagLabel = %q, want %q", item.TagLabel, tt.wantLabel)
			}
		})
	}
}

func TestNormalizeItem_BodyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
		want Content
	}{
		{
			name: "body_html wins over body",
			item: map[string]any{"body_html": "<em>raw</em>", "body": "plain", "body_md": "*md*"},
			want: Content{Kind: RawHTML, Value: "<em>raw</em>"},
		},
		{
			name: "body_md wins over body",
			item: map[string]any{"body_md": "*md*", "body": "plain"},
			want: Content{Kind: Markdown, Value: "*md*"},
		},
		{
			name: "plain body",
			item: map[string]any{"body": "plain"},
			want: Content{Kind: PlainText, Value: "plain"},
		},
		{
			name: "null body_html falls through",
			item: map[string]any{"body_html": nil, "body": "plain"},
			want: Content{Kind: PlainText, Value: "plain"},
		},
		{
			name: "no body at all",
			item: map[string]any{},
			want: Content{Kind: PlainText, Value: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"sections": []any{map[string]any{"items": []any{tt.item}}}}
			item := Normalize(raw, Options{}).Sections[0].Items[0]

			if item.Body != tt.want {
				t.Errorf("Body = %+v, want %+v", item.Body, tt.want)
			}
		})
	}
}

func TestNormalizeItem_Links(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
		opts Options
		want []Link
	}{
		{
			name: "single url synthesizes default label",
			item: map[string]any{"url": "https://x.com/1"},
			want: []Link{{Label: "View Tweet", URL: "https://x.com/1"}},
		},
		{
			name: "link_label overrides default",
			item: map[string]any{"url": "https://x.com/1", "link_label": "Open"},
			want: []Link{{Label: "Open", URL: "https://x.com/1"}},
		},
		{
			name: "configured default label",
			item: map[string]any{"url": "https://x.com/1"},
			opts: Options{LinkLabel: "View Post"},
			want: []Link{{Label: "View Post", URL: "https://x.com/1"}},
		},
		{
			name: "explicit links preferred over url",
			item: map[string]any{
				"url":   "https://x.com/ignored",
				"links": []any{map[string]any{"label": "A", "url": "https://x.com/a"}},
			},
			want: []Link{{Label: "A", URL: "https://x.com/a"}},
		},
		{
			name: "links without url dropped, non-map skipped",
			item: map[string]any{
				"links": []any{
					map[string]any{"label": "no url"},
					"not a map",
					map[string]any{"label": "B", "url": "https://x.com/b"},
				},
			},
			want: []Link{{Label: "B", URL: "https://x.com/b"}},
		},
		{
			name: "no url and no links",
			item: map[string]any{"title": "quiet"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"sections": []any{map[string]any{"items": []any{tt.item}}}}
			item := Normalize(raw, tt.opts).Sections[0].Items[0]

			if !reflect.DeepEqual(item.Links, tt.want) {
				t.Errorf("Links = %v, want %v", item.Links, tt.want)
			}
		})
	}
}

func TestNormalize_SkipsNonMappingSectionsAndItems(t *testing.T) {
	raw := map[string]any{
		"sections": []any{
			"not a section",
			map[string]any{"title": "S", "items": []any{"not an item", 42}},
		},
	}

	doc := Normalize(raw, Options{})

	if len(doc.Sections) != 1 {
		t.Fatalf("Sections = %d, want 1", len(doc.Sections))
	}

	if len(doc.Sections[0].Items) != 0 {
		t.Errorf("Items = %d, want all skipped", len(doc.Sections[0].Items))
	}
}

func TestPrettyDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2026-02-06", "Friday, February 6, 2026"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		if got := PrettyDate(tt.in); got != tt.want {
			t.Errorf("PrettyDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

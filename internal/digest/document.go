// Package digest defines the document model for a curated digest and the
// normalization step that turns loosely-typed JSON/YAML input into it.
package digest

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wxyz-claw/clawd-pages/internal/platform/htmlutils"
)

// Defaults applied during normalization when the source omits a field.
const (
	DefaultTitle        = "X Feed Digest"
	DefaultSummaryTitle = "High Signal Summary"
	DefaultLinkLabel    = "View Tweet"
)

// ContentKind tags the escaping contract of a content value.
type ContentKind int

const (
	// PlainText content must be HTML-escaped before insertion.
	PlainText ContentKind = iota
	// RawHTML content is trusted and inserted verbatim.
	RawHTML
	// Markdown content is rendered to HTML before insertion.
	Markdown
)

// Content is a tagged choice between plain text, trusted raw HTML and
// markdown. The tag makes the raw-vs-escaped duality explicit instead of a
// "which key is present" convention in the source document.
type Content struct {
	Kind  ContentKind
	Value string
}

// Plain wraps a scalar as escapable plain text.
func Plain(v any) Content {
	return Content{Kind: PlainText, Value: htmlutils.Stringify(v)}
}

// Raw wraps a string as trusted raw HTML.
func Raw(v any) Content {
	return Content{Kind: RawHTML, Value: htmlutils.Stringify(v)}
}

// Document is a normalized digest ready for rendering. All derived fields
// (page title, header title, sanitized lang) are resolved here so rendering
// stays a pure string transform.
type Document struct {
	Title        string
	Date         string
	PageTitle    string
	HeaderTitle  string
	SummaryTitle string
	Lang         string
	Summary      []Content
	Sections     []Section
}

// Section groups items under an emoji-decorated heading. Sections that end
// up with zero renderable items produce no output.
type Section struct {
	Emoji string
	Title string
	Items []Item
}

// Item is one entry within a section, e.g. a single highlighted post.
type Item struct {
	// TagClass is already sanitized for direct use as a CSS class.
	// Empty means no badge is rendered.
	TagClass string
	TagLabel string
	Title    string
	Body     Content
	Links    []Link
}

// Link is a labeled URL. Entries with empty URLs are dropped during
// normalization.
type Link struct {
	Label string
	URL   string
}

// Options tune normalization.
type Options struct {
	// LinkLabel replaces the default label for synthesized links.
	LinkLabel string
	// Date overrides the document date when non-empty.
	Date string
}

var titleCaser = cases.Title(language.English)

// EnsureList coerces a scalar-or-list field into a list: nil becomes empty,
// lists pass through, anything else becomes a one-element list.
func EnsureList(v any) []any {
	if v == nil {
		return nil
	}

	if list, ok := v.([]any); ok {
		return list
	}

	return []any{v}
}

// Normalize applies defaults, coercions and sanitizers to a decoded
// document. Malformed list entries (non-mapping sections, items and links,
// links without URLs) are dropped silently.
func Normalize(raw map[string]any, opts Options) *Document {
	if opts.LinkLabel == "" {
		opts.LinkLabel = DefaultLinkLabel
	}

	title := getString(raw, "title", DefaultTitle)

	date := getString(raw, "date", "")
	if opts.Date != "" {
		date = opts.Date
	}

	doc := &Document{
		Title:        title,
		Date:         date,
		PageTitle:    resolvePageTitle(raw, title, date),
		HeaderTitle:  getString(raw, "header_title", title),
		SummaryTitle: getString(raw, "summary_title", DefaultSummaryTitle),
		Lang:         htmlutils.SanitizeLang(getString(raw, "lang", htmlutils.DefaultLang)),
		Summary:      normalizeSummary(raw["summary"]),
	}

	for _, entry := range EnsureList(raw["sections"]) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		doc.Sections = append(doc.Sections, normalizeSection(m, opts))
	}

	return doc
}

// resolvePageTitle prefers an explicit non-empty page_title, then
// "title — date" when a date exists, then the bare title.
func resolvePageTitle(raw map[string]any, title, date string) string {
	if explicit := getString(raw, "page_title", ""); explicit != "" {
		return explicit
	}

	if date != "" {
		return title + " — " + date
	}

	return title
}

func normalizeSummary(v any) []Content {
	var entries []Content

	for _, entry := range EnsureList(v) {
		if m, ok := entry.(map[string]any); ok {
			if h, present := m["html"]; present {
				entries = append(entries, Raw(h))
			} else {
				entries = append(entries, Plain(valueOr(m, "text", "")))
			}

			continue
		}

		entries = append(entries, Plain(entry))
	}

	return entries
}

func normalizeSection(m map[string]any, opts Options) Section {
	section := Section{
		Emoji: getString(m, "emoji", ""),
		Title: getString(m, "title", ""),
	}

	for _, entry := range EnsureList(m["items"]) {
		im, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		section.Items = append(section.Items, normalizeItem(im, opts))
	}

	return section
}

func normalizeItem(m map[string]any, opts Options) Item {
	item := Item{
		TagClass: htmlutils.SanitizeClass(strings.ToLower(getString(m, "tag", ""))),
		TagLabel: getString(m, "tag_label", ""),
		Title:    getString(m, "title", ""),
		Body:     normalizeBody(m),
		Links:    normalizeLinks(m, opts),
	}

	if item.TagClass != "" && item.TagLabel == "" {
		item.TagLabel = titleCaser.String(item.TagClass)
	}

	return item
}

// normalizeBody resolves the body precedence: raw body_html wins, then
// markdown body_md, then plain body. An explicit null counts as absent.
func normalizeBody(m map[string]any) Content {
	if v, ok := m["body_html"]; ok && v != nil {
		return Raw(v)
	}

	if v, ok := m["body_md"]; ok && v != nil {
		return Content{Kind: Markdown, Value: htmlutils.Stringify(v)}
	}

	return Plain(valueOr(m, "body", ""))
}

func normalizeLinks(m map[string]any, opts Options) []Link {
	var links []Link

	entries := EnsureList(m["links"])
	if len(entries) == 0 {
		if url := getString(m, "url", ""); url != "" {
			return []Link{{Label: getString(m, "link_label", opts.LinkLabel), URL: url}}
		}

		return nil
	}

	for _, entry := range entries {
		lm, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		url := getString(lm, "url", "")
		if url == "" {
			continue
		}

		links = append(links, Link{Label: getString(lm, "label", opts.LinkLabel), URL: url})
	}

	return links
}

// getString fetches a key's scalar as a string, returning def when the key
// is absent. An explicit null stringifies to "".
func getString(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok {
		return def
	}

	return htmlutils.Stringify(v)
}

func valueOr(m map[string]any, key string, def any) any {
	if v, ok := m[key]; ok {
		return v
	}

	return def
}

// Package render turns a normalized digest document into a static HTML
// page: fragment renderers for the summary, sections and items, plus a
// template compositor with strict ${name} placeholder substitution.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/wxyz-claw/clawd-pages/internal/digest"
	"github.com/wxyz-claw/clawd-pages/internal/platform/htmlutils"
)

// Placeholder names supplied by the compositor. A template may use any
// subset of them; anything else is a template error.
const (
	PlaceholderPageTitle    = "page_title"
	PlaceholderHeaderTitle  = "header_title"
	PlaceholderDateHTML     = "date_html"
	PlaceholderSummaryHTML  = "summary_html"
	PlaceholderSectionsHTML = "sections_html"
	PlaceholderLang         = "lang"
)

// Options tune rendering behavior.
type Options struct {
	// SanitizeRawHTML runs trusted-by-default raw HTML fields through a
	// UGC policy before insertion.
	SanitizeRawHTML bool
}

// Renderer is a stateless document-to-HTML transform. Safe for reuse
// across documents.
type Renderer struct {
	sanitize bool
	markdown goldmark.Markdown
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	return &Renderer{
		sanitize: opts.SanitizeRawHTML,
		markdown: goldmark.New(),
	}
}

// Render composes the final page: computes every placeholder value from the
// document and substitutes them into the template text.
func (r *Renderer) Render(doc *digest.Document, template string) (string, error) {
	summaryHTML, err := r.renderSummary(doc)
	if err != nil {
		return "", err
	}

	sectionsHTML, err := r.renderSections(doc.Sections)
	if err != nil {
		return "", err
	}

	dateHTML := ""
	if doc.Date != "" {
		dateHTML = `<div class="date">` + htmlutils.EscapeText(doc.Date) + `</div>`
	}

	values := map[string]string{
		PlaceholderPageTitle:    htmlutils.EscapeText(doc.PageTitle),
		PlaceholderHeaderTitle:  htmlutils.EscapeText(doc.HeaderTitle),
		PlaceholderDateHTML:     dateHTML,
		PlaceholderSummaryHTML:  summaryHTML,
		PlaceholderSectionsHTML: sectionsHTML,
		PlaceholderLang:         doc.Lang,
	}

	return expand(template, values)
}

// content resolves a Content value into HTML text per its escaping tag.
func (r *Renderer) content(c digest.Content) (string, error) {
	switch c.Kind {
	case digest.RawHTML:
		return r.rawHTML(c.Value), nil
	case digest.Markdown:
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(c.Value), &buf); err != nil {
			return "", fmt.Errorf("render markdown body: %w", err)
		}

		return r.rawHTML(buf.String()), nil
	default:
		return htmlutils.EscapeText(c.Value), nil
	}
}

func (r *Renderer) rawHTML(fragment string) string {
	if r.sanitize {
		return htmlutils.SanitizeUntrusted(fragment)
	}

	return fragment
}

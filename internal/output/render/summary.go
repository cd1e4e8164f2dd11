package render

import (
	"strings"

	"github.com/wxyz-claw/clawd-pages/internal/digest"
	"github.com/wxyz-claw/clawd-pages/internal/platform/htmlutils"
)

// renderSummary builds the titled summary box. An empty summary produces an
// empty string so the page carries no leftover markup.
func (r *Renderer) renderSummary(doc *digest.Document) (string, error) {
	if len(doc.Summary) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(doc.Summary))

	for _, entry := range doc.Summary {
		content, err := r.content(entry)
		if err != nil {
			return "", err
		}

		lines = append(lines, "      <li>"+content+"</li>")
	}

	parts := []string{
		`  <div class="summary-box">`,
		"    <h3>" + htmlutils.EscapeText(doc.SummaryTitle) + "</h3>",
		"    <ul>",
		strings.Join(lines, "\n"),
		"    </ul>",
		"  </div>",
	}

	return strings.Join(parts, "\n"), nil
}

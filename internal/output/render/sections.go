package render

import (
	"strings"

	"github.com/wxyz-claw/clawd-pages/internal/digest"
	"github.com/wxyz-claw/clawd-pages/internal/platform/htmlutils"
)

// renderSections renders every section that has at least one item; empty
// sections are dropped entirely. Surviving sections are joined with a
// blank-line separator.
func (r *Renderer) renderSections(sections []digest.Section) (string, error) {
	blocks := make([]string, 0, len(sections))

	for _, section := range sections {
		block, err := r.renderSection(section)
		if err != nil {
			return "", err
		}

		if block != "" {
			blocks = append(blocks, block)
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}

func (r *Renderer) renderSection(section digest.Section) (string, error) {
	if len(section.Items) == 0 {
		return "", nil
	}

	itemBlocks := make([]string, 0, len(section.Items))

	for _, item := range section.Items {
		block, err := r.renderItem(item)
		if err != nil {
			return "", err
		}

		itemBlocks = append(itemBlocks, block)
	}

	parts := []string{
		`  <div class="section">`,
		`    <div class="section-header">`,
		`      <span class="emoji">` + htmlutils.EscapeText(section.Emoji) + `</span>`,
		"      <h2>" + htmlutils.EscapeText(section.Title) + "</h2>",
		`    </div>`,
		strings.Join(itemBlocks, "\n"),
		`  </div>`,
	}

	return strings.Join(parts, "\n"), nil
}

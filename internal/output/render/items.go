package render

import (
	"fmt"
	"strings"

	"github.com/wxyz-claw/clawd-pages/internal/digest"
	"github.com/wxyz-claw/clawd-pages/internal/platform/htmlutils"
)

// renderItem builds one self-contained item block: title line with an
// optional tag badge, body line, and a metadata block when the item has at
// least one link.
func (r *Renderer) renderItem(item digest.Item) (string, error) {
	badge := ""
	if item.TagClass != "" && item.TagLabel != "" {
		badge = fmt.Sprintf(`<span class="tag %s">%s</span> `, item.TagClass, htmlutils.EscapeText(item.TagLabel))
	}

	body, err := r.content(item.Body)
	if err != nil {
		return "", err
	}

	parts := []string{
		`  <div class="item">`,
		`    <div class="item-title">` + badge + htmlutils.EscapeText(item.Title) + `</div>`,
		`    <div class="item-body">` + body + `</div>`,
		renderItemMeta(item.Links),
		`  </div>`,
	}

	return strings.Join(parts, "\n"), nil
}

// renderItemMeta wraps the item's links in a metadata container, or returns
// an empty string when there are none.
func renderItemMeta(links []digest.Link) string {
	if len(links) == 0 {
		return ""
	}

	anchors := make([]string, 0, len(links))
	for _, link := range links {
		anchors = append(anchors, fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`,
			htmlutils.EscapeText(link.URL), htmlutils.EscapeText(link.Label)))
	}

	parts := []string{
		`    <div class="item-meta">`,
		"      " + strings.Join(anchors, "\n      "),
		`    </div>`,
	}

	return strings.Join(parts, "\n")
}

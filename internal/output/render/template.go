package render

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrTemplate marks an unusable template: an unresolvable or malformed
// placeholder.
var ErrTemplate = errors.New("template error")

//go:embed templates/default.html
var defaultTemplate string

// DefaultTemplate returns the template compiled into the binary.
func DefaultTemplate() string {
	return defaultTemplate
}

// LoadTemplate reads the template text from path, or returns the embedded
// default when path is empty.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read template: %w", ErrTemplate, err)
	}

	return string(data), nil
}

// expand substitutes ${name} and $name placeholders from values into the
// template text. "$$" escapes a literal dollar sign. Unknown placeholders
// and any other "$"-prefixed text are errors — a typoed placeholder must
// fail the render, not leak into the page.
func expand(template string, values map[string]string) (string, error) {
	var sb strings.Builder

	sb.Grow(len(template))

	for i := 0; i < len(template); {
		dollar := strings.IndexByte(template[i:], '$')
		if dollar < 0 {
			sb.WriteString(template[i:])
			break
		}

		sb.WriteString(template[i : i+dollar])
		i += dollar

		consumed, err := expandPlaceholder(&sb, template[i:], values)
		if err != nil {
			return "", err
		}

		i += consumed
	}

	return sb.String(), nil
}

// expandPlaceholder handles one "$"-prefixed sequence at the start of rest,
// returning how many bytes it consumed.
func expandPlaceholder(sb *strings.Builder, rest string, values map[string]string) (int, error) {
	if len(rest) < 2 {
		return 0, fmt.Errorf("%w: dangling $ at end of template", ErrTemplate)
	}

	switch c := rest[1]; {
	case c == '$':
		sb.WriteByte('$')
		return 2, nil

	case c == '{':
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return 0, fmt.Errorf("%w: unterminated ${ placeholder", ErrTemplate)
		}

		name := rest[2:end]
		if !validPlaceholderName(name) {
			return 0, fmt.Errorf("%w: invalid placeholder %q", ErrTemplate, name)
		}

		value, ok := values[name]
		if !ok {
			return 0, fmt.Errorf("%w: unknown placeholder %q", ErrTemplate, name)
		}

		sb.WriteString(value)

		return end + 1, nil

	case identStart(c):
		end := 2
		for end < len(rest) && identPart(rest[end]) {
			end++
		}

		name := rest[1:end]

		value, ok := values[name]
		if !ok {
			return 0, fmt.Errorf("%w: unknown placeholder %q", ErrTemplate, name)
		}

		sb.WriteString(value)

		return end, nil

	default:
		return 0, fmt.Errorf("%w: invalid $ sequence %q", ErrTemplate, rest[:2])
	}
}

func validPlaceholderName(name string) bool {
	if name == "" || !identStart(name[0]) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !identPart(name[i]) {
			return false
		}
	}

	return true
}

func identStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func identPart(c byte) bool {
	return identStart(c) || c >= '0' && c <= '9'
}

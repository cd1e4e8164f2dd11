// Package htmlutils provides HTML escaping and sanitization helpers for
// digest rendering.
//
// The package handles:
//   - Scalar-to-string conversion and HTML entity escaping
//   - CSS class and lang attribute sanitization
//   - UGC sanitization of untrusted raw HTML fragments
package htmlutils

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultLang is the fallback value for the page lang attribute.
const DefaultLang = "en"

// Stringify converts a decoded scalar into its display string.
// JSON numbers keep their literal source text, booleans render as
// "true"/"false", and nil becomes the empty string.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// EscapeText converts any scalar to its string form and HTML-escapes it,
// including quote characters. Total over all inputs.
func EscapeText(v any) string {
	return html.EscapeString(Stringify(v))
}

// SanitizeClass keeps only characters safe for use as an HTML class
// attribute value: ASCII letters, digits, underscore and hyphen.
// Empty input yields empty output.
func SanitizeClass(value string) string {
	return keep(value, func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
	})
}

// SanitizeLang keeps only ASCII letters, digits and hyphen. An empty result
// falls back to DefaultLang.
func SanitizeLang(value string) string {
	lang := keep(value, func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
	})
	if lang == "" {
		return DefaultLang
	}

	return lang
}

func keep(value string, allowed func(byte) bool) string {
	out := make([]byte, 0, len(value))

	for i := 0; i < len(value); i++ {
		if allowed(value[i]) {
			out = append(out, value[i])
		}
	}

	return string(out)
}

var (
	untrustedPolicyOnce sync.Once
	untrustedPolicy     *bluemonday.Policy
)

// SanitizeUntrusted runs a raw HTML fragment through a UGC policy. It is
// applied to *_html fields only when sanitize mode is enabled; by default
// raw HTML is trusted verbatim.
func SanitizeUntrusted(fragment string) string {
	untrustedPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("target").OnElements("a")
		untrustedPolicy = policy
	})

	return untrustedPolicy.Sanitize(fragment)
}

package digest

import "github.com/araddon/dateparse"

// dateDisplayFormat matches the long-form dates digests usually carry,
// e.g. "Friday, February 6, 2026".
const dateDisplayFormat = "Monday, January 2, 2006"

// PrettyDate reformats a machine-readable date (RFC3339, 2026-02-06, and
// friends) into its long display form. Values that do not parse pass
// through verbatim, so already-human dates are left alone.
func PrettyDate(value string) string {
	if value == "" {
		return ""
	}

	ts, err := dateparse.ParseAny(value)
	if err != nil {
		return value
	}

	return ts.Format(dateDisplayFormat)
}

// Package writer persists rendered pages to disk.
package writer

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
)

// WriteFile writes contents to path, replacing any existing file. The
// replace is atomic, so readers never observe a half-written page even if a
// render is interrupted.
func WriteFile(path, contents string) error {
	if err := atomic.WriteFile(path, strings.NewReader(contents)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

package digest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StdinPath is the sentinel input path meaning "read standard input".
const StdinPath = "-"

var (
	// ErrMalformedInput marks input bytes that do not parse as JSON/YAML.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidShape marks a parsed document whose root is not an object.
	ErrInvalidShape = errors.New("input root must be an object")
)

// Format selects the input decoder.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Load reads a digest document from path ("-" for stdin) and decodes it
// into a generic key-value map. FormatAuto decodes .yaml/.yml files as YAML
// and everything else as JSON.
func Load(path string, format Format) (map[string]any, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	if resolveFormat(path, format) == FormatYAML {
		return decodeYAML(data)
	}

	return decodeJSON(data)
}

func readInput(path string) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return data, nil
}

func resolveFormat(path string, format Format) Format {
	if format != FormatAuto && format != "" {
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// decodeJSON keeps numbers as json.Number so their literal text survives
// into the rendered output.
func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedInput)
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, ErrInvalidShape
	}

	return doc, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, ErrInvalidShape
	}

	return doc, nil
}

package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultContent []byte

// Loader reads a portfolio content document. With an empty path it serves
// the document compiled into the binary.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath ("" selects the embedded content).
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where Load reads from, for logging.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and parses the content document.
func (l *Loader) Load() (*Document, error) {
	data := defaultContent
	if l.filePath != "" {
		var err error
		data, err = os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes a YAML content document, rejecting unknown keys.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content document is empty")
		}
		return nil, fmt.Errorf("failed to parse content yaml: %w", err)
	}
	return &doc, nil
}

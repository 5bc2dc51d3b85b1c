package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/StevenSignal/dtek-schedule/core/schedule"
)

// Config defines where the collected schedule is persisted.
type Config struct {
	Path string `json:"path"`
}

// SetDefaults applies the stock output location.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		c.Path = "dtek_schedule.json"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

// FileWriter persists the output document as indented UTF-8 JSON with
// overwrite semantics. HTML escaping is disabled so non-ASCII and markup
// characters stay literal.
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer targeting the given path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Write serializes doc to the configured file.
func (w *FileWriter) Write(doc *schedule.OutputDocument) error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read loads a previously written output document.
func Read(path string) (*schedule.OutputDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc schedule.OutputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &doc, nil
}

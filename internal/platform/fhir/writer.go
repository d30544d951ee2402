package fhir

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ipsgen/ipsgen/internal/ips"
)

// NDJSONWriter writes bundles as newline-delimited JSON, one document per
// line, the format used for FHIR bulk data exchange.
type NDJSONWriter struct {
	w *bufio.Writer
}

// NewNDJSONWriter creates an NDJSONWriter that writes to w.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{w: bufio.NewWriter(w)}
}

// WriteDocument renders doc and writes it as a single JSON line.
func (n *NDJSONWriter) WriteDocument(doc *ips.Document) error {
	bundle, err := RenderBundle(doc)
	if err != nil {
		return err
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	if _, err := n.w.Write(data); err != nil {
		return err
	}
	return n.w.WriteByte('\n')
}

// Flush flushes any buffered data to the underlying writer.
func (n *NDJSONWriter) Flush() error {
	return n.w.Flush()
}

// FileWriter writes one JSON file per document into a directory.
type FileWriter struct {
	dir    string
	minify bool
	count  int
}

// NewFileWriter creates the output directory if needed and returns a writer
// into it. When minify is true files are written without indentation.
func NewFileWriter(dir string, minify bool) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &FileWriter{dir: dir, minify: minify}, nil
}

// WriteDocument renders doc and writes it as ips_record_NNNN.json, numbering
// files in write order.
func (f *FileWriter) WriteDocument(doc *ips.Document) (string, error) {
	bundle, err := RenderBundle(doc)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("ips_record_%04d.json", f.count)
	path := filepath.Join(f.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	if !f.minify {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(bundle); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}

	f.count++
	return path, nil
}

package fhir

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ipsgen/ipsgen/internal/catalog"
)

func TestNDJSONWriter_OneLinePerDocument(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	for i := 0; i < 3; i++ {
		doc := buildDocument(t, catalog.Conditions)
		if err := w.WriteDocument(doc); err != nil {
			t.Fatalf("WriteDocument: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		var bundle map[string]interface{}
		if err := json.Unmarshal([]byte(line), &bundle); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if bundle["resourceType"] != "Bundle" {
			t.Fatalf("line %d: expected Bundle, got %v", i, bundle["resourceType"])
		}
	}
}

func TestFileWriter_Naming(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWriter(dir, false)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}

	for i := 0; i < 2; i++ {
		doc := buildDocument(t, catalog.Medications)
		path, err := w.WriteDocument(doc)
		if err != nil {
			t.Fatalf("WriteDocument: %v", err)
		}
		want := filepath.Join(dir, []string{"ips_record_0000.json", "ips_record_0001.json"}[i])
		if path != want {
			t.Fatalf("expected %s, got %s", want, path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("output file missing: %v", err)
		}
	}
}

func TestFileWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := NewFileWriter(dir, false); err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", dir, err)
	}
}

func TestFileWriter_Minify(t *testing.T) {
	dir := t.TempDir()

	pretty, err := NewFileWriter(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	minified, err := NewFileWriter(filepath.Join(dir, "min"), true)
	if err != nil {
		t.Fatal(err)
	}

	doc := buildDocument(t, catalog.Allergies)
	prettyPath, err := pretty.WriteDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	minPath, err := minified.WriteDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	prettyData, err := os.ReadFile(prettyPath)
	if err != nil {
		t.Fatal(err)
	}
	minData, err := os.ReadFile(minPath)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(prettyData), "\n  ") {
		t.Fatal("expected indented output by default")
	}
	if strings.Contains(strings.TrimRight(string(minData), "\n"), "\n") {
		t.Fatal("expected single-line output with minify")
	}
	if len(minData) >= len(prettyData) {
		t.Fatalf("minified output (%d bytes) not smaller than pretty (%d bytes)", len(minData), len(prettyData))
	}
}

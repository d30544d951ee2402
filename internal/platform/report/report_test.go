package report

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ipsgen/ipsgen/internal/catalog"
	"github.com/ipsgen/ipsgen/internal/ips"
)

func buildDocument(t *testing.T, cats ...catalog.Category) *ips.Document {
	t.Helper()
	b := ips.NewBuilder(rand.New(rand.NewSource(42)), catalog.Default(), nil)
	for _, c := range cats {
		if err := b.AddEntry(c); err != nil {
			t.Fatalf("AddEntry(%s): %v", c, err)
		}
	}
	return b.Finalize()
}

func TestRender_PatientDetails(t *testing.T) {
	doc := buildDocument(t, catalog.Conditions)
	page := NewRenderer().Render(doc)

	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatal("expected an HTML document")
	}

	p := doc.Subject().Person
	for _, want := range []string{p.Family, p.Given, p.MRN, p.BirthDate, p.Gender} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing patient detail %q", want)
		}
	}
}

func TestRender_AuthorLine(t *testing.T) {
	doc := buildDocument(t)
	page := NewRenderer().Render(doc)

	p := doc.Author().Person
	want := "Author: Dr. " + p.Given + " " + p.Family
	if !strings.Contains(page, want) {
		t.Fatalf("page missing %q", want)
	}
}

func TestRender_Sections(t *testing.T) {
	doc := buildDocument(t, catalog.Conditions, catalog.LabResults)
	page := NewRenderer().Render(doc)

	for _, heading := range []string{"<h2>Problem List</h2>", "<h2>Results</h2>"} {
		if !strings.Contains(page, heading) {
			t.Fatalf("page missing section heading %q", heading)
		}
	}
	for _, e := range doc.Clinical() {
		if !strings.Contains(page, e.Code.Display) {
			t.Fatalf("page missing entry %q", e.Code.Display)
		}
		if !strings.Contains(page, e.Date) {
			t.Fatalf("page missing entry date %q", e.Date)
		}
	}
}

func TestRender_LabValue(t *testing.T) {
	doc := buildDocument(t, catalog.LabResults)
	page := NewRenderer().Render(doc)

	value := doc.Clinical()[0].Value
	if value == "" {
		t.Fatal("expected lab entry to carry a value")
	}
	if !strings.Contains(page, value) {
		t.Fatalf("page missing lab value %q", value)
	}
}

func TestRender_EmptyCellsDashed(t *testing.T) {
	// Conditions carry no value, so their value cell renders as a dash.
	doc := buildDocument(t, catalog.Conditions)
	page := NewRenderer().Render(doc)

	if !strings.Contains(page, "<td>-</td>") {
		t.Fatal("expected empty value cell to render as a dash")
	}
}

func TestRenderToFile(t *testing.T) {
	doc := buildDocument(t, catalog.Medications)
	path := filepath.Join(t.TempDir(), "report.html")

	if err := NewRenderer().RenderToFile(doc, path); err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "International Patient Summary") {
		t.Fatal("written report missing title")
	}
}

package fhir

import (
	"math/rand"
	"testing"

	"github.com/ipsgen/ipsgen/internal/catalog"
	"github.com/ipsgen/ipsgen/internal/ips"
)

func mustString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func mustSlice(m map[string]interface{}, key string) []interface{} {
	s, _ := m[key].([]interface{})
	return s
}

func mustMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

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

func TestRenderBundle_Shape(t *testing.T) {
	doc := buildDocument(t, catalog.Conditions, catalog.Medications)

	bundle, err := RenderBundle(doc)
	if err != nil {
		t.Fatalf("RenderBundle: %v", err)
	}

	if mustString(bundle, "resourceType") != "Bundle" {
		t.Fatalf("expected Bundle, got %v", bundle["resourceType"])
	}
	if mustString(bundle, "type") != "document" {
		t.Fatalf("expected document bundle, got %v", bundle["type"])
	}
	if mustString(bundle, "id") != doc.ID {
		t.Fatalf("bundle id %v does not match document %s", bundle["id"], doc.ID)
	}
	if mustString(bundle, "timestamp") == "" {
		t.Fatal("expected timestamp")
	}

	entries := mustSlice(bundle, "entry")
	if len(entries) != len(doc.Entries)+1 {
		t.Fatalf("expected %d entries, got %d", len(doc.Entries)+1, len(entries))
	}
}

func TestRenderBundle_CompositionFirst(t *testing.T) {
	doc := buildDocument(t, catalog.Allergies)

	bundle, err := RenderBundle(doc)
	if err != nil {
		t.Fatalf("RenderBundle: %v", err)
	}

	entries := mustSlice(bundle, "entry")
	first := mustMap(mustMap(entries[0])["resource"])
	if mustString(first, "resourceType") != "Composition" {
		t.Fatalf("expected Composition first, got %v", first["resourceType"])
	}
	second := mustMap(mustMap(entries[1])["resource"])
	if mustString(second, "resourceType") != "Patient" {
		t.Fatalf("expected Patient second, got %v", second["resourceType"])
	}
	third := mustMap(mustMap(entries[2])["resource"])
	if mustString(third, "resourceType") != "Practitioner" {
		t.Fatalf("expected Practitioner third, got %v", third["resourceType"])
	}
}

func TestRenderBundle_FullURLs(t *testing.T) {
	doc := buildDocument(t, catalog.LabResults)

	bundle, err := RenderBundle(doc)
	if err != nil {
		t.Fatalf("RenderBundle: %v", err)
	}

	for _, e := range mustSlice(bundle, "entry") {
		entry := mustMap(e)
		res := mustMap(entry["resource"])
		want := "urn:uuid:" + mustString(res, "id")
		if mustString(entry, "fullUrl") != want {
			t.Fatalf("fullUrl %v does not match resource id %v", entry["fullUrl"], res["id"])
		}
	}
}

func TestRenderHeader_Sections(t *testing.T) {
	doc := buildDocument(t, catalog.Conditions, catalog.Conditions)

	comp := RenderHeader(doc.Header)
	if mustString(comp, "status") != "final" {
		t.Fatalf("expected status final, got %v", comp["status"])
	}
	if mustString(comp, "title") != "International Patient Summary" {
		t.Fatalf("unexpected title %v", comp["title"])
	}

	sections := mustSlice(comp, "section")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	sec := mustMap(sections[0])
	if mustString(sec, "title") != "Problem List" {
		t.Fatalf("unexpected section title %v", sec["title"])
	}

	refs := mustSlice(sec, "entry")
	if len(refs) != 2 {
		t.Fatalf("expected 2 references, got %d", len(refs))
	}
	for i, r := range refs {
		ref := mustString(mustMap(r), "reference")
		want := doc.Clinical()[i].Ref().String()
		if ref != want {
			t.Fatalf("reference %d: expected %s, got %s", i, want, ref)
		}
	}
}

func TestRenderHeader_SubjectAndAuthor(t *testing.T) {
	doc := buildDocument(t)

	comp := RenderHeader(doc.Header)
	subj := mustString(mustMap(comp["subject"]), "reference")
	if subj != "Patient/"+doc.Subject().ID {
		t.Fatalf("unexpected subject reference %s", subj)
	}

	authors := mustSlice(comp, "author")
	if len(authors) != 1 {
		t.Fatalf("expected 1 author, got %d", len(authors))
	}
	if got := mustString(mustMap(authors[0]), "reference"); got != "Practitioner/"+doc.Author().ID {
		t.Fatalf("unexpected author reference %s", got)
	}
}

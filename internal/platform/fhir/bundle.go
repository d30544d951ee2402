package fhir

import (
	"time"

	"github.com/ipsgen/ipsgen/internal/catalog"
	"github.com/ipsgen/ipsgen/internal/ips"
)

// RenderHeader renders the document header as a FHIR Composition resource.
func RenderHeader(h *ips.Header) Resource {
	sections := make([]interface{}, 0, len(h.Sections))
	for _, sec := range h.Sections {
		entries := make([]interface{}, 0, len(sec.Entries))
		for _, ref := range sec.Entries {
			entries = append(entries, reference(ref))
		}
		sections = append(sections, Resource{
			"title": sec.Title,
			"code":  codeableConcept(catalog.SystemLOINC, sec.Code, ""),
			"entry": entries,
		})
	}

	return Resource{
		"resourceType": "Composition",
		"id":           h.ID,
		"status":       h.Status,
		"type":         codeableConcept(catalog.SystemLOINC, h.TypeCode, "Patient Summary Document"),
		"subject":      reference(h.Subject),
		"date":         h.Date.Format(time.RFC3339),
		"author":       []interface{}{reference(h.Author)},
		"title":        h.Title,
		"section":      sections,
	}
}

// RenderBundle renders a complete document as a FHIR Bundle of type
// "document": the Composition first, then the subject, the author, and all
// clinical entries in creation order.
func RenderBundle(doc *ips.Document) (Resource, error) {
	entries := make([]interface{}, 0, len(doc.Entries)+1)

	comp := RenderHeader(doc.Header)
	entries = append(entries, Resource{
		"fullUrl":  "urn:uuid:" + doc.Header.ID,
		"resource": comp,
	})

	for _, e := range doc.Entries {
		res, err := RenderEntry(e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Resource{
			"fullUrl":  "urn:uuid:" + e.ID,
			"resource": res,
		})
	}

	return Resource{
		"resourceType": "Bundle",
		"id":           doc.ID,
		"type":         "document",
		"timestamp":    doc.Timestamp.Format(time.RFC3339),
		"entry":        entries,
	}, nil
}

// Package report lays out a generated document as a human-readable XHTML
// page: patient demographics up top, then one table per section with the
// coded entries it references.
package report

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/ipsgen/ipsgen/internal/ips"
)

// Renderer produces XHTML reports for generated documents.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the full XHTML page for doc.
func (r *Renderer) Render(doc *ips.Document) string {
	byID := make(map[string]*ips.Entry, len(doc.Entries))
	for _, e := range doc.Entries {
		byID[e.ID] = e
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"/>")
	b.WriteString("<title>" + html.EscapeString(doc.Header.Title) + "</title>")
	b.WriteString("</head><body>")

	b.WriteString("<h1>" + html.EscapeString(doc.Header.Title) + "</h1>")
	b.WriteString("<p>Date: " + html.EscapeString(doc.Timestamp.Format("2006-01-02 15:04:05 MST")) + "</p>")

	r.renderPatient(&b, doc.Subject())
	r.renderAuthor(&b, doc.Author())

	for _, sec := range doc.Header.Sections {
		r.renderSection(&b, sec, byID)
	}

	b.WriteString("</body></html>\n")
	return b.String()
}

// RenderToFile writes the report for doc to path.
func (r *Renderer) RenderToFile(doc *ips.Document, path string) error {
	if err := os.WriteFile(path, []byte(r.Render(doc)), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) renderPatient(b *strings.Builder, patient *ips.Entry) {
	p := patient.Person
	b.WriteString("<h2>Patient</h2><table border=\"1\">")
	row(b, "Name", p.Given+" "+p.Family)
	row(b, "Identifier", p.MRN)
	row(b, "Birth Date", p.BirthDate)
	row(b, "Gender", p.Gender)
	b.WriteString("</table>")
}

func (r *Renderer) renderAuthor(b *strings.Builder, author *ips.Entry) {
	p := author.Person
	name := strings.TrimSpace(p.Prefix + " " + p.Given + " " + p.Family)
	b.WriteString("<p>Author: " + html.EscapeString(name) + "</p>")
}

func (r *Renderer) renderSection(b *strings.Builder, sec *ips.Section, byID map[string]*ips.Entry) {
	b.WriteString("<h2>" + html.EscapeString(sec.Title) + "</h2>")
	b.WriteString("<table border=\"1\"><tr><th>Description</th><th>Code</th><th>Date</th><th>Value</th></tr>")
	for _, ref := range sec.Entries {
		e, ok := byID[ref.ID]
		if !ok {
			continue
		}
		b.WriteString("<tr>")
		cell(b, e.Code.Display)
		cell(b, e.Code.Code)
		cell(b, e.Date)
		cell(b, e.Value)
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
}

func row(b *strings.Builder, label, value string) {
	b.WriteString("<tr><th>" + html.EscapeString(label) + "</th><td>" + html.EscapeString(value) + "</td></tr>")
}

func cell(b *strings.Builder, value string) {
	if value == "" {
		value = "-"
	}
	b.WriteString("<td>" + html.EscapeString(value) + "</td>")
}

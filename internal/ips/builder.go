package ips

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ipsgen/ipsgen/internal/catalog"
)

// entrySpec fixes, per category, the entry kind, its status, and the bounded
// year range its clinical date is drawn from. Onset-style dates sit further
// in the past than lab-result dates.
type entrySpec struct {
	kind     Kind
	status   string
	minYear  int
	maxYear  int
	hasValue bool
}

var entrySpecs = map[catalog.Category]entrySpec{
	catalog.Conditions:    {kind: KindCondition, status: "active", minYear: 2015, maxYear: 2022},
	catalog.Medications:   {kind: KindMedicationStatement, status: "active", minYear: 2022, maxYear: 2024},
	catalog.Allergies:     {kind: KindAllergyIntolerance, status: "active", minYear: 2010, maxYear: 2020},
	catalog.Immunizations: {kind: KindImmunization, status: "completed", minYear: 2015, maxYear: 2024},
	catalog.Procedures:    {kind: KindProcedure, status: "completed", minYear: 2018, maxYear: 2024},
	catalog.Devices:       {kind: KindDevice, status: "active", minYear: 2012, maxYear: 2020},
	catalog.LabResults:    {kind: KindObservation, status: "final", minYear: 2023, maxYear: 2024, hasValue: true},
}

// Builder accumulates one document's resources and sections, enforcing
// referential integrity between section entries and the resources they
// describe. A builder and its generator are private to one record; once
// Finalize runs, the builder rejects further additions.
type Builder struct {
	rng      *rand.Rand
	cat      *catalog.Catalog
	subject  Reference
	entries  []*Entry
	sections []*Section
	doc      *Document
}

// NewBuilder creates a builder seeded with the record's generator. When
// identity is nil a fresh subject identity is drawn from the same generator;
// batch generation passes the per-subject identity so that it persists across
// repeats. The subject and author entries are always created first.
func NewBuilder(rng *rand.Rand, cat *catalog.Catalog, identity *Identity) *Builder {
	if identity == nil {
		identity = DrawIdentity(rng, cat)
	}

	patient := &Entry{
		ID:   identity.ID,
		Kind: KindPatient,
		Person: &Person{
			Family:    identity.Family,
			Given:     identity.Given,
			BirthDate: identity.BirthDate,
			Gender:    identity.Gender,
			MRN:       identity.MRN,
		},
	}

	// The author is always self-generated, fresh per record.
	author := &Entry{
		ID:   newID(rng),
		Kind: KindPractitioner,
		Person: &Person{
			Family: cat.Demographics.FamilyNames[rng.Intn(len(cat.Demographics.FamilyNames))],
			Given:  cat.Demographics.GivenNames[rng.Intn(len(cat.Demographics.GivenNames))],
			Prefix: "Dr.",
		},
	}

	return &Builder{
		rng:     rng,
		cat:     cat,
		subject: patient.Ref(),
		entries: []*Entry{patient, author},
	}
}

// Subject returns the reference to the builder's patient entry.
func (b *Builder) Subject() Reference { return b.subject }

// AddEntry draws one item uniformly at random from the catalog pool for the
// given category, appends the resulting entry, and records a reference to it
// in the category's section, creating the section on first use. Drawing from
// an empty pool fails without appending a partial entry.
func (b *Builder) AddEntry(cat catalog.Category) error {
	if b.doc != nil {
		return fmt.Errorf("%w: cannot add %s entry", ErrFinalized, cat)
	}

	spec, ok := entrySpecs[cat]
	if !ok {
		return fmt.Errorf("unknown category %q", cat)
	}

	pool := b.cat.Items(cat)
	if len(pool) == 0 {
		return fmt.Errorf("%w: category %q", ErrEmptyPool, cat)
	}

	item := pool[b.rng.Intn(len(pool))]
	entry := &Entry{
		ID:      newID(b.rng),
		Kind:    spec.kind,
		Subject: b.subject,
		Code:    item,
		Status:  spec.status,
		Date:    randomDate(b.rng, spec.minYear, spec.maxYear),
	}
	if spec.hasValue {
		entry.Value = item.Value
	}

	b.entries = append(b.entries, entry)
	b.addToSection(cat, entry.Ref())
	return nil
}

// addToSection appends ref to the section for cat, creating it in first-seen
// order when absent. Lookup is a linear scan by code; documents carry at most
// a handful of sections.
func (b *Builder) addToSection(cat catalog.Category, ref Reference) {
	def, _ := catalog.Section(cat)
	for _, sec := range b.sections {
		if sec.Code == def.Code {
			sec.Entries = append(sec.Entries, ref)
			return
		}
	}
	b.sections = append(b.sections, &Section{
		Title:   def.Title,
		Code:    def.Code,
		Entries: []Reference{ref},
	})
}

// Finalize builds the header and assembles the document. Repeated calls
// return the same document; the builder must not be used for further
// additions afterwards.
func (b *Builder) Finalize() *Document {
	if b.doc != nil {
		return b.doc
	}

	now := time.Now().UTC()
	header := &Header{
		ID:       newID(b.rng),
		Status:   "final",
		TypeCode: catalog.DocumentTypeCode,
		Title:    "International Patient Summary",
		Date:     now,
		Subject:  b.subject,
		Author:   b.entries[1].Ref(),
		Sections: b.sections,
	}

	b.doc = &Document{
		ID:        newID(b.rng),
		Timestamp: now,
		Header:    header,
		Entries:   b.entries,
	}
	return b.doc
}

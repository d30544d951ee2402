// Package ips implements the document generation engine: deterministic seed
// derivation, incremental document building with referential integrity, and
// lazy batch orchestration across subjects and repeats. Serialization of the
// produced document graph is the caller's concern (see internal/platform/fhir).
package ips

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ipsgen/ipsgen/internal/catalog"
)

// Kind tags one generated resource. Values double as the FHIR resource type
// name so references render directly as "<Kind>/<id>".
type Kind string

const (
	KindPatient             Kind = "Patient"
	KindPractitioner        Kind = "Practitioner"
	KindCondition           Kind = "Condition"
	KindMedicationStatement Kind = "MedicationStatement"
	KindAllergyIntolerance  Kind = "AllergyIntolerance"
	KindImmunization        Kind = "Immunization"
	KindProcedure           Kind = "Procedure"
	KindDevice              Kind = "Device"
	KindObservation         Kind = "Observation"
)

// Reference points at one entry within a document.
type Reference struct {
	Kind Kind
	ID   string
}

func (r Reference) String() string {
	return string(r.Kind) + "/" + r.ID
}

// Identity holds the stable attributes of a subject: established once per
// subject and reused verbatim across that subject's repeated records.
type Identity struct {
	ID        string
	MRN       string
	Family    string
	Given     string
	BirthDate string
	Gender    string
}

// Person is the demographic payload carried by patient and practitioner
// entries.
type Person struct {
	Family    string
	Given     string
	Prefix    string
	BirthDate string
	Gender    string
	MRN       string
}

// Entry is one generated clinical resource. Kind-specific payload lives in
// Code/Status/Date/Value (clinical kinds) or Person (subject and author);
// ID and Subject are common to all kinds. Entries are immutable once created
// and owned exclusively by the document they belong to.
type Entry struct {
	ID      string
	Kind    Kind
	Subject Reference
	Code    catalog.Item
	Status  string
	// Date is the kind-appropriate clinical date (onset, effective,
	// occurrence, performed or recorded), formatted YYYY-MM-DD.
	Date   string
	Value  string
	Person *Person
}

// Ref returns a reference to this entry.
func (e *Entry) Ref() Reference {
	return Reference{Kind: e.Kind, ID: e.ID}
}

// Section is a labeled, category-coded, ordered list of references to
// clinical entries. Exactly one section exists per category code within a
// document.
type Section struct {
	Title   string
	Code    string
	Entries []Reference
}

// Header is the document's binding resource (Composition-equivalent),
// referencing the subject, the authoring actor, and all sections.
type Header struct {
	ID       string
	Status   string
	TypeCode string
	Title    string
	Date     time.Time
	Subject  Reference
	Author   Reference
	Sections []*Section
}

// Document is the finalize output: the header plus all entries, subject
// first, then author, then clinical entries in creation order.
type Document struct {
	ID        string
	Timestamp time.Time
	Header    *Header
	Entries   []*Entry
}

// Subject returns the document's patient entry.
func (d *Document) Subject() *Entry { return d.Entries[0] }

// Author returns the document's practitioner entry.
func (d *Document) Author() *Entry { return d.Entries[1] }

// Clinical returns the clinical entries in creation order, excluding the
// subject and author resources.
func (d *Document) Clinical() []*Entry { return d.Entries[2:] }

// newID draws a deterministic UUID from the given generator.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// *rand.Rand.Read never fails.
		panic(fmt.Sprintf("ips: drawing uuid: %v", err))
	}
	return id.String()
}

// randomDate draws a date within [minYear, maxYear], formatted YYYY-MM-DD.
// Days are capped at 28 so every drawn date is valid in any month.
func randomDate(rng *rand.Rand, minYear, maxYear int) string {
	y := minYear + rng.Intn(maxYear-minYear+1)
	m := 1 + rng.Intn(12)
	d := 1 + rng.Intn(28)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

var genders = []string{"male", "female", "other", "unknown"}

// DrawIdentity draws fresh subject identity fields from the catalog's
// demographic pools using the given identity-stream generator. The draw
// order (family, given, gender, birth date, MRN, id) is fixed; changing it
// changes every seeded output.
func DrawIdentity(rng *rand.Rand, cat *catalog.Catalog) *Identity {
	return &Identity{
		Family:    cat.Demographics.FamilyNames[rng.Intn(len(cat.Demographics.FamilyNames))],
		Given:     cat.Demographics.GivenNames[rng.Intn(len(cat.Demographics.GivenNames))],
		Gender:    genders[rng.Intn(len(genders))],
		BirthDate: randomDate(rng, 1940, 2005),
		MRN:       fmt.Sprintf("MRN-%08d", rng.Intn(100000000)),
		ID:        newID(rng),
	}
}

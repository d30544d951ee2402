package ips

import (
	"fmt"

	"github.com/ipsgen/ipsgen/internal/catalog"
)

// inclusionRule fixes one category's probabilistic content selection: the
// chance a record includes the category at all, and the bounds of how many
// entries it gets when included. These are engine constants, not
// user-configurable; they are applied in the fixed catalog.Categories()
// order so RNG consumption is deterministic per seed.
type inclusionRule struct {
	probability float64
	minCount    int
	maxCount    int
}

var inclusionRules = map[catalog.Category]inclusionRule{
	catalog.Conditions:    {probability: 0.80, minCount: 1, maxCount: 3},
	catalog.Medications:   {probability: 0.70, minCount: 1, maxCount: 3},
	catalog.Allergies:     {probability: 0.50, minCount: 1, maxCount: 2},
	catalog.Immunizations: {probability: 0.60, minCount: 1, maxCount: 3},
	catalog.Procedures:    {probability: 0.40, minCount: 1, maxCount: 2},
	catalog.Devices:       {probability: 0.20, minCount: 1, maxCount: 1},
	catalog.LabResults:    {probability: 0.70, minCount: 1, maxCount: 4},
}

// Record is one yielded batch element: a completed document tagged with the
// subject and repeat indices it was generated for.
type Record struct {
	Document *Document
	Subject  int
	Repeat   int
}

// Batch is a lazy pull iterator over subjects × repeats documents. Usage
// follows bufio.Scanner:
//
//	batch, err := ips.Generate(5, 2, &seed, cat)
//	...
//	for batch.Next() {
//		rec := batch.Record()
//		...
//	}
//	if err := batch.Err(); err != nil { ... }
//
// The first error aborts the remainder of the batch. A Batch is not
// restartable; call Generate again for an equivalent fresh sequence.
type Batch struct {
	cat       *catalog.Catalog
	hierarchy Hierarchy
	subjects  int
	repeats   int

	subject  int
	repeat   int
	identity *Identity
	cur      *Record
	err      error
}

// Generate prepares a batch of subjects × repeats documents. When seed is
// nil the batch is seeded from system entropy and is not reproducible. The
// catalog is validated up front; per-category pool emptiness is only checked
// when a draw is attempted.
func Generate(subjects, repeats int, seed *int64, cat *catalog.Catalog) (*Batch, error) {
	if subjects < 1 {
		return nil, fmt.Errorf("subject count must be >= 1, got %d", subjects)
	}
	if repeats < 1 {
		return nil, fmt.Errorf("repeats per subject must be >= 1, got %d", repeats)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	h := NewHierarchyFromEntropy()
	if seed != nil {
		h = NewHierarchy(*seed)
	}

	return &Batch{
		cat:       cat,
		hierarchy: h,
		subjects:  subjects,
		repeats:   repeats,
	}, nil
}

// Total returns the number of documents the batch will yield absent errors.
func (b *Batch) Total() int { return b.subjects * b.repeats }

// Next builds the next document. It returns false when the batch is
// exhausted or a generation error occurred; check Err afterwards.
func (b *Batch) Next() bool {
	if b.err != nil || b.subject >= b.subjects {
		return false
	}

	// Subject identity is established once per subject, from the identity
	// stream, and reused verbatim for every repeat.
	if b.repeat == 0 {
		b.identity = DrawIdentity(b.hierarchy.IdentityRNG(b.subject), b.cat)
	}

	rng := b.hierarchy.RecordRNG(b.subject, b.repeat)
	builder := NewBuilder(rng, b.cat, b.identity)

	for _, cat := range catalog.Categories() {
		rule := inclusionRules[cat]
		if rng.Float64() >= rule.probability {
			continue
		}
		n := rule.minCount + rng.Intn(rule.maxCount-rule.minCount+1)
		for i := 0; i < n; i++ {
			if err := builder.AddEntry(cat); err != nil {
				b.err = fmt.Errorf("subject %d record %d: %w", b.subject, b.repeat, err)
				return false
			}
		}
	}

	b.cur = &Record{
		Document: builder.Finalize(),
		Subject:  b.subject,
		Repeat:   b.repeat,
	}

	b.repeat++
	if b.repeat == b.repeats {
		b.repeat = 0
		b.subject++
	}
	return true
}

// Record returns the element produced by the last successful Next call.
func (b *Batch) Record() *Record { return b.cur }

// Err returns the first error encountered while generating, if any.
func (b *Batch) Err() error { return b.err }

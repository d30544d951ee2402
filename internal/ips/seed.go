package ips

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Stream labels keep the identity stream disjoint from record streams, so
// changes to content-selection logic never perturb identity draws for the
// same subject.
const (
	identityStream = 0
	recordStream   = 1
)

// Hierarchy derives deterministic, mutually independent random streams from
// one base seed: an identity stream per subject index and a record stream per
// (subject, repeat) pair. Derived seeds depend only on the base seed and the
// index values, never on generation order.
type Hierarchy struct {
	base uint64
}

// NewHierarchy returns a hierarchy rooted at the given base seed.
func NewHierarchy(seed int64) Hierarchy {
	return Hierarchy{base: uint64(seed)}
}

// NewHierarchyFromEntropy returns a hierarchy rooted at a non-reproducible
// seed drawn from the system entropy source.
func NewHierarchyFromEntropy() Hierarchy {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; there is no
		// meaningful fallback seed to generate fixtures from.
		panic("ips: reading entropy: " + err.Error())
	}
	return Hierarchy{base: binary.BigEndian.Uint64(buf[:])}
}

func (h Hierarchy) subjectSeed(subject int) uint64 {
	return mix(h.base, uint64(subject)+1)
}

// IdentityRNG returns a fresh generator for the subject-level identity stream
// of the given subject index.
func (h Hierarchy) IdentityRNG(subject int) *rand.Rand {
	seed := mix(h.subjectSeed(subject), identityStream)
	return rand.New(rand.NewSource(int64(seed)))
}

// RecordRNG returns a fresh generator for the record-level content stream of
// the given (subject, repeat) pair. Generators are never shared: every call
// returns a new instance.
func (h Hierarchy) RecordRNG(subject, repeat int) *rand.Rand {
	seed := mix(h.subjectSeed(subject), recordStream+uint64(repeat)+1)
	return rand.New(rand.NewSource(int64(seed)))
}

// mix is the splitmix64 finalizer applied to seed advanced by n. Adjacent
// inputs produce statistically independent outputs, which keeps sibling
// streams decorrelated even for small indices.
func mix(seed, n uint64) uint64 {
	z := seed + (n+1)*0x9e3779b97f4a7c15
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}

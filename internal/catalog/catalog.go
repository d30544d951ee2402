// Package catalog holds the static pools of codable clinical items and
// demographic values that the generation engine draws from. A Catalog is
// owned by the caller and read-only to the engine; the built-in Default
// catalog is suitable for fixtures, and Load reads a JSON or YAML catalog
// from disk for callers that need their own terminology.
package catalog

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Terminology system URLs used by the built-in pools.
const (
	SystemSNOMED = "http://snomed.info/sct"
	SystemLOINC  = "http://loinc.org"
	SystemRxNorm = "http://www.nlm.nih.gov/research/umls/rxnorm"
	SystemCVX    = "http://hl7.org/fhir/sid/cvx"
	SystemCPT    = "http://www.ama-assn.org/go/cpt"
)

// ErrConfig indicates a structurally invalid catalog: a required category
// pool or demographic pool is absent.
var ErrConfig = errors.New("invalid catalog")

// Category identifies one clinical content pool.
type Category string

const (
	Conditions    Category = "conditions"
	Medications   Category = "medications"
	Allergies     Category = "allergies"
	Immunizations Category = "immunizations"
	Procedures    Category = "procedures"
	Devices       Category = "devices"
	LabResults    Category = "labResults"
)

// Categories returns all clinical categories in their fixed generation
// order. The order is part of the engine's reproducibility contract.
func Categories() []Category {
	return []Category{
		Conditions, Medications, Allergies,
		Immunizations, Procedures, Devices, LabResults,
	}
}

// Item is one codable entry in a category pool. Value is only populated for
// lab results, where it carries the observed value string.
type Item struct {
	System  string `mapstructure:"system" json:"system"`
	Code    string `mapstructure:"code" json:"code"`
	Display string `mapstructure:"display" json:"display"`
	Value   string `mapstructure:"value,omitempty" json:"value,omitempty"`
}

// SectionDef maps a category to its document section label.
type SectionDef struct {
	Title string
	Code  string
}

// Demographics holds the name pools used when drawing subject and author
// identities.
type Demographics struct {
	FamilyNames []string `mapstructure:"family_names" json:"family_names"`
	GivenNames  []string `mapstructure:"given_names" json:"given_names"`
}

// Catalog is the full set of pools the engine draws from.
type Catalog struct {
	Conditions    []Item `mapstructure:"conditions" json:"conditions"`
	Medications   []Item `mapstructure:"medications" json:"medications"`
	Allergies     []Item `mapstructure:"allergies" json:"allergies"`
	Immunizations []Item `mapstructure:"immunizations" json:"immunizations"`
	Procedures    []Item `mapstructure:"procedures" json:"procedures"`
	Devices       []Item `mapstructure:"devices" json:"devices"`
	LabResults    []Item `mapstructure:"lab_results" json:"lab_results"`

	Demographics Demographics `mapstructure:"demographics" json:"demographics"`
}

// Items returns the pool for the given category. Unknown categories return
// nil; the engine treats that the same as an empty pool.
func (c *Catalog) Items(cat Category) []Item {
	switch cat {
	case Conditions:
		return c.Conditions
	case Medications:
		return c.Medications
	case Allergies:
		return c.Allergies
	case Immunizations:
		return c.Immunizations
	case Procedures:
		return c.Procedures
	case Devices:
		return c.Devices
	case LabResults:
		return c.LabResults
	}
	return nil
}

// Section returns the section label for a category. Every known category has
// a fixed LOINC-coded section; the table is not caller-configurable.
func Section(cat Category) (SectionDef, bool) {
	def, ok := sectionTable[cat]
	return def, ok
}

var sectionTable = map[Category]SectionDef{
	Conditions:    {Title: "Problem List", Code: "11450-4"},
	Medications:   {Title: "Medication Summary", Code: "10160-0"},
	Allergies:     {Title: "Allergies and Intolerances", Code: "48765-2"},
	Immunizations: {Title: "Immunizations", Code: "11369-6"},
	Procedures:    {Title: "History of Procedures", Code: "47519-4"},
	Devices:       {Title: "Medical Devices", Code: "46264-8"},
	LabResults:    {Title: "Results", Code: "30954-2"},
}

// DocumentTypeCode is the LOINC code for a Patient Summary Document,
// used on the generated document header.
const DocumentTypeCode = "60591-5"

// Validate checks that every clinical category pool and both demographic
// pools are present. A missing (nil) clinical pool is a configuration error;
// an empty clinical pool is legal here and only fails when the engine tries
// to draw from it. Demographic pools are drawn for every record, so they must
// be non-empty.
func (c *Catalog) Validate() error {
	for _, cat := range Categories() {
		if c.Items(cat) == nil {
			return fmt.Errorf("%w: missing category pool %q", ErrConfig, cat)
		}
	}
	if len(c.Demographics.FamilyNames) == 0 {
		return fmt.Errorf("%w: missing demographics family_names pool", ErrConfig)
	}
	if len(c.Demographics.GivenNames) == 0 {
		return fmt.Errorf("%w: missing demographics given_names pool", ErrConfig)
	}
	return nil
}

// Load reads a catalog from a JSON or YAML file and validates it.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat := &Catalog{}
	if err := v.Unmarshal(cat); err != nil {
		return nil, fmt.Errorf("unmarshal catalog %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

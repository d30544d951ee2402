package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
}

func TestDefault_PoolsPopulated(t *testing.T) {
	cat := Default()
	for _, c := range Categories() {
		if len(cat.Items(c)) == 0 {
			t.Fatalf("default catalog has empty pool for %s", c)
		}
	}
	if len(cat.Demographics.FamilyNames) == 0 || len(cat.Demographics.GivenNames) == 0 {
		t.Fatal("default catalog missing demographic names")
	}
}

func TestDefault_LabResultsCarryValues(t *testing.T) {
	for _, item := range Default().LabResults {
		if item.Value == "" {
			t.Fatalf("lab item %s has no observed value", item.Code)
		}
	}
}

func TestCategories_FixedOrder(t *testing.T) {
	want := []Category{
		Conditions, Medications, Allergies,
		Immunizations, Procedures, Devices, LabResults,
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSection_AllCategoriesMapped(t *testing.T) {
	for _, c := range Categories() {
		def, ok := Section(c)
		if !ok {
			t.Fatalf("no section for category %s", c)
		}
		if def.Title == "" || def.Code == "" {
			t.Fatalf("incomplete section label for %s: %+v", c, def)
		}
	}
}

func TestSection_UnknownCategory(t *testing.T) {
	if _, ok := Section(Category("nope")); ok {
		t.Fatal("expected no section for unknown category")
	}
}

func TestValidate_MissingCategory(t *testing.T) {
	cat := Default()
	cat.Immunizations = nil

	err := cat.Validate()
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestValidate_MissingDemographics(t *testing.T) {
	cat := Default()
	cat.Demographics.GivenNames = nil

	if err := cat.Validate(); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestValidate_EmptyPoolAllowed(t *testing.T) {
	cat := Default()
	cat.Devices = []Item{}

	if err := cat.Validate(); err != nil {
		t.Fatalf("empty (non-nil) pool should validate, got %v", err)
	}
}

const catalogJSON = `{
  "conditions": [{"system": "http://snomed.info/sct", "code": "38341003", "display": "Hypertension"}],
  "medications": [{"system": "http://www.nlm.nih.gov/research/umls/rxnorm", "code": "197361", "display": "Amlodipine 5 MG"}],
  "allergies": [{"system": "http://snomed.info/sct", "code": "91936005", "display": "Penicillin allergy"}],
  "immunizations": [{"system": "http://hl7.org/fhir/sid/cvx", "code": "141", "display": "Influenza"}],
  "procedures": [{"system": "http://www.ama-assn.org/go/cpt", "code": "93000", "display": "ECG"}],
  "devices": [{"system": "http://snomed.info/sct", "code": "14106009", "display": "Cardiac pacemaker"}],
  "lab_results": [{"system": "http://loinc.org", "code": "718-7", "display": "Hemoglobin", "value": "13.5 g/dL"}],
  "demographics": {
    "family_names": ["Smith"],
    "given_names": ["James"]
  }
}`

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(catalogJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Conditions) != 1 || cat.Conditions[0].Code != "38341003" {
		t.Fatalf("conditions not loaded: %+v", cat.Conditions)
	}
	if cat.LabResults[0].Value != "13.5 g/dL" {
		t.Fatalf("lab value not loaded: %+v", cat.LabResults[0])
	}
	if cat.Demographics.FamilyNames[0] != "Smith" {
		t.Fatalf("demographics not loaded: %+v", cat.Demographics)
	}
}

const catalogYAML = `
conditions:
  - {system: "http://snomed.info/sct", code: "38341003", display: "Hypertension"}
medications:
  - {system: "http://www.nlm.nih.gov/research/umls/rxnorm", code: "197361", display: "Amlodipine 5 MG"}
allergies:
  - {system: "http://snomed.info/sct", code: "91936005", display: "Penicillin allergy"}
immunizations:
  - {system: "http://hl7.org/fhir/sid/cvx", code: "141", display: "Influenza"}
procedures:
  - {system: "http://www.ama-assn.org/go/cpt", code: "93000", display: "ECG"}
devices:
  - {system: "http://snomed.info/sct", code: "14106009", display: "Cardiac pacemaker"}
lab_results:
  - {system: "http://loinc.org", code: "718-7", display: "Hemoglobin", value: "13.5 g/dL"}
demographics:
  family_names: [Smith]
  given_names: [James]
`

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Medications[0].Code != "197361" {
		t.Fatalf("medications not loaded: %+v", cat.Medications)
	}
}

func TestLoad_MissingPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"conditions": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

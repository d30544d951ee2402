// Package fhir renders the typed document graph produced by the generation
// engine into FHIR R4 JSON resources and document Bundles, and writes them
// out as files or NDJSON streams. The engine itself has no opinion on the
// interchange format; everything format-shaped lives here.
package fhir

import (
	"fmt"

	"github.com/ipsgen/ipsgen/internal/ips"
)

// Resource is a FHIR resource in its generic JSON shape.
type Resource = map[string]interface{}

func coding(system, code, display string) Resource {
	c := Resource{"system": system, "code": code}
	if display != "" {
		c["display"] = display
	}
	return c
}

func codeableConcept(system, code, display string) Resource {
	return Resource{"coding": []interface{}{coding(system, code, display)}}
}

func reference(ref ips.Reference) Resource {
	return Resource{"reference": ref.String()}
}

// RenderEntry renders one generated entry as a FHIR resource.
func RenderEntry(e *ips.Entry) (Resource, error) {
	switch e.Kind {
	case ips.KindPatient:
		return renderPatient(e), nil
	case ips.KindPractitioner:
		return renderPractitioner(e), nil
	case ips.KindCondition:
		return renderCondition(e), nil
	case ips.KindMedicationStatement:
		return renderMedicationStatement(e), nil
	case ips.KindAllergyIntolerance:
		return renderAllergyIntolerance(e), nil
	case ips.KindImmunization:
		return renderImmunization(e), nil
	case ips.KindProcedure:
		return renderProcedure(e), nil
	case ips.KindDevice:
		return renderDevice(e), nil
	case ips.KindObservation:
		return renderObservation(e), nil
	}
	return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
}

func renderPatient(e *ips.Entry) Resource {
	return Resource{
		"resourceType": "Patient",
		"id":           e.ID,
		"active":       true,
		"identifier": []interface{}{
			Resource{
				"type":   codeableConcept("http://terminology.hl7.org/CodeSystem/v2-0203", "MR", ""),
				"system": "urn:oid:1.2.36.146.595.217.0.1",
				"value":  e.Person.MRN,
			},
		},
		"name": []interface{}{
			Resource{
				"use":    "official",
				"family": e.Person.Family,
				"given":  []interface{}{e.Person.Given},
			},
		},
		"gender":    e.Person.Gender,
		"birthDate": e.Person.BirthDate,
	}
}

func renderPractitioner(e *ips.Entry) Resource {
	return Resource{
		"resourceType": "Practitioner",
		"id":           e.ID,
		"active":       true,
		"name": []interface{}{
			Resource{
				"use":    "official",
				"family": e.Person.Family,
				"given":  []interface{}{e.Person.Given},
				"prefix": []interface{}{e.Person.Prefix},
			},
		},
	}
}

func renderCondition(e *ips.Entry) Resource {
	return Resource{
		"resourceType":   "Condition",
		"id":             e.ID,
		"clinicalStatus": codeableConcept("http://terminology.hl7.org/CodeSystem/condition-clinical", e.Status, ""),
		"code":           codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"subject":        reference(e.Subject),
		"onsetDateTime":  e.Date,
	}
}

func renderMedicationStatement(e *ips.Entry) Resource {
	return Resource{
		"resourceType":              "MedicationStatement",
		"id":                        e.ID,
		"status":                    e.Status,
		"medicationCodeableConcept": codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"subject":                   reference(e.Subject),
		"effectiveDateTime":         e.Date,
	}
}

func renderAllergyIntolerance(e *ips.Entry) Resource {
	return Resource{
		"resourceType":   "AllergyIntolerance",
		"id":             e.ID,
		"clinicalStatus": codeableConcept("http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical", e.Status, ""),
		"code":           codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"patient":        reference(e.Subject),
		"recordedDate":   e.Date,
	}
}

func renderImmunization(e *ips.Entry) Resource {
	return Resource{
		"resourceType":       "Immunization",
		"id":                 e.ID,
		"status":             e.Status,
		"vaccineCode":        codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"patient":            reference(e.Subject),
		"occurrenceDateTime": e.Date,
		"primarySource":      true,
	}
}

func renderProcedure(e *ips.Entry) Resource {
	return Resource{
		"resourceType":      "Procedure",
		"id":                e.ID,
		"status":            e.Status,
		"code":              codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"subject":           reference(e.Subject),
		"performedDateTime": e.Date,
	}
}

func renderDevice(e *ips.Entry) Resource {
	return Resource{
		"resourceType":    "Device",
		"id":              e.ID,
		"status":          e.Status,
		"type":            codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"patient":         reference(e.Subject),
		"manufactureDate": e.Date,
	}
}

func renderObservation(e *ips.Entry) Resource {
	return Resource{
		"resourceType":      "Observation",
		"id":                e.ID,
		"status":            e.Status,
		"code":              codeableConcept(e.Code.System, e.Code.Code, e.Code.Display),
		"subject":           reference(e.Subject),
		"effectiveDateTime": e.Date,
		"valueString":       e.Value,
	}
}

package catalog

// Default returns the built-in catalog. The pools are small but drawn from
// real terminologies: SNOMED CT conditions, allergies and devices, RxNorm
// medications, CVX vaccines, CPT procedures, and LOINC lab panels.
func Default() *Catalog {
	return &Catalog{
		Conditions: []Item{
			{System: SystemSNOMED, Code: "38341003", Display: "Hypertension"},
			{System: SystemSNOMED, Code: "73211009", Display: "Diabetes mellitus"},
			{System: SystemSNOMED, Code: "195967001", Display: "Asthma"},
			{System: SystemSNOMED, Code: "22298006", Display: "Myocardial infarction"},
			{System: SystemSNOMED, Code: "13645005", Display: "Chronic obstructive pulmonary disease"},
			{System: SystemSNOMED, Code: "35489007", Display: "Depressive disorder"},
			{System: SystemSNOMED, Code: "396275006", Display: "Osteoarthritis"},
			{System: SystemSNOMED, Code: "40930008", Display: "Hypothyroidism"},
			{System: SystemSNOMED, Code: "235595009", Display: "Gastroesophageal reflux disease"},
			{System: SystemSNOMED, Code: "49436004", Display: "Atrial fibrillation"},
		},
		Medications: []Item{
			{System: SystemRxNorm, Code: "197361", Display: "Amlodipine 5 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "860975", Display: "Metformin 500 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "319864", Display: "Hydrochlorothiazide 25 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "310798", Display: "Lisinopril 10 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "197381", Display: "Atorvastatin 20 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "311700", Display: "Omeprazole 20 MG Delayed Release Oral Capsule"},
			{System: SystemRxNorm, Code: "198211", Display: "Levothyroxine Sodium 0.05 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "312961", Display: "Sertraline 50 MG Oral Tablet"},
			{System: SystemRxNorm, Code: "197591", Display: "Albuterol 0.83 MG/ML Inhalation Solution"},
			{System: SystemRxNorm, Code: "197446", Display: "Furosemide 40 MG Oral Tablet"},
		},
		Allergies: []Item{
			{System: SystemSNOMED, Code: "91936005", Display: "Penicillin allergy"},
			{System: SystemSNOMED, Code: "300916003", Display: "Latex allergy"},
			{System: SystemSNOMED, Code: "293637006", Display: "Peanut allergy"},
			{System: SystemSNOMED, Code: "387207008", Display: "Ibuprofen allergy"},
			{System: SystemSNOMED, Code: "293586001", Display: "Aspirin allergy"},
			{System: SystemSNOMED, Code: "300913006", Display: "Shellfish allergy"},
			{System: SystemSNOMED, Code: "419199007", Display: "Egg allergy"},
			{System: SystemSNOMED, Code: "294505004", Display: "Codeine allergy"},
		},
		Immunizations: []Item{
			{System: SystemCVX, Code: "08", Display: "Hepatitis B vaccine"},
			{System: SystemCVX, Code: "20", Display: "DTaP vaccine"},
			{System: SystemCVX, Code: "03", Display: "MMR vaccine"},
			{System: SystemCVX, Code: "21", Display: "Varicella vaccine"},
			{System: SystemCVX, Code: "141", Display: "Influenza, seasonal, injectable"},
			{System: SystemCVX, Code: "133", Display: "Pneumococcal conjugate PCV 13"},
			{System: SystemCVX, Code: "187", Display: "Recombinant zoster vaccine"},
			{System: SystemCVX, Code: "213", Display: "SARS-CoV-2 (COVID-19) vaccine, mRNA"},
		},
		Procedures: []Item{
			{System: SystemCPT, Code: "99213", Display: "Office or outpatient visit, established patient"},
			{System: SystemCPT, Code: "71046", Display: "Radiologic examination, chest, 2 views"},
			{System: SystemCPT, Code: "80053", Display: "Comprehensive metabolic panel"},
			{System: SystemCPT, Code: "85025", Display: "Complete blood count (CBC) with differential"},
			{System: SystemCPT, Code: "93000", Display: "Electrocardiogram, routine ECG"},
			{System: SystemCPT, Code: "36415", Display: "Venipuncture, routine"},
			{System: SystemCPT, Code: "90837", Display: "Psychotherapy, 60 minutes"},
			{System: SystemCPT, Code: "81001", Display: "Urinalysis, automated, with microscopy"},
		},
		Devices: []Item{
			{System: SystemSNOMED, Code: "14106009", Display: "Cardiac pacemaker"},
			{System: SystemSNOMED, Code: "72506001", Display: "Implantable defibrillator"},
			{System: SystemSNOMED, Code: "304120007", Display: "Total hip replacement prosthesis"},
			{System: SystemSNOMED, Code: "69805005", Display: "Insulin pump"},
			{System: SystemSNOMED, Code: "58938008", Display: "Wheelchair"},
			{System: SystemSNOMED, Code: "6012004", Display: "Hearing aid"},
		},
		LabResults: []Item{
			{System: SystemLOINC, Code: "718-7", Display: "Hemoglobin [Mass/volume] in Blood", Value: "13.5 g/dL"},
			{System: SystemLOINC, Code: "2339-0", Display: "Glucose [Mass/volume] in Blood", Value: "95 mg/dL"},
			{System: SystemLOINC, Code: "2160-0", Display: "Creatinine [Mass/volume] in Serum", Value: "0.9 mg/dL"},
			{System: SystemLOINC, Code: "4548-4", Display: "Hemoglobin A1c", Value: "5.6 %"},
			{System: SystemLOINC, Code: "2093-3", Display: "Total Cholesterol", Value: "180 mg/dL"},
			{System: SystemLOINC, Code: "2571-8", Display: "Triglycerides", Value: "120 mg/dL"},
			{System: SystemLOINC, Code: "2708-6", Display: "Oxygen saturation", Value: "98 %"},
			{System: SystemLOINC, Code: "6690-2", Display: "Leukocytes [#/volume] in Blood", Value: "6.7 10*3/uL"},
		},
		Demographics: Demographics{
			FamilyNames: []string{
				"Smith", "Garcia", "Kim", "Muller", "Rossi", "Ivanov",
				"Johnson", "Williams", "Brown", "Jones", "Martinez",
				"Nguyen", "Silva", "Kowalski", "Tanaka", "Okafor",
			},
			GivenNames: []string{
				"James", "Maria", "Wei", "Anna", "Luca", "Olga",
				"Emma", "Noah", "Sofia", "Liam", "Yuki", "Amara",
				"Elena", "David", "Fatima", "Oliver",
			},
		},
	}
}

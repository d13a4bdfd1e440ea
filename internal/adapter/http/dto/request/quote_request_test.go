package request

import (
	"encoding/json"
	"testing"
)

// The validator addresses fields by their camelCase wire names, so the
// documented payload type must marshal to exactly those keys.
func TestQuoteSubmissionWireShape(t *testing.T) {
	submission := QuoteSubmission{
		PersonalInfo: PersonalInfoPayload{
			FirstName:   "Maria",
			LastName:    "Silva",
			Email:       "maria.silva@example.com",
			Phone:       "555-123-4567",
			DateOfBirth: "1990-04-15",
			Address:     AddressPayload{Street: "123 Main St", City: "Springfield", State: "IL", ZipCode: "62704"},
		},
		CoverageDetails: CoverageDetailsPayload{
			InsuranceType:  "auto",
			CoverageAmount: 50000,
			Deductible:     1000,
		},
	}

	raw, err := json.Marshal(submission)
	if err != nil {
		t.Fatalf("marshal submission: %v", err)
	}

	var decoded map[string]map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal submission: %v", err)
	}

	personal, ok := decoded["personalInfo"]
	if !ok {
		t.Fatalf("missing personalInfo key: %s", raw)
	}
	for _, key := range []string{"firstName", "lastName", "email", "phone", "dateOfBirth", "address"} {
		if _, ok := personal[key]; !ok {
			t.Fatalf("missing personalInfo.%s key: %s", key, raw)
		}
	}

	coverage, ok := decoded["coverageDetails"]
	if !ok {
		t.Fatalf("missing coverageDetails key: %s", raw)
	}
	for _, key := range []string{"insuranceType", "coverageAmount", "deductible"} {
		if _, ok := coverage[key]; !ok {
			t.Fatalf("missing coverageDetails.%s key: %s", key, raw)
		}
	}

	if address, ok := personal["address"].(map[string]any); !ok {
		t.Fatalf("address is not an object: %s", raw)
	} else if _, ok := address["zipCode"]; !ok {
		t.Fatalf("missing address.zipCode key: %s", raw)
	}
}

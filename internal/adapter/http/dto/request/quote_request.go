package request

// QuoteSubmission documents the wire shape of a quotation payload.
//
// The quote endpoints intentionally do NOT bind into this struct: validation
// must tolerate missing fields and wrong types and report every violation,
// which a typed bind cannot do. The type exists for the Swagger contract and
// as the builder test fixtures marshal from.
type QuoteSubmission struct {
	PersonalInfo    PersonalInfoPayload    `json:"personalInfo"`
	CoverageDetails CoverageDetailsPayload `json:"coverageDetails"`
}

type PersonalInfoPayload struct {
	FirstName   string         `json:"firstName" example:"Maria"`
	LastName    string         `json:"lastName" example:"Silva"`
	Email       string         `json:"email" example:"maria.silva@example.com"`
	Phone       string         `json:"phone" example:"555-123-4567"`
	DateOfBirth string         `json:"dateOfBirth" example:"1990-04-15"`
	Address     AddressPayload `json:"address"`
}

type AddressPayload struct {
	Street  string `json:"street" example:"123 Main St"`
	City    string `json:"city" example:"Springfield"`
	State   string `json:"state" example:"IL"`
	ZipCode string `json:"zipCode" example:"62704"`
}

type CoverageDetailsPayload struct {
	InsuranceType     string   `json:"insuranceType" example:"auto" enums:"auto,home,life,health"`
	CoverageAmount    float64  `json:"coverageAmount" example:"50000"`
	Deductible        float64  `json:"deductible" example:"1000"`
	AdditionalOptions []string `json:"additionalOptions,omitempty"`
}

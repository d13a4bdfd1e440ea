package entities

// InsuranceType enumerates the product lines the quotation engine prices.
//
// The canonical values are the lowercase strings below; validation matches
// them case-sensitively.

type InsuranceType string

const (
	InsuranceTypeAuto   InsuranceType = "auto"
	InsuranceTypeHome   InsuranceType = "home"
	InsuranceTypeLife   InsuranceType = "life"
	InsuranceTypeHealth InsuranceType = "health"
)

// Address is the insured party's mailing address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// PersonalInfo identifies the person requesting coverage.
//
// DateOfBirth stays in its ISO wire form (YYYY-MM-DD); validation guarantees
// it parses before the calculator ever sees it.
type PersonalInfo struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"dateOfBirth"`
	Address     Address `json:"address"`
}

// CoverageDetails describes the coverage being quoted.
type CoverageDetails struct {
	InsuranceType     InsuranceType `json:"insuranceType"`
	CoverageAmount    float64       `json:"coverageAmount"`
	Deductible        float64       `json:"deductible"`
	AdditionalOptions []string      `json:"additionalOptions,omitempty"`
}

// QuoteRequest is the customer-supplied input to the quotation engine.
//
// A request is priced as a whole or rejected as a whole; no partial quote is
// ever produced from partially valid input.
type QuoteRequest struct {
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	CoverageDetails CoverageDetails `json:"coverageDetails"`
}

// FieldError is a single validation finding, addressed by dotted field path
// (e.g. "personalInfo.email").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating a candidate payload.
//
// Errors keeps the insertion order of the checks performed so clients get a
// reproducible report. IsValid is false iff Errors is non-empty.
type ValidationResult struct {
	IsValid bool         `json:"isValid"`
	Errors  []FieldError `json:"errors,omitempty"`
}

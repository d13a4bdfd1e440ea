package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\d{3}-\d{3}-\d{4}|\d{10})$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

const (
	dateOfBirthLayout = "2006-01-02"

	// Ages past this are treated as data-entry errors, not customers.
	maxInsurableAge = 130
)

// QuoteValidator decides whether a candidate payload of unknown provenance is
// well-formed enough to price.
//
// Contract notes:
//   - The candidate is an already-decoded JSON value (maps, slices, strings,
//     json.Number/float64). Missing fields, wrong types and extra fields are
//     all tolerated; the validator never panics on malformed input.
//   - Checks run in a fixed order and do not short-circuit, so a client gets
//     every violation in one pass and error ordering is reproducible.
//   - An invalid request is a normal outcome represented as data, not an
//     error return.

type QuoteValidator struct {
	clock interfaces.IClock
}

func NewQuoteValidator(clock interfaces.IClock) *QuoteValidator {
	return &QuoteValidator{clock: clock}
}

// Validate runs every structural and semantic check against candidate and
// reports all violations in check order.
func (v *QuoteValidator) Validate(candidate any) entities.ValidationResult {
	var errs []entities.FieldError
	report := func(field, message string) {
		errs = append(errs, entities.FieldError{Field: field, Message: message})
	}

	root, ok := asObject(candidate)
	if !ok {
		report("request", "must be a JSON object")
		return entities.ValidationResult{IsValid: false, Errors: errs}
	}

	personal, personalOK := asObject(root["personalInfo"])
	if !personalOK {
		report("personalInfo", "is required and must be an object")
	}
	coverage, coverageOK := asObject(root["coverageDetails"])
	if !coverageOK {
		report("coverageDetails", "is required and must be an object")
	}

	if personalOK {
		v.checkPersonalInfo(personal, report)
	}
	if coverageOK {
		v.checkCoverageDetails(coverage, report)
	}

	return entities.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func (v *QuoteValidator) checkPersonalInfo(personal map[string]any, report func(field, message string)) {
	if !isNonEmptyString(personal["firstName"]) {
		report("personalInfo.firstName", "must be a non-empty string")
	}
	if !isNonEmptyString(personal["lastName"]) {
		report("personalInfo.lastName", "must be a non-empty string")
	}

	if email, ok := asString(personal["email"]); !ok || !emailPattern.MatchString(email) {
		report("personalInfo.email", "must be a valid email address")
	}

	if phone, ok := asString(personal["phone"]); !ok || !phonePattern.MatchString(phone) {
		report("personalInfo.phone", "must match ###-###-#### or be 10 digits")
	}

	v.checkDateOfBirth(personal["dateOfBirth"], report)

	if address, ok := asObject(personal["address"]); !ok {
		report("personalInfo.address", "is required and must be an object")
	} else if zip, ok := asString(address["zipCode"]); !ok || !zipPattern.MatchString(zip) {
		report("personalInfo.address.zipCode", "must be a 5-digit or ZIP+4 code")
	}
}

func (v *QuoteValidator) checkDateOfBirth(raw any, report func(field, message string)) {
	value, ok := asString(raw)
	if !ok {
		report("personalInfo.dateOfBirth", "must be an ISO date (YYYY-MM-DD)")
		return
	}
	dob, err := time.Parse(dateOfBirthLayout, value)
	if err != nil {
		report("personalInfo.dateOfBirth", "must be an ISO date (YYYY-MM-DD)")
		return
	}

	now := v.clock.Now()
	if dob.After(now) {
		report("personalInfo.dateOfBirth", "must be in the past")
		return
	}
	if ageAt(dob, now) > maxInsurableAge {
		report("personalInfo.dateOfBirth", "implies an implausible age")
	}
}

func (v *QuoteValidator) checkCoverageDetails(coverage map[string]any, report func(field, message string)) {
	if insuranceType, ok := asString(coverage["insuranceType"]); !ok || !isKnownInsuranceType(insuranceType) {
		report("coverageDetails.insuranceType", "must be one of: auto, home, life, health")
	}

	if amount, ok := asNumber(coverage["coverageAmount"]); !ok || amount <= 0 {
		report("coverageDetails.coverageAmount", "must be a number greater than zero")
	}

	if deductible, ok := asNumber(coverage["deductible"]); !ok || deductible < 0 {
		report("coverageDetails.deductible", "must be a non-negative number")
	}
}

func isKnownInsuranceType(value string) bool {
	switch entities.InsuranceType(value) {
	case entities.InsuranceTypeAuto, entities.InsuranceTypeHome, entities.InsuranceTypeLife, entities.InsuranceTypeHealth:
		return true
	}
	return false
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func isNonEmptyString(v any) bool {
	s, ok := asString(v)
	return ok && strings.TrimSpace(s) != ""
}

// asNumber accepts the numeric shapes a decoded JSON candidate can carry and
// rejects anything non-finite.
func asNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

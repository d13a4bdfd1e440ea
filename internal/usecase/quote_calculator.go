package usecase

import (
	"crypto/rand"
	"fmt"
	"time"

	"seguros_xpto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Annual base rates per product line, in currency-agnostic units.
var baseAnnualRates = map[entities.InsuranceType]float64{
	entities.InsuranceTypeAuto:   1200,
	entities.InsuranceTypeHome:   800,
	entities.InsuranceTypeLife:   300,
	entities.InsuranceTypeHealth: 2400,
}

// referenceAlphabet deliberately drops 0/O/1/I so reference numbers stay
// legible when read back over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const quoteValidityDays = 30

// QuoteCalculator turns a validated QuoteRequest plus a reference "now" into
// a fully populated Quote.
//
// The calculator assumes its input already passed QuoteValidator; feeding it
// anything else is a contract violation (it panics rather than coercing bad
// data into a valid-looking quote). It holds no state and is safe for
// concurrent use; the only shared resource is the entropy source behind the
// identifier generators.

type QuoteCalculator struct{}

func NewQuoteCalculator() *QuoteCalculator {
	return &QuoteCalculator{}
}

// ComputeQuote derives the risk-adjusted premium and stamps identifiers and
// lifecycle fields. Deterministic for a fixed request and now, except for the
// random component of the identifiers.
func (c *QuoteCalculator) ComputeQuote(req entities.QuoteRequest, now time.Time) entities.Quote {
	dob, err := time.Parse(dateOfBirthLayout, req.PersonalInfo.DateOfBirth)
	if err != nil {
		panic(fmt.Sprintf("quote calculator received unvalidated dateOfBirth %q: %v", req.PersonalInfo.DateOfBirth, err))
	}
	age := ageAt(dob, now)

	insuranceType := req.CoverageDetails.InsuranceType
	baseRate, ok := baseAnnualRates[insuranceType]
	if !ok {
		panic(fmt.Sprintf("quote calculator received unknown insurance type %q", insuranceType))
	}

	// basePremium is the fully risk- and coverage-adjusted amount before the
	// deductible discount; all three components are rounded half-up to two
	// decimals so totalPremium closes exactly over the published figures.
	basePremium := decimal.NewFromFloat(baseRate).
		Mul(decimal.NewFromFloat(riskFactor(insuranceType, age))).
		Mul(coverageScale(req.CoverageDetails.CoverageAmount)).
		Round(2)
	discounts := basePremium.
		Mul(decimal.NewFromFloat(deductibleDiscountRate(req.CoverageDetails.Deductible))).
		Round(2)
	surcharges := decimal.Zero
	total := basePremium.Sub(discounts).Add(surcharges).Round(2)

	return entities.Quote{
		ID:              newQuoteID(now),
		ReferenceNumber: newReferenceNumber(),
		PersonalInfo:    req.PersonalInfo,
		CoverageDetails: req.CoverageDetails,
		Premium: entities.Premium{
			BasePremium:  basePremium.InexactFloat64(),
			Discounts:    discounts.InexactFloat64(),
			Surcharges:   surcharges.InexactFloat64(),
			TotalPremium: total.InexactFloat64(),
		},
		Status:         entities.QuoteStatusActive,
		ExpirationDate: now.AddDate(0, 0, quoteValidityDays),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// riskFactor is total over all valid ages: bracket bounds are inclusive below
// and exclusive above, brackets never overlap, and anything uncovered falls
// through to 1.0.
func riskFactor(insuranceType entities.InsuranceType, age int) float64 {
	switch insuranceType {
	case entities.InsuranceTypeAuto:
		switch {
		case age < 25:
			return 1.5
		case age < 35:
			return 1.2
		case age >= 65:
			return 1.3
		}
	case entities.InsuranceTypeLife:
		switch {
		case age >= 50:
			return 1.4
		case age >= 40:
			return 1.2
		}
	case entities.InsuranceTypeHealth:
		switch {
		case age >= 60:
			return 1.6
		case age >= 45:
			return 1.3
		}
	case entities.InsuranceTypeHome:
		// Home premiums do not depend on the insured party's age.
	}
	return 1.0
}

// coverageScale grows the premium by 10% per 100k of coverage. Monotone
// non-decreasing, and 1.0 at zero coverage so the base rates keep their
// stated magnitudes.
func coverageScale(coverageAmount float64) decimal.Decimal {
	return decimal.NewFromInt(1).Add(decimal.NewFromFloat(coverageAmount).Div(decimal.NewFromInt(1_000_000)))
}

// deductibleDiscountRate rewards higher deductibles with a larger discount.
// Tiers are contiguous and lower-inclusive.
func deductibleDiscountRate(deductible float64) float64 {
	switch {
	case deductible >= 2000:
		return 0.15
	case deductible >= 1000:
		return 0.10
	case deductible >= 500:
		return 0.05
	}
	return 0
}

// ageAt floors to whole years: a birthday not yet reached this year does not
// count.
func ageAt(dateOfBirth, now time.Time) int {
	years := now.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}

// newQuoteID combines the computation timestamp with a random suffix so two
// quotes computed in the same millisecond still cannot collide in-process.
func newQuoteID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())
}

// newReferenceNumber builds the customer-facing QT-XXXXXX-XXXXXX identifier.
// Collision avoidance is probabilistic (no central registry), which is enough
// entropy for a human-quoted reference.
func newReferenceNumber() string {
	return fmt.Sprintf("QT-%s-%s", randomSegment(6), randomSegment(6))
}

func randomSegment(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("reading entropy for reference number: %v", err))
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(out)
}

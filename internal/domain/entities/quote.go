package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - The quotation engine only ever emits StatusActive; the remaining states
//     belong to whichever system persists and ages quotes afterwards.
//   - Expiration is a policy applied by readers comparing ExpirationDate to
//     their own clock, never a mutation performed here.

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusActive    QuoteStatus = "active"
	QuoteStatusExpired   QuoteStatus = "expired"
	QuoteStatusConverted QuoteStatus = "converted"
)

// Premium decomposes the quoted price.
//
// TotalPremium always equals BasePremium - Discounts + Surcharges rounded to
// two decimal places. Surcharges is reserved for future rules and is currently
// always zero.
type Premium struct {
	BasePremium  float64 `json:"basePremium"`
	Discounts    float64 `json:"discounts"`
	Surcharges   float64 `json:"surcharges"`
	TotalPremium float64 `json:"totalPremium"`
}

// Quote is the computed price offer handed back to the caller.
//
// A Quote is constructed once, atomically, and never mutated. ID is an opaque
// process-unique identifier; ReferenceNumber is the short customer-facing one
// (QT-XXXXXX-XXXXXX) and uses a deliberately different scheme so the two are
// never confused.
type Quote struct {
	ID              string          `json:"id"`
	ReferenceNumber string          `json:"referenceNumber"`
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	CoverageDetails CoverageDetails `json:"coverageDetails"`
	Premium         Premium         `json:"premium"`
	Status          QuoteStatus     `json:"status"`
	ExpirationDate  time.Time       `json:"expirationDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

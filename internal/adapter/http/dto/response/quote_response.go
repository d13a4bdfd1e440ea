package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"
)

type PremiumResponse struct {
	BasePremium  float64 `json:"basePremium"`
	Discounts    float64 `json:"discounts"`
	Surcharges   float64 `json:"surcharges"`
	TotalPremium float64 `json:"totalPremium"`
}

type QuoteResponse struct {
	ID              string                   `json:"id"`
	ReferenceNumber string                   `json:"referenceNumber"`
	PersonalInfo    entities.PersonalInfo    `json:"personalInfo"`
	CoverageDetails entities.CoverageDetails `json:"coverageDetails"`
	Premium         PremiumResponse          `json:"premium"`
	Status          string                   `json:"status"`
	ExpirationDate  time.Time                `json:"expirationDate"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		ReferenceNumber: q.ReferenceNumber,
		PersonalInfo:    q.PersonalInfo,
		CoverageDetails: q.CoverageDetails,
		Premium: PremiumResponse{
			BasePremium:  q.Premium.BasePremium,
			Discounts:    q.Premium.Discounts,
			Surcharges:   q.Premium.Surcharges,
			TotalPremium: q.Premium.TotalPremium,
		},
		Status:         string(q.Status),
		ExpirationDate: q.ExpirationDate,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newMockedQuoteUseCase(t *testing.T, now time.Time) *QuoteUseCase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := mock_interfaces.NewMockIClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	return NewQuoteUseCase(NewQuoteValidator(clock), NewQuoteCalculator(), clock)
}

func validPayload(t *testing.T) json.RawMessage {
	t.Helper()
	payload, err := json.Marshal(validCandidate())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return payload
}

func TestQuoteUseCase_GenerateQuote(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("malformed payload", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)
		_, err := uc.GenerateQuote(context.Background(), json.RawMessage("{"))
		if !errors.Is(err, ErrMalformedQuotePayload) {
			t.Fatalf("expected ErrMalformedQuotePayload, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)
		_, err := uc.GenerateQuote(context.Background(), nil)
		if !errors.Is(err, ErrMalformedQuotePayload) {
			t.Fatalf("expected ErrMalformedQuotePayload, got %v", err)
		}
	})

	t.Run("invalid request carries full error report", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)

		candidate := validCandidate()
		delete(personalInfo(candidate), "email")
		coverageDetails(candidate)["coverageAmount"] = json.Number("-5")
		payload, _ := json.Marshal(candidate)

		_, err := uc.GenerateQuote(context.Background(), payload)
		var validationErr *ValidationFailedError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationFailedError, got %v", err)
		}
		if validationErr.Result.IsValid {
			t.Fatalf("expected invalid result")
		}
		got := errorFields(validationErr.Result)
		want := []string{"personalInfo.email", "coverageDetails.coverageAmount"}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("expected fields %v, got %v", want, got)
		}
	})

	t.Run("success stamps lifecycle from the injected clock", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)

		quote, err := uc.GenerateQuote(context.Background(), validPayload(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ID == "" || quote.ReferenceNumber == "" {
			t.Fatalf("expected generated identifiers, got %+v", quote)
		}
		if quote.Status != entities.QuoteStatusActive {
			t.Fatalf("expected active status, got %s", quote.Status)
		}
		if !quote.CreatedAt.Equal(now) || !quote.UpdatedAt.Equal(now) {
			t.Fatalf("expected timestamps %v, got %v / %v", now, quote.CreatedAt, quote.UpdatedAt)
		}
		if !quote.ExpirationDate.Equal(now.AddDate(0, 0, 30)) {
			t.Fatalf("expected expiration %v, got %v", now.AddDate(0, 0, 30), quote.ExpirationDate)
		}
		if quote.Premium.TotalPremium <= 0 {
			t.Fatalf("expected positive total premium, got %v", quote.Premium.TotalPremium)
		}
	})
}

func TestQuoteUseCase_ValidateRequest(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("malformed payload", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)
		_, err := uc.ValidateRequest(json.RawMessage("not json"))
		if !errors.Is(err, ErrMalformedQuotePayload) {
			t.Fatalf("expected ErrMalformedQuotePayload, got %v", err)
		}
	})

	t.Run("valid request is valid on repeated validation", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)

		for i := 0; i < 2; i++ {
			result, err := uc.ValidateRequest(validPayload(t))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsValid || len(result.Errors) != 0 {
				t.Fatalf("expected valid result, got %+v", result)
			}
		}
	})

	t.Run("invalid request is a result, not an error", func(t *testing.T) {
		uc := newMockedQuoteUseCase(t, now)

		candidate := validCandidate()
		personalInfo(candidate)["phone"] = "call me"
		payload, _ := json.Marshal(candidate)

		result, err := uc.ValidateRequest(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsValid || len(result.Errors) != 1 {
			t.Fatalf("expected one violation, got %+v", result)
		}
		if result.Errors[0].Field != "personalInfo.phone" {
			t.Fatalf("expected personalInfo.phone, got %s", result.Errors[0].Field)
		}
	})
}

package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
)

var (
	ErrMalformedQuotePayload = errors.New("malformed quote payload")
)

// ValidationFailedError carries the full ordered error report of a rejected
// request. It is an expected, data-driven outcome: callers surface it to the
// client in one response instead of raising it as a fault.
type ValidationFailedError struct {
	Result entities.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("quote request failed validation with %d error(s)", len(e.Result.Errors))
}

// IQuoteUseCase exposes the two quotation operations.
//
//   - ValidateRequest => the standalone validation pass
//   - GenerateQuote   => validate, then price and assemble the Quote
//
// The calculator is never invoked for a payload that fails validation.

type IQuoteUseCase interface {
	ValidateRequest(payload json.RawMessage) (entities.ValidationResult, error)
	GenerateQuote(ctx context.Context, payload json.RawMessage) (entities.Quote, error)
}

type QuoteUseCase struct {
	validator  *QuoteValidator
	calculator *QuoteCalculator
	clock      interfaces.IClock
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(validator *QuoteValidator, calculator *QuoteCalculator, clock interfaces.IClock) *QuoteUseCase {
	return &QuoteUseCase{validator: validator, calculator: calculator, clock: clock}
}

// ValidateRequest decodes the raw payload and runs the validator. A payload
// that is not JSON at all yields ErrMalformedQuotePayload; an invalid request
// is a normal result, not an error.
func (u *QuoteUseCase) ValidateRequest(payload json.RawMessage) (entities.ValidationResult, error) {
	candidate, err := decodeCandidate(payload)
	if err != nil {
		return entities.ValidationResult{}, ErrMalformedQuotePayload
	}
	return u.validator.Validate(candidate), nil
}

// GenerateQuote validates the payload and, only on success, prices it with
// the injected clock's current instant.
func (u *QuoteUseCase) GenerateQuote(ctx context.Context, payload json.RawMessage) (entities.Quote, error) {
	candidate, err := decodeCandidate(payload)
	if err != nil {
		return entities.Quote{}, ErrMalformedQuotePayload
	}

	if result := u.validator.Validate(candidate); !result.IsValid {
		return entities.Quote{}, &ValidationFailedError{Result: result}
	}

	// Safe to bind into the typed request now that validation vouched for the
	// payload's shape.
	var req entities.QuoteRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return entities.Quote{}, ErrMalformedQuotePayload
	}

	return u.calculator.ComputeQuote(req, u.clock.Now()), nil
}

// decodeCandidate keeps numbers as json.Number so validation can tell numeric
// fields from strings without float coercion surprises.
func decodeCandidate(payload json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var candidate any
	if err := dec.Decode(&candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

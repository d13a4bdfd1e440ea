package response

import "seguros_xpto/internal/domain/entities"

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResultResponse mirrors the validator's report. Errors keeps the
// validator's check order so clients can rely on reproducible output.
type ValidationResultResponse struct {
	IsValid bool                 `json:"isValid"`
	Errors  []FieldErrorResponse `json:"errors"`
}

func FromValidationResult(r entities.ValidationResult) ValidationResultResponse {
	errs := make([]FieldErrorResponse, 0, len(r.Errors))
	for _, fe := range r.Errors {
		errs = append(errs, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return ValidationResultResponse{IsValid: r.IsValid, Errors: errs}
}

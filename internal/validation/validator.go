package validation

import (
	"trivia-quiz/internal/domain"
	"trivia-quiz/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator validates API request inputs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateQuizRequest checks the /quiz query parameters.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs domain.ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		switch fieldErr.Field() {
		case "CategoryID":
			errs = append(errs, domain.NewInvalidFieldError("category", "must be a positive integer"))
		case "Difficulty":
			errs = append(errs, domain.NewInvalidFieldError("difficulty", "must be one of easy, medium, hard"))
		case "Amount":
			errs = append(errs, domain.NewInvalidFieldError("amount", "must be a positive integer"))
		}
	}
	return errs
}

// ValidateScoreRequest checks that the score body carries an answers
// sequence. Empty is allowed; absent is not.
func (v *Validator) ValidateScoreRequest(req *dto.ScoreRequest) domain.ValidationErrors {
	if req.Answers == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("answers")}
	}
	return nil
}

package bookshelf

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validation failures. They never reach the network.
var (
	ErrTitleAuthorRequired = errors.New("title and author are required")
	ErrReviewerRequired    = errors.New("reviewer name is required")
	ErrRatingRange         = errors.New("rating must be between 1 and 5")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// notblank checks presence only; the value is sent untrimmed.
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.String {
				return false
			}
			return strings.TrimSpace(field.String()) != ""
		})
	})
	return validate
}

// Validate reports ErrTitleAuthorRequired when title or author is blank.
func (in BookCreate) Validate() error {
	if err := validatorInstance().Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return ErrTitleAuthorRequired
		}
		return err
	}
	return nil
}

// Validate reports ErrReviewerRequired for a blank name, then ErrRatingRange
// for a rating outside 1..5.
func (in ReviewCreate) Validate() error {
	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "ReviewerName" {
			return ErrReviewerRequired
		}
	}
	return ErrRatingRange
}

package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"

	// MaxProfileAge bounds a profile's birth year to [currentYear-MaxProfileAge, currentYear].
	MaxProfileAge = 120

	// MinCareerAge is the minimum number of years between a doctor's birth
	// year and career start year.
	MinCareerAge = 18
)

// Violation is a single field-level validation failure. Code is a stable
// identifier callers can branch on, never a free-text message.
type Violation struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// ValidationError carries the full violation list for a rejected operation.
// A non-empty list rejects the whole operation; nothing is partially applied.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a single-violation error, used where a check
// lives outside struct validation (e.g. the doctor status enum).
func NewValidationError(field, code string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Code: code}}}
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Violations report JSON field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("non_nil_uuid", validateNonNilUUID)
	v.RegisterValidation("age_range", validateAgeRange)
	v.RegisterValidation("linked_to_account", validateLinkedToAccount)
	v.RegisterValidation("career_start", validateCareerStart)

	return &CustomValidator{validator: v}
}

// Validate runs the rule set declared on i and returns a *ValidationError
// listing every violation, or nil when i is valid. Rules chained on one
// field stop at the first failure; independent fields are all evaluated.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]Violation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, Violation{Field: e.Field(), Code: e.Tag()})
	}
	return &ValidationError{Violations: violations}
}

// validateNonNilUUID accepts a well-formed non-nil identifier. Combined with
// omitempty it rejects only the present-but-zero case on optional references.
func validateNonNilUUID(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(uuid.UUID)
	if !ok {
		return false
	}
	return id != uuid.Nil
}

func validateAgeRange(fl validator.FieldLevel) bool {
	dob, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	currentYear := time.Now().UTC().Year()
	return dob.Year() <= currentYear && dob.Year() >= currentYear-MaxProfileAge
}

// validateLinkedToAccount enforces the patient cross-field rule: the flag
// must be true iff an account reference is present on the same request.
func validateLinkedToAccount(fl validator.FieldLevel) bool {
	linked := fl.Field().Bool()

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	accountField := parent.FieldByName("AccountID")
	if !accountField.IsValid() || accountField.Kind() != reflect.Ptr {
		return false
	}
	return linked == !accountField.IsNil()
}

// validateCareerStart checks careerStartYear >= birthYear + MinCareerAge.
// An unparseable date of birth is left to its own field rules.
func validateCareerStart(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	dobField := parent.FieldByName("DateOfBirth")
	if !dobField.IsValid() || dobField.Kind() != reflect.String {
		return true
	}
	dob, err := time.Parse(dateLayout, dobField.String())
	if err != nil {
		return true
	}
	return year >= dob.Year()+MinCareerAge
}

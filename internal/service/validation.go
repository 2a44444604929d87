package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"employee-roster/internal/database/models"
	apperrors "employee-roster/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s()-]+$`)
)

// MinimumAgeYears is the youngest an employee may be at validation time
const MinimumAgeYears = 18

// daysPerYear approximates a year for age calculations
const daysPerYear = 365.25

// ValidationResult is the outcome of validating a candidate record. Errors
// maps JSON field names to stable message keys.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// Err returns the result as a *ValidationError, or nil when valid
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return apperrors.NewValidationError(r.Errors)
}

// NewValidator creates a validator with the employee rules registered and
// field names reported by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("simpleemail", matchPattern(emailPattern))
	_ = v.RegisterValidation("phone", matchPattern(phonePattern))
	return v
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Validate checks candidate against the field rules and the collection. All
// checks run; at most one key is reported per field. When isUpdate is true
// the candidate's own id is excluded from the email uniqueness check.
func (s *EmployeeService) Validate(candidate models.Employee, isUpdate bool) ValidationResult {
	errs := make(map[string]string)

	if err := s.validator.Struct(candidate); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			s.log.WithError(err).Error("Unexpected validator failure")
			errs["_"] = apperrors.KeyGeneric
		}
		for _, fe := range fieldErrs {
			errs[fe.Field()] = messageKey(fe)
		}
	}

	if strings.TrimSpace(candidate.Email) != "" && s.emailTaken(candidate.Email, candidate.ID, isUpdate) {
		errs["email"] = apperrors.KeyEmailExists
	}

	now := s.clock.Now()
	birth, birthOK := parseDate(candidate.DateOfBirth)
	if birthOK {
		switch {
		case birth.After(now):
			errs["dateOfBirth"] = apperrors.KeyFutureDate
		case ageYears(birth, now) < MinimumAgeYears:
			errs["dateOfBirth"] = apperrors.KeyUnderage
		}
	}

	if employment, ok := parseDate(candidate.DateOfEmployment); ok && birthOK && employment.Before(birth) {
		errs["dateOfEmployment"] = apperrors.KeyEmploymentBeforeBirth
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func (s *EmployeeService) emailTaken(email, selfID string, isUpdate bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if !strings.EqualFold(e.Email, email) {
			continue
		}
		if isUpdate && e.ID == selfID {
			continue
		}
		return true
	}
	return false
}

func messageKey(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return apperrors.KeyRequired
	case "simpleemail":
		return apperrors.KeyInvalidEmail
	case "phone":
		return apperrors.KeyInvalidPhone
	case "datetime":
		return apperrors.KeyInvalidDate
	case "oneof":
		if fe.Field() == "department" {
			return apperrors.KeyInvalidDepartment
		}
		return apperrors.KeyInvalidPosition
	}
	return apperrors.KeyGeneric
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func ageYears(birth, now time.Time) float64 {
	return now.Sub(birth).Hours() / 24 / daysPerYear
}

// internal/domain/homework/validator.go
package homework

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Payload is the raw response body of the homework statuses endpoint.
type Payload []byte

// CurrentDate reads current_date without validating the rest of the payload.
// ok is false when the field is absent, not a number or outside the int64 range.
func (p Payload) CurrentDate() (ts int64, ok bool) {
	var head struct {
		CurrentDate *float64 `json:"current_date"`
	}
	if err := json.Unmarshal(p, &head); err != nil || head.CurrentDate == nil {
		return 0, false
	}
	date := *head.CurrentDate
	if date < math.MinInt64 || date >= math.MaxInt64 {
		return 0, false
	}
	return int64(date), true
}

// Response is a payload that passed validation. Homework entries stay raw:
// only the most recent one is ever parsed, see ParseRecord.
type Response struct {
	Homeworks   *[]json.RawMessage `json:"homeworks" validate:"required"`
	CurrentDate *float64           `json:"current_date" validate:"required"`
}

// Validator checks API payloads against the documented response shape.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validate}
}

// Validate returns the raw homework list of a well-formed payload, most recent first.
// Any shape mismatch is reported as ErrValidation and nothing is returned.
// Entries are not inspected here; a broken entry fails in ParseRecord.
func (v *Validator) Validate(p Payload) ([]json.RawMessage, error) {
	var resp Response
	if err := json.Unmarshal(p, &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, fmt.Errorf("%w: field %q must not be %s", ErrValidation, typeErr.Field, typeErr.Value)
		}
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := v.validate.Struct(resp); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				missing = append(missing, fe.Field())
			}
			return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
		}
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return *resp.Homeworks, nil
}

// Package validation collects per-field errors for inbound request
// bodies. Every violated field is reported, not just the first.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Errors maps a field name to the messages of its violated constraints.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e[f], "; ")))
	}
	return strings.Join(parts, ", ")
}

// Validator accumulates field violations for one request body.
type Validator struct {
	errs Errors
}

func New() *Validator {
	return &Validator{errs: Errors{}}
}

// Add records a violation for a field.
func (v *Validator) Add(field, message string) {
	v.errs[field] = append(v.errs[field], message)
}

// Required checks that a string field is present and non-empty.
func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// MaxLen checks an upper length bound. Nil values pass.
func (v *Validator) MaxLen(field string, value *string, max int) {
	if value != nil && len(*value) > max {
		v.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// MinLen checks a lower length bound. Nil values pass.
func (v *Validator) MinLen(field string, value *string, min int) {
	if value != nil && len(*value) < min {
		v.Add(field, fmt.Sprintf("must be at least %d characters", min))
	}
}

// Email checks basic email shape.
func (v *Validator) Email(field, value string) {
	if !emailRegex.MatchString(strings.TrimSpace(value)) {
		v.Add(field, "must be a valid email address")
	}
}

// Min checks a numeric lower bound. Nil values pass.
func (v *Validator) Min(field string, value *float64, min float64) {
	if value != nil && *value < min {
		v.Add(field, fmt.Sprintf("must be at least %g", min))
	}
}

// RequiredNumber checks that a numeric field was present in the body.
func (v *Validator) RequiredNumber(field string, value *float64) {
	if value == nil {
		v.Add(field, "is required")
	}
}

// RequiredInt checks that an integer field was present in the body.
func (v *Validator) RequiredInt(field string, value *int64) {
	if value == nil {
		v.Add(field, "is required")
	}
}

// Err returns the accumulated violations, or nil if there are none.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

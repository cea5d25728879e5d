package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestValidator_NoViolations(t *testing.T) {
	v := New()
	v.Required("name", "alice")
	v.MaxLen("name", strPtr("alice"), 100)
	v.Email("email", "alice@example.com")
	v.MinLen("password", strPtr("secret123"), 6)
	v.Min("weight", f64Ptr(3.2), 0)

	assert.NoError(t, v.Err())
}

func TestValidator_CollectsEveryViolation(t *testing.T) {
	v := New()
	v.Required("name", "")
	v.Email("email", "not-an-email")
	v.MinLen("password", strPtr("abc"), 6)
	v.Min("weight", f64Ptr(-1), 0)

	err := v.Err()
	assert.Error(t, err)

	errs, ok := err.(Errors)
	assert.True(t, ok)
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "weight")
}

func TestValidator_MultipleViolationsPerField(t *testing.T) {
	v := New()
	v.Required("password", "")
	v.MinLen("password", strPtr(""), 6)

	err := v.Err()
	assert.Error(t, err)

	errs := err.(Errors)
	assert.Len(t, errs["password"], 2)
}

func TestValidator_NilOptionalValuesPass(t *testing.T) {
	v := New()
	v.MaxLen("name", nil, 100)
	v.MinLen("password", nil, 6)
	v.Min("weight", nil, 0)

	assert.NoError(t, v.Err())
}

func TestValidator_RequiredNumberAndInt(t *testing.T) {
	v := New()
	v.RequiredNumber("weight", nil)
	v.RequiredInt("record_id", nil)

	err := v.Err()
	assert.Error(t, err)

	errs := err.(Errors)
	assert.Contains(t, errs, "weight")
	assert.Contains(t, errs, "record_id")
}

func TestErrors_ErrorStringIsDeterministic(t *testing.T) {
	e := Errors{
		"b": {"is required"},
		"a": {"is required"},
	}
	assert.Equal(t, "a: is required, b: is required", e.Error())
}

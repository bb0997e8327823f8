package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2025-06-10")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("10-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2025-06"))
	assert.True(t, IsValidMonth("2025-12"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-00"))
	assert.False(t, IsValidMonth("2025-6"))
	assert.False(t, IsValidMonth("202506"))
	assert.False(t, IsValidMonth(""))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-12D3-A456-426614174000"))
	assert.False(t, IsValidUUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "month is required"},
		{Field: "employee_id", Message: "employee_id is required"},
	}

	assert.Equal(t, "month: month is required; employee_id: employee_id is required", errs.Error())
	assert.Equal(t, map[string]string{
		"month":       "month is required",
		"employee_id": "employee_id is required",
	}, errs.ToMap())
}

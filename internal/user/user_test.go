package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	t.Run("accepts known types", func(t *testing.T) {
		for _, raw := range []string{"student", "faculty", "staff"} {
			parsed, err := ParseType(raw)
			assert.NoError(t, err)
			assert.Equal(t, Type(raw), parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "professor", "STUDENT", "admin"} {
			_, err := ParseType(raw)
			assert.Error(t, err, "value %q should not parse", raw)
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, raw := range []string{"active", "inactive", "suspended"} {
			parsed, err := ParseStatus(raw)
			assert.NoError(t, err)
			assert.Equal(t, Status(raw), parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseStatus("banned")
		assert.Error(t, err)
	})
}

func TestLoanPeriod(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, TypeFaculty.LoanPeriod())
	assert.Equal(t, 14*24*time.Hour, TypeStudent.LoanPeriod())
	assert.Equal(t, 14*24*time.Hour, TypeStaff.LoanPeriod())
}

package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Title string `json:"title" validate:"required"`
		ISBN  string `json:"isbn" validate:"required,isbn"`
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(payload{Title: "T", ISBN: "9780134494166"}))
		assert.Nil(t, ValidateStruct(payload{Title: "T", ISBN: "0-306-40615-2"}))
	})

	t.Run("missing required field", func(t *testing.T) {
		details := ValidateStruct(payload{ISBN: "9780134494166"})
		assert.Len(t, details, 1)
		assert.Equal(t, "title", details[0].Field)
	})

	t.Run("bad isbn", func(t *testing.T) {
		details := ValidateStruct(payload{Title: "T", ISBN: "12345"})
		assert.Len(t, details, 1)
		assert.Equal(t, "isbn", details[0].Field)
	})
}

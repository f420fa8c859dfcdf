package validation_test

import (
	"testing"

	"github.com/Behyna/sms-services/templateconsole/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	t.Run("formats to E.164", func(t *testing.T) {
		got, err := validation.NormalizePhone(" +1 650-253-0000 ")

		require.NoError(t, err)
		assert.Equal(t, "+16502530000", got)
	})

	testCases := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "  ", expected: validation.ErrMissingPhone},
		{name: "no plus", input: "16502530000", expected: validation.ErrPhoneFormat},
		{name: "too short", input: "+1650", expected: validation.ErrInvalidPhone},
		{name: "letters", input: "+phone", expected: validation.ErrInvalidPhone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.NormalizePhone(tc.input)

			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

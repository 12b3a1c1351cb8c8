package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountry(t *testing.T) {
	for input, want := range map[string]string{"cz": "CZ", " SK ": "SK", "hu": "HU"} {
		got, err := NormalizeCountry(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "CZE", "203", "1"} {
		_, err := NormalizeCountry(input)
		assert.ErrorIs(t, err, ErrInvalidCountry, input)
	}
}

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStreet(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		street      string
		houseNumber *string
	}{
		{
			name:        "orientation and descriptive number",
			line:        "Main Street 123/45a",
			street:      "Main Street",
			houseNumber: strPtr("123/45a"),
		},
		{
			name:        "plain house number",
			line:        "Dlouhá 7",
			street:      "Dlouhá",
			houseNumber: strPtr("7"),
		},
		{
			name:        "house number with uppercase letter",
			line:        "Na Příkopě 12C",
			street:      "Na Příkopě",
			houseNumber: strPtr("12C"),
		},
		{
			name:   "no house number",
			line:   "Just A Road",
			street: "Just A Road",
		},
		{
			name:   "leading zero is not a house number",
			line:   "Road 05",
			street: "Road 05",
		},
		{
			name:   "letter outside a-c",
			line:   "Road 5d",
			street: "Road 5d",
		},
		{
			name:        "surrounding spaces are trimmed",
			line:        "  Hlavní 1  ",
			street:      "Hlavní",
			houseNumber: strPtr("1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			street, houseNumber := ParseStreet(tt.line)
			assert.Equal(t, tt.street, street)
			if tt.houseNumber == nil {
				assert.Nil(t, houseNumber)
				return
			}
			require.NotNil(t, houseNumber)
			assert.Equal(t, *tt.houseNumber, *houseNumber)
		})
	}
}

func TestFromLine(t *testing.T) {
	t.Run("parses house number from line", func(t *testing.T) {
		a := FromLine("Main Street 123/45a", "", "Prague", "11000", "cz")
		assert.Equal(t, "Main Street", a.Street)
		require.NotNil(t, a.HouseNumber)
		assert.Equal(t, "123/45a", *a.HouseNumber)
		assert.Equal(t, "CZ", a.Country)
	})

	t.Run("keeps known house number", func(t *testing.T) {
		a := FromLine("Main Street", "9", "Prague", "11000", "CZ")
		assert.Equal(t, "Main Street", a.Street)
		require.NotNil(t, a.HouseNumber)
		assert.Equal(t, "9", *a.HouseNumber)
	})
}

func strPtr(s string) *string {
	return &s
}

package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRanges(t *testing.T) {
	tests := []struct {
		name    string
		ranges  []Range
		wantErr bool
	}{
		{name: "touching ranges", ranges: []Range{{From: 0, To: 5}, {From: 5, To: 10}}},
		{name: "unordered touching ranges", ranges: []Range{{From: 5, To: 10}, {From: 0, To: 5}}},
		{name: "overlapping ranges", ranges: []Range{{From: 0, To: 6}, {From: 5, To: 10}}, wantErr: true},
		{name: "contained range", ranges: []Range{{From: 0, To: 10}, {From: 2, To: 3}}, wantErr: true},
		{name: "empty range", ranges: []Range{{From: 5, To: 5}}, wantErr: true},
		{name: "negative bound", ranges: []Range{{From: -1, To: 5}}, wantErr: true},
		{name: "no ranges"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRanges(tt.ranges)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsInRange(t *testing.T) {
	r := Range{From: 0, To: 5}
	assert.True(t, IsInRange(0, r))
	assert.True(t, IsInRange(4.99, r))
	assert.False(t, IsInRange(5, r))
	assert.False(t, IsInRange(-0.1, r))
}

func TestRatesTable(t *testing.T) {
	table := RatesTable{
		"CZ": {
			{Range: Range{From: 5, To: 10}, Price: decimal.NewFromInt(120)},
			{Range: Range{From: 0, To: 5}, Price: decimal.NewFromInt(80)},
		},
	}

	require.NoError(t, table.Validate())
	assert.Equal(t, float64(0), table["CZ"][0].From)

	p, ok := table.PriceFor("CZ", 5)
	assert.True(t, ok)
	assert.True(t, decimal.NewFromInt(120).Equal(p))

	_, ok = table.PriceFor("CZ", 10)
	assert.False(t, ok)

	_, ok = table.PriceFor("SK", 1)
	assert.False(t, ok)
}

func TestRatesTable_Invalid(t *testing.T) {
	overlap := RatesTable{"CZ": {
		{Range: Range{From: 0, To: 6}, Price: decimal.NewFromInt(80)},
		{Range: Range{From: 5, To: 10}, Price: decimal.NewFromInt(120)},
	}}
	assert.ErrorIs(t, overlap.Validate(), ErrInvalidRange)

	negative := RatesTable{"SK": {{Range: Range{From: 0, To: 1}, Price: decimal.NewFromInt(-1)}}}
	assert.Error(t, negative.Validate())
}

func TestRatesTable_DecimalPrice(t *testing.T) {
	var table RatesTable
	require.NoError(t, json.Unmarshal([]byte(`{"CZ":[{"from":0,"to":5,"price":"0.1"},{"from":5,"to":10,"price":49.9}]}`), &table))
	require.NoError(t, table.Validate())

	p, ok := table.PriceFor("CZ", 1)
	require.True(t, ok)
	assert.Equal(t, "0.3", p.Add(p).Add(p).String())

	p, ok = table.PriceFor("CZ", 7)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("49.90").Equal(p))

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"CZ":[{"from":0,"to":5,"price":"0.1"},{"from":5,"to":10,"price":"49.9"}]}`, string(out))
}

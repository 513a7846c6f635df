package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected string
	}{
		{"free", 0, "Free"},
		{"sub cent", 0.005, "<$0.01"},
		{"cents", 15.5, "$15.50"},
		{"just under hundred", 99.99, "$99.99"},
		{"whole dollars", 999.4, "$999"},
		{"thousands", 1500, "$1.5k"},
		{"big thousands", 12345, "$12.3k"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPrice(tc.price))
		})
	}
}

func TestFormatOptionalPrice(t *testing.T) {
	assert.Equal(t, "N/A", FormatOptionalPrice(nil))

	price := 42.0
	assert.Equal(t, "$42.00", FormatOptionalPrice(&price))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "$10.00 - $20.00", FormatRange(10, 20, 15))
	assert.Equal(t, "$15.00", FormatRange(15, 15, 15), "equal bounds collapse to the average")
	assert.Equal(t, "$15.00", FormatRange(15, 15.005, 15), "near-equal bounds collapse too")
}

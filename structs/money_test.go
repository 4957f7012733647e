package structs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0", Money(0).String())
	assert.Equal(t, "10.00", Money(1000).String())
	assert.Equal(t, "25.00", Money(2500).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "0.50", Money(50).String())
	assert.Equal(t, "-3.25", Money(-325).String())
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"10.00", 1000},
		{"10", 1000},
		{"10.5", 1050},
		{"0", 0},
		{"0.05", 5},
		{"-3.25", -325},
		{".50", 50},
	}

	for _, tt := range tests {
		got, err := ParseMoney(tt.in)
		require.NoError(t, err, "parsing %q", tt.in)
		assert.Equal(t, tt.want, got, "parsing %q", tt.in)
	}
}

func TestParseMoneyRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1,50", "10.-5", "10.+5", "+5", "1-0"} {
		_, err := ParseMoney(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Money(2500))
	require.NoError(t, err)
	assert.Equal(t, `"25.00"`, string(raw))

	// Zero renders as "0", never null
	raw, err = json.Marshal(Money(0))
	require.NoError(t, err)
	assert.Equal(t, `"0"`, string(raw))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"10.00"`), &m))
	assert.Equal(t, Money(1000), m)
}

func TestMoneyMul(t *testing.T) {
	assert.Equal(t, Money(2500), Money(500).Mul(5))
	assert.Equal(t, Money(0), Money(500).Mul(0))
}

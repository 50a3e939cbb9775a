package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowStub hands fixed column values to Scan in profileColumns order.
type rowStub struct {
	values []any
	err    error
}

func (r rowStub) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *string:
			*d = r.values[i].(string)
		case *bool:
			*d = r.values[i].(bool)
		case *int:
			*d = r.values[i].(int)
		case *time.Time:
			*d = r.values[i].(time.Time)
		default:
			return errors.New("unexpected destination type")
		}
	}
	return nil
}

func profileRow(balance, deposit, winnings string) rowStub {
	now := time.Now()
	return rowStub{values: []any{
		"uid-1", "DANISHARMY562", "danisharmy562@gmail.com", "", "",
		balance, deposit, winnings,
		true, false, "", "DAN4821", "",
		0, 0, 0, 1, now, now,
	}}
}

func TestParseAmount(t *testing.T) {
	d, ok := parseAmount("12.50")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	for _, raw := range []string{"NaN", "Infinity", "-Infinity", "", "12,50"} {
		_, ok := parseAmount(raw)
		assert.False(t, ok, raw)
	}
}

func TestScanProfile_ValidAmounts(t *testing.T) {
	p, err := scanProfile(profileRow("20.00", "0.00", "20.00"))

	require.NoError(t, err)
	assert.False(t, p.BalanceCorrupt)
	assert.True(t, p.Balance.Equal(decimal.NewFromInt(20)))
	assert.True(t, p.Winnings.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "DAN4821", p.ReferralCode)
}

func TestScanProfile_FlagsCorruptAmounts(t *testing.T) {
	tests := []struct {
		name                       string
		balance, deposit, winnings string
	}{
		{"nan balance", "NaN", "0.00", "0.00"},
		{"infinite balance", "Infinity", "0.00", "0.00"},
		{"nan winnings", "20.00", "0.00", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := scanProfile(profileRow(tt.balance, tt.deposit, tt.winnings))

			require.NoError(t, err)
			assert.True(t, p.BalanceCorrupt)
		})
	}
}

func TestScanProfile_PropagatesScanError(t *testing.T) {
	_, err := scanProfile(rowStub{err: errors.New("conn closed")})
	assert.Error(t, err)
}

package wallet

import (
	"testing"

	"arena-wallet/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func balances(deposit, winnings int64) model.Balances {
	d := decimal.NewFromInt(deposit)
	w := decimal.NewFromInt(winnings)
	return model.Balances{Deposit: d, Winnings: w, Balance: d.Add(w)}
}

func TestApplyEntryFee_DepositOnly(t *testing.T) {
	got := ApplyEntryFee(balances(50, 0), decimal.NewFromInt(30))

	assert.True(t, got.Deposit.Equal(decimal.NewFromInt(20)))
	assert.True(t, got.Winnings.IsZero())
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(20)))
}

func TestApplyEntryFee_SpillsIntoWinnings(t *testing.T) {
	got := ApplyEntryFee(balances(10, 40), decimal.NewFromInt(30))

	assert.True(t, got.Deposit.IsZero())
	assert.True(t, got.Winnings.Equal(decimal.NewFromInt(20)))
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(20)))
}

func TestApplyEntryFee_ClampsWinningsOnStaleSnapshot(t *testing.T) {
	// balance claims 100 but the sub-balances only hold 15
	stale := model.Balances{
		Deposit:  decimal.NewFromInt(5),
		Winnings: decimal.NewFromInt(10),
		Balance:  decimal.NewFromInt(100),
	}

	got := ApplyEntryFee(stale, decimal.NewFromInt(50))

	assert.True(t, got.Deposit.IsZero())
	assert.True(t, got.Winnings.IsZero())
	assert.True(t, got.Balance.IsZero(), "balance is recomputed, not taken from the snapshot")
}

func TestApplyEntryFee_Properties(t *testing.T) {
	amounts := []int64{0, 1, 7, 30, 50, 99, 100, 250}
	for _, deposit := range amounts {
		for _, winnings := range amounts {
			b := balances(deposit, winnings)
			for fee := int64(1); fee <= deposit+winnings; fee++ {
				f := decimal.NewFromInt(fee)
				got := ApplyEntryFee(b, f)

				assert.True(t, got.Balance.Equal(b.Balance.Sub(f)), "d=%d w=%d fee=%d", deposit, winnings, fee)
				assert.False(t, got.Deposit.IsNegative())
				assert.False(t, got.Winnings.IsNegative())
				if fee <= deposit {
					assert.True(t, got.Winnings.Equal(b.Winnings), "deposit is spent first: d=%d w=%d fee=%d", deposit, winnings, fee)
				}
			}
		}
	}
}

func TestApplyWithdrawal_Properties(t *testing.T) {
	for _, deposit := range []int64{0, 5, 300} {
		for winnings := int64(100); winnings <= 400; winnings += 50 {
			b := balances(deposit, winnings)
			for amount := int64(100); amount <= winnings; amount += 25 {
				a := decimal.NewFromInt(amount)
				got := ApplyWithdrawal(b, a)

				assert.True(t, got.Winnings.Equal(b.Winnings.Sub(a)))
				assert.True(t, got.Deposit.Equal(b.Deposit), "deposit untouched")
				assert.True(t, got.Balance.Equal(got.Deposit.Add(got.Winnings)))
			}
		}
	}
}

func TestApplyWithdrawal_Scenario(t *testing.T) {
	got := ApplyWithdrawal(balances(0, 150), decimal.NewFromInt(100))

	assert.Equal(t, "50", got.Winnings.String())
	assert.Equal(t, "50", got.Balance.String())
}

func TestApplyBonus_CreditsDeposit(t *testing.T) {
	got := ApplyBonus(balances(10, 40), decimal.NewFromInt(5))

	assert.Equal(t, "15", got.Deposit.String())
	assert.Equal(t, "40", got.Winnings.String())
	assert.Equal(t, "55", got.Balance.String())
}

// Package wallet holds the balance arithmetic and the guards that run before any
// balance-affecting write. Everything here is pure.
package wallet

import (
	"arena-wallet/internal/model"

	"github.com/shopspring/decimal"
)

// ApplyEntryFee spends fee from the deposit first and takes whatever remains from
// winnings, never letting winnings go below zero. The caller must already have
// checked that the balance covers the fee.
func ApplyEntryFee(b model.Balances, fee decimal.Decimal) model.Balances {
	remaining := fee
	deposit := b.Deposit
	winnings := b.Winnings

	if deposit.GreaterThanOrEqual(remaining) {
		deposit = deposit.Sub(remaining)
		remaining = decimal.Zero
	} else {
		remaining = remaining.Sub(decimal.Max(deposit, decimal.Zero))
		deposit = decimal.Zero
	}

	if remaining.IsPositive() {
		winnings = decimal.Max(decimal.Zero, winnings.Sub(remaining))
	}

	return settle(deposit, winnings)
}

// ApplyWithdrawal debits winnings only; deposit funds are never withdrawable.
func ApplyWithdrawal(b model.Balances, amount decimal.Decimal) model.Balances {
	return settle(b.Deposit, b.Winnings.Sub(amount))
}

// ApplyBonus credits a referral or signup bonus. Bonuses are deposit funds.
func ApplyBonus(b model.Balances, amount decimal.Decimal) model.Balances {
	return settle(b.Deposit.Add(amount), b.Winnings)
}

// settle recomputes the total from the two sub-balances instead of trusting a
// cached value.
func settle(deposit, winnings decimal.Decimal) model.Balances {
	return model.Balances{
		Deposit:  deposit,
		Winnings: winnings,
		Balance:  deposit.Add(winnings),
	}
}

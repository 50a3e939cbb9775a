package wallet

import (
	"fmt"
	"strings"

	"arena-wallet/internal/model"

	"github.com/shopspring/decimal"
)

// CheckActive rejects banned accounts. Only ban appeals bypass it.
func CheckActive(p *model.Profile) error {
	if p.Banned {
		return model.Reject(model.ErrAccountBanned, "Your account is suspended.")
	}
	return nil
}

// CheckEntry reports why the profile may not join the tournament, or nil.
// Guards are evaluated in order: ban, membership, status, capacity, funds.
// Membership comes first so a repeated join always reports "already joined",
// even once the caller's own entry filled the last slot.
func CheckEntry(p *model.Profile, t *model.Tournament) error {
	if err := CheckActive(p); err != nil {
		return err
	}
	switch {
	case t.HasParticipant(p.ID):
		return model.Reject(model.ErrAlreadyJoined, "You are already registered for this match.")
	case t.Status != model.TournamentOpen:
		return model.Reject(model.ErrRegistrationClosed, "Registration is closed for this match.")
	case t.IsFull():
		return model.Reject(model.ErrTournamentFull, "Slots Full")
	case p.Balance.LessThan(t.EntryFee):
		return model.Reject(model.ErrInsufficientBalance, "Insufficient Balance! Please deposit funds.")
	}
	return nil
}

// Payout is where a withdrawal is sent: a UPI id, an uploaded QR image, or both.
type Payout struct {
	UPI string
	QR  string
}

// Empty reports whether neither destination was given.
func (d Payout) Empty() bool {
	return strings.TrimSpace(d.UPI) == "" && d.QR == ""
}

// CheckWithdrawal validates a withdrawal of amount against the withdrawable part
// of the balance.
func CheckWithdrawal(b model.Balances, amount, minimum decimal.Decimal, dest Payout) error {
	if !amount.IsPositive() {
		return model.Reject(model.ErrInvalidAmount, "Enter a valid amount")
	}
	if amount.LessThan(minimum) {
		return model.Reject(model.ErrBelowMinimumWithdrawal, fmt.Sprintf("Minimum withdrawal is ₹%s", minimum.String()))
	}
	if amount.GreaterThan(b.Winnings) {
		return model.Reject(model.ErrInsufficientWinnings,
			fmt.Sprintf("Insufficient Winnings! You only have ₹%s", decimal.Max(b.Winnings, decimal.Zero).String()))
	}
	if dest.Empty() {
		return model.Reject(model.ErrPayoutDestinationRequired, "Provide UPI ID or QR Code")
	}
	return nil
}

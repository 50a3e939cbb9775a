// Package sentinel decides whether a profile snapshot shows signs of balance
// tampering. It only evaluates; writing the ban is the caller's job.
package sentinel

import (
	"arena-wallet/internal/model"

	"github.com/shopspring/decimal"
)

// BanReason is stored on every profile banned by the gate.
const BanReason = "SENTINEL: Suspicious Balance Manipulation Detected. System ID: #ERR-909"

type Rule string

const (
	RuleCorruptBalance        Rule = "corrupt_balance"
	RuleBalanceCeiling        Rule = "balance_ceiling"
	RuleNegativeBalance       Rule = "negative_balance"
	RuleWinningsExceedBalance Rule = "winnings_exceed_balance"
)

type Verdict struct {
	Suspicious bool
	Rule       Rule
}

type Gate struct {
	ceiling decimal.Decimal
}

// NewGate returns a gate that treats any balance above ceiling as implausible.
func NewGate(ceiling decimal.Decimal) *Gate {
	return &Gate{ceiling: ceiling}
}

// Evaluate checks a snapshot. Already-banned profiles are never suspicious: there
// is nothing left to do for them.
func (g *Gate) Evaluate(p *model.Profile) Verdict {
	if p == nil || p.Banned {
		return Verdict{}
	}

	switch {
	case p.BalanceCorrupt:
		return Verdict{Suspicious: true, Rule: RuleCorruptBalance}
	case p.Balance.GreaterThan(g.ceiling):
		return Verdict{Suspicious: true, Rule: RuleBalanceCeiling}
	case p.Balance.IsNegative():
		return Verdict{Suspicious: true, Rule: RuleNegativeBalance}
	case p.Winnings.IsPositive() && p.Winnings.GreaterThan(p.Balance):
		return Verdict{Suspicious: true, Rule: RuleWinningsExceedBalance}
	}
	return Verdict{}
}

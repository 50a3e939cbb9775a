package model

type TournamentStatus string

const (
	TournamentOpen      TournamentStatus = "OPEN"
	TournamentClosed    TournamentStatus = "CLOSED"
	TournamentLive      TournamentStatus = "LIVE"
	TournamentCompleted TournamentStatus = "COMPLETED"
)

// matchOrder ranks statuses for the "my matches" listing, live first.
var matchOrder = map[TournamentStatus]int{
	TournamentLive:      1,
	TournamentOpen:      2,
	TournamentClosed:    3,
	TournamentCompleted: 4,
}

// MatchRank returns the sort rank of a status; unknown statuses sort last.
func (s TournamentStatus) MatchRank() int {
	if r, ok := matchOrder[s]; ok {
		return r
	}
	return 9
}

func (s TournamentStatus) String() string {
	return string(s)
}

type TournamentType string

const (
	TournamentSolo  TournamentType = "SOLO"
	TournamentDuo   TournamentType = "DUO"
	TournamentSquad TournamentType = "SQUAD"
)

// TournamentTab is a lobby listing filter.
type TournamentTab string

const (
	TabAll       TournamentTab = "ALL"
	TabUpcoming  TournamentTab = "UPCOMING"
	TabLive      TournamentTab = "LIVE"
	TabCompleted TournamentTab = "COMPLETED"
)

func ParseTournamentTab(s string) (TournamentTab, error) {
	switch s {
	case "", string(TabAll):
		return TabAll, nil
	case string(TabUpcoming):
		return TabUpcoming, nil
	case string(TabLive):
		return TabLive, nil
	case string(TabCompleted):
		return TabCompleted, nil
	default:
		return "", ErrInvalidTab
	}
}

// Statuses returns the tournament statuses shown under the tab, nil meaning all.
func (t TournamentTab) Statuses() []TournamentStatus {
	switch t {
	case TabUpcoming:
		return []TournamentStatus{TournamentOpen, TournamentClosed}
	case TabLive:
		return []TournamentStatus{TournamentLive}
	case TabCompleted:
		return []TournamentStatus{TournamentCompleted}
	default:
		return nil
	}
}

type TransactionType string

const (
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionEntryFee   TransactionType = "ENTRY_FEE"
	TransactionWinnings   TransactionType = "WINNINGS"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusPending TransactionStatus = "PENDING"
	StatusFailed  TransactionStatus = "FAILED"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// Transaction methods recorded alongside the type.
const (
	MethodUPI           = "UPI"
	MethodReferralBonus = "REFERRAL_BONUS"
	MethodSignupBonus   = "SIGNUP_BONUS"
)

// TransactionFilter is a wallet history filter.
type TransactionFilter string

const (
	FilterAll        TransactionFilter = "ALL"
	FilterDeposit    TransactionFilter = "DEPOSIT"
	FilterWithdrawal TransactionFilter = "WITHDRAWAL"
	FilterGame       TransactionFilter = "GAME"
)

func ParseTransactionFilter(s string) (TransactionFilter, error) {
	switch s {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterDeposit):
		return FilterDeposit, nil
	case string(FilterWithdrawal):
		return FilterWithdrawal, nil
	case string(FilterGame):
		return FilterGame, nil
	default:
		return "", ErrInvalidFilter
	}
}

// Types returns the transaction types matched by the filter; empty means all.
func (f TransactionFilter) Types() []TransactionType {
	switch f {
	case FilterDeposit:
		return []TransactionType{TransactionDeposit}
	case FilterWithdrawal:
		return []TransactionType{TransactionWithdrawal}
	case FilterGame:
		return []TransactionType{TransactionEntryFee, TransactionWinnings}
	default:
		return []TransactionType{}
	}
}

// Status of records placed in operator queues.
const (
	QueueOpen      = "OPEN"
	QueueSubmitted = "SUBMITTED"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

type SnapshotKind string

const (
	SnapshotProfile    SnapshotKind = "profile"
	SnapshotTournament SnapshotKind = "tournament"
)

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balances is the spendable split of a profile. Balance is always Deposit + Winnings
// when written by this service.
type Balances struct {
	Deposit  decimal.Decimal
	Winnings decimal.Decimal
	Balance  decimal.Decimal
}

type Stats struct {
	Victories int `json:"victories"`
	Matches   int `json:"matches"`
	XP        int `json:"xp"`
}

type Profile struct {
	ID                string          `json:"id"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	GameID            string          `json:"game_id,omitempty"`
	Image             string          `json:"image,omitempty"`
	Balance           decimal.Decimal `json:"balance"`
	Deposit           decimal.Decimal `json:"deposit"`
	Winnings          decimal.Decimal `json:"winnings"`
	BalanceCorrupt    bool            `json:"-"`
	SentinelProtected bool            `json:"is_sentinel_protected"`
	Banned            bool            `json:"banned"`
	BanReason         string          `json:"ban_reason,omitempty"`
	ReferralCode      string          `json:"referral_code"`
	ReferredBy        string          `json:"referred_by,omitempty"`
	Stats             Stats           `json:"stats"`
	Version           int             `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (p *Profile) Balances() Balances {
	return Balances{Deposit: p.Deposit, Winnings: p.Winnings, Balance: p.Balance}
}

type Tournament struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Map          string           `json:"map"`
	Weapon       string           `json:"weapon,omitempty"`
	Type         TournamentType   `json:"type"`
	PrizePool    decimal.Decimal  `json:"prize_pool"`
	EntryFee     decimal.Decimal  `json:"entry_fee"`
	TotalSlots   int              `json:"total_slots"`
	FilledSlots  int              `json:"filled_slots"`
	Status       TournamentStatus `json:"status"`
	Image        string           `json:"image,omitempty"`
	Description  string           `json:"description,omitempty"`
	Rules        []string         `json:"rules,omitempty"`
	StartTime    *time.Time       `json:"start_time,omitempty"`
	RoomID       string           `json:"-"`
	RoomPass     string           `json:"-"`
	Participants map[string]bool  `json:"-"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (t *Tournament) HasParticipant(userID string) bool {
	return t.Participants[userID]
}

func (t *Tournament) IsFull() bool {
	return t.FilledSlots >= t.TotalSlots
}

// ViewFor renders the tournament for one user; room credentials are only
// disclosed to participants.
func (t *Tournament) ViewFor(userID string) *TournamentView {
	v := &TournamentView{Tournament: t, Joined: t.HasParticipant(userID)}
	if v.Joined {
		v.RoomID = t.RoomID
		v.RoomPass = t.RoomPass
	}
	return v
}

type TournamentView struct {
	*Tournament
	Joined   bool   `json:"joined"`
	RoomID   string `json:"room_id,omitempty"`
	RoomPass string `json:"room_pass,omitempty"`
}

type Transaction struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Type         TransactionType   `json:"type"`
	Amount       decimal.Decimal   `json:"amount"`
	Status       TransactionStatus `json:"status"`
	Method       string            `json:"method,omitempty"`
	Reference    string            `json:"reference,omitempty"`
	TournamentID string            `json:"tournament_id,omitempty"`
	Title        string            `json:"title,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// PaymentRequest is a deposit proof or payout request waiting in the operator queue.
type PaymentRequest struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Username      string            `json:"username"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Reference     string            `json:"reference,omitempty"`
	Screenshot    string            `json:"screenshot,omitempty"`
	PayoutUPI     string            `json:"payout_upi,omitempty"`
	PayoutQR      string            `json:"payout_qr,omitempty"`
	Status        TransactionStatus `json:"status"`
	TransactionID string            `json:"transaction_id"`
	CreatedAt     time.Time         `json:"created_at"`
}

type BanAppeal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportTicket struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Issue     string    `json:"issue"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MatchResult struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournament_id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Screenshot   string    `json:"-"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Mail struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ChangeEvent is a store change notification: which record changed, not its contents.
type ChangeEvent struct {
	Kind SnapshotKind
	ID   string
}

// Snapshot is the state of one record as read after a change. Receivers must not
// modify the pointed-to values.
type Snapshot struct {
	Kind       SnapshotKind
	ID         string
	Profile    *Profile
	Tournament *Tournament
}

type Notice struct {
	Kind    NoticeKind `json:"kind" example:"success"`
	Message string     `json:"message" example:"Joined Successfully!"`
}

type CreateProfileRequest struct {
	Username     string `json:"username" example:"DANISHARMY562"`
	ReferralCode string `json:"referral_code" example:"DAN4821"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" example:"DANISHARMY562"`
	GameID   string `json:"game_id" example:"5512309981"`
}

type DepositRequest struct {
	Amount     string `json:"amount" example:"500"`
	Reference  string `json:"reference" example:"412398765432"`
	Screenshot string `json:"screenshot"`
}

type WithdrawalRequest struct {
	Amount    string `json:"amount" example:"100"`
	PayoutUPI string `json:"payout_upi" example:"player@upi"`
	PayoutQR  string `json:"payout_qr"`
}

type TicketRequest struct {
	Issue string `json:"issue" example:"Entry fee charged twice"`
}

type AppealRequest struct {
	Reason string `json:"reason"`
}

type MatchResultRequest struct {
	Screenshot string `json:"screenshot"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
	Notice  *Notice  `json:"notice,omitempty"`
}

type WalletResponse struct {
	Balance  string `json:"balance" example:"20.00"`
	Deposit  string `json:"deposit" example:"0.00"`
	Winnings string `json:"winnings" example:"20.00"`
}

type JoinResponse struct {
	TournamentID string  `json:"tournament_id"`
	FilledSlots  int     `json:"filled_slots" example:"13"`
	Balance      string  `json:"balance" example:"20.00"`
	Deposit      string  `json:"deposit" example:"0.00"`
	Winnings     string  `json:"winnings" example:"20.00"`
	Notice       *Notice `json:"notice,omitempty"`
}

type PaymentResponse struct {
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status" example:"PENDING"`
	Balance       string  `json:"balance" example:"50.00"`
	Winnings      string  `json:"winnings" example:"50.00"`
	Notice        *Notice `json:"notice,omitempty"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type TournamentListResponse struct {
	Tournaments []*TournamentView `json:"tournaments"`
	Total       int               `json:"total"`
}

type InboxResponse struct {
	Mails     []*Mail `json:"mails"`
	HasUnread bool    `json:"has_unread"`
}

type SubmissionResponse struct {
	ID     string  `json:"id"`
	Notice *Notice `json:"notice,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Message string `json:"message,omitempty" example:"Insufficient Balance! Please deposit funds."`
	Details string `json:"details,omitempty"`
}

package model

import "errors"

var (
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrInsufficientWinnings      = errors.New("insufficient winnings")
	ErrBelowMinimumWithdrawal    = errors.New("below minimum withdrawal")
	ErrPayoutDestinationRequired = errors.New("payout destination required")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrMissingFields             = errors.New("missing required fields")
	ErrInvalidImage              = errors.New("invalid image")
	ErrImageTooLarge             = errors.New("image too large")
	ErrInvalidFilter             = errors.New("invalid transaction filter")
	ErrInvalidTab                = errors.New("invalid tournament tab")
	ErrAccountBanned             = errors.New("account banned")
	ErrAppealNotAllowed          = errors.New("appeal not allowed")
	ErrUnauthenticated           = errors.New("unauthenticated")
	ErrProfileNotFound           = errors.New("profile not found")
	ErrProfileExists             = errors.New("profile already exists")
	ErrReferralCodeTaken         = errors.New("referral code taken")
	ErrTournamentNotFound        = errors.New("tournament not found")
	ErrRegistrationClosed        = errors.New("registration closed")
	ErrTournamentFull            = errors.New("tournament full")
	ErrAlreadyJoined             = errors.New("already joined")
	ErrNotParticipant            = errors.New("not a participant")
	ErrTransactionNotFound       = errors.New("transaction not found")
	ErrTransactionPending        = errors.New("transaction pending")
)

// Rejection is a precondition failure with a message meant for the end user.
type Rejection struct {
	Err     error
	Message string
}

func (r *Rejection) Error() string {
	return r.Err.Error() + ": " + r.Message
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// Reject wraps a sentinel error with the message shown to the user.
func Reject(err error, message string) error {
	return &Rejection{Err: err, Message: message}
}

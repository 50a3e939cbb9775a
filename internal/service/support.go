package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arena-wallet/internal/config"
	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"
	"arena-wallet/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SupportServiceImpl struct {
	profileRepo repository.ProfileRepository
	requestRepo repository.RequestRepository
	mailRepo    repository.MailRepository
	cfg         config.WalletConfig
	logger      zerolog.Logger
	newID       func() string
	now         func() time.Time
}

func NewSupportService(
	profileRepo repository.ProfileRepository,
	requestRepo repository.RequestRepository,
	mailRepo repository.MailRepository,
	cfg config.WalletConfig,
	logger zerolog.Logger,
) SupportService {
	return &SupportServiceImpl{
		profileRepo: profileRepo,
		requestRepo: requestRepo,
		mailRepo:    mailRepo,
		cfg:         cfg,
		logger:      logger,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

func (s *SupportServiceImpl) SubmitTicket(ctx context.Context, sess session.Session, req *model.TicketRequest) (*model.SubmissionResponse, error) {
	issue := strings.TrimSpace(req.Issue)
	if issue == "" {
		return nil, model.Reject(model.ErrMissingFields, "Please describe your issue")
	}

	if _, err := activeProfile(ctx, s.profileRepo, sess.UserID); err != nil {
		return nil, err
	}

	ticket := &model.SupportTicket{
		ID:     s.newID(),
		UserID: sess.UserID,
		Email:  sess.Email,
		Issue:  issue,
		Status: model.QueueOpen,
	}
	if err := s.requestRepo.InsertSupportTicket(ctx, ticket); err != nil {
		return nil, fmt.Errorf("insert support ticket: %w", err)
	}

	s.logger.Info().Str("user_id", sess.UserID).Str("ticket_id", ticket.ID).Msg("support ticket submitted")
	return &model.SubmissionResponse{ID: ticket.ID, Notice: success("Ticket Submitted Successfully!")}, nil
}

// SubmitAppeal is the only action left to a banned account.
func (s *SupportServiceImpl) SubmitAppeal(ctx context.Context, sess session.Session, req *model.AppealRequest) (*model.SubmissionResponse, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, model.Reject(model.ErrMissingFields, "Please explain why your ban should be lifted")
	}

	profile, err := s.profileRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !profile.Banned {
		return nil, model.Reject(model.ErrAppealNotAllowed, "Your account is not suspended.")
	}

	appeal := &model.BanAppeal{
		ID:       s.newID(),
		UserID:   sess.UserID,
		Email:    sess.Email,
		Username: profile.Username,
		Reason:   reason,
		Status:   model.QueueOpen,
	}
	if err := s.requestRepo.InsertBanAppeal(ctx, appeal); err != nil {
		return nil, fmt.Errorf("insert ban appeal: %w", err)
	}

	s.logger.Info().Str("user_id", sess.UserID).Str("appeal_id", appeal.ID).Msg("ban appeal submitted")
	return &model.SubmissionResponse{ID: appeal.ID, Notice: success("Appeal Sent to Admin")}, nil
}

func (s *SupportServiceImpl) ListMail(ctx context.Context, sess session.Session) (*model.InboxResponse, error) {
	mails, err := s.mailRepo.GetMailsByUser(ctx, sess.UserID, s.now().Add(-s.cfg.MailTTL))
	if err != nil {
		return nil, fmt.Errorf("get mails: %w", err)
	}
	return &model.InboxResponse{Mails: mails, HasUnread: len(mails) > 0}, nil
}

// PurgeExpiredMail deletes mails past their time to live.
func (s *SupportServiceImpl) PurgeExpiredMail(ctx context.Context) (int64, error) {
	deleted, err := s.mailRepo.DeleteMailsOlderThan(ctx, s.now().Add(-s.cfg.MailTTL))
	if err != nil {
		return 0, fmt.Errorf("purge mails: %w", err)
	}
	return deleted, nil
}

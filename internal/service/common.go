package service

import (
	"context"
	"fmt"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"
	"arena-wallet/internal/wallet"
)

func success(message string) *model.Notice {
	return &model.Notice{Kind: model.NoticeSuccess, Message: message}
}

// activeProfile loads the caller's profile and rejects banned accounts.
func activeProfile(ctx context.Context, profiles repository.ProfileRepository, userID string) (*model.Profile, error) {
	profile, err := profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := wallet.CheckActive(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

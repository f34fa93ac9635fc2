package usecase

import (
	"context"

	"multi-calendar-sync/internal/model"
	"multi-calendar-sync/internal/user"
	repo "multi-calendar-sync/internal/user/repository"
	"multi-calendar-sync/pkg/googleauth"
)

// SaveTokenSet upserts the user and attaches the token set to their
// connected accounts.
func (uc *implUseCase) SaveTokenSet(ctx context.Context, email string, ts googleauth.TokenSet) error {
	if email == "" {
		return user.ErrEmailEmpty
	}

	u, err := uc.repo.UpsertUser(ctx, repo.UpsertUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveTokenSet UpsertUser: %v", err)
		return err
	}

	if err := uc.repo.AddAccount(ctx, repo.AddAccountOptions{UserID: u.ID, TokenSet: ts}); err != nil {
		uc.l.Errorf(ctx, "uc.SaveTokenSet AddAccount: %v", err)
		return err
	}
	return nil
}

// RecordEvent appends a created event to the history of whichever user
// owns the account with the given access token. Tokens that were never
// saved through the OAuth flow are skipped without error.
func (uc *implUseCase) RecordEvent(ctx context.Context, accessToken string, rec model.EventRecord) error {
	if accessToken == "" {
		return nil
	}

	owner, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{AccessToken: accessToken})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordEvent GetOneUser: %v", err)
		return err
	}
	if owner.ID == 0 {
		return nil // token not known to the store
	}

	if err := uc.repo.AddEventRecord(ctx, repo.AddEventRecordOptions{UserID: owner.ID, Record: rec}); err != nil {
		uc.l.Errorf(ctx, "uc.RecordEvent AddEventRecord: %v", err)
		return err
	}
	return nil
}

// GetByEmail returns the stored user with accounts and history loaded.
func (uc *implUseCase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByEmail GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

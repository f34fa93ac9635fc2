package usecase

import (
	"context"

	"github.com/google/uuid"

	"multi-calendar-sync/internal/auth"
	"multi-calendar-sync/pkg/googleauth"
)

// ConsentURL returns the Google consent URL with a fresh opaque state.
func (uc *implUseCase) ConsentURL(ctx context.Context) string {
	return uc.binder.AuthCodeURL(uuid.NewString())
}

// HandleCallback exchanges the authorization code, resolves the
// authenticated email and saves the token set under it. Email
// resolution and persistence are best-effort: the caller always gets
// the token set once the exchange itself succeeded.
func (uc *implUseCase) HandleCallback(ctx context.Context, code string) (auth.CallbackOutput, error) {
	if code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}

	ts, err := uc.binder.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback Exchange: %v", err)
		return auth.CallbackOutput{}, auth.ErrExchangeFailed
	}

	email := uc.resolveEmail(ctx, ts)
	if email != "" {
		uc.l.Infof(ctx, "authorized calendar access for %s", email)
		if uc.users != nil {
			if err := uc.users.SaveTokenSet(ctx, email, ts); err != nil {
				uc.l.Warnf(ctx, "uc.HandleCallback SaveTokenSet: %v", err)
			}
		}
	}

	return auth.CallbackOutput{TokenSet: ts, Email: email}, nil
}

// resolveEmail looks up the token's email via the userinfo endpoint,
// memoized per access token.
func (uc *implUseCase) resolveEmail(ctx context.Context, ts googleauth.TokenSet) string {
	if email, ok := uc.emails.Get(ts.AccessToken); ok {
		return email
	}

	client, err := uc.newUserinfo(ctx, uc.binder.Bind(ctx, ts))
	if err != nil {
		uc.l.Warnf(ctx, "uc.resolveEmail client: %v", err)
		return ""
	}
	email, err := client.Email(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.resolveEmail: %v", err)
		return ""
	}

	uc.emails.Add(ts.AccessToken, email)
	return email
}

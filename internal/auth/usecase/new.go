package usecase

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"multi-calendar-sync/internal/auth"
	"multi-calendar-sync/internal/user"
	"multi-calendar-sync/pkg/googleauth"
	"multi-calendar-sync/pkg/log"
)

// emailCacheSize bounds the access-token → email LRU.
const emailCacheSize = 256

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l           log.Logger
	binder      *googleauth.Binder
	users       user.UseCase // optional token persistence
	newUserinfo auth.UserinfoFactory
	emails      *lru.Cache[string, string]
}

// New creates the OAuth flow use case. factory and users may be nil:
// factory falls back to the real Google userinfo endpoint, nil users
// disables token persistence.
func New(l log.Logger, binder *googleauth.Binder, factory auth.UserinfoFactory, users user.UseCase) *implUseCase {
	if factory == nil {
		factory = newUserinfoClient
	}
	cache, _ := lru.New[string, string](emailCacheSize)
	return &implUseCase{
		l:           l,
		binder:      binder,
		users:       users,
		newUserinfo: factory,
		emails:      cache,
	}
}

type userinfoClient struct {
	svc *goauth2.Service
}

func newUserinfoClient(ctx context.Context, authCtx *googleauth.Context) (auth.UserinfoClient, error) {
	svc, err := goauth2.NewService(ctx, option.WithHTTPClient(authCtx.HTTPClient()))
	if err != nil {
		return nil, err
	}
	return &userinfoClient{svc: svc}, nil
}

func (c *userinfoClient) Email(ctx context.Context) (string, error) {
	info, err := c.svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return info.Email, nil
}

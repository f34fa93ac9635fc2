package googleauth

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// DefaultScopes are the scopes requested during the consent flow.
var DefaultScopes = []string{
	calendar.CalendarScope,
	"https://www.googleapis.com/auth/userinfo.email",
}

// Config holds the OAuth client registration. It is passed in
// explicitly so multiple Binders with different registrations can
// coexist in one process.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// Endpoint overrides Google's OAuth endpoint when non-nil.
	Endpoint *oauth2.Endpoint
}

// Binder turns stored TokenSets into ephemeral per-call authorization
// contexts, and owns the consent-URL / code-exchange side of the flow.
type Binder struct {
	config *oauth2.Config
}

// NewBinder creates a Binder from an explicit client registration.
func NewBinder(cfg Config) *Binder {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	endpoint := google.Endpoint
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}
	return &Binder{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
	}
}

// AuthCodeURL returns the consent URL for the configured scopes.
// Offline access is requested so the exchange yields a refresh token.
func (b *Binder) AuthCodeURL(state string) string {
	return b.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a TokenSet.
func (b *Binder) Exchange(ctx context.Context, code string) (TokenSet, error) {
	tok, err := b.config.Exchange(ctx, code)
	if err != nil {
		return TokenSet{}, err
	}
	return NewTokenSet(tok), nil
}

// Context is an ephemeral binding of one TokenSet to the client
// registration. It is owned by exactly one downstream call sequence
// and discarded afterwards; never share it across users or requests.
type Context struct {
	tokenSet TokenSet
	client   *http.Client
}

// Bind wraps a TokenSet into an authorization context. No validation
// and no network happen here: a broken TokenSet only surfaces when the
// context is first used to make a call.
func (b *Binder) Bind(ctx context.Context, ts TokenSet) *Context {
	src := b.config.TokenSource(ctx, ts.Token())
	return &Context{tokenSet: ts, client: oauth2.NewClient(ctx, src)}
}

// TokenSet returns the token set this context was bound from.
func (c *Context) TokenSet() TokenSet {
	return c.tokenSet
}

// HTTPClient returns the authorized HTTP client backing this context.
func (c *Context) HTTPClient() *http.Client {
	return c.client
}

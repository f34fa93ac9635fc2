package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"golang.org/x/oauth2"

	"multi-calendar-sync/internal/auth"
	"multi-calendar-sync/internal/model"
	"multi-calendar-sync/pkg/googleauth"
	"multi-calendar-sync/pkg/log"
)

type fakeUserinfo struct {
	mu    sync.Mutex
	calls int
	email string
	err   error
}

func (f *fakeUserinfo) Email(context.Context) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.email, f.err
}

type savedTokens struct {
	mu    sync.Mutex
	saved map[string][]googleauth.TokenSet
}

func (s *savedTokens) SaveTokenSet(_ context.Context, email string, ts googleauth.TokenSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		s.saved = map[string][]googleauth.TokenSet{}
	}
	s.saved[email] = append(s.saved[email], ts)
	return nil
}

func (s *savedTokens) RecordEvent(context.Context, string, model.EventRecord) error { return nil }
func (s *savedTokens) GetByEmail(context.Context, string) (model.User, error) {
	return model.User{}, nil
}

func newTokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.Form.Get("code") == "bad-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "exchanged-access",
			"refresh_token": "exchanged-refresh",
			"token_type": "Bearer",
			"expires_in": 3600,
			"scope": "https://www.googleapis.com/auth/calendar"
		}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAuthUseCase(t *testing.T, info *fakeUserinfo, users *savedTokens) auth.UseCase {
	t.Helper()
	srv := newTokenServer(t)
	binder := googleauth.NewBinder(googleauth.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:3000/google/redirect",
		Endpoint: &oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
	})
	factory := func(context.Context, *googleauth.Context) (auth.UserinfoClient, error) {
		return info, nil
	}
	if users == nil {
		return New(log.NewTestLogger(), binder, factory, nil)
	}
	return New(log.NewTestLogger(), binder, factory, users)
}

func TestConsentURL(t *testing.T) {
	uc := newAuthUseCase(t, &fakeUserinfo{email: "alice@example.com"}, nil)

	url := uc.ConsentURL(context.Background())
	for _, want := range []string{"access_type=offline", "state=", "test-client"} {
		if !strings.Contains(url, want) {
			t.Errorf("consent URL missing %q: %s", want, url)
		}
	}

	// Every consent URL carries a fresh state.
	if uc.ConsentURL(context.Background()) == url {
		t.Errorf("expected unique state per consent URL")
	}
}

func TestHandleCallback(t *testing.T) {
	info := &fakeUserinfo{email: "alice@example.com"}
	users := &savedTokens{}
	uc := newAuthUseCase(t, info, users)

	out, err := uc.HandleCallback(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if out.TokenSet.AccessToken != "exchanged-access" {
		t.Errorf("unexpected token set: %+v", out.TokenSet)
	}
	if out.Email != "alice@example.com" {
		t.Errorf("expected resolved email, got %q", out.Email)
	}

	users.mu.Lock()
	saved := users.saved["alice@example.com"]
	users.mu.Unlock()
	if len(saved) != 1 || saved[0].AccessToken != "exchanged-access" {
		t.Errorf("expected token set saved under email, got %+v", saved)
	}
}

func TestHandleCallbackEmailCached(t *testing.T) {
	info := &fakeUserinfo{email: "alice@example.com"}
	uc := newAuthUseCase(t, info, nil)

	if _, err := uc.HandleCallback(context.Background(), "auth-code-1"); err != nil {
		t.Fatalf("first callback failed: %v", err)
	}
	if _, err := uc.HandleCallback(context.Background(), "auth-code-2"); err != nil {
		t.Fatalf("second callback failed: %v", err)
	}

	info.mu.Lock()
	defer info.mu.Unlock()
	if info.calls != 1 {
		t.Errorf("expected userinfo hit once for the same access token, got %d", info.calls)
	}
}

func TestHandleCallbackMissingCode(t *testing.T) {
	uc := newAuthUseCase(t, &fakeUserinfo{}, nil)

	_, err := uc.HandleCallback(context.Background(), "")
	if !errors.Is(err, auth.ErrMissingCode) {
		t.Fatalf("expected ErrMissingCode, got %v", err)
	}
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	uc := newAuthUseCase(t, &fakeUserinfo{}, nil)

	_, err := uc.HandleCallback(context.Background(), "bad-code")
	if !errors.Is(err, auth.ErrExchangeFailed) {
		t.Fatalf("expected ErrExchangeFailed, got %v", err)
	}
}

func TestHandleCallbackUserinfoFailureIsBestEffort(t *testing.T) {
	info := &fakeUserinfo{err: errors.New("userinfo unavailable")}
	uc := newAuthUseCase(t, info, nil)

	out, err := uc.HandleCallback(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("callback must survive userinfo failure: %v", err)
	}
	if out.TokenSet.AccessToken != "exchanged-access" {
		t.Errorf("token set must still be returned: %+v", out.TokenSet)
	}
	if out.Email != "" {
		t.Errorf("expected empty email on userinfo failure, got %q", out.Email)
	}
}

package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func testBinder() *Binder {
	return NewBinder(Config{
		ClientID:     "test-client-id.apps.googleusercontent.com",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:3000/google/redirect",
	})
}

func TestAuthCodeURL(t *testing.T) {
	b := testBinder()
	url := b.AuthCodeURL("state-abc")

	for _, want := range []string{
		"access_type=offline",
		"state=state-abc",
		"test-client-id.apps.googleusercontent.com",
		"calendar",
		"userinfo.email",
	} {
		if !strings.Contains(url, want) {
			t.Errorf("consent URL missing %q: %s", want, url)
		}
	}
}

func TestTokenSetConversion(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Millisecond)
	ts := TokenSet{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		ExpiryDate:   expiry.UnixMilli(),
	}

	tok := ts.Token()
	if tok.AccessToken != "access-1" || tok.RefreshToken != "refresh-1" {
		t.Errorf("unexpected token credentials: %+v", tok)
	}
	if !tok.Expiry.Equal(expiry) {
		t.Errorf("expected expiry %v, got %v", expiry, tok.Expiry)
	}

	back := NewTokenSet(tok)
	if back.AccessToken != ts.AccessToken || back.ExpiryDate != ts.ExpiryDate {
		t.Errorf("round trip mismatch: %+v vs %+v", back, ts)
	}

	if !(TokenSet{}).IsZero() {
		t.Errorf("empty token set should be zero")
	}
	if ts.IsZero() {
		t.Errorf("populated token set should not be zero")
	}
}

func TestTokenSetWithoutExpiry(t *testing.T) {
	tok := (TokenSet{AccessToken: "a", RefreshToken: "r"}).Token()
	if !tok.Expiry.IsZero() {
		t.Errorf("expected zero expiry, got %v", tok.Expiry)
	}
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		r.ParseForm()
		if r.Form.Get("code") != "auth-code-1" {
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
	defer srv.Close()

	b := NewBinder(Config{
		ClientID:     "test-client-id.apps.googleusercontent.com",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:3000/google/redirect",
		Endpoint: &oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
	})

	ts, err := b.Exchange(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	if ts.AccessToken != "exchanged-access" || ts.RefreshToken != "exchanged-refresh" {
		t.Errorf("unexpected token set: %+v", ts)
	}
	if ts.Scope != "https://www.googleapis.com/auth/calendar" {
		t.Errorf("expected scope to be carried over, got %q", ts.Scope)
	}
	if ts.ExpiryDate == 0 {
		t.Errorf("expected expiry_date to be populated")
	}

	if _, err := b.Exchange(context.Background(), "wrong-code"); err == nil {
		t.Fatalf("expected exchange error for bad code")
	}
}

func TestBindIsOffline(t *testing.T) {
	// Bind must not touch the network: no test server is running here.
	b := testBinder()
	authCtx := b.Bind(context.Background(), TokenSet{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	})
	if authCtx == nil || authCtx.HTTPClient() == nil {
		t.Fatalf("expected usable authorization context")
	}
}

package googleauth

import (
	"time"

	"golang.org/x/oauth2"
)

// TokenSet is one user's delegated OAuth2 credential bundle as it
// travels over the wire: the same shape Google's token endpoint
// returns, expiry as epoch millis.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiryDate   int64  `json:"expiry_date,omitempty"`
}

// Token converts the TokenSet into an oauth2.Token usable with a
// TokenSource. Refresh stays delegated to the oauth2 package.
func (ts TokenSet) Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  ts.AccessToken,
		RefreshToken: ts.RefreshToken,
		TokenType:    ts.TokenType,
	}
	if ts.ExpiryDate > 0 {
		tok.Expiry = time.UnixMilli(ts.ExpiryDate)
	}
	return tok
}

// IsZero reports whether the TokenSet carries no credentials at all.
func (ts TokenSet) IsZero() bool {
	return ts.AccessToken == "" && ts.RefreshToken == ""
}

// NewTokenSet builds a TokenSet from a freshly exchanged oauth2.Token.
func NewTokenSet(tok *oauth2.Token) TokenSet {
	ts := TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
	}
	if !tok.Expiry.IsZero() {
		ts.ExpiryDate = tok.Expiry.UnixMilli()
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		ts.Scope = scope
	}
	return ts
}

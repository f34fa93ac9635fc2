package model

import (
	"time"

	"multi-calendar-sync/pkg/googleauth"
)

// User is a calendar account owner, keyed by unique email. A user may
// hold several authorized token sets (one per connected Google
// account) plus a denormalized history of events created through the
// service. Per-request calendar operations never depend on this record.
type User struct {
	ID        int64
	Email     string
	Accounts  []googleauth.TokenSet
	Events    []EventRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventRecord is one entry of a user's created-event history.
type EventRecord struct {
	EventID       string
	Summary       string
	StartDateTime time.Time
	EndDateTime   time.Time
}

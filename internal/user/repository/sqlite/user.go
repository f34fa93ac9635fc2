package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"multi-calendar-sync/internal/model"
	"multi-calendar-sync/pkg/googleauth"
	repo "multi-calendar-sync/internal/user/repository"
)

// UpsertUser creates the user row if the email is new, bumps
// updated_at otherwise, and returns the stored row.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (email, created_at, updated_at)
		VALUES (?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(email) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
		RETURNING id, email, created_at, updated_at`

	var user model.User
	err := r.db.QueryRowContext(ctx, query, opt.Email).Scan(
		&user.ID, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

// GetOneUser retrieves a single user by the provided filters (AND
// condition), with connected accounts and event history loaded.
// Returns zero-value User (ID == 0) when not found — no error.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT DISTINCT u.id, u.email, u.created_at, u.updated_at
		FROM users u LEFT JOIN accounts a ON a.user_id = u.id
		WHERE %s LIMIT 1`, mods)

	var user model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}

	if err := r.loadAccounts(ctx, &user); err != nil {
		return model.User{}, err
	}
	if err := r.loadEvents(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var mods []string
	var args []any
	if opt.ID != 0 {
		mods = append(mods, "u.id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		mods = append(mods, "u.email = ?")
		args = append(args, opt.Email)
	}
	if opt.AccessToken != "" {
		mods = append(mods, "a.access_token = ?")
		args = append(args, opt.AccessToken)
	}
	if len(mods) == 0 {
		mods = append(mods, "1 = 0") // no filter → match nothing
	}
	return strings.Join(mods, " AND "), args
}

func (r *implRepository) loadAccounts(ctx context.Context, user *model.User) error {
	const query = `SELECT access_token, refresh_token, scope, token_type, expiry_date
		FROM accounts WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("loadAccounts"), err)
		return repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var ts googleauth.TokenSet
		var scope, tokenType sql.NullString
		var expiry sql.NullInt64
		if err := rows.Scan(&ts.AccessToken, &ts.RefreshToken, &scope, &tokenType, &expiry); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("loadAccounts"), err)
			return repo.ErrFailedToGet
		}
		ts.Scope = scope.String
		ts.TokenType = tokenType.String
		ts.ExpiryDate = expiry.Int64
		user.Accounts = append(user.Accounts, ts)
	}
	return rows.Err()
}

func (r *implRepository) loadEvents(ctx context.Context, user *model.User) error {
	const query = `SELECT event_id, summary, start_datetime, end_datetime
		FROM event_history WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("loadEvents"), err)
		return repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var rec model.EventRecord
		if err := rows.Scan(&rec.EventID, &rec.Summary, &rec.StartDateTime, &rec.EndDateTime); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("loadEvents"), err)
			return repo.ErrFailedToGet
		}
		user.Events = append(user.Events, rec)
	}
	return rows.Err()
}

// AddAccount appends a token set to the user's connected accounts.
// Re-authorizing the same access token is deduplicated.
func (r *implRepository) AddAccount(ctx context.Context, opt repo.AddAccountOptions) error {
	const existsQuery = `SELECT COUNT(*) FROM accounts WHERE user_id = ? AND access_token = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, existsQuery, opt.UserID, opt.TokenSet.AccessToken).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s exists: %v", r.dsn("AddAccount"), err)
		return repo.ErrFailedToGet
	}
	if count > 0 {
		return nil
	}

	const query = `
		INSERT INTO accounts (user_id, access_token, refresh_token, scope, token_type, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		opt.UserID,
		opt.TokenSet.AccessToken,
		opt.TokenSet.RefreshToken,
		opt.TokenSet.Scope,
		opt.TokenSet.TokenType,
		opt.TokenSet.ExpiryDate,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddAccount"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// AddEventRecord appends one created event to the user's history.
func (r *implRepository) AddEventRecord(ctx context.Context, opt repo.AddEventRecordOptions) error {
	const query = `
		INSERT INTO event_history (user_id, event_id, summary, start_datetime, end_datetime)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		opt.UserID,
		opt.Record.EventID,
		opt.Record.Summary,
		opt.Record.StartDateTime,
		opt.Record.EndDateTime,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddEventRecord"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

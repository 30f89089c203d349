package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/echo-journal/echod/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			discord_id TEXT NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME,
			preferred_frequency TEXT,
			next_update_time DATETIME,
			quiet_start TEXT,
			quiet_end TEXT,
			persona TEXT NOT NULL DEFAULT 'coach',
			summary_length TEXT NOT NULL DEFAULT 'short',
			voice TEXT NOT NULL DEFAULT 'alloy',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_discord ON users(discord_id)`,
		`CREATE TABLE IF NOT EXISTS entries (
			entry_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			ts DATETIME NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			notes TEXT,
			source TEXT,
			FOREIGN KEY (user_id) REFERENCES users(user_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_user_ts ON entries(user_id, ts)`,
		`CREATE TABLE IF NOT EXISTS summaries (
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			content TEXT NOT NULL,
			notes TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, date),
			FOREIGN KEY (user_id) REFERENCES users(user_id)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateUser creates a new user.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	var endDate sql.NullTime
	if user.EndDate != nil {
		endDate = sql.NullTime{Time: *user.EndDate, Valid: true}
	}
	var nextUpdate sql.NullTime
	if user.NextUpdateTime != nil {
		nextUpdate = sql.NullTime{Time: *user.NextUpdateTime, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, name, discord_id, start_date, end_date, preferred_frequency, next_update_time, quiet_start, quiet_end, persona, summary_length, voice, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Name, user.DiscordID, user.StartDate, endDate,
		nullString(user.PreferredFrequency), nextUpdate,
		nullString(user.QuietHours.Start), nullString(user.QuietHours.End),
		user.Persona, user.SummaryLength, user.Voice, user.CreatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrConflict
	}
	return err
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
}

// GetUserByDiscordID retrieves a user by their messaging front-end identity.
func (s *SQLiteStore) GetUserByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE discord_id = ?`, discordID)
}

const userColumns = `user_id, name, discord_id, start_date, end_date, preferred_frequency, next_update_time, quiet_start, quiet_end, persona, summary_length, voice, created_at`

func (s *SQLiteStore) getUser(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, query, arg)
	user, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanUser(scan func(dest ...interface{}) error) (*domain.User, error) {
	var user domain.User
	var endDate, nextUpdate sql.NullTime
	var freq, quietStart, quietEnd sql.NullString
	err := scan(&user.UserID, &user.Name, &user.DiscordID, &user.StartDate, &endDate,
		&freq, &nextUpdate, &quietStart, &quietEnd,
		&user.Persona, &user.SummaryLength, &user.Voice, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		user.EndDate = &endDate.Time
	}
	if nextUpdate.Valid {
		user.NextUpdateTime = &nextUpdate.Time
	}
	if freq.Valid {
		user.PreferredFrequency = freq.String
	}
	if quietStart.Valid {
		user.QuietHours.Start = quietStart.String
	}
	if quietEnd.Valid {
		user.QuietHours.End = quietEnd.String
	}
	return &user, nil
}

// ListUsers lists all users.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// CreateEntry creates a new journal entry. The timestamp is stored in
// UTC: the driver binds time.Time as TEXT with its offset, and SQLite
// compares those strings lexically, so mixed offsets would break range
// queries.
func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (entry_id, user_id, ts, role, content, notes, source) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.EntryID, entry.UserID, entry.Timestamp.UTC(), entry.Role, entry.Content,
		nullString(entry.Notes), nullString(entry.Source))
	return err
}

// GetEntry retrieves an entry by ID.
func (s *SQLiteStore) GetEntry(ctx context.Context, entryID string) (*domain.Entry, error) {
	var entry domain.Entry
	var notes, source sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT entry_id, user_id, ts, role, content, notes, source FROM entries WHERE entry_id = ?`,
		entryID).Scan(&entry.EntryID, &entry.UserID, &entry.Timestamp, &entry.Role, &entry.Content, &notes, &source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		entry.Notes = notes.String
	}
	if source.Valid {
		entry.Source = source.String
	}
	return &entry, nil
}

// ListEntriesInRange retrieves a user's entries with from <= ts < to,
// oldest first. Callers pass calendar-day boundaries for per-day queries.
// Bounds are converted to UTC to match the stored timestamps.
func (s *SQLiteStore) ListEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, user_id, ts, role, content, notes, source FROM entries
		 WHERE user_id = ? AND ts >= ? AND ts < ?
		 ORDER BY ts ASC`,
		userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListRecentEntries retrieves a user's most recent entries, newest first.
func (s *SQLiteStore) ListRecentEntries(ctx context.Context, userID string, limit int) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, user_id, ts, role, content, notes, source FROM entries
		 WHERE user_id = ?
		 ORDER BY ts DESC
		 LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		var notes, source sql.NullString
		if err := rows.Scan(&entry.EntryID, &entry.UserID, &entry.Timestamp, &entry.Role, &entry.Content, &notes, &source); err != nil {
			return nil, err
		}
		if notes.Valid {
			entry.Notes = notes.String
		}
		if source.Valid {
			entry.Source = source.String
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CreateSummary inserts a daily summary. The (user_id, date) primary key
// makes creation an atomic insert-if-absent: a second writer for the same
// key gets domain.ErrConflict instead of silently overwriting.
func (s *SQLiteStore) CreateSummary(ctx context.Context, summary *domain.Summary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (user_id, date, content, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		summary.UserID, summary.Date, summary.Content, nullString(summary.Notes), summary.CreatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrConflict
	}
	return err
}

// GetSummary retrieves a summary by user and date.
func (s *SQLiteStore) GetSummary(ctx context.Context, userID, date string) (*domain.Summary, error) {
	var summary domain.Summary
	var notes sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, date, content, notes, created_at FROM summaries WHERE user_id = ? AND date = ?`,
		userID, date).Scan(&summary.UserID, &summary.Date, &summary.Content, &notes, &summary.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		summary.Notes = notes.String
	}
	return &summary, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

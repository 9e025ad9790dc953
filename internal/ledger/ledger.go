package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hikarisalon/concierge/internal/domain"
)

// Entry is a stored reservation row.
type Entry struct {
	ID              string
	UserID          string
	Service         string
	Staff           string
	Date            string
	Time            string
	DurationMinutes int
	Price           int
	CreatedAt       time.Time
}

// SQLiteLedger persists completed reservations.
type SQLiteLedger struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteLedger(db *sql.DB) *SQLiteLedger {
	return &SQLiteLedger{db: db, now: time.Now}
}

// Record inserts one completed reservation with a fresh ID.
func (l *SQLiteLedger) Record(ctx context.Context, c domain.CompletedReservation) error {
	query := `INSERT INTO reservations (id, user_id, service, staff, date, time, duration_minutes, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := l.db.ExecContext(ctx, query,
		uuid.NewString(),
		c.UserID,
		c.Service,
		c.Staff,
		c.Date,
		c.Time,
		c.DurationMinutes,
		c.Price,
		l.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reservation: %w", err)
	}
	return nil
}

// ListByUser returns a user's reservations, newest first.
func (l *SQLiteLedger) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	query := `SELECT id, user_id, service, staff, date, time, duration_minutes, price, created_at
		FROM reservations WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := l.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListByDate returns every reservation on a calendar date in slot order.
func (l *SQLiteLedger) ListByDate(ctx context.Context, date string) ([]Entry, error) {
	query := `SELECT id, user_id, service, staff, date, time, duration_minutes, price, created_at
		FROM reservations WHERE date = ? ORDER BY time`
	rows, err := l.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing reservations by date: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Service, &e.Staff, &e.Date, &e.Time,
			&e.DurationMinutes, &e.Price, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.CreatedAt = ts
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reservations: %w", err)
	}
	return entries, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/clinicsync/internal/server/storage"
	"github.com/iudanet/clinicsync/pkg/api"
)

const (
	clientColumns  = `id, first_name, last_name, email, phone, date_of_birth, status, created_at, updated_at`
	sessionColumns = `id, client_id, scheduled_at, duration_minutes, type, status, location, created_at, updated_at`
	noteColumns    = `id, client_id, session_id, content, risk_level, status, tags, created_at, updated_at`
)

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// InsertClient stores a new client
func (s *Storage) InsertClient(ctx context.Context, userID string, c *api.Client) error {
	query := `INSERT INTO clients (user_id, ` + clientColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		userID, c.ID, c.FirstName, c.LastName,
		nullString(c.Email), nullString(c.Phone), nullTime(c.DateOfBirth),
		c.Status, toUnix(c.CreatedAt), toUnix(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

// UpdateClient overwrites an existing client
func (s *Storage) UpdateClient(ctx context.Context, userID string, c *api.Client) error {
	query := `
		UPDATE clients
		SET first_name = ?, last_name = ?, email = ?, phone = ?, date_of_birth = ?, status = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, nullString(c.Email), nullString(c.Phone), nullTime(c.DateOfBirth),
		c.Status, toUnix(c.UpdatedAt), c.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return checkAffected(result)
}

// GetClient returns a client of the user
func (s *Storage) GetClient(ctx context.Context, userID, id string) (*api.Client, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ? AND user_id = ?`, id, userID)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// ListClients returns all clients of the user
func (s *Storage) ListClients(ctx context.Context, userID string) ([]api.Client, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id = ? ORDER BY updated_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []api.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}
	return clients, nil
}

func scanClient(row scanner) (*api.Client, error) {
	var (
		c                    api.Client
		email, phone         sql.NullString
		dob                  sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &email, &phone, &dob, &c.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.Email = stringPtr(email)
	c.Phone = stringPtr(phone)
	c.DateOfBirth = timePtr(dob)
	c.CreatedAt = fromUnix(createdAt)
	c.UpdatedAt = fromUnix(updatedAt)
	return &c, nil
}

// InsertSession stores a new session
func (s *Storage) InsertSession(ctx context.Context, userID string, sess *api.Session) error {
	query := `INSERT INTO sessions (user_id, ` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		userID, sess.ID, sess.ClientID, toUnix(sess.ScheduledAt), sess.DurationMinutes,
		sess.Type, sess.Status, nullString(sess.Location), toUnix(sess.CreatedAt), toUnix(sess.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// UpdateSession overwrites an existing session
func (s *Storage) UpdateSession(ctx context.Context, userID string, sess *api.Session) error {
	query := `
		UPDATE sessions
		SET client_id = ?, scheduled_at = ?, duration_minutes = ?, type = ?, status = ?, location = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		sess.ClientID, toUnix(sess.ScheduledAt), sess.DurationMinutes, sess.Type, sess.Status,
		nullString(sess.Location), toUnix(sess.UpdatedAt), sess.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return checkAffected(result)
}

// GetSession returns a session of the user
func (s *Storage) GetSession(ctx context.Context, userID, id string) (*api.Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ? AND user_id = ?`, id, userID)
	sess, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// ListSessions returns all sessions of the user
func (s *Storage) ListSessions(ctx context.Context, userID string) ([]api.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE user_id = ? ORDER BY updated_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []api.Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(row scanner) (*api.Session, error) {
	var (
		sess                              api.Session
		location                          sql.NullString
		scheduledAt, createdAt, updatedAt int64
	)
	if err := row.Scan(&sess.ID, &sess.ClientID, &scheduledAt, &sess.DurationMinutes, &sess.Type, &sess.Status,
		&location, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	sess.Location = stringPtr(location)
	sess.ScheduledAt = fromUnix(scheduledAt)
	sess.CreatedAt = fromUnix(createdAt)
	sess.UpdatedAt = fromUnix(updatedAt)
	return &sess, nil
}

// InsertProgressNote stores a new progress note
func (s *Storage) InsertProgressNote(ctx context.Context, userID string, n *api.ProgressNote) error {
	tags, err := encodeTags(n.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO progress_notes (user_id, ` + noteColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		userID, n.ID, n.ClientID, nullString(n.SessionID), n.Content, n.RiskLevel, n.Status, tags,
		toUnix(n.CreatedAt), toUnix(n.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert progress note: %w", err)
	}
	return nil
}

// UpdateProgressNote overwrites an existing progress note
func (s *Storage) UpdateProgressNote(ctx context.Context, userID string, n *api.ProgressNote) error {
	tags, err := encodeTags(n.Tags)
	if err != nil {
		return err
	}
	query := `
		UPDATE progress_notes
		SET client_id = ?, session_id = ?, content = ?, risk_level = ?, status = ?, tags = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		n.ClientID, nullString(n.SessionID), n.Content, n.RiskLevel, n.Status, tags, toUnix(n.UpdatedAt),
		n.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress note: %w", err)
	}
	return checkAffected(result)
}

// GetProgressNote returns a progress note of the user
func (s *Storage) GetProgressNote(ctx context.Context, userID, id string) (*api.ProgressNote, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM progress_notes WHERE id = ? AND user_id = ?`, id, userID)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get progress note: %w", err)
	}
	return n, nil
}

// ListProgressNotes returns all progress notes of the user
func (s *Storage) ListProgressNotes(ctx context.Context, userID string) ([]api.ProgressNote, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+noteColumns+` FROM progress_notes WHERE user_id = ? ORDER BY updated_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress notes: %w", err)
	}
	defer rows.Close()

	notes := []api.ProgressNote{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress notes: %w", err)
	}
	return notes, nil
}

func scanNote(row scanner) (*api.ProgressNote, error) {
	var (
		n                    api.ProgressNote
		sessionID            sql.NullString
		tags                 string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&n.ID, &n.ClientID, &sessionID, &n.Content, &n.RiskLevel, &n.Status, &tags,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	n.SessionID = stringPtr(sessionID)
	n.CreatedAt = fromUnix(createdAt)
	n.UpdatedAt = fromUnix(updatedAt)
	return &n, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
}

package storage

import (
	"fmt"
	"time"
)

// EventRecord is one stored analytics event. Payload is the JSON-encoded
// parameter map.
type EventRecord struct {
	ID        int64
	Name      string
	SessionID string
	Payload   string
	CreatedAt time.Time
}

// SaveEvent appends an analytics event.
func (s *Store) SaveEvent(name, sessionID, payload string, at time.Time) error {
	if payload == "" {
		payload = "{}"
	}
	_, err := s.db.Exec(
		"INSERT INTO events (name, session_id, payload, created_at) VALUES (?, ?, ?, ?)",
		name, sessionID, payload, at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save event: %w", err)
	}
	return nil
}

// RecentEvents returns the newest events first. An empty name matches all.
func (s *Store) RecentEvents(name string, limit int) ([]EventRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, name, session_id, payload, created_at
		 FROM events
		 WHERE ? = '' OR name = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		name, name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var e EventRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.SessionID, &e.Payload, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Record is one locally stored item. Payload is an opaque JSON document;
// GroupID is only populated for chat messages. Synced starts false and flips
// true only after the backend acknowledged a backup that included the record.
type Record struct {
	ID        int64           `json:"id"`
	GroupID   string          `json:"groupId,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
	Synced    bool            `json:"synced"`
}

const (
	tableQuizAttempts = "quiz_attempts"
	tableChatMessages = "chat_messages"
	tableNotes        = "notes"
)

// SaveQuizAttempt appends a quiz attempt, stamping timestamp and synced=false.
func (s *Store) SaveQuizAttempt(ctx context.Context, payload json.RawMessage) (int64, error) {
	return s.insert(ctx, tableQuizAttempts, "", payload)
}

// SaveChatMessage appends a chat message under its conversation group.
func (s *Store) SaveChatMessage(ctx context.Context, groupID string, payload json.RawMessage) (int64, error) {
	return s.insert(ctx, tableChatMessages, groupID, payload)
}

// SaveNote appends an uploaded note.
func (s *Store) SaveNote(ctx context.Context, payload json.RawMessage) (int64, error) {
	return s.insert(ctx, tableNotes, "", payload)
}

func (s *Store) insert(ctx context.Context, table, groupID string, payload json.RawMessage) (int64, error) {
	now := time.Now().UnixMilli()

	var res sql.Result
	var err error
	if table == tableChatMessages {
		res, err = s.db.ExecContext(ctx,
			`INSERT INTO chat_messages (group_id, payload, timestamp, synced) VALUES (?, ?, ?, 0)`,
			groupID, string(payload), now)
	} else {
		res, err = s.db.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (payload, timestamp, synced) VALUES (?, ?, 0)`, table),
			string(payload), now)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return res.LastInsertId()
}

// QuizAttempts returns all stored quiz attempts.
func (s *Store) QuizAttempts(ctx context.Context) ([]Record, error) {
	return s.query(ctx, `SELECT id, '', payload, timestamp, synced FROM quiz_attempts ORDER BY id`)
}

// ChatMessages returns the messages of one conversation group.
func (s *Store) ChatMessages(ctx context.Context, groupID string) ([]Record, error) {
	return s.query(ctx,
		`SELECT id, group_id, payload, timestamp, synced FROM chat_messages WHERE group_id = ? ORDER BY timestamp`,
		groupID)
}

// Notes returns all stored notes.
func (s *Store) Notes(ctx context.Context) ([]Record, error) {
	return s.query(ctx, `SELECT id, '', payload, timestamp, synced FROM notes ORDER BY id`)
}

func (s *Store) unsynced(ctx context.Context, table string) ([]Record, error) {
	groupCol := "''"
	if table == tableChatMessages {
		groupCol = "group_id"
	}
	return s.query(ctx, fmt.Sprintf(
		`SELECT id, %s, payload, timestamp, synced FROM %s WHERE synced = 0 ORDER BY id`, groupCol, table))
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var r Record
		var payload string
		if err := rows.Scan(&r.ID, &r.GroupID, &payload, &r.Timestamp, &r.Synced); err != nil {
			return nil, err
		}
		r.Payload = json.RawMessage(payload)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) markSynced(ctx context.Context, table string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET synced = 1 WHERE id IN (%s)`, table, placeholders), args...)
	if err != nil {
		return fmt.Errorf("failed to mark %s synced: %w", table, err)
	}
	return nil
}

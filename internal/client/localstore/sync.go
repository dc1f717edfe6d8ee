package localstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/quizgen/quizgen/internal/dto"
)

// BackupToServer flushes all unsynced records as metadata summaries to the
// backend's backup endpoint. On a 2xx response exactly the submitted records
// are marked synced; on any failure the flags stay untouched and the caller
// is expected to retry later. Delivery is at-least-once: a crash between the
// request and the flag update re-submits the same metadata next time.
func (s *Store) BackupToServer(ctx context.Context, serverURL string) error {
	quizzes, err := s.unsynced(ctx, tableQuizAttempts)
	if err != nil {
		return err
	}
	messages, err := s.unsynced(ctx, tableChatMessages)
	if err != nil {
		return err
	}
	notes, err := s.unsynced(ctx, tableNotes)
	if err != nil {
		return err
	}

	payload := dto.BackupRequest{
		QuizzesMeta:  summarize(quizzes),
		MessagesMeta: summarize(messages),
		NotesMeta:    summarize(notes),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode backup payload: %w", err)
	}

	url := strings.TrimSuffix(serverURL, "/") + "/api/backup"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build backup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := s.prefs.GetString(ctx, TokenKey, ""); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backup rejected: status %d", resp.StatusCode)
	}

	if err := s.markSynced(ctx, tableQuizAttempts, recordIDs(quizzes)); err != nil {
		return err
	}
	if err := s.markSynced(ctx, tableChatMessages, recordIDs(messages)); err != nil {
		return err
	}
	return s.markSynced(ctx, tableNotes, recordIDs(notes))
}

// summarize reduces records to {id, timestamp, approxBytes} items. The byte
// count is the length of the record's JSON serialization, an approximation
// rather than an exact wire size.
func summarize(records []Record) []dto.MetaItem {
	if records == nil {
		return nil
	}
	items := make([]dto.MetaItem, 0, len(records))
	for i := range records {
		r := records[i]
		items = append(items, dto.MetaItem{
			ID:          &r.ID,
			Timestamp:   &r.Timestamp,
			ApproxBytes: estimateBytes(r),
		})
	}
	return items
}

func estimateBytes(r Record) int64 {
	b, err := json.Marshal(r)
	if err != nil {
		return 0
	}
	return int64(len(b))
}

func recordIDs(records []Record) []int64 {
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

package localstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/quizgen/quizgen/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveStampsTimestampAndUnsyncedFlag(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	id, err := store.SaveQuizAttempt(ctx, json.RawMessage(`{"quizId":"q1","score":5}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	attempts, err := store.QuizAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.False(t, attempts[0].Synced)
	assert.Greater(t, attempts[0].Timestamp, int64(0))
	assert.JSONEq(t, `{"quizId":"q1","score":5}`, string(attempts[0].Payload))
}

func TestChatMessagesFilteredByGroup(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.SaveChatMessage(ctx, "group-a", json.RawMessage(`{"text":"hi"}`))
	require.NoError(t, err)
	_, err = store.SaveChatMessage(ctx, "group-a", json.RawMessage(`{"text":"again"}`))
	require.NoError(t, err)
	_, err = store.SaveChatMessage(ctx, "group-b", json.RawMessage(`{"text":"elsewhere"}`))
	require.NoError(t, err)

	msgs, err := store.ChatMessages(ctx, "group-a")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.Equal(t, "group-a", m.GroupID)
	}
}

func TestBackupToServer_MarksSubmittedRecordsSynced(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.SaveQuizAttempt(ctx, json.RawMessage(`{"quizId":"q1"}`))
	require.NoError(t, err)
	_, err = store.SaveChatMessage(ctx, "g1", json.RawMessage(`{"text":"hi"}`))
	require.NoError(t, err)
	_, err = store.SaveNote(ctx, json.RawMessage(`{"title":"notes"}`))
	require.NoError(t, err)

	require.NoError(t, store.Prefs().Set(ctx, TokenKey, "test-token"))

	var got dto.BackupRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/backup", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"addedBytes":100}`))
	}))
	defer server.Close()

	require.NoError(t, store.BackupToServer(ctx, server.URL))

	assert.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, got.QuizzesMeta, 1)
	require.Len(t, got.MessagesMeta, 1)
	require.Len(t, got.NotesMeta, 1)
	// summaries carry the record id and a non-zero size estimate, never payloads
	assert.Equal(t, int64(1), *got.QuizzesMeta[0].ID)
	assert.Greater(t, got.QuizzesMeta[0].ApproxBytes, int64(0))

	attempts, err := store.QuizAttempts(ctx)
	require.NoError(t, err)
	assert.True(t, attempts[0].Synced)

	msgs, err := store.ChatMessages(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, msgs[0].Synced)

	notes, err := store.Notes(ctx)
	require.NoError(t, err)
	assert.True(t, notes[0].Synced)
}

func TestBackupToServer_OnlyUnsyncedIncluded(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.SaveQuizAttempt(ctx, json.RawMessage(`{"quizId":"q1"}`))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	require.NoError(t, store.BackupToServer(ctx, server.URL))

	// a record created after the backup stays unsynced
	_, err = store.SaveQuizAttempt(ctx, json.RawMessage(`{"quizId":"q2"}`))
	require.NoError(t, err)

	attempts, err := store.QuizAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.True(t, attempts[0].Synced)
	assert.False(t, attempts[1].Synced)
}

func TestBackupToServer_FailureLeavesFlagsUntouched(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.SaveQuizAttempt(ctx, json.RawMessage(`{"quizId":"q1"}`))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"success":false,"error":"Database error"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	err = store.BackupToServer(ctx, server.URL)
	require.Error(t, err)

	attempts, err := store.QuizAttempts(ctx)
	require.NoError(t, err)
	assert.False(t, attempts[0].Synced)

	// network failure behaves the same
	server.Close()
	err = store.BackupToServer(ctx, server.URL)
	require.Error(t, err)

	attempts, err = store.QuizAttempts(ctx)
	require.NoError(t, err)
	assert.False(t, attempts[0].Synced)
}

func TestBackupToServer_NoTokenNoAuthHeader(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.SaveNote(ctx, json.RawMessage(`{"title":"n"}`))
	require.NoError(t, err)

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	require.NoError(t, store.BackupToServer(ctx, server.URL))
	assert.Empty(t, gotAuth)
}

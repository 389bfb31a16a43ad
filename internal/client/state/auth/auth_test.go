package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/localstore"
	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/models"
	"github.com/dmitrijs2005/recipebox/internal/store"

	_ "modernc.org/sqlite"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStorage(t *testing.T) (localstore.Repository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE cache (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return localstore.NewSQLiteRepository(db), db
}

func newTestSlice(t *testing.T) (*Slice, localstore.Repository) {
	t.Helper()
	storage, _ := setupStorage(t)
	s := New(store.New(store.WithLatency(0, 0)), storage, discardLogger())
	return s, storage
}

func TestLogin_Success_AuthenticatesAndPersists(t *testing.T) {
	s, storage := newTestSlice(t)
	ctx := context.Background()

	user, err := s.Login(ctx, "Tharushi", "whatever")
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)

	st := s.Snapshot()
	assert.Equal(t, StatusAuthenticated, st.Status)
	require.NotNil(t, st.User)
	assert.Equal(t, "Tharushi", st.User.Username)
	assert.Empty(t, st.Err)

	data, err := storage.Get(ctx, localstore.KeyUser)
	require.NoError(t, err)
	require.NotNil(t, data)

	var persisted models.User
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "1", persisted.ID)
}

func TestLogin_UnknownUser_RecordsDismissibleError(t *testing.T) {
	s, storage := newTestSlice(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "nobody", "pw")
	require.ErrorIs(t, err, common.ErrorNotFound)

	st := s.Snapshot()
	assert.Equal(t, StatusAnonymous, st.Status)
	assert.Nil(t, st.User)
	assert.Contains(t, st.Err, "invalid username or password")

	// Nothing persisted on failure.
	data, err := storage.Get(ctx, localstore.KeyUser)
	require.NoError(t, err)
	assert.Nil(t, data)

	s.ClearError()
	assert.Empty(t, s.Snapshot().Err)
}

func TestSignup_Success_AutoLogin(t *testing.T) {
	s, _ := newTestSlice(t)

	user, err := s.Signup(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	st := s.Snapshot()
	assert.Equal(t, StatusAuthenticated, st.Status)
	require.NotNil(t, st.User)
	assert.Equal(t, user.ID, st.User.ID)
	assert.Empty(t, st.User.FavoriteRecipes)
}

func TestSignup_Conflict_StaysAnonymous(t *testing.T) {
	s, _ := newTestSlice(t)

	_, err := s.Signup(context.Background(), "Tharushi", "new@example.com", "pw")
	require.ErrorIs(t, err, common.ErrorConflict)

	st := s.Snapshot()
	assert.Equal(t, StatusAnonymous, st.Status)
	assert.Contains(t, st.Err, "username already exists")
}

func TestLogout_ClearsSessionAndStorage(t *testing.T) {
	s, storage := newTestSlice(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "Kusal", "pw")
	require.NoError(t, err)

	s.Logout(ctx)

	st := s.Snapshot()
	assert.Equal(t, StatusAnonymous, st.Status)
	assert.Nil(t, st.User)

	data, err := storage.Get(ctx, localstore.KeyUser)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRehydrate_RestoresPersistedSession(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	user := models.User{ID: "1", Username: "Tharushi", Email: "tharu@example.com"}
	data, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, storage.Set(ctx, localstore.KeyUser, data))

	s := New(store.New(store.WithLatency(0, 0)), storage, discardLogger())
	require.NoError(t, s.Rehydrate(ctx))

	st := s.Snapshot()
	assert.Equal(t, StatusAuthenticated, st.Status)
	require.NotNil(t, st.User)
	assert.Equal(t, "Tharushi", st.User.Username)
}

func TestRehydrate_NoSession_StaysAnonymous(t *testing.T) {
	s, _ := newTestSlice(t)

	require.NoError(t, s.Rehydrate(context.Background()))
	assert.Equal(t, StatusAnonymous, s.Snapshot().Status)
}

func TestRehydrate_CorruptValue_Discarded(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, localstore.KeyUser, []byte("{not json")))

	s := New(store.New(store.WithLatency(0, 0)), storage, discardLogger())
	require.NoError(t, s.Rehydrate(ctx))
	assert.Equal(t, StatusAnonymous, s.Snapshot().Status)
}

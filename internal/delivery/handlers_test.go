package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voicepilot/voicepilot/internal/prefs"
)

// stubPrefs serves one stored record and counts creating reads, so the
// tests can prove the inspection endpoint never writes.
type stubPrefs struct {
	stored map[int64]*prefs.Preference
	gets   int
}

func (s *stubPrefs) Get(ctx context.Context, chatID int64) (*prefs.Preference, error) {
	s.gets++
	return s.stored[chatID], nil
}

func (s *stubPrefs) Lookup(ctx context.Context, chatID int64) (*prefs.Preference, error) {
	return s.stored[chatID], nil
}

func (s *stubPrefs) SetVoice(ctx context.Context, chatID int64, voice string) error { return nil }
func (s *stubPrefs) SetStyle(ctx context.Context, chatID int64, style string) error { return nil }
func (s *stubPrefs) ToggleTTS(ctx context.Context, chatID int64) (bool, error)      { return false, nil }

func prefsRouter(svc prefs.Service) chi.Router {
	h := NewHandler(svc, nil, nil, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Get("/prefs/{chat_id}", h.GetPreference)
	return r
}

func TestGetPreferenceReturnsStoredRecord(t *testing.T) {
	svc := &stubPrefs{stored: map[int64]*prefs.Preference{
		7: {ChatID: 7, Voice: "en-GB-RyanNeural", Style: prefs.StyleCreative},
	}}

	rec := httptest.NewRecorder()
	prefsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/prefs/7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got prefs.Preference
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "en-GB-RyanNeural", got.Voice)
}

func TestGetPreferenceUnknownChatIs404WithoutCreate(t *testing.T) {
	svc := &stubPrefs{stored: map[int64]*prefs.Preference{}}

	rec := httptest.NewRecorder()
	prefsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/prefs/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, svc.gets, "probing an unknown chat must not create a record")
}

func TestGetPreferenceRejectsBadChatID(t *testing.T) {
	rec := httptest.NewRecorder()
	prefsRouter(&stubPrefs{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/prefs/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

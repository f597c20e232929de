package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/records"
	"github.com/voicepilot/voicepilot/internal/speech"
)

// Handler exposes a small read-mostly operator API: the voice catalog,
// per-chat preferences and history cleanup.
type Handler struct {
	prefs   prefs.Service
	speech  *speech.Service
	records records.Service
	log     *zap.SugaredLogger
}

func NewHandler(prefsSvc prefs.Service, speechSvc *speech.Service,
	recordsSvc records.Service, log *zap.SugaredLogger) *Handler {

	return &Handler{
		prefs:   prefsSvc,
		speech:  speechSvc,
		records: recordsSvc,
		log:     log,
	}
}

func (h *Handler) ListVoices(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.speech.Voices(r.Context())
	if err != nil {
		h.log.Errorw("catalog fetch fail", "err", err)
		http.Error(w, "voice catalog unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, catalog)
}

func (h *Handler) GetPreference(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chat_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid chat_id", http.StatusBadRequest)
		return
	}

	// read-only: an inspection request must not create a record
	pref, err := h.prefs.Lookup(r.Context(), chatID)
	if err != nil {
		h.log.Errorw("prefs lookup fail", "chat_id", chatID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if pref == nil {
		http.Error(w, "unknown chat_id", http.StatusNotFound)
		return
	}
	writeJSON(w, pref)
}

func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chat_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid chat_id", http.StatusBadRequest)
		return
	}

	if err := h.records.ClearHistory(r.Context(), chatID); err != nil {
		h.log.Errorw("clear history fail", "chat_id", chatID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

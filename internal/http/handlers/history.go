package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/phonetrace/phonetrace/internal/auth"
	"github.com/phonetrace/phonetrace/internal/http/respond"
	"github.com/phonetrace/phonetrace/internal/middleware"
	"github.com/phonetrace/phonetrace/internal/models"
	"github.com/phonetrace/phonetrace/internal/service"
	"github.com/phonetrace/phonetrace/internal/storage"
)

// HistoryHandler owns the authenticated history endpoints. Every route is
// scoped to the requesting account; cross-account access gets a 403.
type HistoryHandler struct {
	history    *service.HistoryService
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

// NewHistoryHandler constructs the handler.
func NewHistoryHandler(history *service.HistoryService, jwtManager *auth.JWTManager, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history:    history,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register attaches history routes to the mux.
func (h *HistoryHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /history", middleware.RequireAuthFunc(h.jwtManager, h.handleList))
	mux.Handle("GET /history-details/{id}", middleware.RequireAuthFunc(h.jwtManager, h.handleDetails))
	mux.Handle("POST /delete-history/{id}", middleware.RequireAuthFunc(h.jwtManager, h.handleDelete))
}

// historyDetails is the record plus a display timestamp.
type historyDetails struct {
	*models.HistoryRecord
	SearchedAt string `json:"searched_at"`
}

func (h *HistoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())

	records, err := h.history.List(r.Context(), accountID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	if records == nil {
		records = []*models.HistoryRecord{}
	}

	respond.JSON(w, http.StatusOK, map[string]any{"history": records})
}

func (h *HistoryHandler) handleDetails(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	recordID, ok := pathID(w, r)
	if !ok {
		return
	}

	record, err := h.history.Get(r.Context(), accountID, recordID)
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, historyDetails{
		HistoryRecord: record,
		SearchedAt:    time.Unix(record.CreatedAt, 0).UTC().Format("2006-01-02 15:04:05"),
	})
}

func (h *HistoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	recordID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.history.Delete(r.Context(), accountID, recordID); err != nil {
		h.writeHistoryError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeHistoryError translates history service errors to HTTP statuses.
func (h *HistoryHandler) writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "record not found")
	case errors.Is(err, storage.ErrUnauthorized):
		respond.Error(w, http.StatusForbidden, "unauthorized")
	default:
		respond.Error(w, http.StatusInternalServerError, "history store unavailable")
	}
}

// pathID parses the {id} path segment, writing a 400 on malformed input.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "invalid record id")
		return 0, false
	}
	return id, true
}

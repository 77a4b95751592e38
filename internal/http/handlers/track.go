package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phonetrace/phonetrace/internal/auth"
	"github.com/phonetrace/phonetrace/internal/http/respond"
	"github.com/phonetrace/phonetrace/internal/middleware"
	"github.com/phonetrace/phonetrace/internal/phone"
	"github.com/phonetrace/phonetrace/internal/service"
)

// TrackHandler owns the authenticated resolution endpoint.
type TrackHandler struct {
	resolver   *service.Resolver
	history    *service.HistoryService
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

// NewTrackHandler constructs the handler.
func NewTrackHandler(resolver *service.Resolver, history *service.HistoryService, jwtManager *auth.JWTManager, logger *slog.Logger) *TrackHandler {
	return &TrackHandler{
		resolver:   resolver,
		history:    history,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register attaches the track route to the mux.
func (h *TrackHandler) Register(mux *http.ServeMux) {
	mux.Handle("POST /track", middleware.RequireAuthFunc(h.jwtManager, h.handleTrack))
}

type trackRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// handleTrack resolves a phone number for the authenticated account and
// appends the result to its history. A result that could not be geocoded is
// still a success; only an unparseable number or an internal failure is an
// error.
func (h *TrackHandler) handleTrack(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		respond.Error(w, http.StatusBadRequest, "phone_number is required")
		return
	}

	result, err := h.resolver.Resolve(r.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, phone.ErrInvalidNumber) {
			respond.Error(w, http.StatusNotFound, "no data resolvable for this number")
			return
		}
		h.logger.Error("Resolution failed", "account_id", accountID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "resolution failed")
		return
	}

	if _, err := h.history.Record(r.Context(), accountID, result); err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to save resolution")
		return
	}

	respond.JSON(w, http.StatusOK, result)
}

// Package handlers implements the JSON HTTP surface of the service.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phonetrace/phonetrace/internal/auth"
	"github.com/phonetrace/phonetrace/internal/http/respond"
	"github.com/phonetrace/phonetrace/internal/metrics"
)

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewAuthHandler constructs the handler. metrics may be nil.
func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager, m *metrics.Metrics, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		metrics:       m,
		logger:        logger,
	}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("POST /login", h.handleLogin)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" {
		respond.Error(w, http.StatusBadRequest, "username and email are required")
		return
	}

	account, err := h.authenticator.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrUsernameTaken), errors.Is(err, auth.ErrEmailTaken):
			respond.Error(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("Registration failed", "username", req.Username, "error", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create account")
		}
		return
	}

	h.metrics.IncrementAccountsRegistered()
	h.logger.Info("Account registered", "account_id", account.ID, "username", account.Username)
	respond.JSON(w, http.StatusCreated, account)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	account, err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		// Same response for unknown username and wrong password.
		h.logger.Warn("Login failed", "username", req.Username)
		respond.Error(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	token, err := h.jwtManager.Generate(account)
	if err != nil {
		h.logger.Error("Failed to generate token", "account_id", account.ID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	h.logger.Info("Account logged in", "account_id", account.ID)
	respond.JSON(w, http.StatusOK, map[string]any{
		"token":   token,
		"account": account,
	})
}

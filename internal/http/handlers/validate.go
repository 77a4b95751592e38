package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/phonetrace/phonetrace/internal/http/respond"
	"github.com/phonetrace/phonetrace/internal/phone"
)

// ValidateHandler owns the public number-validation endpoint.
type ValidateHandler struct {
	parser *phone.Parser
}

// NewValidateHandler constructs the handler.
func NewValidateHandler(parser *phone.Parser) *ValidateHandler {
	return &ValidateHandler{parser: parser}
}

// Register attaches the validate route to the mux.
func (h *ValidateHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/validate-number", h.handleValidate)
}

type validateRequest struct {
	Number string `json:"number"`
}

// handleValidate reports whether the input parses as a valid number. It never
// errors: malformed payloads and unparseable input both answer valid=false.
func (h *ValidateHandler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	valid := false
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		valid = h.parser.Validate(req.Number)
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

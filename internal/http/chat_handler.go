package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/arivera-dev/inventario/internal/apperr"
	"github.com/arivera-dev/inventario/pkg/validator"
)

var requestValidator = func() validator.Validator {
	v, err := validator.NewDefaultValidator()
	if err != nil {
		panic(err)
	}
	return v
}()

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type chatHandler struct {
	svc *Service
}

func newChatHandler(svc *Service) *chatHandler {
	return &chatHandler{svc: svc}
}

// handleChat answers a free-text question against the simple product store.
func (h *chatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := requestValidator.Validate(req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.svc.respondError(w, r, apperr.EmptyMessageErr)
		return
	}

	answer, err := h.svc.simpleSvc.Reply(r.Context(), req.Message)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, chatResponse{Reply: answer.Reply})
}

// handleAssistantQuery answers against the full catalog and returns the
// structured answer, executed SQL included.
func (h *chatHandler) handleAssistantQuery(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := requestValidator.Validate(req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.svc.respondError(w, r, apperr.EmptyMessageErr)
		return
	}

	answer, err := h.svc.catalogSvc.Reply(r.Context(), req.Message)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, answer)
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// handleSuggestions lists in-stock product names for autocomplete.
func (h *chatHandler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.svc.dashboardSvc.Suggestions(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

package http

import (
	"net/http"
	"strconv"

	"github.com/arivera-dev/inventario/internal/apperr"
	"github.com/arivera-dev/inventario/internal/model"
)

type dashboardHandler struct {
	svc *Service
}

func newDashboardHandler(svc *Service) *dashboardHandler {
	return &dashboardHandler{svc: svc}
}

func (h *dashboardHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.dashboardSvc.Summary(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, summary)
}

type lowStockResponse struct {
	Threshold int                     `json:"threshold"`
	Products  []model.InventoryRecord `json:"products"`
}

func (h *dashboardHandler) handleLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := h.svc.assistantCfg.LowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.svc.respondError(w, r, apperr.ValidationErr)
			return
		}
		threshold = parsed
	}

	products, err := h.svc.dashboardSvc.LowStock(r.Context(), threshold)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, lowStockResponse{
		Threshold: threshold,
		Products:  products,
	})
}

type movementsResponse struct {
	Movements []model.Movement `json:"movements"`
}

func (h *dashboardHandler) handleMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.svc.dashboardSvc.Movements(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, movementsResponse{Movements: movements})
}

package http

import (
	"net/http"

	"github.com/arivera-dev/inventario/internal/model"
)

type productsResponse struct {
	Products []model.Product `json:"products"`
}

type productHandler struct {
	svc *Service
}

func newProductHandler(svc *Service) *productHandler {
	return &productHandler{svc: svc}
}

// handleListProducts dumps the simple product store.
func (h *productHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.productStore.ListProducts(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, productsResponse{Products: products})
}

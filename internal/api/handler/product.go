package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
	"github.com/sp1r1tt/dashboard2025/internal/product"
)

type productResponse struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"groupId"`
	Name      string `json:"name"`
	Serial    string `json:"serial"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type inventoryItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Serial   string  `json:"serial"`
	Status   string  `json:"status"`
	DateCode *string `json:"dateCode,omitempty"`
	DateText *string `json:"dateText,omitempty"`
}

type inventoryResponse struct {
	Products []inventoryItemResponse `json:"products"`
}

// ProductHandler handles the product endpoints.
type ProductHandler struct {
	repo product.Repository
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(repo product.Repository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]productResponse, 0, len(products))
	for _, p := range products {
		items = append(items, productResponse{
			ID:        p.ID,
			GroupID:   p.GroupID,
			Name:      p.Name,
			Serial:    p.Serial,
			Status:    p.Status,
			CreatedAt: formatTime(p.CreatedAt),
		})
	}

	response.JSON(w, http.StatusOK, items)
}

// Inventory handles GET /api/inventory: the same product rows shaped for
// the inventory screen.
func (h *ProductHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list inventory", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]inventoryItemResponse, 0, len(products))
	for _, p := range products {
		items = append(items, inventoryItemResponse{
			ID:       p.ID,
			Name:     p.Name,
			Serial:   p.Serial,
			Status:   p.Status,
			DateCode: p.DateCode,
			DateText: p.DateText,
		})
	}

	response.JSON(w, http.StatusOK, inventoryResponse{Products: items})
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Message(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			response.Message(w, http.StatusNotFound, "Product not found")
			return
		}
		slog.Error("failed to delete product", "id", id, "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Message(w, http.StatusOK, "Product deleted")
}

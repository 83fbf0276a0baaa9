package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
)

// Counter reports the size of a table.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type dashboardResponse struct {
	GroupsCount   int `json:"groupsCount"`
	ProductsCount int `json:"productsCount"`
}

// DashboardHandler handles GET /api/dashboard.
type DashboardHandler struct {
	groups   Counter
	products Counter
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(groups, products Counter) *DashboardHandler {
	return &DashboardHandler{groups: groups, products: products}
}

// ServeHTTP returns the group and product totals for the dashboard cards.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	groupsCount, err := h.groups.Count(r.Context())
	if err != nil {
		slog.Error("failed to count groups", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	productsCount, err := h.products.Count(r.Context())
	if err != nil {
		slog.Error("failed to count products", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, dashboardResponse{
		GroupsCount:   groupsCount,
		ProductsCount: productsCount,
	})
}

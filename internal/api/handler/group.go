package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
	"github.com/sp1r1tt/dashboard2025/internal/group"
	"github.com/sp1r1tt/dashboard2025/internal/product"
)

type relatedProductResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Serial    string  `json:"serial"`
	Status    string  `json:"status"`
	DateCode  *string `json:"dateCode,omitempty"`
	DateText  *string `json:"dateText,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type groupResponse struct {
	ID             int64                   `json:"id"`
	TitleEn        string                  `json:"titleEn"`
	TitleRu        string                  `json:"titleRu"`
	ProductCount   int                     `json:"productCount"`
	DateCode       string                  `json:"dateCode"`
	DateText       string                  `json:"dateText"`
	USD            *string                 `json:"usd,omitempty"`
	CreatedAt      string                  `json:"createdAt"`
	RelatedProduct *relatedProductResponse `json:"relatedProduct,omitempty"`
}

func toGroupResponse(g *group.Group) groupResponse {
	resp := groupResponse{
		ID:           g.ID,
		TitleEn:      g.TitleEn,
		TitleRu:      g.TitleRu,
		ProductCount: g.ProductCount,
		DateCode:     g.DateCode,
		DateText:     g.DateText,
		USD:          g.USD,
		CreatedAt:    formatTime(g.CreatedAt),
	}
	if g.RelatedProduct != nil {
		resp.RelatedProduct = toRelatedProductResponse(g.RelatedProduct)
	}
	return resp
}

func toRelatedProductResponse(p *product.Product) *relatedProductResponse {
	return &relatedProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Serial:    p.Serial,
		Status:    p.Status,
		DateCode:  p.DateCode,
		DateText:  p.DateText,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

// GroupHandler handles the arrival group endpoints.
type GroupHandler struct {
	repo group.Repository
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(repo group.Repository) *GroupHandler {
	return &GroupHandler{repo: repo}
}

// List handles GET /api/groups: the flat join rows folded into one record
// per group, each with at most one related product.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.ListJoined(r.Context())
	if err != nil {
		slog.Error("failed to list groups", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	groups := group.Aggregate(rows)

	items := make([]groupResponse, 0, len(groups))
	for i := range groups {
		items = append(items, toGroupResponse(&groups[i]))
	}

	response.JSON(w, http.StatusOK, items)
}

// Delete handles DELETE /api/groups/{id}.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Message(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.Message(w, http.StatusNotFound, "Group not found")
			return
		}
		slog.Error("failed to delete group", "id", id, "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Message(w, http.StatusOK, "Group deleted")
}

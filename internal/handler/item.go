package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockroom/stockroom/internal/auth"
	"github.com/stockroom/stockroom/internal/handler/dto"
	"github.com/stockroom/stockroom/internal/model"
	"github.com/stockroom/stockroom/internal/service"
)

// ItemHandler handles HTTP requests for inventory items.
// The owner is always taken from the verified principal in the request
// context, never from the request body.
type ItemHandler struct {
	svc    *service.InventoryService
	logger *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.InventoryService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustPrincipalFromContext(r.Context())

	items, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemListResponse(items))
}

// Get handles GET /api/v1/items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustPrincipalFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Item ID is required")
		return
	}

	item, err := h.svc.Get(r.Context(), ownerID, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(item))
}

// Create handles POST /api/v1/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustPrincipalFromContext(r.Context())

	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Product name is required")
		return
	}
	if req.Quantity == nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity is required")
		return
	}
	if req.Price == nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Price is required")
		return
	}
	if req.SKU == "" {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "SKU is required")
		return
	}

	input := service.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Category:    model.Category(req.Category),
		SKU:         req.SKU,
	}

	item, err := h.svc.Create(r.Context(), ownerID, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("item_created",
		"item_id", item.ID,
		"owner_id", ownerID,
		"sku", item.SKU,
	)

	writeJSON(w, http.StatusCreated, dto.ToItemResponse(item))
}

// Update handles PUT /api/v1/items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustPrincipalFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Item ID is required")
		return
	}

	var req dto.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		SKU:         req.SKU,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		input.Category = &category
	}

	item, err := h.svc.Update(r.Context(), ownerID, id, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("item_updated",
		"item_id", item.ID,
		"owner_id", ownerID,
	)

	writeJSON(w, http.StatusOK, dto.ToItemResponse(item))
}

// Delete handles DELETE /api/v1/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.MustPrincipalFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Item ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("item_deleted",
		"item_id", id,
		"owner_id", ownerID,
	)

	writeJSON(w, http.StatusOK, dto.DeleteItemResponse{
		Message: "Item removed",
		ID:      id,
	})
}

// handleServiceError maps inventory service errors to HTTP responses.
// Not-found and not-owner intentionally return distinct codes; see the
// design notes on existence leakage.
func (h *ItemHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		h.writeError(w, http.StatusNotFound, "ITEM_NOT_FOUND", "Item not found")
	case errors.Is(err, service.ErrNotOwner):
		h.writeError(w, http.StatusUnauthorized, "NOT_AUTHORIZED", "Not authorized")
	case errors.Is(err, service.ErrSKUExists):
		h.writeError(w, http.StatusConflict, "SKU_TAKEN", "SKU already in use")
	case errors.Is(err, service.ErrValidation):
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *ItemHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

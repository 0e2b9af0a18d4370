package dto

import (
	"time"

	"github.com/stockroom/stockroom/internal/model"
)

// CreateItemRequest represents the request body for creating an item.
// Quantity and price are pointers so a missing field is distinguishable
// from an explicit zero.
type CreateItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	SKU         string   `json:"sku"`
}

// UpdateItemRequest represents a partial item update.
// Absent fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
}

// ItemResponse represents an inventory item in API responses.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	SKU         string    `json:"sku"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse represents the full list of an owner's items.
type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Count int            `json:"count"`
}

// DeleteItemResponse confirms a deletion.
type DeleteItemResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ToItemResponse converts an Item model to an ItemResponse DTO.
func ToItemResponse(item *model.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Category:    string(item.Category),
		SKU:         item.SKU,
		OwnerID:     item.OwnerID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToItemListResponse converts a slice of Item models to an ItemListResponse.
func ToItemListResponse(items []*model.Item) *ItemListResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = *ToItemResponse(item)
	}
	return &ItemListResponse{
		Data:  responses,
		Count: len(responses),
	}
}

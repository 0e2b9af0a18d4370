package model

import "time"

// Category represents the fixed set of item categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryFurniture   Category = "Furniture"
	CategoryTools       Category = "Tools"
	CategoryOther       Category = "Other"
)

// Categories lists all valid item categories.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryFood,
	CategoryFurniture,
	CategoryTools,
	CategoryOther,
}

// IsValid checks if the category is a member of the fixed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryFood,
		CategoryFurniture, CategoryTools, CategoryOther:
		return true
	}
	return false
}

// Field length limits for items.
const (
	MaxItemNameLength        = 100
	MaxItemDescriptionLength = 500
)

// Item represents a single stock-keeping entry owned by a user.
// SKU is stored uppercased and is unique per owner.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	SKU         string    `json:"sku"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/stockroom/stockroom/internal/metrics"
	"github.com/stockroom/stockroom/internal/model"
	"github.com/stockroom/stockroom/internal/repository"
)

// Inventory service errors.
var (
	// ErrValidation is the base error for all invariant violations on
	// caller-supplied fields. Specific failures wrap it.
	ErrValidation = errors.New("validation failed")

	ErrItemNotFound = errors.New("item not found")
	// ErrNotOwner means the item exists but belongs to another user.
	ErrNotOwner  = errors.New("item not owned by caller")
	ErrSKUExists = errors.New("sku already in use")
)

// InventoryService handles inventory item business logic.
// Every operation takes the verified owner id as its first argument;
// there is no unscoped entry point.
type InventoryService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo *repository.Repository, recorder metrics.Recorder) *InventoryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &InventoryService{
		repo:    repo,
		metrics: recorder,
	}
}

// CreateItemInput defines input for creating an item.
// The owner is never part of the input; it is forced to the caller.
type CreateItemInput struct {
	Name        string
	Description string
	Quantity    int
	Price       float64
	Category    model.Category
	SKU         string
}

// UpdateItemInput defines a partial update. Nil fields are left
// unchanged; supplied fields are validated individually.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Quantity    *int
	Price       *float64
	Category    *model.Category
	SKU         *string
}

// NormalizeSKU trims and uppercases a SKU for storage and the
// per-owner uniqueness check.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// Create adds a new item owned by ownerID.
// SKU is uppercased before the uniqueness check; a per-owner collision
// returns ErrSKUExists and leaves no partial row.
func (s *InventoryService) Create(ctx context.Context, ownerID string, input CreateItemInput) (*model.Item, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	sku := NormalizeSKU(input.SKU)
	if sku == "" {
		return nil, fmt.Errorf("%w: sku is required", ErrValidation)
	}

	now := time.Now().UTC()
	item := &model.Item{
		ID:          ulid.Make().String(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Quantity:    input.Quantity,
		Price:       input.Price,
		Category:    input.Category,
		SKU:         sku,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrSKUExists) {
			return nil, ErrSKUExists
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.metrics.IncItemCreated()

	return item, nil
}

// List returns all of the owner's items, newest-created first.
func (s *InventoryService) List(ctx context.Context, ownerID string) ([]*model.Item, error) {
	items, err := s.repo.ListItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Get returns a single item. Existence is checked before ownership:
// a missing id fails ErrItemNotFound, an id owned by someone else
// fails ErrNotOwner.
func (s *InventoryService) Get(ctx context.Context, ownerID, itemID string) (*model.Item, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return item, nil
}

// Update applies a partial update to an item after the same
// existence-then-ownership check as Get.
func (s *InventoryService) Update(ctx context.Context, ownerID, itemID string, input UpdateItemInput) (*model.Item, error) {
	item, err := s.Get(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		item.Name = name
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.Quantity != nil {
		if err := validateQuantity(*input.Quantity); err != nil {
			return nil, err
		}
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		item.Price = *input.Price
	}
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return nil, err
		}
		item.Category = *input.Category
	}
	if input.SKU != nil {
		sku := NormalizeSKU(*input.SKU)
		if sku == "" {
			return nil, fmt.Errorf("%w: sku is required", ErrValidation)
		}
		item.SKU = sku
	}

	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrSKUExists) {
			return nil, ErrSKUExists
		}
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.metrics.IncItemUpdated()

	return item, nil
}

// Delete permanently removes an item after the same
// existence-then-ownership check as Get. A repeated delete fails
// ErrItemNotFound.
func (s *InventoryService) Delete(ctx context.Context, ownerID, itemID string) error {
	if _, err := s.Get(ctx, ownerID, itemID); err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.metrics.IncItemDeleted()

	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > model.MaxItemNameLength {
		return fmt.Errorf("%w: name cannot be more than %d characters", ErrValidation, model.MaxItemNameLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > model.MaxItemDescriptionLength {
		return fmt.Errorf("%w: description cannot be more than %d characters", ErrValidation, model.MaxItemDescriptionLength)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return nil
}

func validateCategory(category model.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: %q is not a valid category", ErrValidation, category)
	}
	return nil
}

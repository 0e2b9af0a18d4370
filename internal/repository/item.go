package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockroom/stockroom/internal/model"
)

// Common errors for item repository operations.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrSKUExists    = errors.New("sku already exists for owner")
)

// CreateItem inserts a new inventory item into the database.
// The compound unique index on (owner_id, sku) makes concurrent creates
// of the same SKU under one owner an atomic conflict.
func (r *Repository) CreateItem(ctx context.Context, item *model.Item) error {
	query := `
		INSERT INTO items (id, owner_id, name, description, quantity, price, category, sku, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.OwnerID,
		item.Name,
		item.Description,
		item.Quantity,
		item.Price,
		item.Category,
		item.SKU,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSKUExists
		}
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// GetItemByID retrieves an item by its ID regardless of owner.
// The service layer checks ownership after existence.
func (r *Repository) GetItemByID(ctx context.Context, id string) (*model.Item, error) {
	query := `
		SELECT id, owner_id, name, description, quantity, price, category, sku, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}

	return item, nil
}

// ListItems retrieves all items owned by ownerID, newest-created first.
func (r *Repository) ListItems(ctx context.Context, ownerID string) ([]*model.Item, error) {
	query := `
		SELECT id, owner_id, name, description, quantity, price, category, sku, created_at, updated_at
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// UpdateItem updates an item's mutable fields.
// A SKU change that collides with another of the owner's items trips
// the same unique index as create; the row's own value never conflicts
// because the update happens in place.
func (r *Repository) UpdateItem(ctx context.Context, item *model.Item) error {
	query := `
		UPDATE items
		SET name = $2, description = $3, quantity = $4, price = $5, category = $6, sku = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Quantity,
		item.Price,
		item.Category,
		item.SKU,
		item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSKUExists
		}
		return fmt.Errorf("failed to update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem permanently removes an item.
// Deleting an already-deleted id reports ErrItemNotFound, never
// silent success.
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// CountItems returns the number of items owned by ownerID.
func (r *Repository) CountItems(ctx context.Context, ownerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM items WHERE owner_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return count, nil
}

// scanItem scans a single row into an Item model.
func scanItem(row pgx.Row) (*model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Description,
		&item.Quantity,
		&item.Price,
		&item.Category,
		&item.SKU,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

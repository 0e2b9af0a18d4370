package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stockroom/stockroom/internal/model"
)

func TestNormalizeSKU(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "w-1", "W-1"},
		{"mixed", "aBc-123", "ABC-123"},
		{"whitespace", "  sku-9  ", "SKU-9"},
		{"already_upper", "SKU", "SKU"},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := NormalizeSKU(test.in); got != test.want {
				t.Fatalf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestCreateItemValidationErrors(t *testing.T) {
	svc := &InventoryService{}

	valid := CreateItemInput{
		Name:     "Widget",
		Quantity: 5,
		Price:    9.99,
		Category: model.CategoryTools,
		SKU:      "w-1",
	}

	tests := []struct {
		name   string
		mutate func(*CreateItemInput)
	}{
		{"empty_name", func(in *CreateItemInput) { in.Name = "" }},
		{"name_too_long", func(in *CreateItemInput) { in.Name = strings.Repeat("x", model.MaxItemNameLength+1) }},
		{"description_too_long", func(in *CreateItemInput) {
			in.Description = strings.Repeat("x", model.MaxItemDescriptionLength+1)
		}},
		{"negative_quantity", func(in *CreateItemInput) { in.Quantity = -1 }},
		{"negative_price", func(in *CreateItemInput) { in.Price = -0.01 }},
		{"invalid_category", func(in *CreateItemInput) { in.Category = "Gadgets" }},
		{"empty_category", func(in *CreateItemInput) { in.Category = "" }},
		{"empty_sku", func(in *CreateItemInput) { in.SKU = "   " }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			input := valid
			test.mutate(&input)

			_, err := svc.Create(context.Background(), "owner-1", input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateItemValidation_ZeroValuesAllowed(t *testing.T) {
	// Zero quantity and zero price are valid; only negatives fail.
	if err := validateQuantity(0); err != nil {
		t.Errorf("expected zero quantity to be valid, got %v", err)
	}
	if err := validatePrice(0); err != nil {
		t.Errorf("expected zero price to be valid, got %v", err)
	}
}

package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// mockCatalog resolves prices from a fixed map
type mockCatalog struct {
	prices map[uint]decimal.Decimal
}

func (m *mockCatalog) ProductPrice(_ context.Context, productID uint) (decimal.Decimal, error) {
	price, ok := m.prices[productID]
	if !ok {
		return decimal.Zero, ErrProductNotFound
	}
	return price, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		quantity  int
		unitPrice string
		want      string
	}{
		{3, "2.00", "6.00"},
		{1, "0.00", "0.00"},
		{2, "9.99", "19.98"},
		{3, "0.333", "1.00"}, // rounds to 2 decimal places
	}

	for _, tt := range tests {
		got := ComputeTotalPrice(tt.quantity, dec(tt.unitPrice))
		if !got.Equal(dec(tt.want)) {
			t.Errorf("ComputeTotalPrice(%d, %s) = %s, want %s", tt.quantity, tt.unitPrice, got, tt.want)
		}
	}
}

func TestRecomputeTotal(t *testing.T) {
	sale := &Sale{
		Items: []SaleItem{
			{TotalPrice: dec("6.00")},
			{TotalPrice: dec("19.98")},
		},
	}
	sale.RecomputeTotal()
	if !sale.TotalAmount.Equal(dec("25.98")) {
		t.Errorf("TotalAmount = %s, want 25.98", sale.TotalAmount)
	}

	sale.Items = sale.Items[:1]
	sale.RecomputeTotal()
	if !sale.TotalAmount.Equal(dec("6.00")) {
		t.Errorf("TotalAmount after item removal = %s, want 6.00", sale.TotalAmount)
	}
}

func TestBuildSale_Success(t *testing.T) {
	catalog := &mockCatalog{prices: map[uint]decimal.Decimal{1: dec("2.00")}}
	price := dec("3.50")
	lines := []LineInput{
		{ProductID: 1, Quantity: 3},                    // price from catalog
		{ProductID: 2, Quantity: 2, UnitPrice: &price}, // price from caller
	}

	sale, err := BuildSale(context.Background(), 1, time.Time{}, "cash", lines, catalog)
	if err != nil {
		t.Fatalf("BuildSale failed: %v", err)
	}

	if len(sale.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sale.Items))
	}
	if !sale.Items[0].TotalPrice.Equal(dec("6.00")) {
		t.Errorf("item 0 total = %s, want 6.00", sale.Items[0].TotalPrice)
	}
	if !sale.Items[1].TotalPrice.Equal(dec("7.00")) {
		t.Errorf("item 1 total = %s, want 7.00", sale.Items[1].TotalPrice)
	}
	if !sale.TotalAmount.Equal(dec("13.00")) {
		t.Errorf("total = %s, want 13.00", sale.TotalAmount)
	}
	if sale.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", sale.Status, StatusCompleted)
	}
	if sale.Date.IsZero() {
		t.Error("expected date to be defaulted")
	}
}

func TestBuildSale_EmptySale(t *testing.T) {
	_, err := BuildSale(context.Background(), 1, time.Now(), "cash", nil, &mockCatalog{})
	if !errors.Is(err, ErrEmptySale) {
		t.Errorf("expected ErrEmptySale, got %v", err)
	}
}

func TestBuildSale_MissingStore(t *testing.T) {
	price := dec("2.00")
	_, err := BuildSale(context.Background(), 0, time.Now(), "cash",
		[]LineInput{{ProductID: 1, Quantity: 1, UnitPrice: &price}}, &mockCatalog{})
	if !errors.Is(err, ErrMissingStore) {
		t.Errorf("expected ErrMissingStore, got %v", err)
	}
}

func TestBuildSale_InvalidLines(t *testing.T) {
	catalog := &mockCatalog{prices: map[uint]decimal.Decimal{1: dec("2.00")}}
	negative := dec("-1.00")

	tests := []struct {
		name      string
		lines     []LineInput
		wantIndex int
	}{
		{"zero quantity", []LineInput{{ProductID: 1, Quantity: 0}}, 0},
		{"negative quantity", []LineInput{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: -2}}, 1},
		{"negative price", []LineInput{{ProductID: 1, Quantity: 1, UnitPrice: &negative}}, 0},
		{"missing product", []LineInput{{ProductID: 0, Quantity: 1}}, 0},
		{"unknown product", []LineInput{{ProductID: 99, Quantity: 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSale(context.Background(), 1, time.Now(), "cash", tt.lines, catalog)
			var lineErr *InvalidLineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("expected InvalidLineError, got %v", err)
			}
			if lineErr.Index != tt.wantIndex {
				t.Errorf("error index = %d, want %d", lineErr.Index, tt.wantIndex)
			}
		})
	}
}

func TestBuildSale_TotalPriceNeverTrusted(t *testing.T) {
	// Callers supply only quantity and unit price; totals are derived.
	price := dec("2.00")
	sale, err := BuildSale(context.Background(), 1, time.Now(), "card",
		[]LineInput{{ProductID: 5, Quantity: 4, UnitPrice: &price}}, &mockCatalog{})
	if err != nil {
		t.Fatalf("BuildSale failed: %v", err)
	}
	if !sale.Items[0].TotalPrice.Equal(dec("8.00")) {
		t.Errorf("total price = %s, want 8.00", sale.Items[0].TotalPrice)
	}
	if !sale.TotalAmount.Equal(sale.Items[0].TotalPrice) {
		t.Errorf("total amount %s does not match sum of items", sale.TotalAmount)
	}
}

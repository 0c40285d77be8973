package domain

import (
	"errors"
	"testing"
)

func TestNeedsReorder(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		level    int
		want     bool
	}{
		{"above level", 11, 10, false},
		{"at level", 10, 10, true},
		{"below level", 3, 10, true},
		{"zero stock", 0, 10, true},
		{"zero level above", 1, 0, false},
		{"zero level at", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &StoreInventory{Quantity: tt.quantity, ReorderLevel: tt.level}
			if got := inv.NeedsReorder(); got != tt.want {
				t.Errorf("NeedsReorder() with quantity=%d level=%d: got %v, want %v",
					tt.quantity, tt.level, got, tt.want)
			}
		})
	}
}

func TestRestoredQuantity(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		want    int
		wantErr bool
	}{
		{"simple restore", 7, 3, 10, false},
		{"exactly at limit", MaxQuantity - 1, 1, MaxQuantity, false},
		{"one past limit", MaxQuantity - 1, 2, 0, true},
		{"already at limit", MaxQuantity, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RestoredQuantity(tt.current, tt.delta)
			if tt.wantErr {
				if !errors.Is(err, ErrQuantityOverflow) {
					t.Fatalf("expected ErrQuantityOverflow, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RestoredQuantity(%d, %d) failed: %v", tt.current, tt.delta, err)
			}
			if got != tt.want {
				t.Errorf("RestoredQuantity(%d, %d) = %d, want %d", tt.current, tt.delta, got, tt.want)
			}
		})
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &InsufficientStockError{StoreID: 1, ProductID: 7, Requested: 8, Available: 7}
	want := "insufficient stock for product 7 in store 1: requested 8, available 7"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

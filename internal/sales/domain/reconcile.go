package domain

import (
	"context"
	"fmt"
	"sort"

	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
)

// sortedByProduct returns a copy of the items in ascending product id
// order. Both the reservation pass and its rollback walk this order (the
// rollback in reverse) so two overlapping sales always acquire row locks in
// the same sequence and cannot deadlock each other.
func sortedByProduct(items []SaleItem) []SaleItem {
	ordered := make([]SaleItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ProductID < ordered[j].ProductID
	})
	return ordered
}

// ReserveAll decrements stock for every item, or leaves stock untouched.
// On the first failed reservation, every reservation already applied in
// this attempt is compensated in reverse order and the failure is returned.
func ReserveAll(ctx context.Context, ledger inventorydomain.Ledger, storeID uint, items []SaleItem) error {
	ordered := sortedByProduct(items)

	for i, item := range ordered {
		err := ledger.Reserve(ctx, storeID, item.ProductID, item.Quantity)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			if rerr := ledger.Restore(ctx, storeID, ordered[j].ProductID, ordered[j].Quantity); rerr != nil {
				return fmt.Errorf("rollback of product %d failed after %v: %w", ordered[j].ProductID, err, rerr)
			}
		}
		return err
	}

	return nil
}

// RestoreAll returns every item's quantity to stock, in the same
// deterministic product order as ReserveAll. Any failure is fatal: restores
// must not partially apply, so the caller's transaction has to roll back.
func RestoreAll(ctx context.Context, ledger inventorydomain.Ledger, storeID uint, items []SaleItem) error {
	for _, item := range sortedByProduct(items) {
		if err := ledger.Restore(ctx, storeID, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("failed to restore product %d: %w", item.ProductID, err)
		}
	}
	return nil
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
)

// fakeLedger is an in-memory ledger recording every call in order
type fakeLedger struct {
	mu    sync.Mutex
	stock map[uint]int // productID -> quantity
	calls []string
}

func newFakeLedger(stock map[uint]int) *fakeLedger {
	s := make(map[uint]int, len(stock))
	for k, v := range stock {
		s[k] = v
	}
	return &fakeLedger{stock: s}
}

func (l *fakeLedger) Reserve(_ context.Context, storeID, productID uint, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	available := l.stock[productID]
	if available < quantity {
		return &inventorydomain.InsufficientStockError{
			StoreID: storeID, ProductID: productID,
			Requested: quantity, Available: available,
		}
	}
	l.stock[productID] = available - quantity
	l.calls = append(l.calls, fmt.Sprintf("reserve:%d:%d", productID, quantity))
	return nil
}

func (l *fakeLedger) Restore(_ context.Context, _, productID uint, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stock[productID] += quantity
	l.calls = append(l.calls, fmt.Sprintf("restore:%d:%d", productID, quantity))
	return nil
}

func items(pairs ...[2]int) []SaleItem {
	out := make([]SaleItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, SaleItem{ProductID: uint(p[0]), Quantity: p[1]})
	}
	return out
}

func TestReserveAll_Success(t *testing.T) {
	ledger := newFakeLedger(map[uint]int{1: 10, 2: 5})

	err := ReserveAll(context.Background(), ledger, 1, items([2]int{2, 3}, [2]int{1, 4}))
	if err != nil {
		t.Fatalf("ReserveAll failed: %v", err)
	}

	if ledger.stock[1] != 6 || ledger.stock[2] != 2 {
		t.Errorf("stock = %v, want map[1:6 2:2]", ledger.stock)
	}
}

func TestReserveAll_AscendingProductOrder(t *testing.T) {
	ledger := newFakeLedger(map[uint]int{1: 10, 2: 10, 3: 10})

	// Items arrive out of order; reservations must run ascending.
	err := ReserveAll(context.Background(), ledger, 1,
		items([2]int{3, 1}, [2]int{1, 1}, [2]int{2, 1}))
	if err != nil {
		t.Fatalf("ReserveAll failed: %v", err)
	}

	want := []string{"reserve:1:1", "reserve:2:1", "reserve:3:1"}
	if len(ledger.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", ledger.calls, want)
	}
	for i := range want {
		if ledger.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, ledger.calls[i], want[i])
		}
	}
}

func TestReserveAll_PartialFailureRollsBackInReverse(t *testing.T) {
	// Line for product 3 fails; products 1 and 2 must be compensated in
	// reverse reservation order and end up exactly where they started.
	ledger := newFakeLedger(map[uint]int{1: 10, 2: 10, 3: 0, 4: 10, 5: 10})

	err := ReserveAll(context.Background(), ledger, 1,
		items([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{4, 1}, [2]int{5, 1}))

	var stockErr *inventorydomain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.ProductID != 3 || stockErr.Requested != 1 || stockErr.Available != 0 {
		t.Errorf("error = %+v, want product 3 requested 1 available 0", stockErr)
	}

	for pid, want := range map[uint]int{1: 10, 2: 10, 3: 0, 4: 10, 5: 10} {
		if ledger.stock[pid] != want {
			t.Errorf("product %d stock = %d, want %d (no residual delta)", pid, ledger.stock[pid], want)
		}
	}

	want := []string{"reserve:1:2", "reserve:2:3", "restore:2:3", "restore:1:2"}
	if len(ledger.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", ledger.calls, want)
	}
	for i := range want {
		if ledger.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, ledger.calls[i], want[i])
		}
	}
}

func TestReserveAll_FirstLineFailureTouchesNothing(t *testing.T) {
	ledger := newFakeLedger(map[uint]int{1: 0, 2: 10})

	err := ReserveAll(context.Background(), ledger, 1, items([2]int{1, 1}, [2]int{2, 1}))
	var stockErr *inventorydomain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if len(ledger.calls) != 0 {
		t.Errorf("expected no applied calls, got %v", ledger.calls)
	}
	if ledger.stock[2] != 10 {
		t.Errorf("product 2 stock = %d, want 10", ledger.stock[2])
	}
}

func TestReserveThenRestore_RoundTrip(t *testing.T) {
	initial := map[uint]int{1: 10, 2: 7, 3: 42}
	ledger := newFakeLedger(initial)
	saleItems := items([2]int{2, 3}, [2]int{1, 5}, [2]int{3, 2})

	if err := ReserveAll(context.Background(), ledger, 1, saleItems); err != nil {
		t.Fatalf("ReserveAll failed: %v", err)
	}
	if err := RestoreAll(context.Background(), ledger, 1, saleItems); err != nil {
		t.Fatalf("RestoreAll failed: %v", err)
	}

	for pid, want := range initial {
		if ledger.stock[pid] != want {
			t.Errorf("product %d stock = %d, want %d after round trip", pid, ledger.stock[pid], want)
		}
	}
}

func TestReserveAll_ConcurrentNeverNegative(t *testing.T) {
	const initialStock = 20
	const attempts = 50

	ledger := newFakeLedger(map[uint]int{1: initialStock})

	var wg sync.WaitGroup
	successes := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ReserveAll(context.Background(), ledger, 1, items([2]int{1, 1})); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	if count != initialStock {
		t.Errorf("successes = %d, want %d", count, initialStock)
	}
	if ledger.stock[1] != 0 {
		t.Errorf("final stock = %d, want 0", ledger.stock[1])
	}
	if ledger.stock[1] < 0 {
		t.Errorf("stock went negative: %d", ledger.stock[1])
	}
}

package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	inventorydomain "github.com/AY-10/inventryy/internal/inventory/domain"
	"github.com/AY-10/inventryy/internal/sales/domain"
)

// memLedger is an in-memory inventory ledger shared by the mocks
type memLedger struct {
	mu    sync.Mutex
	stock map[uint]int
}

func newMemLedger(stock map[uint]int) *memLedger {
	s := make(map[uint]int, len(stock))
	for k, v := range stock {
		s[k] = v
	}
	return &memLedger{stock: s}
}

func (l *memLedger) Reserve(_ context.Context, storeID, productID uint, quantity int) error {
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
	return nil
}

func (l *memLedger) Restore(_ context.Context, _, productID uint, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stock[productID] += quantity
	return nil
}

func (l *memLedger) quantity(productID uint) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stock[productID]
}

// memSaleRepo applies the same reserve-then-persist contract as the real
// repository, against the in-memory ledger
type memSaleRepo struct {
	mu     sync.Mutex
	ledger *memLedger
	sales  map[uint]*domain.Sale
	nextID uint
}

func newMemSaleRepo(ledger *memLedger) *memSaleRepo {
	return &memSaleRepo{ledger: ledger, sales: make(map[uint]*domain.Sale), nextID: 1}
}

func (r *memSaleRepo) CreateSale(ctx context.Context, sale *domain.Sale) error {
	if err := domain.ReserveAll(ctx, r.ledger, sale.StoreID, sale.Items); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sale.ID = r.nextID
	r.nextID++
	for i := range sale.Items {
		sale.Items[i].ID = r.nextID
		sale.Items[i].SaleID = sale.ID
		r.nextID++
	}
	stored := *sale
	r.sales[sale.ID] = &stored
	return nil
}

func (r *memSaleRepo) DeleteSale(ctx context.Context, id uint) (*domain.Sale, error) {
	r.mu.Lock()
	sale, ok := r.sales[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	if err := domain.RestoreAll(ctx, r.ledger, sale.StoreID, sale.Items); err != nil {
		return nil, err
	}
	r.mu.Lock()
	delete(r.sales, id)
	r.mu.Unlock()
	return sale, nil
}

func (r *memSaleRepo) DeleteSaleItem(ctx context.Context, itemID uint) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sale := range r.sales {
		for i, item := range sale.Items {
			if item.ID != itemID {
				continue
			}
			if err := r.ledger.Restore(ctx, sale.StoreID, item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
			sale.Items = append(sale.Items[:i], sale.Items[i+1:]...)
			sale.RecomputeTotal()
			return sale, nil
		}
	}
	return nil, domain.ErrSaleItemNotFound
}

func (r *memSaleRepo) FindByID(_ context.Context, id uint) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sale, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

func (r *memSaleRepo) FindAll(_ context.Context, _, _ int) ([]domain.Sale, error) {
	return nil, nil
}

func (r *memSaleRepo) FindByStore(_ context.Context, _ uint, _, _ int) ([]domain.Sale, error) {
	return nil, nil
}

// stubInventory exposes the ledger state for the post-commit reorder check.
// Unused repository methods panic via the nil embed.
type stubInventory struct {
	inventorydomain.InventoryRepository
	ledger       *memLedger
	reorderLevel int
}

func (s *stubInventory) FindByStoreAndProduct(_ context.Context, storeID, productID uint) (*inventorydomain.StoreInventory, error) {
	return &inventorydomain.StoreInventory{
		StoreID:      storeID,
		ProductID:    productID,
		Quantity:     s.ledger.quantity(productID),
		ReorderLevel: s.reorderLevel,
	}, nil
}

type fixedCatalog struct {
	prices map[uint]decimal.Decimal
}

func (c *fixedCatalog) ProductPrice(_ context.Context, productID uint) (decimal.Decimal, error) {
	price, ok := c.prices[productID]
	if !ok {
		return decimal.Zero, domain.ErrProductNotFound
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

func newHandlers(stock map[uint]int, prices map[uint]decimal.Decimal) (*CreateSaleHandler, *DeleteSaleHandler, *DeleteSaleItemHandler, *memLedger, *memSaleRepo) {
	ledger := newMemLedger(stock)
	repo := newMemSaleRepo(ledger)
	inv := &stubInventory{ledger: ledger, reorderLevel: 5}
	catalog := &fixedCatalog{prices: prices}

	create := NewCreateSaleHandler(repo, inv, catalog, nil, nil)
	del := NewDeleteSaleHandler(repo, nil)
	delItem := NewDeleteSaleItemHandler(repo, nil)
	return create, del, delItem, ledger, repo
}

func TestCreateSale_AdjustsStockAndComputesTotal(t *testing.T) {
	create, _, _, ledger, _ := newHandlers(map[uint]int{1: 10}, nil)

	price := dec("2.00")
	sale, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID:       1,
		PaymentMethod: "cash",
		Lines:         []domain.LineInput{{ProductID: 1, Quantity: 3, UnitPrice: &price}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if got := ledger.quantity(1); got != 7 {
		t.Errorf("stock = %d, want 7", got)
	}
	if !sale.TotalAmount.Equal(dec("6.00")) {
		t.Errorf("total = %s, want 6.00", sale.TotalAmount)
	}
}

func TestCreateSale_InsufficientStockLeavesStockUnchanged(t *testing.T) {
	create, _, _, ledger, _ := newHandlers(map[uint]int{1: 10}, nil)
	price := dec("2.00")

	// First sale takes quantity to 7.
	if _, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "cash",
		Lines: []domain.LineInput{{ProductID: 1, Quantity: 3, UnitPrice: &price}},
	}); err != nil {
		t.Fatalf("first sale failed: %v", err)
	}

	// Second sale asks for 8 with only 7 available.
	_, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "cash",
		Lines: []domain.LineInput{{ProductID: 1, Quantity: 8, UnitPrice: &price}},
	})

	var stockErr *inventorydomain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Requested != 8 || stockErr.Available != 7 {
		t.Errorf("error = %+v, want requested 8 available 7", stockErr)
	}
	if got := ledger.quantity(1); got != 7 {
		t.Errorf("stock = %d, want 7 (unchanged after rejection)", got)
	}
}

func TestCreateThenDeleteSale_RoundTripRestoresStock(t *testing.T) {
	create, del, _, ledger, _ := newHandlers(map[uint]int{1: 10, 2: 4}, nil)
	p1, p2 := dec("2.00"), dec("1.50")

	sale, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "cash",
		Lines: []domain.LineInput{
			{ProductID: 1, Quantity: 3, UnitPrice: &p1},
			{ProductID: 2, Quantity: 2, UnitPrice: &p2},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ledger.quantity(1) != 7 || ledger.quantity(2) != 2 {
		t.Fatalf("stock after create = [%d %d], want [7 2]", ledger.quantity(1), ledger.quantity(2))
	}

	if err := del.Handle(context.Background(), DeleteSaleCommand{SaleID: sale.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if ledger.quantity(1) != 10 || ledger.quantity(2) != 4 {
		t.Errorf("stock after delete = [%d %d], want [10 4]", ledger.quantity(1), ledger.quantity(2))
	}
}

func TestCreateSale_PartialFailureIsInvisible(t *testing.T) {
	// Line 3 of 5 fails; lines 1-2 must be unchanged after the call.
	create, _, _, ledger, repo := newHandlers(map[uint]int{1: 10, 2: 10, 3: 0, 4: 10, 5: 10}, nil)
	price := dec("1.00")

	lines := make([]domain.LineInput, 0, 5)
	for pid := uint(1); pid <= 5; pid++ {
		lines = append(lines, domain.LineInput{ProductID: pid, Quantity: 1, UnitPrice: &price})
	}

	_, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "cash", Lines: lines,
	})
	var stockErr *inventorydomain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}

	for pid, want := range map[uint]int{1: 10, 2: 10, 3: 0, 4: 10, 5: 10} {
		if got := ledger.quantity(pid); got != want {
			t.Errorf("product %d stock = %d, want %d", pid, got, want)
		}
	}
	if len(repo.sales) != 0 {
		t.Errorf("expected no persisted sale, got %d", len(repo.sales))
	}
}

func TestCreateSale_PriceDefaultsFromCatalog(t *testing.T) {
	create, _, _, _, _ := newHandlers(map[uint]int{1: 10}, map[uint]decimal.Decimal{1: dec("4.25")})

	sale, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "card",
		Lines: []domain.LineInput{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !sale.Items[0].UnitPrice.Equal(dec("4.25")) {
		t.Errorf("unit price = %s, want 4.25", sale.Items[0].UnitPrice)
	}
	if !sale.TotalAmount.Equal(dec("8.50")) {
		t.Errorf("total = %s, want 8.50", sale.TotalAmount)
	}
}

func TestCreateSale_ValidationTouchesNoInventory(t *testing.T) {
	create, _, _, ledger, _ := newHandlers(map[uint]int{1: 10}, nil)
	price := dec("2.00")

	_, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "cash",
		Lines: []domain.LineInput{
			{ProductID: 1, Quantity: 2, UnitPrice: &price},
			{ProductID: 1, Quantity: 0, UnitPrice: &price},
		},
	})
	var lineErr *domain.InvalidLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected InvalidLineError, got %v", err)
	}
	if got := ledger.quantity(1); got != 10 {
		t.Errorf("stock = %d, want 10 (validation must not touch inventory)", got)
	}
}

func TestCreateSale_EmptySale(t *testing.T) {
	create, _, _, _, _ := newHandlers(map[uint]int{}, nil)

	_, err := create.Handle(context.Background(), CreateSaleCommand{StoreID: 1, PaymentMethod: "cash"})
	if !errors.Is(err, domain.ErrEmptySale) {
		t.Errorf("expected ErrEmptySale, got %v", err)
	}
}

func TestDeleteSaleItem_RestoresQuantityAndRecomputesTotal(t *testing.T) {
	create, _, delItem, ledger, _ := newHandlers(map[uint]int{1: 10, 2: 10}, nil)
	p1, p2 := dec("2.00"), dec("3.00")

	sale, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID: 1, PaymentMethod: "cash",
		Lines: []domain.LineInput{
			{ProductID: 1, Quantity: 3, UnitPrice: &p1},
			{ProductID: 2, Quantity: 1, UnitPrice: &p2},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := delItem.Handle(context.Background(), DeleteSaleItemCommand{SaleItemID: sale.Items[0].ID})
	if err != nil {
		t.Fatalf("delete item failed: %v", err)
	}

	if got := ledger.quantity(1); got != 10 {
		t.Errorf("product 1 stock = %d, want 10", got)
	}
	if got := ledger.quantity(2); got != 9 {
		t.Errorf("product 2 stock = %d, want 9 (other line untouched)", got)
	}
	if !updated.TotalAmount.Equal(dec("3.00")) {
		t.Errorf("total = %s, want 3.00", updated.TotalAmount)
	}
	if len(updated.Items) != 1 {
		t.Errorf("remaining items = %d, want 1", len(updated.Items))
	}
}

func TestDeleteSale_NotFound(t *testing.T) {
	_, del, _, _, _ := newHandlers(map[uint]int{}, nil)

	err := del.Handle(context.Background(), DeleteSaleCommand{SaleID: 42})
	if !errors.Is(err, domain.ErrSaleNotFound) {
		t.Errorf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestCreateSale_ConcurrentOversell(t *testing.T) {
	const initialStock = 20
	const attempts = 50

	create, _, _, ledger, _ := newHandlers(map[uint]int{1: initialStock}, nil)
	price := dec("1.00")

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := create.Handle(context.Background(), CreateSaleCommand{
				StoreID: 1, PaymentMethod: "cash",
				Lines: []domain.LineInput{{ProductID: 1, Quantity: 1, UnitPrice: &price}},
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		}
	}
	if successes != initialStock {
		t.Errorf("successes = %d, want %d", successes, initialStock)
	}
	if got := ledger.quantity(1); got != 0 {
		t.Errorf("final stock = %d, want 0", got)
	}
}

package command

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/AY-10/inventryy/internal/catalog/domain"
	catalogcommand "github.com/AY-10/inventryy/internal/catalog/usecase/command"
	"github.com/AY-10/inventryy/internal/sales/domain"
)

// memProducts holds catalog products in memory. Unused repository methods
// panic via the nil embed.
type memProducts struct {
	catalogdomain.ProductRepository
	mu       sync.Mutex
	products map[uint]*catalogdomain.Product
}

func (m *memProducts) FindByID(_ context.Context, id uint) (*catalogdomain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) UpdatePrice(_ context.Context, id uint, newPrice decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return decimal.Zero, catalogdomain.ErrProductNotFound
	}
	old := p.Price
	p.Price = newPrice
	return old, nil
}

// productPriceLookup resolves sale-line prices from the live catalog
type productPriceLookup struct {
	products *memProducts
}

func (l *productPriceLookup) ProductPrice(ctx context.Context, productID uint) (decimal.Decimal, error) {
	p, err := l.products.FindByID(ctx, productID)
	if err != nil {
		return decimal.Zero, domain.ErrProductNotFound
	}
	return p.Price, nil
}

func TestUpdatePrice_HistoricalSaleTotalsUnchanged(t *testing.T) {
	products := &memProducts{products: map[uint]*catalogdomain.Product{
		1: {ID: 1, Name: "widget", SKU: "W-1", Price: dec("2.00")},
	}}
	ledger := newMemLedger(map[uint]int{1: 10})
	repo := newMemSaleRepo(ledger)
	inv := &stubInventory{ledger: ledger, reorderLevel: 5}

	create := NewCreateSaleHandler(repo, inv, &productPriceLookup{products: products}, nil, nil)
	update := catalogcommand.NewUpdatePriceHandler(products, nil, nil)

	// Sale records the catalog price of the day: 3 x 2.00 = 6.00.
	sale, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID:       1,
		PaymentMethod: "cash",
		Lines:         []domain.LineInput{{ProductID: 1, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !sale.TotalAmount.Equal(dec("6.00")) {
		t.Fatalf("total before price change = %s, want 6.00", sale.TotalAmount)
	}

	result, err := update.Handle(context.Background(), catalogcommand.UpdatePriceCommand{
		ProductID: 1,
		NewPrice:  dec("5.00"),
	})
	if err != nil {
		t.Fatalf("price update failed: %v", err)
	}
	if !result.OldPrice.Equal(dec("2.00")) || !result.NewPrice.Equal(dec("5.00")) {
		t.Errorf("price change = %s -> %s, want 2.00 -> 5.00", result.OldPrice, result.NewPrice)
	}

	// The completed sale keeps its recorded unit price and totals.
	stored, err := repo.FindByID(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !stored.Items[0].UnitPrice.Equal(dec("2.00")) {
		t.Errorf("recorded unit price = %s, want 2.00", stored.Items[0].UnitPrice)
	}
	if !stored.Items[0].TotalPrice.Equal(dec("6.00")) {
		t.Errorf("recorded line total = %s, want 6.00", stored.Items[0].TotalPrice)
	}
	if !stored.TotalAmount.Equal(dec("6.00")) {
		t.Errorf("recorded sale total = %s, want 6.00", stored.TotalAmount)
	}

	// New sales from here on resolve the new price.
	next, err := create.Handle(context.Background(), CreateSaleCommand{
		StoreID:       1,
		PaymentMethod: "cash",
		Lines:         []domain.LineInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if !next.TotalAmount.Equal(dec("5.00")) {
		t.Errorf("total after price change = %s, want 5.00", next.TotalAmount)
	}
}

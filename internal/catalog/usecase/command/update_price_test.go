package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AY-10/inventryy/internal/catalog/domain"
)

type memProductRepo struct {
	mu       sync.Mutex
	products map[uint]*domain.Product
	calls    []string
}

func newMemProductRepo(products ...*domain.Product) *memProductRepo {
	repo := &memProductRepo{products: make(map[uint]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *memProductRepo) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = uint(len(r.products) + 1)
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *memProductRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.SKU == sku {
			copied := *product
			return &copied, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProductRepo) FindByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]domain.Product, error) {
	return nil, nil
}

func (r *memProductRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "update_price")
	product, ok := r.products[id]
	if !ok {
		return decimal.Zero, domain.ErrProductNotFound
	}
	oldPrice := product.Price
	product.Price = newPrice
	return oldPrice, nil
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestUpdatePrice_ReturnsOldAndNewPrice(t *testing.T) {
	repo := newMemProductRepo(&domain.Product{ID: 1, SKU: "SKU-1", Price: price("4.50")})
	handler := NewUpdatePriceHandler(repo, nil, nil)

	result, err := handler.Handle(context.Background(), UpdatePriceCommand{
		ProductID: 1,
		NewPrice:  price("5.25"),
		ActorID:   9,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !result.OldPrice.Equal(price("4.50")) {
		t.Errorf("old price = %s, want 4.50", result.OldPrice)
	}
	if !result.NewPrice.Equal(price("5.25")) {
		t.Errorf("new price = %s, want 5.25", result.NewPrice)
	}

	stored, _ := repo.FindByID(context.Background(), 1)
	if !stored.Price.Equal(price("5.25")) {
		t.Errorf("stored price = %s, want 5.25", stored.Price)
	}
}

func TestUpdatePrice_RoundsToTwoDecimals(t *testing.T) {
	repo := newMemProductRepo(&domain.Product{ID: 1, SKU: "SKU-1", Price: price("1.00")})
	handler := NewUpdatePriceHandler(repo, nil, nil)

	result, err := handler.Handle(context.Background(), UpdatePriceCommand{
		ProductID: 1,
		NewPrice:  price("2.999"),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !result.NewPrice.Equal(price("3.00")) {
		t.Errorf("new price = %s, want 3.00", result.NewPrice)
	}
}

func TestUpdatePrice_NegativePriceRejectedBeforeStorage(t *testing.T) {
	repo := newMemProductRepo(&domain.Product{ID: 1, SKU: "SKU-1", Price: price("4.50")})
	handler := NewUpdatePriceHandler(repo, nil, nil)

	_, err := handler.Handle(context.Background(), UpdatePriceCommand{
		ProductID: 1,
		NewPrice:  price("-0.01"),
	})
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("err = %v, want ErrInvalidPrice", err)
	}
	if len(repo.calls) != 0 {
		t.Errorf("storage touched %d times on invalid price", len(repo.calls))
	}

	stored, _ := repo.FindByID(context.Background(), 1)
	if !stored.Price.Equal(price("4.50")) {
		t.Errorf("stored price = %s, want unchanged 4.50", stored.Price)
	}
}

func TestUpdatePrice_UnknownProduct(t *testing.T) {
	repo := newMemProductRepo()
	handler := NewUpdatePriceHandler(repo, nil, nil)

	_, err := handler.Handle(context.Background(), UpdatePriceCommand{
		ProductID: 42,
		NewPrice:  price("1.00"),
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

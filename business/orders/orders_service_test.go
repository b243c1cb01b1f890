//go:build !integration

package orders

import (
	"context"
	"errors"
	"testing"

	"partsHub/domain"
)

type fakeOrdersRepo struct {
	orders  map[uint64]domain.Order
	nextID  uint64
	created []domain.Order
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{orders: map[uint64]domain.Order{}, nextID: 1}
}

func (f *fakeOrdersRepo) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.ID = f.nextID
	f.nextID++
	f.orders[order.ID] = order
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrdersRepo) GetAllOrders(ctx context.Context, buyerID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) GetOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.Order{}, errors.New("order not found")
	}
	return o, nil
}

func (f *fakeOrdersRepo) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	o.OrderStatus = status
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrdersRepo) DeleteOrder(ctx context.Context, orderID uint64) error {
	delete(f.orders, orderID)
	return nil
}

type fakeProductsRepo struct {
	product domain.Product
	findErr error
	sales   []int
}

func (f *fakeProductsRepo) Create(ctx context.Context, product *domain.Product) error { return nil }

func (f *fakeProductsRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if f.findErr != nil {
		return domain.Product{}, f.findErr
	}
	return f.product, nil
}

func (f *fakeProductsRepo) FindAll(ctx context.Context) ([]domain.Product, error) { return nil, nil }

func (f *fakeProductsRepo) FindByStore(ctx context.Context, storeID uint) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductsRepo) Update(ctx context.Context, product *domain.Product) error { return nil }

func (f *fakeProductsRepo) Delete(ctx context.Context, id uint64) error { return nil }

func (f *fakeProductsRepo) IncrementViewCount(ctx context.Context, id uint64) error { return nil }

func (f *fakeProductsRepo) RecordSale(ctx context.Context, id uint64, quantity int) error {
	f.sales = append(f.sales, quantity)
	return nil
}

func (f *fakeProductsRepo) AddRating(ctx context.Context, id uint64, rating float64) error {
	return nil
}

func TestCreateOrder(t *testing.T) {
	orderRepo := newFakeOrdersRepo()
	productsRepo := &fakeProductsRepo{product: domain.Product{ID: 7, Price: 25.5}}
	svc := NewOrdersService(orderRepo, productsRepo)

	created, err := svc.CreateOrder(context.Background(), domain.Order{
		BuyerID:   3,
		ProductID: 7,
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if created.Reference == "" {
		t.Error("order should carry a generated reference")
	}
	if created.PriceEach != 25.5 || created.Subtotal != 51 {
		t.Errorf("price snapshot wrong: each=%v subtotal=%v", created.PriceEach, created.Subtotal)
	}
	if created.OrderStatus != domain.OrderStatusPending {
		t.Errorf("new order status = %q, want %q", created.OrderStatus, domain.OrderStatusPending)
	}
	if len(productsRepo.sales) != 1 || productsRepo.sales[0] != 2 {
		t.Errorf("sale of 2 units should be recorded on the product, got %v", productsRepo.sales)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	orderRepo := newFakeOrdersRepo()
	productsRepo := &fakeProductsRepo{product: domain.Product{ID: 7, Price: 25.5}}
	svc := NewOrdersService(orderRepo, productsRepo)

	if _, err := svc.CreateOrder(context.Background(), domain.Order{ProductID: 7, Quantity: 0}); err == nil {
		t.Error("zero quantity should be rejected")
	}

	productsRepo.findErr = errors.New("product not found")
	if _, err := svc.CreateOrder(context.Background(), domain.Order{ProductID: 99, Quantity: 1}); err == nil {
		t.Error("order against a missing product should fail")
	}
	if len(orderRepo.created) != 0 {
		t.Errorf("no order should be persisted on failure, got %d", len(orderRepo.created))
	}
}

func TestUpdateOrderStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusConfirmed, true},
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPending, domain.OrderStatusShipped, false},
		{domain.OrderStatusConfirmed, domain.OrderStatusShipped, true},
		{domain.OrderStatusConfirmed, domain.OrderStatusCancelled, false},
		{domain.OrderStatusShipped, domain.OrderStatusDelivered, true},
		{domain.OrderStatusShipped, domain.OrderStatusPending, false},
		{domain.OrderStatusDelivered, domain.OrderStatusShipped, false},
		{domain.OrderStatusCancelled, domain.OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			orderRepo := newFakeOrdersRepo()
			orderRepo.orders[1] = domain.Order{ID: 1, OrderStatus: tc.from}
			svc := NewOrdersService(orderRepo, &fakeProductsRepo{})

			err := svc.UpdateOrderStatus(context.Background(), 1, tc.to)
			if tc.allowed && err != nil {
				t.Errorf("transition %s -> %s should be allowed, got %v", tc.from, tc.to, err)
			}
			if !tc.allowed && err == nil {
				t.Errorf("transition %s -> %s should be rejected", tc.from, tc.to)
			}
		})
	}
}

func TestUpdateOrderStatus_MissingOrder(t *testing.T) {
	svc := NewOrdersService(newFakeOrdersRepo(), &fakeProductsRepo{})

	if err := svc.UpdateOrderStatus(context.Background(), 42, domain.OrderStatusConfirmed); err == nil {
		t.Error("updating a missing order should fail")
	}
	if err := svc.UpdateOrderStatus(context.Background(), 0, domain.OrderStatusConfirmed); err == nil {
		t.Error("order id 0 should be rejected")
	}
}

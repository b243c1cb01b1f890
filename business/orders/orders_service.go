package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partsHub/business/product"
	"partsHub/domain"
	"partsHub/pkg/logger"
	"partsHub/pkg/metrics"

	"github.com/google/uuid"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetAllOrders(ctx context.Context, buyerID uint) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error
	DeleteOrder(ctx context.Context, orderID uint64) error
}

// statusFlow lists the allowed next statuses from each state.
var statusFlow = map[string][]string{
	domain.OrderStatusPending:   {domain.OrderStatusConfirmed, domain.OrderStatusCancelled},
	domain.OrderStatusConfirmed: {domain.OrderStatusShipped},
	domain.OrderStatusShipped:   {domain.OrderStatusDelivered},
}

type OrdersService struct {
	orderRepo    OrdersRepository
	productsRepo product.ProductRepository
}

func NewOrdersService(orderRepo OrdersRepository, productsRepo product.ProductRepository) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
	}
}

// CreateOrder snapshots the listing price, stamps a reference, and
// records the sale on the product so the sold counter feeds ranking.
func (s *OrdersService) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.Quantity <= 0 {
		return domain.Order{}, errors.New("quantity must be greater than 0")
	}

	p, err := s.productsRepo.FindByID(ctx, order.ProductID)
	if err != nil {
		logger.Error("failed to find product for order", err)
		return domain.Order{}, err
	}

	order.Reference = uuid.NewString()
	order.PriceEach = p.Price
	order.Subtotal = p.Price * float64(order.Quantity)
	order.OrderStatus = domain.OrderStatusPending
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("failed to create order", err)
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.productsRepo.RecordSale(ctx, order.ProductID, order.Quantity); err != nil {
		logger.Warn("failed to record sale on product", "product_id", order.ProductID, "error", err)
	}

	metrics.OrdersCreated.Inc()
	logger.Info("order created", "reference", created.Reference)

	return created, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context, buyerID uint) ([]domain.Order, error) {
	return s.orderRepo.GetAllOrders(ctx, buyerID)
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	if orderID == 0 {
		return domain.Order{}, errors.New("invalid order id")
	}

	return s.orderRepo.GetOrder(ctx, orderID)
}

// UpdateOrderStatus moves an order along PENDING -> CONFIRMED ->
// SHIPPED -> DELIVERED, with cancellation allowed only while pending.
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	if orderID == 0 {
		return errors.New("invalid order id")
	}

	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("order not found", err)
		return errors.New("order not found")
	}

	if !transitionAllowed(order.OrderStatus, status) {
		logger.Error("invalid order status transition", "from", order.OrderStatus, "to", status)
		return fmt.Errorf("cannot move order from %s to %s", order.OrderStatus, status)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		logger.Error("failed to update order status", err)
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

func (s *OrdersService) DeleteOrder(ctx context.Context, orderID uint64) error {
	if orderID == 0 {
		return errors.New("invalid order id")
	}

	return s.orderRepo.DeleteOrder(ctx, orderID)
}

func transitionAllowed(from, to string) bool {
	for _, next := range statusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"qualigo/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// OrderService converts the cart into persisted orders and runs the status
// lifecycle. Checkout treats payment submission as authoritative success:
// orders enter the list as confirmed, pending is only ever set by an admin.
type OrderService struct {
	orders       OrderRepository
	cart         CartRepository
	notifier     CartNotifier
	qr           QRGenerator
	paymentDelay time.Duration
}

func NewOrderService(orders OrderRepository, cart CartRepository, notifier CartNotifier, qr QRGenerator, paymentDelay time.Duration) *OrderService {
	return &OrderService{
		orders:       orders,
		cart:         cart,
		notifier:     notifier,
		qr:           qr,
		paymentDelay: paymentDelay,
	}
}

// Checkout builds the full order record, appends it to the order list, and
// only then clears the cart and notifies observers. If persisting the order
// fails the cart is left untouched so the customer's items are not lost.
// The simulated payment delay runs before any state changes.
func (s *OrderService) Checkout(ctx context.Context, info domain.CustomerInfo, userID string) (*domain.Order, error) {
	items, err := s.cart.LoadCart()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if s.paymentDelay > 0 {
		select {
		case <-time.After(s.paymentDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	totals := ComputeTotals(items)
	order := domain.Order{
		ID:           "ORD-" + uuid.NewString(),
		UserID:       userID,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Status:       domain.StatusConfirmed,
		CreatedAt:    time.Now(),
		CustomerInfo: info,
	}

	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	orders = append(orders, order)

	if err := s.orders.SaveOrders(orders); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.cart.ClearCart(); err != nil {
		// The order is already durable; an unclearable cart is logged, not
		// surfaced as a checkout failure.
		log.Printf("[qualigo] failed to clear cart after order %s: %v", order.ID, err)
	}
	s.notifier.CartUpdated()

	log.Printf("[qualigo] created order %s, total %.2f", order.ID, order.Total)
	return &order, nil
}

func (s *OrderService) GetOrder(id string) (*domain.Order, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *OrderService) ListOrders() ([]domain.Order, error) {
	return s.orders.LoadOrders()
}

func (s *OrderService) UserOrders(userID string) ([]domain.Order, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}
	owned := []domain.Order{}
	for _, order := range orders {
		if order.UserID == userID {
			owned = append(owned, order)
		}
	}
	return owned, nil
}

// UpdateStatus sets any valid status from any status. Transitions are
// deliberately unordered, delivered included; only enum membership is
// checked.
func (s *OrderService) UpdateStatus(id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := s.orders.SaveOrders(orders); err != nil {
				return nil, err
			}
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// QRCode renders a PNG linking to the order confirmation page.
func (s *OrderService) QRCode(orderID string) ([]byte, error) {
	if _, err := s.GetOrder(orderID); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderID)
}

package service

import (
	"errors"
	"fmt"

	"qualigo/internal/domain"

	"github.com/google/uuid"
)

const TaxRate = 0.10

var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartService is the cart aggregate. Every mutation persists the new state
// before notifying observers, so a reader woken by the signal always sees
// the change.
type CartService struct {
	cart     CartRepository
	dishes   DishRepository
	notifier CartNotifier
}

func NewCartService(cart CartRepository, dishes DishRepository, notifier CartNotifier) *CartService {
	return &CartService{
		cart:     cart,
		dishes:   dishes,
		notifier: notifier,
	}
}

func (s *CartService) Items() ([]domain.CartItem, error) {
	return s.cart.LoadCart()
}

// AddItem snapshots the dish and freezes the customized unit price at the
// moment of insertion; later catalog edits do not touch existing lines. The
// line gets its own id so one dish can appear twice with different options.
func (s *CartService) AddItem(dishID string, quantity int, selections domain.Selections) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	dishes, err := s.dishes.LoadDishes()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var dish *domain.Dish
	for i := range dishes {
		if dishes[i].ID == dishID {
			dish = &dishes[i]
			break
		}
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}

	if selections == nil {
		selections = domain.Selections{}
	}

	item := domain.CartItem{
		ID:              uuid.NewString(),
		DishID:          dish.ID,
		Dish:            *dish,
		Quantity:        quantity,
		SelectedOptions: selections,
		CustomPrice:     UnitPrice(*dish, selections),
	}

	items, err := s.cart.LoadCart()
	if err != nil {
		return nil, err
	}
	items = append(items, item)

	if err := s.cart.SaveCart(items); err != nil {
		return nil, err
	}
	s.notifier.CartUpdated()
	return &item, nil
}

// UpdateQuantity clamps to a minimum of 1; removal is a separate action.
func (s *CartService) UpdateQuantity(itemID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.cart.LoadCart()
	if err != nil {
		return err
	}

	changed := false
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	if err := s.cart.SaveCart(items); err != nil {
		return err
	}
	s.notifier.CartUpdated()
	return nil
}

// RemoveItem deletes the line; an absent id is a no-op.
func (s *CartService) RemoveItem(itemID string) error {
	items, err := s.cart.LoadCart()
	if err != nil {
		return err
	}

	kept := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := s.cart.SaveCart(kept); err != nil {
		return err
	}
	s.notifier.CartUpdated()
	return nil
}

func (s *CartService) Clear() error {
	if err := s.cart.ClearCart(); err != nil {
		return err
	}
	s.notifier.CartUpdated()
	return nil
}

func (s *CartService) Totals() (domain.CartTotals, error) {
	items, err := s.cart.LoadCart()
	if err != nil {
		return domain.CartTotals{}, err
	}
	return ComputeTotals(items), nil
}

// ComputeTotals sums the frozen unit prices. The tax rate is a fixed
// constant, not configurable per jurisdiction.
func ComputeTotals(items []domain.CartItem) domain.CartTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.CustomPrice * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return domain.CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

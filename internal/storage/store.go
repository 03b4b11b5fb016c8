package storage

import (
	"encoding/json"
	"fmt"

	"qualigo/internal/domain"
)

const (
	dishesKey      = "qualigo:dishes"
	usersKey       = "qualigo:users"
	ordersKey      = "qualigo:orders"
	cartKey        = "qualigo:cart"
	currentUserKey = "qualigo:current_user"
)

// Store wraps the key-value backend with typed access to the five slots.
// Each slot is read and written independently.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) load(key string, out interface{}) error {
	data, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode slot %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	return s.kv.Set(key, data)
}

// LoadDishes returns the catalog, falling back to the seed data when the
// slot has never been written.
func (s *Store) LoadDishes() ([]domain.Dish, error) {
	var dishes []domain.Dish
	err := s.load(dishesKey, &dishes)
	if err == ErrNotFound {
		return SampleDishes(), nil
	}
	if err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *Store) SaveDishes(dishes []domain.Dish) error {
	return s.save(dishesKey, dishes)
}

func (s *Store) LoadUsers() ([]domain.User, error) {
	var users []domain.User
	err := s.load(usersKey, &users)
	if err == ErrNotFound {
		return []domain.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SaveUsers(users []domain.User) error {
	return s.save(usersKey, users)
}

func (s *Store) LoadOrders() ([]domain.Order, error) {
	var orders []domain.Order
	err := s.load(ordersKey, &orders)
	if err == ErrNotFound {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) SaveOrders(orders []domain.Order) error {
	return s.save(ordersKey, orders)
}

func (s *Store) LoadCart() ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := s.load(cartKey, &items)
	if err == ErrNotFound {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SaveCart(items []domain.CartItem) error {
	return s.save(cartKey, items)
}

func (s *Store) ClearCart() error {
	return s.kv.Delete(cartKey)
}

// LoadCurrentUser returns nil with no error when nobody is logged in.
func (s *Store) LoadCurrentUser() (*domain.User, error) {
	var user domain.User
	err := s.load(currentUserKey, &user)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveCurrentUser replaces the singleton session pointer; nil logs out.
func (s *Store) SaveCurrentUser(user *domain.User) error {
	if user == nil {
		return s.kv.Delete(currentUserKey)
	}
	return s.save(currentUserKey, user)
}

package service

import (
	"errors"

	"qualigo/internal/domain"
)

var ErrDishNotFound = errors.New("dish not found")

// CatalogService serves the dish catalog. Dishes are immutable within a
// session; ReplaceCatalog is the external override source.
type CatalogService struct {
	dishes DishRepository
}

func NewCatalogService(dishes DishRepository) *CatalogService {
	return &CatalogService{dishes: dishes}
}

func (s *CatalogService) ListDishes() ([]domain.Dish, error) {
	return s.dishes.LoadDishes()
}

func (s *CatalogService) GetDish(id string) (*domain.Dish, error) {
	dishes, err := s.dishes.LoadDishes()
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, ErrDishNotFound
}

func (s *CatalogService) ReplaceCatalog(dishes []domain.Dish) error {
	return s.dishes.SaveDishes(dishes)
}

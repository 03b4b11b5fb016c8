package service

import (
	"context"
	"net/http"

	"qualigo/internal/domain"
)

type CatalogInterface interface {
	ListDishes() ([]domain.Dish, error)
	GetDish(id string) (*domain.Dish, error)
	ReplaceCatalog(dishes []domain.Dish) error
}

type CartInterface interface {
	Items() ([]domain.CartItem, error)
	AddItem(dishID string, quantity int, selections domain.Selections) (*domain.CartItem, error)
	UpdateQuantity(itemID string, quantity int) error
	RemoveItem(itemID string) error
	Clear() error
	Totals() (domain.CartTotals, error)
}

type OrderInterface interface {
	Checkout(ctx context.Context, info domain.CustomerInfo, userID string) (*domain.Order, error)
	GetOrder(id string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UserOrders(userID string) ([]domain.Order, error)
	UpdateStatus(id string, status domain.OrderStatus) (*domain.Order, error)
	QRCode(orderID string) ([]byte, error)
}

type UserInterface interface {
	Register(user domain.User) (*domain.User, error)
	Login(email, password string) (*domain.User, error)
	SetCurrentUser(user *domain.User) error
	CurrentUser() (*domain.User, error)
	ListUsers() ([]domain.User, error)
}

type AnalyticsInterface interface {
	DailySales() ([]domain.DailySales, error)
	Summary() (domain.AnalyticsSummary, error)
	TopDishes(limit int) ([]domain.DishSales, error)
	Dashboard() (domain.Dashboard, error)
}

type ChatbotInterface interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Storage-facing ports, implemented by storage.Store.

type DishRepository interface {
	LoadDishes() ([]domain.Dish, error)
	SaveDishes(dishes []domain.Dish) error
}

type CartRepository interface {
	LoadCart() ([]domain.CartItem, error)
	SaveCart(items []domain.CartItem) error
	ClearCart() error
}

type OrderRepository interface {
	LoadOrders() ([]domain.Order, error)
	SaveOrders(orders []domain.Order) error
}

type UserRepository interface {
	LoadUsers() ([]domain.User, error)
	SaveUsers(users []domain.User) error
	LoadCurrentUser() (*domain.User, error)
	SaveCurrentUser(user *domain.User) error
}

// CartNotifier fans the cart-updated signal out to in-process observers.
type CartNotifier interface {
	CartUpdated()
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	_ CatalogInterface   = (*CatalogService)(nil)
	_ CartInterface      = (*CartService)(nil)
	_ OrderInterface     = (*OrderService)(nil)
	_ UserInterface      = (*UserService)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ ChatbotInterface   = (*ChatbotService)(nil)
)

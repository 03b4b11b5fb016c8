package tests

import (
	"testing"
	"time"

	"qualigo/internal/domain"
	"qualigo/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileStore(t *testing.T) *storage.Store {
	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return storage.NewStore(kv)
}

func redisStore(t *testing.T) *storage.Store {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return storage.NewStore(storage.NewRedisStore(client))
}

func storeBackends(t *testing.T) map[string]*storage.Store {
	return map[string]*storage.Store{
		"file":  fileStore(t),
		"redis": redisStore(t),
	}
}

func TestStoreDishesSeedFallback(t *testing.T) {
	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			dishes, err := store.LoadDishes()
			assert.NoError(t, err)
			assert.NotEmpty(t, dishes)
			assert.Equal(t, "Buddha Bowl Glow", dishes[0].Name)
		})
	}
}

func TestStoreDishesRoundTrip(t *testing.T) {
	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			replacement := []domain.Dish{{ID: "99", Name: "Nuevo Plato", Price: 9.99}}
			require.NoError(t, store.SaveDishes(replacement))

			dishes, err := store.LoadDishes()
			assert.NoError(t, err)
			assert.Equal(t, replacement, dishes)
		})
	}
}

func TestStoreOrdersRoundTrip(t *testing.T) {
	order := domain.Order{
		ID:     "ORD-1",
		UserID: "user-1",
		Items: []domain.CartItem{
			{
				ID:     "line-1",
				DishID: "1",
				Dish:   buddhaBowl(),
				SelectedOptions: domain.Selections{
					"protein-1": {"prot-1-3"},
				},
				Quantity:    2,
				CustomPrice: 14.99,
			},
		},
		Subtotal:     29.98,
		Tax:          2.998,
		Total:        32.978,
		Status:       domain.StatusConfirmed,
		CreatedAt:    time.Date(2026, 8, 20, 13, 0, 0, 0, time.UTC),
		CustomerInfo: domain.CustomerInfo{Name: "Ana Torres", Email: "ana@example.com"},
	}

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SaveOrders([]domain.Order{order}))

			orders, err := store.LoadOrders()
			assert.NoError(t, err)
			require.Len(t, orders, 1)

			// Nested snapshot and selections survive serialization intact.
			got := orders[0]
			assert.Equal(t, order.ID, got.ID)
			assert.Equal(t, order.Items[0].Dish.Customizations, got.Items[0].Dish.Customizations)
			assert.Equal(t, order.Items[0].SelectedOptions, got.Items[0].SelectedOptions)
			assert.True(t, order.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestStoreCartClear(t *testing.T) {
	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SaveCart([]domain.CartItem{{ID: "line-1"}}))
			require.NoError(t, store.ClearCart())

			items, err := store.LoadCart()
			assert.NoError(t, err)
			assert.Empty(t, items)

			// Clearing an already empty cart is fine.
			assert.NoError(t, store.ClearCart())
		})
	}
}

func TestStoreEmptySlotsDefaults(t *testing.T) {
	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			users, err := store.LoadUsers()
			assert.NoError(t, err)
			assert.Empty(t, users)

			orders, err := store.LoadOrders()
			assert.NoError(t, err)
			assert.Empty(t, orders)

			items, err := store.LoadCart()
			assert.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestStoreCurrentUser(t *testing.T) {
	user := domain.User{ID: "u-1", Email: "ana@example.com", Role: domain.RoleCustomer}

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			// Nobody logged in yet.
			current, err := store.LoadCurrentUser()
			assert.NoError(t, err)
			assert.Nil(t, current)

			require.NoError(t, store.SaveCurrentUser(&user))
			current, err = store.LoadCurrentUser()
			assert.NoError(t, err)
			require.NotNil(t, current)
			assert.Equal(t, "u-1", current.ID)

			// Logout.
			require.NoError(t, store.SaveCurrentUser(nil))
			current, err = store.LoadCurrentUser()
			assert.NoError(t, err)
			assert.Nil(t, current)
		})
	}
}

func TestStoreSlotsAreIndependent(t *testing.T) {
	store := fileStore(t)

	require.NoError(t, store.SaveCart([]domain.CartItem{{ID: "line-1"}}))
	require.NoError(t, store.SaveUsers([]domain.User{{ID: "u-1"}}))
	require.NoError(t, store.ClearCart())

	users, err := store.LoadUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

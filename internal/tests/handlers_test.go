package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "qualigo/internal/api/http"
	"qualigo/internal/domain"
	"qualigo/internal/events"
	"qualigo/internal/mocks"
	"qualigo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	catalog   *mocks.CatalogInterface
	cart      *mocks.CartInterface
	orders    *mocks.OrderInterface
	users     *mocks.UserInterface
	analytics *mocks.AnalyticsInterface
	chatbot   *mocks.ChatbotInterface
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	m := handlerMocks{
		catalog:   mocks.NewCatalogInterface(t),
		cart:      mocks.NewCartInterface(t),
		orders:    mocks.NewOrderInterface(t),
		users:     mocks.NewUserInterface(t),
		analytics: mocks.NewAnalyticsInterface(t),
		chatbot:   mocks.NewChatbotInterface(t),
	}
	handler := httpapi.NewHandler(m.catalog, m.cart, m.orders, m.users, m.analytics, m.chatbot, events.NewBus())
	return httpapi.NewRouter(handler), m
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func adminUser() *domain.User {
	return &domain.User{ID: "ADMIN-001", Email: service.AdminEmail, Role: domain.RoleAdmin}
}

func customerUser() *domain.User {
	return &domain.User{ID: "u-1", Email: "ana@example.com", Role: domain.RoleCustomer}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestGetDishes(t *testing.T) {
	router, m := newTestRouter(t)
	m.catalog.On("ListDishes").Return([]domain.Dish{buddhaBowl()}, nil)

	rec := doRequest(router, http.MethodGet, "/api/dishes", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var dishes []domain.Dish
	decodeBody(t, rec, &dishes)
	assert.Len(t, dishes, 1)
}

func TestGetDishNotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.catalog.On("GetDish", "missing").Return(nil, service.ErrDishNotFound)

	rec := doRequest(router, http.MethodGet, "/api/dishes/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomizeDish(t *testing.T) {
	router, m := newTestRouter(t)
	dish := buddhaBowl()
	m.catalog.On("GetDish", "1").Return(&dish, nil)

	rec := doRequest(router, http.MethodPost, "/api/dishes/1/customize",
		`{"selections":{"protein-1":["prot-1-1"]},"group_id":"protein-1","option_id":"prot-1-3","selected":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Selections domain.Selections `json:"selections"`
		UnitPrice  float64           `json:"unit_price"`
	}
	decodeBody(t, rec, &body)
	// Single-select group: Salmón replaces Pollo and carries its delta.
	assert.Equal(t, []string{"prot-1-3"}, body.Selections["protein-1"])
	assert.InDelta(t, 14.99, body.UnitPrice, 1e-9)
}

func TestCustomizeDishQuoteOnly(t *testing.T) {
	router, m := newTestRouter(t)
	dish := buddhaBowl()
	m.catalog.On("GetDish", "1").Return(&dish, nil)

	// No toggle: just price the given selections.
	rec := doRequest(router, http.MethodPost, "/api/dishes/1/customize",
		`{"selections":{"protein-1":["prot-1-3"]}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UnitPrice float64 `json:"unit_price"`
	}
	decodeBody(t, rec, &body)
	assert.InDelta(t, 14.99, body.UnitPrice, 1e-9)
}

func TestGetCart(t *testing.T) {
	router, m := newTestRouter(t)
	m.cart.On("Items").Return([]domain.CartItem{{ID: "line-1", CustomPrice: 14.99, Quantity: 2}}, nil)
	m.cart.On("Totals").Return(domain.CartTotals{Subtotal: 29.98, Tax: 2.998, Total: 32.978}, nil)

	rec := doRequest(router, http.MethodGet, "/api/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items  []domain.CartItem `json:"items"`
		Totals domain.CartTotals `json:"totals"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Items, 1)
	assert.InDelta(t, 32.978, body.Totals.Total, 1e-9)
}

func TestAddCartItem(t *testing.T) {
	router, m := newTestRouter(t)
	selections := domain.Selections{"protein-1": {"prot-1-3"}}
	m.cart.On("AddItem", "1", 2, selections).
		Return(&domain.CartItem{ID: "line-1", DishID: "1", Quantity: 2, CustomPrice: 14.99}, nil)

	rec := doRequest(router, http.MethodPost, "/api/cart/items",
		`{"dish_id":"1","quantity":2,"selected_options":{"protein-1":["prot-1-3"]}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var item domain.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, "line-1", item.ID)
}

func TestAddCartItemUnknownDish(t *testing.T) {
	router, m := newTestRouter(t)
	m.cart.On("AddItem", "missing", 1, domain.Selections(nil)).Return(nil, service.ErrDishNotFound)

	rec := doRequest(router, http.MethodPost, "/api/cart/items", `{"dish_id":"missing","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCartItemInvalidQuantity(t *testing.T) {
	router, m := newTestRouter(t)
	m.cart.On("AddItem", "1", 0, domain.Selections(nil)).Return(nil, service.ErrInvalidQuantity)

	rec := doRequest(router, http.MethodPost, "/api/cart/items", `{"dish_id":"1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCartItem(t *testing.T) {
	router, m := newTestRouter(t)
	m.cart.On("UpdateQuantity", "line-1", 3).Return(nil)

	rec := doRequest(router, http.MethodPut, "/api/cart/items/line-1", `{"quantity":3}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRemoveCartItem(t *testing.T) {
	router, m := newTestRouter(t)
	m.cart.On("RemoveItem", "line-1").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/api/cart/items/line-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClearCart(t *testing.T) {
	router, m := newTestRouter(t)
	m.cart.On("Clear").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/api/cart", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

const validCheckoutBody = `{
	"customer_info": {
		"name": "Ana Torres",
		"email": "ana@example.com",
		"phone": "5551234567",
		"address": "Av. Reforma 100"
	},
	"payment": {
		"card_number": "4111 1111 1111 1111",
		"expiry": "12/27",
		"cvv": "123"
	}
}`

func TestCheckout(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(customerUser(), nil)
	m.orders.On("Checkout", anyContext(), domain.CustomerInfo{
		Name:    "Ana Torres",
		Email:   "ana@example.com",
		Phone:   "5551234567",
		Address: "Av. Reforma 100",
	}, "u-1").Return(&domain.Order{ID: "ORD-1", Status: domain.StatusConfirmed, Total: 33.00}, nil)

	rec := doRequest(router, http.MethodPost, "/api/checkout", validCheckoutBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var order domain.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, "ORD-1", order.ID)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
}

func TestCheckoutValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/checkout", `{
		"customer_info": {"name": "", "email": "bad", "phone": "", "address": ""},
		"payment": {"card_number": "12", "expiry": "13/27", "cvv": "9"}
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Errors, "name")
	assert.Equal(t, "Correo inválido", body.Errors["email"])
	assert.Contains(t, body.Errors, "phone")
	assert.Contains(t, body.Errors, "address")
	assert.Equal(t, "Número de tarjeta inválido", body.Errors["card_number"])
	assert.Contains(t, body.Errors, "expiry")
	assert.Contains(t, body.Errors, "cvv")
}

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(nil, nil)
	m.orders.On("Checkout", anyContext(), domain.CustomerInfo{
		Name:    "Ana Torres",
		Email:   "ana@example.com",
		Phone:   "5551234567",
		Address: "Av. Reforma 100",
	}, "").Return(nil, service.ErrEmptyCart)

	rec := doRequest(router, http.MethodPost, "/api/checkout", validCheckoutBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "/cart", body["redirect"])
}

func TestGetOrderNotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.orders.On("GetOrder", "ORD-missing").Return(nil, service.ErrOrderNotFound)

	rec := doRequest(router, http.MethodGet, "/api/orders/ORD-missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderQRCode(t *testing.T) {
	router, m := newTestRouter(t)
	m.orders.On("QRCode", "ORD-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := doRequest(router, http.MethodGet, "/api/orders/ORD-1/qrcode", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestGetMyOrdersAnonymous(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(nil, nil)

	rec := doRequest(router, http.MethodGet, "/api/my/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []domain.Order
	decodeBody(t, rec, &orders)
	assert.Empty(t, orders)
}

func TestGetMyOrders(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(customerUser(), nil)
	m.orders.On("UserOrders", "u-1").Return([]domain.Order{{ID: "ORD-1", UserID: "u-1"}}, nil)

	rec := doRequest(router, http.MethodGet, "/api/my/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []domain.Order
	decodeBody(t, rec, &orders)
	assert.Len(t, orders, 1)
}

func TestRegister(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("Register", domain.User{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret",
	}).Return(&domain.User{ID: "u-1", Name: "Ana Torres", Email: "ana@example.com", Role: domain.RoleCustomer}, nil)

	rec := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"name":"Ana Torres","email":"ana@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/auth/register", `{"name":"","email":"","password":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("Register", domain.User{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret",
	}).Return(nil, service.ErrEmailTaken)

	rec := doRequest(router, http.MethodPost, "/api/auth/register",
		`{"name":"Ana Torres","email":"ana@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Este correo ya está registrado", body.Errors["email"])
}

func TestLogin(t *testing.T) {
	router, m := newTestRouter(t)
	user := customerUser()
	m.users.On("Login", "ana@example.com", "secret").Return(user, nil)
	m.users.On("SetCurrentUser", user).Return(nil)

	rec := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"ana@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("Login", "ana@example.com", "wrong").Return(nil, service.ErrInvalidCredentials)

	rec := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"ana@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("SetCurrentUser", (*domain.User)(nil)).Return(nil)

	rec := doRequest(router, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChat(t *testing.T) {
	router, m := newTestRouter(t)
	m.chatbot.On("Reply", anyContext(), "hola").Return("¡Hola! Bienvenido a QaliGo", nil)

	rec := doRequest(router, http.MethodPost, "/api/chat", `{"message":"hola"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["reply"], "Bienvenido")
}

func TestAdminDashboardRequiresAdminRole(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		code int
	}{
		{name: "anonymous rejected", user: nil, code: http.StatusUnauthorized},
		{name: "customer rejected", user: customerUser(), code: http.StatusUnauthorized},
		{name: "admin role allowed", user: adminUser(), code: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.users.On("CurrentUser").Return(testCase.user, nil)
			if testCase.code == http.StatusOK {
				m.analytics.On("Dashboard").Return(domain.Dashboard{TotalOrders: 3}, nil)
			}

			rec := doRequest(router, http.MethodGet, "/api/admin/dashboard", "")
			assert.Equal(t, testCase.code, rec.Code)

			if testCase.code == http.StatusUnauthorized {
				var body map[string]string
				decodeBody(t, rec, &body)
				assert.Equal(t, "/login", body["redirect"])
			}
		})
	}
}

func TestAdminOrdersRequiresAdminAccount(t *testing.T) {
	// An admin-role user that is not the distinguished account is rejected.
	otherAdmin := &domain.User{ID: "u-9", Email: "other@example.com", Role: domain.RoleAdmin}

	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(otherAdmin, nil)

	rec := doRequest(router, http.MethodGet, "/api/admin/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOrdersStatusFilter(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(adminUser(), nil)
	m.orders.On("ListOrders").Return([]domain.Order{
		{ID: "ORD-1", Status: domain.StatusPending},
		{ID: "ORD-2", Status: domain.StatusDelivered},
	}, nil)

	rec := doRequest(router, http.MethodGet, "/api/admin/orders?status=pending", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []domain.Order
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].ID)
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(adminUser(), nil)
	m.orders.On("UpdateStatus", "ORD-1", domain.StatusReady).
		Return(&domain.Order{ID: "ORD-1", Status: domain.StatusReady}, nil)

	rec := doRequest(router, http.MethodPut, "/api/admin/orders/ORD-1/status", `{"status":"ready"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var order domain.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, domain.StatusReady, order.Status)
}

func TestAdminUpdateOrderStatusInvalid(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(adminUser(), nil)
	m.orders.On("UpdateStatus", "ORD-1", domain.OrderStatus("shipped")).
		Return(nil, service.ErrInvalidStatus)

	rec := doRequest(router, http.MethodPut, "/api/admin/orders/ORD-1/status", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminAnalytics(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(adminUser(), nil)
	m.analytics.On("Summary").Return(domain.AnalyticsSummary{TotalOrders: 3, TotalRevenue: 66.00}, nil)
	m.analytics.On("DailySales").Return([]domain.DailySales{{Date: "20/08/2026", Revenue: 44.00, OrderCount: 2}}, nil)
	m.analytics.On("TopDishes", 5).Return([]domain.DishSales{{Name: "Buddha Bowl Glow", Quantity: 3}}, nil)

	rec := doRequest(router, http.MethodGet, "/api/admin/analytics", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Summary    domain.AnalyticsSummary `json:"summary"`
		DailySales []domain.DailySales     `json:"daily_sales"`
		TopDishes  []domain.DishSales      `json:"top_dishes"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 3, body.Summary.TotalOrders)
	assert.Len(t, body.DailySales, 1)
	assert.Len(t, body.TopDishes, 1)
}

func TestAdminUsers(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.On("CurrentUser").Return(adminUser(), nil)
	m.users.On("ListUsers").Return([]domain.User{*adminUser(), *customerUser()}, nil)

	rec := doRequest(router, http.MethodGet, "/api/admin/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var users []domain.User
	decodeBody(t, rec, &users)
	assert.Len(t, users, 2)
}

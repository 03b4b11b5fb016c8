package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"qualigo/internal/domain"
	"qualigo/internal/events"
	"qualigo/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog   service.CatalogInterface
	Cart      service.CartInterface
	Orders    service.OrderInterface
	Users     service.UserInterface
	Analytics service.AnalyticsInterface
	Chatbot   service.ChatbotInterface
	Bus       *events.Bus
}

func NewHandler(catalog service.CatalogInterface, cart service.CartInterface, orders service.OrderInterface,
	users service.UserInterface, analytics service.AnalyticsInterface, chatbot service.ChatbotInterface,
	bus *events.Bus) *Handler {
	return &Handler{
		Catalog:   catalog,
		Cart:      cart,
		Orders:    orders,
		Users:     users,
		Analytics: analytics,
		Chatbot:   chatbot,
		Bus:       bus,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id}/customize", h.customizeDish).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/events", h.cartEvents).Methods("GET")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/my/orders", h.getMyOrders).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/me", h.currentUser).Methods("GET")

	r.HandleFunc("/api/chat", h.chat).Methods("POST")

	r.HandleFunc("/api/admin/dashboard", h.adminDashboard).Methods("GET")
	r.HandleFunc("/api/admin/orders", h.adminOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/status", h.adminUpdateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/admin/analytics", h.adminAnalytics).Methods("GET")
	r.HandleFunc("/api/admin/users", h.adminUsers).Methods("GET")
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "qualigo",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.ListDishes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Catalog.GetDish(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrDishNotFound) {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

// customizeDish applies one option toggle to a selection set and quotes the
// resulting unit price, the server-side half of the dish customizer view.
func (h *Handler) customizeDish(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Selections domain.Selections `json:"selections"`
		GroupID    string            `json:"group_id"`
		OptionID   string            `json:"option_id"`
		Selected   bool              `json:"selected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	dish, err := h.Catalog.GetDish(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrDishNotFound) {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	selections := payload.Selections
	if payload.GroupID != "" {
		selections = service.SetOption(*dish, selections, payload.GroupID, payload.OptionID, payload.Selected)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"selections": selections,
		"unit_price": service.UnitPrice(*dish, selections),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.Cart.Items()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	totals, err := h.Cart.Totals()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"totals": totals,
	})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID          string            `json:"dish_id"`
		Quantity        int               `json:"quantity"`
		SelectedOptions domain.Selections `json:"selected_options"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Cart.AddItem(payload.DishID, payload.Quantity, payload.SelectedOptions)
	switch {
	case errors.Is(err, service.ErrDishNotFound):
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	case errors.Is(err, service.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Cart.UpdateQuantity(mux.Vars(r)["id"], payload.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.RemoveItem(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// cartEvents streams the cart-updated signal as server-sent events so
// simultaneously rendered views stay consistent without polling.
func (h *Handler) cartEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	updates, unsubscribe := h.Bus.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-updates:
			if _, err := w.Write([]byte("event: cartUpdated\ndata: {}\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var payload checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if fieldErrors := validateCheckout(payload); len(fieldErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": fieldErrors})
		return
	}

	var userID string
	if user, err := h.Users.CurrentUser(); err == nil && user != nil {
		userID = user.ID
	}

	order, err := h.Orders.Checkout(r.Context(), payload.CustomerInfo, userID)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		// Checkout with an empty cart redirects back to the cart view.
		writeJSON(w, http.StatusConflict, map[string]string{
			"error":    "cart is empty",
			"redirect": "/cart",
		})
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrOrderNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrOrderNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.CurrentUser()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusOK, []domain.Order{})
		return
	}
	orders, err := h.Orders.UserOrders(user.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if fieldErrors := validateRegistration(user); len(fieldErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": fieldErrors})
		return
	}

	created, err := h.Users.Register(user)
	if errors.Is(err, service.ErrEmailTaken) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"errors": map[string]string{"email": "Este correo ya está registrado"},
		})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Users.Login(payload.Email, payload.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Users.SetCurrentUser(user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.SetCurrentUser(nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.CurrentUser()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.Chatbot.Reply(r.Context(), payload.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"qualigo/internal/domain"
	"qualigo/internal/service"

	"github.com/gorilla/mux"
)

// Admin views check the session themselves on every load; there is no shared
// gate. The dashboard accepts any account with the admin role, the other
// admin views require the distinguished admin account.

func (h *Handler) requireAdminRole(w http.ResponseWriter) (*domain.User, bool) {
	user, err := h.Users.CurrentUser()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if user == nil || user.Role != domain.RoleAdmin {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "unauthorized",
			"redirect": "/login",
		})
		return nil, false
	}
	return user, true
}

func (h *Handler) requireAdminAccount(w http.ResponseWriter) (*domain.User, bool) {
	user, err := h.Users.CurrentUser()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if user == nil || user.Email != service.AdminEmail {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "unauthorized",
			"redirect": "/login",
		})
		return nil, false
	}
	return user, true
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminRole(w); !ok {
		return
	}

	dashboard, err := h.Analytics.Dashboard()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) adminOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminAccount(w); !ok {
		return
	}

	orders, err := h.Orders.ListOrders()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Optional ?status= filter, mirroring the back-office order list.
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := []domain.Order{}
		for _, order := range orders {
			if order.Status == domain.OrderStatus(status) {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminAccount(w); !ok {
		return
	}

	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateStatus(mux.Vars(r)["id"], payload.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) adminAnalytics(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminAccount(w); !ok {
		return
	}

	summary, err := h.Analytics.Summary()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	daily, err := h.Analytics.DailySales()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	top, err := h.Analytics.TopDishes(5)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary":     summary,
		"daily_sales": daily,
		"top_dishes":  top,
	})
}

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminAccount(w); !ok {
		return
	}

	users, err := h.Users.ListUsers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

package domain

import "time"

type Category string

const (
	CategoryBowls     Category = "bowls"
	CategoryWraps     Category = "wraps"
	CategorySalads    Category = "salads"
	CategorySmoothies Category = "smoothies"
	CategoryDesserts  Category = "desserts"
)

type Dish struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	ImageURL       string          `json:"image_url"`
	Category       Category        `json:"category"`
	Calories       int             `json:"calories"`
	Protein        int             `json:"protein"`
	Ingredients    []string        `json:"ingredients"`
	Customizations []Customization `json:"customizations"`
}

// Customization is an option group attached to a dish. Type is informational
// only and never enforced. If MultipleSelect is false, at most one option in
// the group may be selected at a time.
type Customization struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Type           string                `json:"type"`
	Required       bool                  `json:"required"`
	MultipleSelect bool                  `json:"multiple_select"`
	Options        []CustomizationOption `json:"options"`
}

type CustomizationOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Selections maps a customization group id to the chosen option ids.
type Selections map[string][]string

// CartItem is one configured line in the cart. Dish is a snapshot copy, so
// later catalog edits never change lines already in a cart. CustomPrice is
// the per-unit price frozen at insertion time.
type CartItem struct {
	ID              string     `json:"id"`
	DishID          string     `json:"dish_id"`
	Dish            Dish       `json:"dish"`
	Quantity        int        `json:"quantity"`
	SelectedOptions Selections `json:"selected_options"`
	CustomPrice     float64    `json:"custom_price"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// ValidStatus reports whether s is a member of the order status enum.
// Transitions between statuses are deliberately unordered.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is an immutable snapshot of a completed purchase. Status is the only
// field mutated after creation.
type Order struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id,omitempty"`
	Items        []CartItem   `json:"items"`
	Subtotal     float64      `json:"subtotal"`
	Tax          float64      `json:"tax"`
	Total        float64      `json:"total"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	CustomerInfo CustomerInfo `json:"customer_info"`
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is an account record. The password is stored and compared verbatim, a
// deliberate simplification carried over from the demo this reimplements.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type DailySales struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

type AnalyticsSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	UniqueCustomers   int     `json:"unique_customers"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type DishSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Dashboard struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders []Order `json:"pending_orders"`
	RecentOrders  []Order `json:"recent_orders"`
}

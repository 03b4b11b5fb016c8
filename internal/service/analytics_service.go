package service

import (
	"sort"
	"time"

	"qualigo/internal/domain"
)

const dateLayout = "02/01/2006"

// AnalyticsService derives read-only views over the persisted order list.
// Nothing here has state of its own.
type AnalyticsService struct {
	orders OrderRepository
}

func NewAnalyticsService(orders OrderRepository) *AnalyticsService {
	return &AnalyticsService{orders: orders}
}

// DailySales groups orders by calendar date into a revenue/order-count time
// series sorted ascending by date.
func (s *AnalyticsService) DailySales() ([]domain.DailySales, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		day   time.Time
		stats domain.DailySales
	}
	byDay := map[string]*bucket{}

	for _, order := range orders {
		day := order.CreatedAt.Truncate(24 * time.Hour)
		key := order.CreatedAt.Format(dateLayout)
		b, ok := byDay[key]
		if !ok {
			b = &bucket{day: day, stats: domain.DailySales{Date: key}}
			byDay[key] = b
		}
		b.stats.Revenue += order.Total
		b.stats.OrderCount++
	}

	buckets := make([]*bucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].day.Before(buckets[j].day) })

	series := make([]domain.DailySales, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, b.stats)
	}
	return series, nil
}

func (s *AnalyticsService) Summary() (domain.AnalyticsSummary, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	summary := domain.AnalyticsSummary{TotalOrders: len(orders)}
	emails := map[string]struct{}{}
	for _, order := range orders {
		summary.TotalRevenue += order.Total
		emails[order.CustomerInfo.Email] = struct{}{}
	}
	summary.UniqueCustomers = len(emails)
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}
	return summary, nil
}

// TopDishes ranks dishes by total quantity sold across all order lines.
// Ties keep first-seen position.
func (s *AnalyticsService) TopDishes(limit int) ([]domain.DishSales, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	sales := []domain.DishSales{}
	for _, order := range orders {
		for _, item := range order.Items {
			i, ok := index[item.Dish.Name]
			if !ok {
				i = len(sales)
				index[item.Dish.Name] = i
				sales = append(sales, domain.DishSales{Name: item.Dish.Name})
			}
			sales[i].Quantity += item.Quantity
			sales[i].Revenue += item.CustomPrice * float64(item.Quantity)
		}
	}

	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Quantity > sales[j].Quantity })
	if limit > 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

// Dashboard summarizes the back-office landing view: totals plus pending and
// most recent orders.
func (s *AnalyticsService) Dashboard() (domain.Dashboard, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return domain.Dashboard{}, err
	}

	dashboard := domain.Dashboard{
		TotalOrders:   len(orders),
		PendingOrders: []domain.Order{},
		RecentOrders:  []domain.Order{},
	}
	for _, order := range orders {
		dashboard.TotalRevenue += order.Total
		if order.Status == domain.StatusPending {
			dashboard.PendingOrders = append(dashboard.PendingOrders, order)
		}
	}

	// Newest first, capped at five.
	for i := len(orders) - 1; i >= 0 && len(dashboard.RecentOrders) < 5; i-- {
		dashboard.RecentOrders = append(dashboard.RecentOrders, orders[i])
	}
	return dashboard, nil
}

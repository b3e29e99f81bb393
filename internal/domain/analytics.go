package domain

// DashboardSummary holds the headline admin metrics.
type DashboardSummary struct {
	TotalRevenue int64   `json:"total_revenue"`
	TotalOrders  int     `json:"total_orders"`
	AverageOrder float64 `json:"average_order"`
	BestSeller   string  `json:"best_seller"`
}

// CustomerSpend is one customer's aggregated purchase history.
type CustomerSpend struct {
	Name       string `json:"name"`
	TotalSpend int64  `json:"total_spend"`
	OrderCount int    `json:"order_count"`
	Segment    string `json:"segment"`
}

// HourlyRevenue is revenue for one hour of day, zero-filled for quiet hours.
type HourlyRevenue struct {
	Hour    int   `json:"hour"`
	Revenue int64 `json:"revenue"`
}

// MenuSales is one menu item's sold-unit count for the top-menu charts.
type MenuSales struct {
	Name string `json:"menu_name"`
	Sold int    `json:"sold"`
}

// TopMenu groups best sellers by display bucket.
type TopMenu struct {
	Food   []MenuSales `json:"food"`
	Drinks []MenuSales `json:"drinks"`
}

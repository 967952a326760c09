package dto

// DashboardSummary the headline figures of the dashboard page. Realized
// figures come from sale snapshots, potential figures from live stock.
type DashboardSummary struct {
	InventoryCost      Money  `json:"inventoryCost"`
	PotentialRevenue   Money  `json:"potentialRevenue"`
	ProductVariants    int    `json:"productVariants"`
	TotalUnits         int    `json:"totalUnits"`
	RealizedRevenue    Money  `json:"realizedRevenue"`
	RealizedProfit     Money  `json:"realizedProfit"`
	BestSellingProduct string `json:"bestSellingProduct"` // by cumulative quantity sold
	TopProfitProduct   string `json:"topProfitProduct"`   // by cumulative snapshot profit
}

// RevenueSlice one product's share of potential revenue for the reports
// chart.
type RevenueSlice struct {
	Name  string `json:"name"`
	Value Money  `json:"value"`
}

// ReportsSummary the figures of the reports page.
type ReportsSummary struct {
	PotentialProfit  Money          `json:"potentialProfit"`
	PotentialRevenue Money          `json:"potentialRevenue"`
	ProfitMargin     Money          `json:"profitMargin"` // percent of potential revenue
	RevenueByProduct []RevenueSlice `json:"revenueByProduct"`
}

package model

// Result status values. They let callers tell "nothing was uploaded" apart
// from "the filters matched nothing" and "the computation blew up".
const (
	StatusOK         = "ok"
	StatusEmptyInput = "empty-input"
	StatusFailed     = "failed"
)

// ChartDataItem is the output unit of every grouped aggregation: a group
// label, the aggregated value, and optional extras consumed by the charts.
type ChartDataItem struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Count      int     `json:"count,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
}

// AnalyticsResult is a pure snapshot derived from one (filtered) record set.
// It has no identity and is never mutated after construction; recomputing
// with different inputs produces a fresh, independent result.
type AnalyticsResult struct {
	Status string `json:"status"`

	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalCustomers    int     `json:"totalCustomers"`
	AverageLeadTime   float64 `json:"averageLeadTime"`
	Currency          string  `json:"currency"`
	OccupancyRate     float64 `json:"occupancyRate"`
	BestSeller        string  `json:"bestSeller"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	PSIClient         float64 `json:"psiClient"`
	PSIService        float64 `json:"psiService"`

	RevenueByService    []ChartDataItem `json:"revenueByService"`
	TransactionsByDay   []ChartDataItem `json:"transactionsByDay"`
	OccupancyByDay      []ChartDataItem `json:"occupancyByDay"`
	EmployeePerformance []ChartDataItem `json:"employeePerformance"`
	PSIByService        []ChartDataItem `json:"psiByService"`
	PSIByClient         []ChartDataItem `json:"psiByClient"`
}

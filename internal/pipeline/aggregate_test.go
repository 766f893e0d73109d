package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-analytics/internal/model"
)

func TestProcessEmptyInput(t *testing.T) {
	result, err := Process(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEmptyInput, result.Status)
	assert.Zero(t, result.TotalRevenue)
	assert.Zero(t, result.TotalTransactions)
	assert.Zero(t, result.TotalCustomers)
	assert.Zero(t, result.AverageOrderValue, "no divide-by-zero on empty input")
	assert.Empty(t, result.RevenueByService)
	assert.Empty(t, result.TransactionsByDay)
	assert.Empty(t, result.OccupancyByDay)
	assert.Equal(t, "MAD", result.Currency)
}

func TestProcessFilteredToNothing(t *testing.T) {
	records := []model.Record{{ClientName: "Amina", ServiceCategory: "Hair", Price: 100}}
	result, err := Process(records, &model.FilterState{ServiceCategory: "Massage"})
	require.NoError(t, err)
	// A successful empty aggregation, not empty input.
	assert.Equal(t, model.StatusOK, result.Status)
	assert.Zero(t, result.TotalTransactions)
}

func TestRevenueByService(t *testing.T) {
	records := []model.Record{
		{ServiceCategory: "Hair", Price: 100},
		{ServiceCategory: "Hair", Price: 50},
		{ServiceCategory: "Facial", Price: 200},
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, []model.ChartDataItem{
		{Name: "Facial", Value: 200},
		{Name: "Hair", Value: 150},
	}, result.RevenueByService)
	assert.Equal(t, 350.0, result.TotalRevenue)
	assert.Equal(t, 3, result.TotalTransactions)
}

func TestRevenueByServiceTopSeven(t *testing.T) {
	var records []model.Record
	for _, category := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		records = append(records, model.Record{ServiceCategory: category, Price: 10})
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Len(t, result.RevenueByService, 7)
}

func TestAverageOrderValue(t *testing.T) {
	records := []model.Record{{Price: 100}, {Price: 50}}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, 75.0, result.AverageOrderValue)
}

func TestTotalCustomers(t *testing.T) {
	records := []model.Record{
		{ClientName: "Amina"},
		{ClientName: "Amina"},
		{ClientName: "Sara"},
		{}, // empty client names don't count
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCustomers)
	assert.Equal(t, 4, result.TotalTransactions, "no deduplication of transactions")
}

func TestAverageLeadTimeSkipsUnparseable(t *testing.T) {
	records := []model.Record{
		{BookingDate: "2024-01-01", TransactionDate: "2024-01-05"}, // 4 days
		{BookingDate: "garbage", TransactionDate: "2024-01-05"},    // excluded entirely
		{BookingDate: "2024-02-01", TransactionDate: "2024-02-03"}, // 2 days
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.AverageLeadTime)
}

func TestBestSellerFirstSeenTieBreak(t *testing.T) {
	records := []model.Record{
		{Service: "Manicure"},
		{Service: "Facial"},
		{Service: "Facial"},
		{Service: "Manicure"},
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, "Manicure", result.BestSeller)
}

func TestPriceSensitivityByClient(t *testing.T) {
	records := []model.Record{
		{ClientName: "Amina", Price: 100, OfferApplicability: "Discounted"},
		{ClientName: "Amina", Price: 100, OfferApplicability: "Not Discounted"},
		{ClientName: "Sara", Price: 50},
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	// Unweighted mean of per-client percentages: (50 + 0) / 2.
	assert.InDelta(t, 25.0, result.PSIClient, 1e-9)

	// One-booking clients drop out of the chart series.
	require.Len(t, result.PSIByClient, 1)
	assert.Equal(t, "Amina", result.PSIByClient[0].Name)
	assert.Equal(t, 2, result.PSIByClient[0].Count)
	assert.InDelta(t, 50.0, result.PSIByClient[0].Percentage, 1e-9)
}

func TestPriceSensitivityByService(t *testing.T) {
	records := []model.Record{
		{ServiceCategory: "Hair", Price: 40, OfferApplicability: "discounted offer"},
		{ServiceCategory: "Hair", Price: 60},
		{ServiceCategory: "Facial", Price: 200},
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	// Hair: 40% of revenue discounted; Facial: 0%. Mean = 20%.
	assert.InDelta(t, 20.0, result.PSIService, 1e-9)

	require.Len(t, result.PSIByService, 2)
	assert.Equal(t, "Hair", result.PSIByService[0].Name, "sorted by sensitivity")
	assert.Equal(t, 100.0, result.PSIByService[0].Value)
	assert.InDelta(t, 40.0, result.PSIByService[0].Percentage, 1e-9)
}

func TestTransactionsByDay(t *testing.T) {
	records := []model.Record{
		{TransactionDate: "2024-01-16"},
		{TransactionDate: "2024-01-15"},
		{TransactionDate: "2024-01-16"},
		{TransactionDate: "not a date"},
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, []model.ChartDataItem{
		{Name: "Jan 15", Value: 1},
		{Name: "Jan 16", Value: 2},
	}, result.TransactionsByDay)
}

func TestEmployeePerformance(t *testing.T) {
	records := []model.Record{
		{Employee: "Emma", Price: 100},
		{Employee: "John", Price: 300},
		{Employee: "Emma", Price: 50},
	}
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, []model.ChartDataItem{
		{Name: "John", Value: 300, Count: 1},
		{Name: "Emma", Value: 150, Count: 2},
	}, result.EmployeePerformance)
}

func TestCurrencyDetection(t *testing.T) {
	records := []model.Record{{Price: 10}}
	records[0].SetExtra("currency", "EUR")
	result, err := Process(records, nil)
	require.NoError(t, err)
	assert.Equal(t, "EUR", result.Currency)

	result, err = Process([]model.Record{{Price: 10}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "MAD", result.Currency)
}

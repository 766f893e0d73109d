package pipeline

import (
	"sort"
	"strings"
	"time"

	"salon-analytics/internal/model"
	"salon-analytics/pkg/utils"
)

const (
	defaultCurrency    = "MAD"
	topServicesLimit   = 7
	topPSIClientsLimit = 10
)

// aggregate computes every scalar KPI and chart series from one record set.
// Each sub-calculation independently skips rows it cannot interpret and
// proceeds with the remainder; nothing here returns an error.
func aggregate(records []model.Record) *model.AnalyticsResult {
	res := emptyResult()
	if len(records) == 0 {
		return res
	}
	res.Currency = detectCurrency(records)

	res.TotalTransactions = len(records)
	for _, rec := range records {
		res.TotalRevenue += rec.Price
	}
	if res.TotalTransactions > 0 {
		res.AverageOrderValue = res.TotalRevenue / float64(res.TotalTransactions)
	}

	clients := make(map[string]bool)
	for _, rec := range records {
		if rec.ClientName != "" {
			clients[rec.ClientName] = true
		}
	}
	res.TotalCustomers = len(clients)

	res.AverageLeadTime = averageLeadTime(records)
	res.BestSeller = bestSeller(records)

	res.RevenueByService = revenueByService(records)
	res.TransactionsByDay = transactionsByDay(records)
	res.EmployeePerformance = employeePerformance(records)
	res.PSIService, res.PSIByService = priceSensitivityByService(records)
	res.PSIClient, res.PSIByClient = priceSensitivityByClient(records)
	res.OccupancyRate, res.OccupancyByDay = occupancy(records)

	return res
}

func emptyResult() *model.AnalyticsResult {
	return &model.AnalyticsResult{
		Currency:            defaultCurrency,
		RevenueByService:    []model.ChartDataItem{},
		TransactionsByDay:   []model.ChartDataItem{},
		OccupancyByDay:      []model.ChartDataItem{},
		EmployeePerformance: []model.ChartDataItem{},
		PSIByService:        []model.ChartDataItem{},
		PSIByClient:         []model.ChartDataItem{},
	}
}

func detectCurrency(records []model.Record) string {
	for _, key := range []string{"currency", "currencyCode"} {
		if cur := utils.Text(records[0].Extra[key]); cur != "" {
			return cur
		}
	}
	return defaultCurrency
}

// averageLeadTime is the mean over records whose booking and transaction
// dates both normalize; unparseable rows are excluded from numerator and
// denominator alike.
func averageLeadTime(records []model.Record) float64 {
	total, n := 0.0, 0
	for _, rec := range records {
		if days, ok := LeadTimeDays(rec.BookingDate, rec.TransactionDate); ok {
			total += days
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// bestSeller is the most frequently consumed service; ties break toward the
// first service encountered in iteration order.
func bestSeller(records []model.Record) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, rec := range records {
		if rec.Service == "" {
			continue
		}
		if _, ok := counts[rec.Service]; !ok {
			firstSeen[rec.Service] = i
		}
		counts[rec.Service]++
	}
	best, bestCount := "", 0
	for service, count := range counts {
		if count > bestCount || (count == bestCount && firstSeen[service] < firstSeen[best]) {
			best, bestCount = service, count
		}
	}
	return best
}

func revenueByService(records []model.Record) []model.ChartDataItem {
	revenue := make(map[string]float64)
	for _, rec := range records {
		if rec.ServiceCategory != "" {
			revenue[rec.ServiceCategory] += rec.Price
		}
	}
	items := make([]model.ChartDataItem, 0, len(revenue))
	for category, total := range revenue {
		items = append(items, model.ChartDataItem{Name: category, Value: total})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topServicesLimit {
		items = items[:topServicesLimit]
	}
	return items
}

func transactionsByDay(records []model.Record) []model.ChartDataItem {
	type dayCount struct {
		day   time.Time
		count int
	}
	byDay := make(map[time.Time]int)
	for _, rec := range records {
		if day, ok := ParseDate(rec.TransactionDate); ok {
			byDay[day]++
		}
	}
	days := make([]dayCount, 0, len(byDay))
	for day, count := range byDay {
		days = append(days, dayCount{day, count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	items := make([]model.ChartDataItem, 0, len(days))
	for _, dc := range days {
		items = append(items, model.ChartDataItem{
			Name:  dc.day.Format("Jan 2"),
			Value: float64(dc.count),
		})
	}
	return items
}

func employeePerformance(records []model.Record) []model.ChartDataItem {
	type perf struct {
		revenue  float64
		bookings int
	}
	byEmployee := make(map[string]*perf)
	for _, rec := range records {
		if rec.Employee == "" {
			continue
		}
		p, ok := byEmployee[rec.Employee]
		if !ok {
			p = &perf{}
			byEmployee[rec.Employee] = p
		}
		p.revenue += rec.Price
		p.bookings++
	}
	items := make([]model.ChartDataItem, 0, len(byEmployee))
	for employee, p := range byEmployee {
		items = append(items, model.ChartDataItem{
			Name:  employee,
			Value: p.revenue,
			Count: p.bookings,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// discounted reports whether a booking was flagged by the offers column.
func discounted(rec model.Record) bool {
	return strings.Contains(strings.ToLower(rec.OfferApplicability), "discounted")
}

// priceSensitivityByService: per category, the share of revenue that came
// from discounted bookings. The scalar index is the unweighted mean of the
// per-category percentages.
func priceSensitivityByService(records []model.Record) (float64, []model.ChartDataItem) {
	type bucket struct {
		revenue    float64
		discounted float64
		bookings   int
	}
	byCategory := make(map[string]*bucket)
	for _, rec := range records {
		if rec.ServiceCategory == "" {
			continue
		}
		b, ok := byCategory[rec.ServiceCategory]
		if !ok {
			b = &bucket{}
			byCategory[rec.ServiceCategory] = b
		}
		b.revenue += rec.Price
		b.bookings++
		if discounted(rec) {
			b.discounted += rec.Price
		}
	}

	items := make([]model.ChartDataItem, 0, len(byCategory))
	sum := 0.0
	for category, b := range byCategory {
		pct := 0.0
		if b.revenue > 0 {
			pct = b.discounted / b.revenue * 100
		}
		sum += pct
		items = append(items, model.ChartDataItem{
			Name:       category,
			Value:      b.revenue,
			Count:      b.bookings,
			Percentage: pct,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Percentage != items[j].Percentage {
			return items[i].Percentage > items[j].Percentage
		}
		return items[i].Name < items[j].Name
	})
	if len(byCategory) == 0 {
		return 0, items
	}
	return sum / float64(len(byCategory)), items
}

// priceSensitivityByClient: per client, the share of bookings that were
// discounted. The scalar index is the unweighted mean across clients; the
// chart series drops one-booking clients and keeps the ten most sensitive.
func priceSensitivityByClient(records []model.Record) (float64, []model.ChartDataItem) {
	type bucket struct {
		revenue    float64
		bookings   int
		discounted int
	}
	byClient := make(map[string]*bucket)
	for _, rec := range records {
		if rec.ClientName == "" {
			continue
		}
		b, ok := byClient[rec.ClientName]
		if !ok {
			b = &bucket{}
			byClient[rec.ClientName] = b
		}
		b.revenue += rec.Price
		b.bookings++
		if discounted(rec) {
			b.discounted++
		}
	}

	sum := 0.0
	items := make([]model.ChartDataItem, 0, len(byClient))
	for client, b := range byClient {
		pct := float64(b.discounted) / float64(b.bookings) * 100
		sum += pct
		if b.bookings <= 1 {
			continue
		}
		items = append(items, model.ChartDataItem{
			Name:       client,
			Value:      b.revenue,
			Count:      b.bookings,
			Percentage: pct,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Percentage != items[j].Percentage {
			return items[i].Percentage > items[j].Percentage
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > topPSIClientsLimit {
		items = items[:topPSIClientsLimit]
	}
	if len(byClient) == 0 {
		return 0, items
	}
	return sum / float64(len(byClient)), items
}

package pipeline

import (
	"strings"
	"time"

	"salon-analytics/internal/model"
)

// ApplyFilters narrows the record set to those matching every active
// constraint. The conjunction is commutative; absent or placeholder
// constraints never exclude. A record missing the field a constraint tests
// fails that constraint.
func ApplyFilters(records []model.Record, f *model.FilterState) []model.Record {
	if f == nil {
		return records
	}
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if matchesFilters(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesFilters(rec model.Record, f *model.FilterState) bool {
	if active(f.ServiceCategory, model.AllCategories) && rec.ServiceCategory != f.ServiceCategory {
		return false
	}
	if active(f.Employee, model.AllEmployees) && rec.Employee != f.Employee {
		return false
	}
	if active(f.LoyaltyStage, model.AllLoyaltyStages) && rec.LoyaltyStage != f.LoyaltyStage {
		return false
	}
	if f.From != nil || f.To != nil {
		day, ok := ParseDate(rec.TransactionDate)
		if !ok {
			return false
		}
		if f.From != nil && day.Before(midnight(*f.From)) {
			return false
		}
		// Inclusive upper bound: push it to the end of its day so selecting
		// a whole day keeps that day's records.
		if f.To != nil && day.After(endOfDay(*f.To)) {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.SearchQuery)); q != "" {
		if !matchesSearch(rec, q) {
			return false
		}
	}
	return true
}

// matchesSearch does a case-insensitive substring scan over the record's
// textual fields.
func matchesSearch(rec model.Record, query string) bool {
	for _, field := range []string{
		rec.ClientName,
		rec.Service,
		rec.ServiceCategory,
		rec.Employee,
		rec.PaymentMethod,
	} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func active(value, placeholder string) bool {
	return value != "" && value != placeholder
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}

// FilterOptions lists the distinct dropdown values a record set offers, in
// first-seen order, each list prefixed with its "All ..." sentinel.
func FilterOptions(records []model.Record) model.FilterOptions {
	return model.FilterOptions{
		ServiceCategories: distinct(records, model.AllCategories, func(r model.Record) string { return r.ServiceCategory }),
		Employees:         distinct(records, model.AllEmployees, func(r model.Record) string { return r.Employee }),
		LoyaltyStages:     distinct(records, model.AllLoyaltyStages, func(r model.Record) string { return r.LoyaltyStage }),
	}
}

func distinct(records []model.Record, sentinel string, field func(model.Record) string) []string {
	seen := make(map[string]bool)
	out := []string{sentinel}
	for _, rec := range records {
		v := field(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

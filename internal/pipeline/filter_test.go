package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-analytics/internal/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{ClientName: "Amina", ServiceCategory: "Hair", Employee: "Emma", LoyaltyStage: "Loyal", TransactionDate: "2024-01-15", PaymentMethod: "Card", Price: 100},
		{ClientName: "Sara", ServiceCategory: "Facial", Employee: "John", LoyaltyStage: "New", TransactionDate: "2024-01-16", PaymentMethod: "Cash", Price: 200},
		{ClientName: "Leila", ServiceCategory: "Hair", Employee: "Emma", LoyaltyStage: "Returning", TransactionDate: "2024-01-20", PaymentMethod: "Card", Price: 150},
	}
}

func TestApplyFiltersIdentity(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, records, ApplyFilters(records, nil))

	// Placeholder values mean "no constraint", never "match nothing".
	f := &model.FilterState{
		ServiceCategory: model.AllCategories,
		Employee:        model.AllEmployees,
		LoyaltyStage:    model.AllLoyaltyStages,
	}
	assert.Equal(t, records, ApplyFilters(records, f))
}

func TestApplyFiltersCategory(t *testing.T) {
	out := ApplyFilters(sampleRecords(), &model.FilterState{ServiceCategory: "Hair"})
	require.Len(t, out, 2)
	for _, rec := range out {
		assert.Equal(t, "Hair", rec.ServiceCategory)
	}
}

func TestApplyFiltersConjunction(t *testing.T) {
	out := ApplyFilters(sampleRecords(), &model.FilterState{
		ServiceCategory: "Hair",
		Employee:        "John",
	})
	assert.Empty(t, out, "every active constraint must match")
}

func TestApplyFiltersDateRangeInclusive(t *testing.T) {
	from := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC)
	out := ApplyFilters(sampleRecords(), &model.FilterState{From: &from, To: &to})
	require.Len(t, out, 2, "whole-day selection keeps both bound days")
	assert.Equal(t, "Amina", out[0].ClientName)
	assert.Equal(t, "Sara", out[1].ClientName)
}

func TestApplyFiltersMissingFieldFails(t *testing.T) {
	records := []model.Record{
		{ClientName: "NoDate", Price: 10},
	}
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := ApplyFilters(records, &model.FilterState{From: &from})
	assert.Empty(t, out, "a record missing the tested field fails the constraint")

	out = ApplyFilters(records, &model.FilterState{ServiceCategory: "Hair"})
	assert.Empty(t, out)
}

func TestApplyFiltersSearch(t *testing.T) {
	out := ApplyFilters(sampleRecords(), &model.FilterState{SearchQuery: "  CASH "})
	require.Len(t, out, 1)
	assert.Equal(t, "Sara", out[0].ClientName)

	out = ApplyFilters(sampleRecords(), &model.FilterState{SearchQuery: "ami"})
	require.Len(t, out, 1)
	assert.Equal(t, "Amina", out[0].ClientName)

	out = ApplyFilters(sampleRecords(), &model.FilterState{SearchQuery: "no such text"})
	assert.Empty(t, out)
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(sampleRecords())
	assert.Equal(t, []string{model.AllCategories, "Hair", "Facial"}, opts.ServiceCategories)
	assert.Equal(t, []string{model.AllEmployees, "Emma", "John"}, opts.Employees)
	assert.Equal(t, []string{model.AllLoyaltyStages, "Loyal", "New", "Returning"}, opts.LoyaltyStages)
}

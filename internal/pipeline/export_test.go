package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salon-analytics/internal/model"
)

func exportFixture(t *testing.T) *model.AnalyticsResult {
	t.Helper()
	result, err := Process([]model.Record{
		{ClientName: "Amina", ServiceCategory: "Hair", Price: 100, TransactionDate: "2024-01-15"},
		{ClientName: "Sara", ServiceCategory: "Facial", Price: 200, TransactionDate: "2024-01-16"},
	}, nil)
	require.NoError(t, err)
	return result
}

func TestExportJSON(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	exported, err := exporter.Export("ds1", exportFixture(t), "json")
	require.NoError(t, err)
	assert.Equal(t, "json", exported.Format)

	data, err := os.ReadFile(exported.Path)
	require.NoError(t, err)
	var decoded model.AnalyticsResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 300.0, decoded.TotalRevenue)
}

func TestExportCSV(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	exported, err := exporter.Export("ds1", exportFixture(t), "csv")
	require.NoError(t, err)

	data, err := os.ReadFile(exported.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total Revenue,300.00")
	assert.Contains(t, string(data), "Revenue by Service")
}

func TestExportXLSX(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	exported, err := exporter.Export("ds1", exportFixture(t), "xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exporter.BaseDir, "ds1", "analytics.xlsx"), exported.Path)

	f, err := excelize.OpenFile(exported.Path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Summary")
	assert.Contains(t, f.GetSheetList(), "Revenue by Service")

	value, err := f.GetCellValue("Revenue by Service", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Facial", value)
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := NewExporter(t.TempDir())
	_, err := exporter.Export("ds1", exportFixture(t), "pdf")
	assert.Error(t, err)
}

package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"salon-analytics/internal/model"
)

// Exporter writes analytics reports under <BaseDir>/<datasetID>/.
type Exporter struct {
	BaseDir string
}

func NewExporter(baseDir string) *Exporter {
	return &Exporter{BaseDir: baseDir}
}

// Export writes the result in the requested format ("csv", "json" or
// "xlsx") and returns where it landed.
func (e *Exporter) Export(datasetID string, res *model.AnalyticsResult, format string) (*model.ExportResult, error) {
	dir := filepath.Join(e.BaseDir, datasetID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var path string
	var err error
	switch format {
	case "csv":
		path = filepath.Join(dir, "analytics.csv")
		err = exportCSV(path, res)
	case "json":
		path = filepath.Join(dir, "analytics.json")
		err = exportJSON(path, res)
	case "xlsx":
		path = filepath.Join(dir, "analytics.xlsx")
		err = exportXLSX(path, res)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	return &model.ExportResult{
		Format:      format,
		Path:        path,
		DownloadURL: fmt.Sprintf("/api/v1/download/%s/%s", datasetID, filepath.Base(path)),
		ExportedAt:  time.Now().UTC(),
	}, nil
}

func kpiRows(res *model.AnalyticsResult) [][]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return [][]string{
		{"Total Revenue", f(res.TotalRevenue)},
		{"Total Transactions", strconv.Itoa(res.TotalTransactions)},
		{"Total Customers", strconv.Itoa(res.TotalCustomers)},
		{"Average Lead Time (days)", f(res.AverageLeadTime)},
		{"Average Order Value", f(res.AverageOrderValue)},
		{"Occupancy Rate (%)", f(res.OccupancyRate)},
		{"Best Seller", res.BestSeller},
		{"PSI (client)", f(res.PSIClient)},
		{"PSI (service)", f(res.PSIService)},
		{"Currency", res.Currency},
	}
}

func chartSections(res *model.AnalyticsResult) []struct {
	Title string
	Items []model.ChartDataItem
} {
	return []struct {
		Title string
		Items []model.ChartDataItem
	}{
		{"Revenue by Service", res.RevenueByService},
		{"Transactions by Day", res.TransactionsByDay},
		{"Occupancy by Day", res.OccupancyByDay},
		{"Employee Performance", res.EmployeePerformance},
		{"PSI by Service", res.PSIByService},
		{"PSI by Client", res.PSIByClient},
	}
}

func exportJSON(path string, res *model.AnalyticsResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analytics result: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func exportCSV(path string, res *model.AnalyticsResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV export: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	w.Write([]string{"metric", "value"})
	for _, row := range kpiRows(res) {
		w.Write(row)
	}
	for _, section := range chartSections(res) {
		w.Write(nil)
		w.Write([]string{section.Title})
		w.Write([]string{"name", "value", "count", "percentage"})
		for _, item := range section.Items {
			w.Write([]string{
				item.Name,
				strconv.FormatFloat(item.Value, 'f', 2, 64),
				strconv.Itoa(item.Count),
				strconv.FormatFloat(item.Percentage, 'f', 2, 64),
			})
		}
	}
	w.Flush()
	return w.Error()
}

func exportXLSX(path string, res *model.AnalyticsResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("failed to set up workbook: %w", err)
	}
	f.SetCellValue(summary, "A1", "Metric")
	f.SetCellValue(summary, "B1", "Value")
	for i, row := range kpiRows(res) {
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+2), row[0])
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+2), row[1])
	}

	for _, section := range chartSections(res) {
		if _, err := f.NewSheet(section.Title); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", section.Title, err)
		}
		f.SetCellValue(section.Title, "A1", "Name")
		f.SetCellValue(section.Title, "B1", "Value")
		f.SetCellValue(section.Title, "C1", "Count")
		f.SetCellValue(section.Title, "D1", "Percentage")
		for i, item := range section.Items {
			row := i + 2
			f.SetCellValue(section.Title, fmt.Sprintf("A%d", row), item.Name)
			f.SetCellValue(section.Title, fmt.Sprintf("B%d", row), item.Value)
			f.SetCellValue(section.Title, fmt.Sprintf("C%d", row), item.Count)
			f.SetCellValue(section.Title, fmt.Sprintf("D%d", row), item.Percentage)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

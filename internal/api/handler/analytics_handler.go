package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"salon-analytics/internal/model"
	"salon-analytics/internal/pipeline"
	"salon-analytics/internal/store"
)

// GetAnalytics recomputes the analytics result for a dataset
// @Summary Compute analytics
// @Description Recompute the full analytics result from the stored records, optionally filtered
// @Tags analytics
// @Produce json
// @Param id path string true "Dataset ID"
// @Param category query string false "Service category"
// @Param employee query string false "Employee"
// @Param loyaltyStage query string false "Loyalty stage"
// @Param from query string false "Start date (inclusive)"
// @Param to query string false "End date (inclusive)"
// @Param q query string false "Search query"
// @Success 200 {object} model.AnalyticsResult "Analytics result"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 500 {object} map[string]interface{} "Computation failed"
// @Router /datasets/{id}/analytics [get]
func GetAnalytics(c *gin.Context) {
	id := c.Param("id")
	records, err := store.GetRecords(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	filters := filtersFromQuery(c)
	result, err := pipeline.Process(records, filters)
	if err != nil {
		// The pipeline already degraded to the zero-valued result; the
		// client renders its empty state instead of an error page.
		c.JSON(http.StatusOK, result)
		return
	}

	if filters == nil {
		if err := store.SaveResult(id, result); err != nil {
			log.Warningf("failed to cache result for dataset %s: %v", id, err)
		}
	}
	c.JSON(http.StatusOK, result)
}

// filtersFromQuery builds a FilterState from query parameters, or nil when
// no constraint is present.
func filtersFromQuery(c *gin.Context) *model.FilterState {
	f := &model.FilterState{
		ServiceCategory: c.Query("category"),
		Employee:        c.Query("employee"),
		LoyaltyStage:    c.Query("loyaltyStage"),
		SearchQuery:     c.Query("q"),
	}
	if from, ok := pipeline.ParseDate(c.Query("from")); ok {
		f.From = &from
	}
	if to, ok := pipeline.ParseDate(c.Query("to")); ok {
		f.To = &to
	}
	if f.ServiceCategory == "" && f.Employee == "" && f.LoyaltyStage == "" &&
		f.SearchQuery == "" && f.From == nil && f.To == nil {
		return nil
	}
	return f
}

// GetFilterOptions lists the filter dropdown values for a dataset
// @Summary Get filter options
// @Tags analytics
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} model.FilterOptions "Filter options"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/filters [get]
func GetFilterOptions(c *gin.Context) {
	records, err := store.GetRecords(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, pipeline.FilterOptions(records))
}

// ExportAnalytics writes the analytics report to a file
// @Summary Export analytics report
// @Description Compute the unfiltered analytics result and write it as CSV, JSON or XLSX
// @Tags analytics
// @Produce json
// @Param id path string true "Dataset ID"
// @Param format query string false "csv, json or xlsx" default(json)
// @Success 200 {object} model.ExportResult "Report written"
// @Failure 400 {object} map[string]interface{} "Unsupported format"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /datasets/{id}/export [post]
func ExportAnalytics(c *gin.Context) {
	id := c.Param("id")
	records, err := store.GetRecords(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	result, err := pipeline.Process(records, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics computation failed"})
		return
	}

	format := c.DefaultQuery("format", "json")
	exported, err := exporter.Export(id, result, format)
	if err != nil {
		status := http.StatusInternalServerError
		if format != "csv" && format != "json" && format != "xlsx" {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exported)
}

// DownloadExport serves a previously exported report file
// @Summary Download exported report
// @Tags analytics
// @Produce octet-stream
// @Param id path string true "Dataset ID"
// @Param file path string true "Report file name"
// @Success 200 {file} file "Report file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{file} [get]
func DownloadExport(c *gin.Context) {
	// filepath.Base guards against path traversal in both segments.
	id := filepath.Base(c.Param("id"))
	file := filepath.Base(c.Param("file"))
	c.File(filepath.Join(exporter.BaseDir, id, file))
}

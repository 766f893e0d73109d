package api

import (
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "salon-analytics/docs"
	"salon-analytics/internal/api/handler"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter() *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		v1.POST("/datasets", handler.UploadDataset)
		v1.GET("/datasets", handler.ListDatasets)
		v1.GET("/datasets/:id", handler.GetDataset)
		v1.DELETE("/datasets/:id", handler.DeleteDataset)
		v1.GET("/datasets/:id/analytics", handler.GetAnalytics)
		v1.GET("/datasets/:id/filters", handler.GetFilterOptions)
		v1.POST("/datasets/:id/export", handler.ExportAnalytics)
		v1.GET("/download/:id/:file", handler.DownloadExport)
		v1.GET("/sample", handler.SampleDataset)
	}

	r.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))

	return r
}

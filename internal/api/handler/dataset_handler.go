package handler

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/op/go-logging"

	"salon-analytics/internal/model"
	"salon-analytics/internal/pipeline"
	"salon-analytics/internal/store"
)

var log = logging.MustGetLogger("api")

// exporter is configured once at startup via Init.
var exporter *pipeline.Exporter

// Init wires the handler package to its report exporter.
func Init(e *pipeline.Exporter) {
	exporter = e
}

// UploadDataset ingests a CSV or JSON file and stores the parsed records
// @Summary Upload a dataset
// @Description Parse an uploaded CSV/JSON file and store the record set
// @Tags datasets
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV or JSON file"
// @Success 201 {object} model.Dataset "Dataset stored"
// @Failure 400 {object} map[string]interface{} "File could not be processed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [post]
func UploadDataset(c *gin.Context) {
	fileName, content, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := datasetFormat(fileName, c.Query("format"))
	var records []model.Record
	switch format {
	case "csv":
		records, err = pipeline.ParseCSV(string(content))
	case "json":
		records, err = pipeline.ParseJSON(content)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file format, expected .csv or .json"})
		return
	}
	if err != nil {
		log.Warningf("rejected upload %q: %v", fileName, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file could not be processed"})
		return
	}

	id := uuid.New().String()
	if err := store.SaveDataset(id, fileName, format, records); err != nil {
		log.Errorf("failed to save dataset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save dataset"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          id,
		"fileName":    fileName,
		"format":      format,
		"recordCount": len(records),
	})
}

// readUpload accepts either a multipart "file" field or a raw request body.
func readUpload(c *gin.Context) (string, []byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", nil, errors.New("could not open uploaded file")
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			return "", nil, errors.New("could not read uploaded file")
		}
		return file.Filename, content, nil
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil || len(content) == 0 {
		return "", nil, errors.New("empty upload")
	}
	name := c.Query("name")
	if name == "" {
		name = "upload"
	}
	return name, content, nil
}

func datasetFormat(fileName, override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	}
	return ""
}

// ListDatasets returns all stored datasets
// @Summary List datasets
// @Description Get metadata for every stored dataset, newest first
// @Tags datasets
// @Produce json
// @Success 200 {array} model.Dataset "Stored datasets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /datasets [get]
func ListDatasets(c *gin.Context) {
	datasets, err := store.ListDatasets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list datasets"})
		return
	}
	if datasets == nil {
		datasets = []model.Dataset{}
	}
	c.JSON(http.StatusOK, datasets)
}

// GetDataset returns one dataset's metadata
// @Summary Get dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} model.Dataset "Dataset metadata"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [get]
func GetDataset(c *gin.Context) {
	dataset, err := store.GetDataset(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	c.JSON(http.StatusOK, dataset)
}

// DeleteDataset removes a dataset and its cached result
// @Summary Delete dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [delete]
func DeleteDataset(c *gin.Context) {
	id := c.Param("id")
	if err := store.DeleteDataset(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete dataset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

// sampleCSV mirrors the column schema the dashboard expects.
const sampleCSV = `Client name,Acquisition Channel,Booking Date,transaction date,Consumed service,Service Category,Price ( MAD ),Payment Method,confirmation status,Offers applicability,Loyalty stage,loyalty points,Employee,startTime,endTime
Amina Alaoui,Instagram,2024-01-10,2024-01-15,Keratin Treatment,Hair,350,Card,Confirmed,Not Discounted,Loyal,120,Emma Smith,9:00 AM,10:30 AM
Sara Bennis,Referral,2024-01-12,2024-01-15,Classic Facial,Facial,450,Cash,Confirmed,Discounted,New,10,John Doe,10:00 AM,11:00 AM
Amina Alaoui,Instagram,2024-01-14,2024-01-16,Gel Manicure,Nails,200,Card,Confirmed,Not Discounted,Loyal,130,Sarah Johnson,2:00 PM,3:00 PM
Leila Tazi,Walk-in,2024-01-15,2024-01-16,Deep Tissue Massage,Massage,500,Card,Cancelled,Discounted,Returning,45,Emma Smith,4:00 PM,5:30 PM
`

// SampleDataset serves a small CSV in the expected schema
// @Summary Download sample dataset
// @Tags datasets
// @Produce plain
// @Success 200 {string} string "Sample CSV"
// @Router /sample [get]
func SampleDataset(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="salon-sample.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(sampleCSV))
}

package model

import "time"

// Dataset is the stored-record metadata returned by the upload endpoint.
type Dataset struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	Format      string    `json:"format"` // "csv" or "json"
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExportResult describes a report file written by the exporter.
type ExportResult struct {
	Format      string    `json:"format"` // "csv", "json", "xlsx"
	Path        string    `json:"path"`
	DownloadURL string    `json:"downloadUrl"`
	ExportedAt  time.Time `json:"exportedAt"`
}

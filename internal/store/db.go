package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"salon-analytics/internal/model"
)

var db *sql.DB

// InitDB opens the SQLite database and creates the tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	datasetTable := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		file_name TEXT,
		format TEXT,
		record_count INTEGER,
		raw TEXT,
		created_at DATETIME
	);
	`
	resultTable := `
	CREATE TABLE IF NOT EXISTS analytics_results (
		dataset_id TEXT PRIMARY KEY,
		result TEXT,
		computed_at DATETIME,
		FOREIGN KEY (dataset_id) REFERENCES datasets(id)
	);
	`

	if _, err := db.Exec(datasetTable); err != nil {
		return err
	}
	if _, err := db.Exec(resultTable); err != nil {
		return err
	}
	return nil
}

// SaveDataset stores an uploaded record set with its metadata.
func SaveDataset(id, fileName, format string, records []model.Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	_, err = db.Exec(
		`INSERT INTO datasets (id, file_name, format, record_count, raw, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, fileName, format, len(records), raw, time.Now().UTC(),
	)
	return err
}

// ListDatasets returns dataset metadata, newest first.
func ListDatasets() ([]model.Dataset, error) {
	rows, err := db.Query(`SELECT id, file_name, format, record_count, created_at FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []model.Dataset
	for rows.Next() {
		var d model.Dataset
		if err := rows.Scan(&d.ID, &d.FileName, &d.Format, &d.RecordCount, &d.CreatedAt); err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

// GetDataset fetches one dataset's metadata.
func GetDataset(id string) (*model.Dataset, error) {
	var d model.Dataset
	err := db.QueryRow(`SELECT id, file_name, format, record_count, created_at FROM datasets WHERE id = ?`, id).
		Scan(&d.ID, &d.FileName, &d.Format, &d.RecordCount, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetRecords loads the stored raw record set for a dataset.
func GetRecords(id string) ([]model.Record, error) {
	var raw string
	if err := db.QueryRow(`SELECT raw FROM datasets WHERE id = ?`, id).Scan(&raw); err != nil {
		return nil, err
	}
	var records []model.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to decode stored records: %w", err)
	}
	return records, nil
}

// DeleteDataset removes a dataset and its cached result.
func DeleteDataset(id string) error {
	if _, err := db.Exec(`DELETE FROM analytics_results WHERE dataset_id = ?`, id); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SaveResult caches the unfiltered analytics result for a dataset.
func SaveResult(datasetID string, result *model.AnalyticsResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode analytics result: %w", err)
	}
	_, err = db.Exec(
		`INSERT OR REPLACE INTO analytics_results (dataset_id, result, computed_at) VALUES (?, ?, ?)`,
		datasetID, data, time.Now().UTC(),
	)
	return err
}

// GetResult returns the cached result, or sql.ErrNoRows if none was saved.
func GetResult(datasetID string) (*model.AnalyticsResult, error) {
	var raw string
	if err := db.QueryRow(`SELECT result FROM analytics_results WHERE dataset_id = ?`, datasetID).Scan(&raw); err != nil {
		return nil, err
	}
	var result model.AnalyticsResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	return &result, nil
}

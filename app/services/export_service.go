package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/shashiranjanraj/stockwise/app/repositories"
	"github.com/shashiranjanraj/stockwise/config"
	"github.com/shashiranjanraj/stockwise/pkg/storage"
)

// ExportService writes inventory snapshots to the configured storage disk
// (local or S3) as CSV files.
type ExportService struct {
	repo *repositories.InventoryRepository
}

func NewExportService() *ExportService {
	return &ExportService{repo: repositories.NewInventoryRepository()}
}

// BuildCSV renders the full inventory details projection as CSV.
func (s *ExportService) BuildCSV() ([]byte, error) {
	rows, err := s.repo.Details()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "category", "quantity", "unit_price"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			row.Category,
			strconv.Itoa(row.Quantity),
			strconv.FormatFloat(row.UnitPrice, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveSnapshot builds a CSV snapshot and stores it under the export
// directory with a timestamped name. Returns the stored path.
func (s *ExportService) SaveSnapshot() (string, error) {
	data, err := s.BuildCSV()
	if err != nil {
		return "", fmt.Errorf("export: build csv: %w", err)
	}

	name := fmt.Sprintf("inventory-%s.csv", time.Now().Format("20060102-150405"))
	p := path.Join(config.ExportDir(), name)

	if err := storage.Put(p, data); err != nil {
		return "", fmt.Errorf("export: store %s: %w", p, err)
	}
	return p, nil
}

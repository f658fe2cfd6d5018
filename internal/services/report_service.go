package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// ReportService computes inventory statistics and materializes the CSV
// export of the collection.
type ReportService struct {
	repo repositories.ProductRepository
}

// NewReportService creates a new ReportService.
func NewReportService(repo repositories.ProductRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// Stats aggregates the whole collection. Every field is zero on an empty
// collection; store failures are surfaced to the caller unmodified.
func (s *ReportService) Stats() (*models.ProductStats, error) {
	return s.repo.Stats()
}

// ExportCSV renders the full collection as a CSV document, newest first,
// and returns the suggested filename alongside the bytes. It fails with
// models.ErrEmptyExport when there is nothing to export.
func (s *ReportService) ExportCSV() (string, []byte, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return "", nil, err
	}
	if len(products) == 0 {
		return "", nil, models.ErrEmptyExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Product Name", "SKU", "Current Quantity", "Unit Price", "Alert Threshold", "Low Stock Alert"}
	if err := w.Write(header); err != nil {
		return "", nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range products {
		p := &products[i]
		lowStock := "No"
		if p.IsLowStock() {
			lowStock = "Yes"
		}
		record := []string{
			p.Name,
			p.SKU,
			strconv.Itoa(p.Quantity),
			fmt.Sprintf("$%.2f", p.Price),
			strconv.Itoa(p.StockAlertThreshold),
			lowStock,
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	filename := fmt.Sprintf("inventory-%d.csv", time.Now().UnixMilli())
	return filename, buf.Bytes(), nil
}

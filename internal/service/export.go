package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/andresuchdata/stockopt/internal/domain"
	"github.com/andresuchdata/stockopt/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	csvContentType = "text/csv"
	csvDateLayout  = "2006-01-02"
)

// Exporter writes order plans and monthly statistics as CSV files into a
// local directory and, when object storage is configured, uploads them.
type Exporter struct {
	dataDir string
	store   storage.ObjectStorage
	prefix  string
	now     func() time.Time
}

// NewExporter creates an exporter. store may be nil to keep files local.
func NewExporter(dataDir string, store storage.ObjectStorage, prefix string) *Exporter {
	return &Exporter{
		dataDir: dataDir,
		store:   store,
		prefix:  prefix,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (e *Exporter) Export(
	ctx context.Context,
	productID int64,
	initialStock int,
	orders []*domain.PurchaseOrder,
	stats []domain.MonthlyStockStats,
) (*domain.ExportResult, error) {
	exportedAt := e.now()
	stamp := exportedAt.Format("20060102T150405Z")

	ordersCSV, err := encodeOrdersCSV(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order plan: %w", err)
	}
	statsCSV, err := encodeMonthlyStatsCSV(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to encode monthly stats: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{name: fmt.Sprintf("order_plan_%s.csv", stamp), data: ordersCSV},
		{name: fmt.Sprintf("monthly_stats_%s.csv", stamp), data: statsCSV},
	}

	dir := filepath.Join(e.dataDir, productDir(productID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	result := &domain.ExportResult{
		ProductID:    productID,
		InitialStock: initialStock,
		ExportedAt:   exportedAt,
	}

	for _, f := range files {
		localPath := filepath.Join(dir, f.name)
		if err := os.WriteFile(localPath, f.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", localPath, err)
		}
		result.Files = append(result.Files, localPath)

		if e.store == nil {
			continue
		}

		key := path.Join(e.prefix, productDir(productID), f.name)
		if err := e.store.UploadObject(ctx, key, f.data, csvContentType); err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		result.Objects = append(result.Objects, key)
	}

	log.Info().
		Int64("product_id", productID).
		Int("initial_stock", initialStock).
		Strs("files", result.Files).
		Strs("objects", result.Objects).
		Msg("order plan exported")

	return result, nil
}

// List returns the uploaded exports of a product. Without object storage
// nothing is listed.
func (e *Exporter) List(ctx context.Context, productID int64) ([]domain.ExportedObject, error) {
	exports := []domain.ExportedObject{}
	if e.store == nil {
		return exports, nil
	}

	objects, err := e.store.ListObjects(ctx, path.Join(e.prefix, productDir(productID))+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}

	for _, obj := range objects {
		exports = append(exports, domain.ExportedObject{Key: obj.Key, Size: obj.Size})
	}
	sort.Slice(exports, func(i, j int) bool { return exports[i].Key < exports[j].Key })

	return exports, nil
}

func productDir(productID int64) string {
	return fmt.Sprintf("product_%d", productID)
}

func encodeOrdersCSV(orders []*domain.PurchaseOrder) ([]byte, error) {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderDate.Format(csvDateLayout),
			o.DeliveryDate.Format(csvDateLayout),
			strconv.Itoa(o.QuantityOrdered),
		})
	}
	return writeCSV([]string{"Order Date", "Delivery Date", "Quantity Ordered"}, rows)
}

func encodeMonthlyStatsCSV(stats []domain.MonthlyStockStats) ([]byte, error) {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Month,
			strconv.FormatFloat(s.AverageStock, 'f', 4, 64),
			strconv.Itoa(s.MinStock),
			strconv.Itoa(s.MaxStock),
		})
	}
	return writeCSV([]string{"Month", "Average Stock", "Min Stock", "Max Stock"}, rows)
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

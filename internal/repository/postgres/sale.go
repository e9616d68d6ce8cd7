package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/internal/repository"
)

type SaleRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSaleRepository(writerDB, readerDB *gorm.DB) *SaleRepository {
	return &SaleRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SaleRepository) CreateWithStockDecrement(ctx context.Context, sale *domain.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for _, line := range sale.Items {
			// The quantity guard makes the decrement conditional: zero
			// affected rows means some other checkout got there first.
			result := tx.Model(&domain.Product{}).
				Where("id = ? AND tenant_id = ? AND quantity >= ?",
					line.ProductID, sale.TenantID, line.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return repository.ErrStockConflict
			}
		}

		return nil
	})
}

func (r *SaleRepository) List(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	var sales []domain.Sale

	db := r.readerDB.WithContext(ctx)
	if filter.TenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}
	db = db.Where("tenant_id = ?", filter.TenantID)

	if filter.PaymentMethod != "" {
		db = db.Where("payment_method = ?", filter.PaymentMethod)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("timestamp >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("timestamp <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("timestamp DESC")

	if err := db.Find(&sales).Error; err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *SaleRepository) GetStats(ctx context.Context, filter domain.SaleFilter) (*domain.SaleStats, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}

	db := r.readerDB.WithContext(ctx).Model(&domain.Sale{}).
		Where("tenant_id = ?", filter.TenantID)
	if !filter.StartTime.IsZero() {
		db = db.Where("timestamp >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("timestamp <= ?", filter.EndTime)
	}

	stats := &domain.SaleStats{
		MethodCounts:  make(map[string]int64),
		MethodRevenue: make(map[string]float64),
		RevenueByDay:  make(map[string]float64),
	}

	type methodRow struct {
		PaymentMethod string
		Count         int64
		Revenue       float64
	}
	var methodRows []methodRow
	err := db.Session(&gorm.Session{}).
		Select("payment_method, COUNT(*) as count, SUM(total) as revenue").
		Group("payment_method").
		Scan(&methodRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by method: %w", err)
	}

	for _, row := range methodRows {
		stats.MethodCounts[row.PaymentMethod] = row.Count
		stats.MethodRevenue[row.PaymentMethod] = row.Revenue
		stats.TotalSales += row.Count
		stats.TotalRevenue += row.Revenue
	}

	type dayRow struct {
		Day     string
		Revenue float64
	}
	var dayRows []dayRow
	err = db.Session(&gorm.Session{}).
		Select("to_char(timestamp, 'YYYY-MM-DD') as day, SUM(total) as revenue").
		Group("day").
		Scan(&dayRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales by day: %w", err)
	}

	for _, row := range dayRows {
		stats.RevenueByDay[row.Day] = row.Revenue
	}

	return stats, nil
}

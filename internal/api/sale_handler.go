package api

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/negociofacil/pos-api/internal/api/dto"
	"github.com/negociofacil/pos-api/internal/domain"
	"github.com/negociofacil/pos-api/pkg/utils"
)

//go:generate mockery --name SaleService --output ../mocks
type SaleService interface {
	List(ctx context.Context, filter *domain.SaleFilter) ([]dto.SaleResponse, error)
	GetStats(ctx context.Context, filter *domain.SaleFilter) (*dto.SaleStatsResponse, error)
}

type SaleHandler struct {
	*BaseHandler
	service SaleService
}

func NewSaleHandler(service SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// ListSales returns the tenant's ledger, newest first. Optional filters:
// payment_method, start_time, end_time (RFC3339 or YYYY-MM-DD), page,
// page_size.
func (h *SaleHandler) ListSales(c *gin.Context) {
	filter, ok := h.filterFromQuery(c)
	if !ok {
		return
	}

	sales, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}

// ExportSales streams the filtered ledger as a JSON or CSV download.
func (h *SaleHandler) ExportSales(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid format. Must be 'json' or 'csv'"})
		return
	}

	filter, ok := h.filterFromQuery(c)
	if !ok {
		return
	}
	// Exports are not paginated; the whole filtered range goes out.
	filter.Limit = 0
	filter.Offset = 0

	sales, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	switch format {
	case "json":
		c.Header("Content-Disposition", "attachment; filename=sales.json")
		c.JSON(http.StatusOK, sales)
	case "csv":
		c.Header("Content-Disposition", "attachment; filename=sales.csv")
		c.Header("Content-Type", "text/csv")

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		writer.Write([]string{"id", "timestamp", "payment_method", "exchange_rate", "total", "items"})
		for _, sale := range sales {
			items := ""
			for i, item := range sale.Items {
				if i > 0 {
					items += "; "
				}
				items += fmt.Sprintf("%dx %s", item.Quantity, item.Name)
			}
			writer.Write([]string{
				sale.ID,
				sale.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
				sale.PaymentMethod,
				strconv.FormatFloat(sale.ExchangeRate, 'f', -1, 64),
				strconv.FormatFloat(sale.Total, 'f', 2, 64),
				items,
			})
		}
	}
}

// GetSaleStats returns display-only aggregates for the filtered range.
func (h *SaleHandler) GetSaleStats(c *gin.Context) {
	filter, ok := h.filterFromQuery(c)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(h.RequestCtx(c), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *SaleHandler) filterFromQuery(c *gin.Context) (*domain.SaleFilter, bool) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return nil, false
	}

	filter := &domain.SaleFilter{
		TenantID:      tenantID,
		PaymentMethod: c.Query("payment_method"),
	}

	if startStr := c.Query("start_time"); startStr != "" {
		start, err := utils.ParseUserTime(startStr, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return nil, false
		}
		filter.StartTime = start
	}
	if endStr := c.Query("end_time"); endStr != "" {
		end, err := utils.ParseUserTime(endStr, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return nil, false
		}
		filter.EndTime = end
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	return filter, true
}

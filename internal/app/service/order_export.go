package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// OrderExporter renders the admin order listing as an XLSX workbook for
// offline bookkeeping.
type OrderExporter struct {
	orderRepo repository.OrderRepository
}

func NewOrderExporter(orderRepo repository.OrderRepository) *OrderExporter {
	return &OrderExporter{orderRepo: orderRepo}
}

var exportHeaders = []string{
	"Order Number", "Date", "Customer", "Phone", "Email",
	"Items", "Subtotal", "Delivery Fee", "Total", "Status",
	"Payment", "City", "Pincode", "Tracking Number",
}

// Export writes every order matching the filter to a single-sheet workbook.
func (e *OrderExporter) Export(filter repository.OrderFilter) (*bytes.Buffer, error) {
	// No pagination for exports.
	filter.Limit = 0
	filter.Offset = 0

	orders, total, err := e.orderRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, order := range orders {
		items := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}

		values := []interface{}{
			order.OrderNumber,
			order.CreatedAt.Format("2006-01-02 15:04"),
			order.CustomerName,
			order.CustomerPhone,
			order.CustomerEmail,
			strings.Join(items, "; "),
			order.Subtotal,
			order.DeliveryFee,
			order.TotalAmount,
			string(order.Status),
			order.PaymentMethod,
			order.Address.City,
			order.Address.Pincode,
			order.TrackingNumber,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to render order export", err, map[string]interface{}{
			"orders": total,
		})
		return nil, err
	}

	logger.Info("Order export generated", map[string]interface{}{
		"orders": len(orders),
		"status": filter.Status,
	})
	return buf, nil
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals agregados de ventas cobradas en un rango.
type SalesTotals struct {
	Revenue     decimal.Decimal
	TicketCount int
}

// SalesRepository consultas de solo lectura para el resumen del dashboard.
type SalesRepository interface {
	GetTotals(ctx context.Context, companyID string, from, to time.Time) (SalesTotals, error)
}

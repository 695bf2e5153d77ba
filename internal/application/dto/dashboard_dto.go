package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Día actual (00:00 – 23:59)
	TodaySales   decimal.Decimal `json:"today_sales"`
	TodayTickets int             `json:"today_tickets"`

	// Mes en curso (día 1 – hoy)
	MonthlySales   decimal.Decimal `json:"monthly_sales"`
	MonthlyTickets int             `json:"monthly_tickets"`
	AverageTicket  decimal.Decimal `json:"average_ticket"` // ticket medio del mes

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

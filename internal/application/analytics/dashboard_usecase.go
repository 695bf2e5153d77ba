// Package analytics contiene el resumen de ventas que muestra el dashboard
// del panel al iniciar sesión.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tpv-panel-api/internal/application/dto"
	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
type DashboardUseCase struct {
	salesRepo repository.SalesRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(salesRepo repository.SalesRepository) *DashboardUseCase {
	return &DashboardUseCase{salesRepo: salesRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
// Las consultas del día y del mes se lanzan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals repository.SalesTotals
		err    error
	}
	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)

	go func() {
		t, err := uc.salesRepo.GetTotals(ctx, companyID, todayStart, todayEnd)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.salesRepo.GetTotals(ctx, companyID, monthStart, todayEnd)
		monthCh <- totalsResult{t, err}
	}()

	today := <-todayCh
	month := <-monthCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}

	avg := decimal.Zero
	if month.totals.TicketCount > 0 {
		avg = month.totals.Revenue.Div(decimal.NewFromInt(int64(month.totals.TicketCount))).Round(2)
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:     today.totals.Revenue.Round(2),
		TodayTickets:   today.totals.TicketCount,
		MonthlySales:   month.totals.Revenue.Round(2),
		MonthlyTickets: month.totals.TicketCount,
		AverageTicket:  avg,
		DateLabel:      monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}

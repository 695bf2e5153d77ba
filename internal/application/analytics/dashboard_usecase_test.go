package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
)

type fakeSalesRepo struct {
	mu    sync.Mutex
	calls [][2]time.Time
	today repository.SalesTotals
	month repository.SalesTotals
	err   error
}

func (f *fakeSalesRepo) GetTotals(_ context.Context, _ string, from, to time.Time) (repository.SalesTotals, error) {
	f.mu.Lock()
	f.calls = append(f.calls, [2]time.Time{from, to})
	f.mu.Unlock()
	if f.err != nil {
		return repository.SalesTotals{}, f.err
	}
	if from.Day() == 1 && from.Hour() == 0 && to.Sub(from) > 24*time.Hour {
		return f.month, nil
	}
	return f.today, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.February, 14, 15, 30, 0, 0, time.UTC)
}

func TestGetSummary(t *testing.T) {
	repo := &fakeSalesRepo{
		today: repository.SalesTotals{Revenue: decimal.RequireFromString("150000.456"), TicketCount: 3},
		month: repository.SalesTotals{Revenue: decimal.RequireFromString("1000000"), TicketCount: 40},
	}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("150000.46").Equal(out.TodaySales))
	assert.Equal(t, 3, out.TodayTickets)
	assert.True(t, decimal.RequireFromString("1000000").Equal(out.MonthlySales))
	assert.Equal(t, 40, out.MonthlyTickets)
	assert.True(t, decimal.RequireFromString("25000").Equal(out.AverageTicket))
	assert.Equal(t, "Febrero 2026", out.DateLabel)
	assert.Len(t, repo.calls, 2)
}

func TestGetSummary_SinVentas(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{})
	uc.now = fixedNow

	out, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)
	assert.True(t, out.AverageTicket.IsZero())
}

func TestGetSummary_ErrorDeRepositorio(t *testing.T) {
	uc := NewDashboardUseCase(&fakeSalesRepo{err: errors.New("db caída")})
	uc.now = fixedNow

	_, err := uc.GetSummary(context.Background(), "company-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db caída")
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas de solo lectura sobre los tickets cobrados.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador de ventas.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

// GetTotals suma los tickets cobrados (no anulados) de la empresa en [from, to].
func (r *SalesRepo) GetTotals(ctx context.Context, companyID string, from, to time.Time) (repository.SalesTotals, error) {
	const query = `
	SELECT COALESCE(SUM(s.total), 0), COUNT(*)
	  FROM sales s
	 WHERE s.company_id = $1
	   AND s.created_at BETWEEN $2 AND $3
	   AND s.status = 'PAID'`

	var out repository.SalesTotals
	if err := r.pool.QueryRow(ctx, query, companyID, from, to).Scan(&out.Revenue, &out.TicketCount); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("sales.GetTotals: %w", err)
	}
	return out, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
	ActiveModules(ctx context.Context, companyID string) ([]string, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
)

// ProfileRepository es el almacén de documentos de perfil por usuario.
// GetByUserID devuelve (nil, nil) si el usuario aún no guardó su perfil.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error
}

// ProfileCache guarda perfiles ya leídos. Un fallo de caché nunca es fatal.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*entity.Profile, bool, error)
	Set(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, userID string) error
}

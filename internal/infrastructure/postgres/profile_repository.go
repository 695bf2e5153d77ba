package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo guarda el documento de perfil de cada usuario en user_profiles.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetByUserID obtiene el perfil del usuario; (nil, nil) si no existe.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT user_id, COALESCE(nombre, ''), COALESCE(nombre_cajero, ''), COALESCE(avatar, ''), updated_at
		FROM user_profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Nombre, &p.NombreCajero, &p.Avatar, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Upsert crea o reemplaza el perfil del usuario.
func (r *ProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO user_profiles (user_id, nombre, nombre_cajero, avatar, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5)
		ON CONFLICT (user_id) DO UPDATE
		   SET nombre        = EXCLUDED.nombre,
		       nombre_cajero = EXCLUDED.nombre_cajero,
		       avatar        = EXCLUDED.avatar,
		       updated_at    = EXCLUDED.updated_at`
	if _, err := r.pool.Exec(ctx, query, p.UserID, p.Nombre, p.NombreCajero, p.Avatar, p.UpdatedAt); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

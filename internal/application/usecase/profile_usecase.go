package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tpv-panel-api/internal/application/dto"
	"github.com/jhoicas/tpv-panel-api/internal/domain"
	"github.com/jhoicas/tpv-panel-api/internal/domain/entity"
	"github.com/jhoicas/tpv-panel-api/internal/domain/identity"
	"github.com/jhoicas/tpv-panel-api/internal/domain/navigation"
	"github.com/jhoicas/tpv-panel-api/internal/domain/repository"
)

// ProfileUseCase arma los datos de la cabecera (nombre visible, avatar, menú de usuario)
// y permite editar el documento de perfil.
type ProfileUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	cache       repository.ProfileCache // opcional
	log         zerolog.Logger
}

// NewProfileUseCase construye el caso de uso. cache puede ser nil.
func NewProfileUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	cache repository.ProfileCache,
	log zerolog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo, profileRepo: profileRepo, cache: cache, log: log}
}

// GetHeader devuelve los datos de la cabecera del usuario autenticado.
// Un usuario sin documento de perfil no es un error: se usan el resto de fuentes.
func (uc *ProfileUseCase) GetHeader(ctx context.Context, userID string) (*dto.HeaderResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: cargar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	menu := navigation.UserMenu(user.Role)
	items := make([]dto.UserMenuItemDTO, 0, len(menu))
	for _, it := range menu {
		items = append(items, dto.UserMenuItemDTO{Key: it.Key, Label: it.Label, Path: it.Path})
	}

	out := &dto.HeaderResponse{
		DisplayName: identity.ResolveDisplayName(identityOf(user, profile)),
		Email:       user.Email,
		Role:        user.Role,
		RoleLabel:   entity.RoleLabel(user.Role),
		Menu:        items,
	}
	if profile != nil {
		out.Avatar = profile.Avatar
	}
	return out, nil
}

// UpdateProfile aplica los campos presentes sobre el documento actual y lo guarda.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: cargar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	current, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: cargar perfil: %w", err)
	}
	if current == nil {
		current = &entity.Profile{UserID: userID}
	}
	if in.Nombre != nil {
		current.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.NombreCajero != nil {
		current.NombreCajero = strings.TrimSpace(*in.NombreCajero)
	}
	if in.Avatar != nil {
		current.Avatar = strings.TrimSpace(*in.Avatar)
	}
	current.UpdatedAt = time.Now()

	if err := uc.profileRepo.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("profile: guardar perfil: %w", err)
	}
	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, userID); err != nil {
			uc.log.Warn().Err(err).Str("user_id", userID).Msg("invalidar caché de perfil")
		}
	}

	return &dto.ProfileResponse{
		Nombre:       current.Nombre,
		NombreCajero: current.NombreCajero,
		Avatar:       current.Avatar,
		DisplayName:  identity.ResolveDisplayName(identityOf(user, current)),
	}, nil
}

// loadProfile lee de caché y, si no está, del almacén de perfiles.
func (uc *ProfileUseCase) loadProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if uc.cache != nil {
		p, ok, err := uc.cache.Get(ctx, userID)
		if err != nil {
			uc.log.Warn().Err(err).Str("user_id", userID).Msg("leer caché de perfil")
		} else if ok {
			return p, nil
		}
	}
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: cargar perfil: %w", err)
	}
	if p != nil && uc.cache != nil {
		if err := uc.cache.Set(ctx, p); err != nil {
			uc.log.Warn().Err(err).Str("user_id", userID).Msg("guardar caché de perfil")
		}
	}
	return p, nil
}

func identityOf(user *entity.User, profile *entity.Profile) identity.UserIdentity {
	id := identity.UserIdentity{
		AuthDisplayName: user.Name,
		Email:           user.Email,
	}
	if profile != nil {
		id.ProfileName = profile.Nombre
		id.ConfiguredCashierName = profile.NombreCajero
	}
	return id
}

package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

// TokenTTLs vidas de los dos tipos de token (configuración de proceso).
type TokenTTLs struct {
	Access  time.Duration
	Refresh time.Duration
}

// UseCase casos de uso de autenticación: login y refresh. No hay estado de
// sesión en servidor; logout es un no-op del cliente.
type UseCase struct {
	users repository.UserRepository
	codec *token.Codec
	ttls  TokenTTLs
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, codec *token.Codec, ttls TokenTTLs) *UseCase {
	return &UseCase{users: users, codec: codec, ttls: ttls}
}

// Login verifica credenciales y emite un par access/refresh. Toda falla
// (email desconocido, password incorrecto, cuenta inutilizable) devuelve el
// mismo ErrUnauthorized para no revelar cuál fue.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Usable() {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issuePair(user)
}

// Refresh intercambia un refresh token válido por un par nuevo, recargando el
// usuario para reflejar cambios de roles o de estado de cuenta.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := uc.codec.Verify(refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !claims.IsRefresh() {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.FindByID(ctx, claims.Sub)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Usable() {
		return nil, domain.ErrUnauthorized
	}
	return uc.issuePair(user)
}

func (uc *UseCase) issuePair(user *entity.User) (*dto.TokenPairResponse, error) {
	id := token.Identity{
		ID:             user.ID,
		UUID:           user.UUID,
		Email:          user.Email,
		Roles:          user.Roles,
		RestaurantUUID: user.RestaurantUUID,
	}
	if user.RestaurantID != nil {
		id.RestaurantID = *user.RestaurantID
	}

	access, err := uc.codec.Issue(id, token.TypeAccess, uc.ttls.Access)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.codec.Issue(id, token.TypeRefresh, uc.ttls.Refresh)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(uc.ttls.Access / time.Second),
	}, nil
}

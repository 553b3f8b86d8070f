package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `
	u.id, u.uuid, u.email, u.password_hash, u.name, u.roles, u.is_active,
	u.restaurant_id, COALESCE(r.uuid, ''),
	COALESCE(u.accessible_restaurant_ids, '{}'::bigint[]),
	u.billing_account_id, u.created_at, u.updated_at, u.deleted_at`

// FindByID obtiene un usuario por ID; nil sin error si no existe.
func (repo *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT` + userColumns + `
		FROM users u
		LEFT JOIN restaurants r ON r.id = u.restaurant_id
		WHERE u.id = $1`
	return repo.scanOne(ctx, query, id)
}

// FindByEmail obtiene un usuario por email; nil sin error si no existe.
func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT` + userColumns + `
		FROM users u
		LEFT JOIN restaurants r ON r.id = u.restaurant_id
		WHERE u.email = $1`
	return repo.scanOne(ctx, query, email)
}

func (repo *UserRepo) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := repo.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.UUID, &u.Email, &u.PasswordHash, &u.Name, &u.Roles, &u.IsActive,
		&u.RestaurantID, &u.RestaurantUUID, &u.AccessibleRestaurantIDs,
		&u.BillingAccountID, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

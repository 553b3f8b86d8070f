package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

var _ repository.QRCodeRepository = (*QRCodeRepo)(nil)

const qrCodeColumns = `id, uuid, restaurant_id, label, target_url, png, created_at`

// QRCodeRepo implementación del puerto QRCodeRepository sobre PostgreSQL.
type QRCodeRepo struct {
	q Querier
}

// NewQRCodeRepository construye el adaptador de persistencia para códigos QR.
func NewQRCodeRepository(q Querier) *QRCodeRepo {
	return &QRCodeRepo{q: q}
}

func scanQRCode(row pgx.Row) (*entity.QRCode, error) {
	var q entity.QRCode
	err := row.Scan(&q.ID, &q.UUID, &q.RestaurantID, &q.Label, &q.TargetURL, &q.PNG, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

// Create persiste un código QR generado y fija su ID.
func (r *QRCodeRepo) Create(ctx context.Context, sc scope.Scope, q *entity.QRCode) error {
	if sc.Restricted() && sc.RestaurantID() != q.RestaurantID {
		return domain.ErrAccessDenied
	}
	query := `
		INSERT INTO qr_codes (uuid, restaurant_id, label, target_url, png, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		q.UUID, q.RestaurantID, q.Label, q.TargetURL, q.PNG, q.CreatedAt,
	).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("insert qr code: %w", err)
	}
	return nil
}

// GetByID devuelve nil sin error si no existe o el scope lo oculta.
func (r *QRCodeRepo) GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.QRCode, error) {
	query := `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE id = $1`
	args := []any{id}
	query, args = withScope(query, args, sc)
	q, err := scanQRCode(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get qr code by id: %w", err)
	}
	return q, nil
}

// List lista los códigos QR del scope.
func (r *QRCodeRepo) List(ctx context.Context, sc scope.Scope) ([]*entity.QRCode, error) {
	query := `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE true`
	args := []any{}
	query, args = withScope(query, args, sc)
	query += " ORDER BY id"
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list qr codes: %w", err)
	}
	defer rows.Close()
	var out []*entity.QRCode
	for rows.Next() {
		q, err := scanQRCode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Delete elimina el código QR. Los QR no usan soft delete: el PNG se puede
// regenerar en cualquier momento.
func (r *QRCodeRepo) Delete(ctx context.Context, sc scope.Scope, id int64) error {
	query := `DELETE FROM qr_codes WHERE id = $1`
	args := []any{id}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete qr code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

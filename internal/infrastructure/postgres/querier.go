package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// Querier subset común de *pgxpool.Pool y pgx.Tx que usan los repos, para que
// el mismo adaptador sirva con pool o dentro de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// withScope añade el predicado de tenant (restaurant_id = $n) a una consulta
// cuando el scope está restringido. Todos los repos de entidades de menú
// construyen sus consultas a través de esta función; no hay camino de acceso
// que lo saltee.
func withScope(query string, args []any, sc scope.Scope) (string, []any) {
	if sc.Restricted() {
		query += fmt.Sprintf(" AND restaurant_id = $%d", len(args)+1)
		args = append(args, sc.RestaurantID())
	}
	return query, args
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

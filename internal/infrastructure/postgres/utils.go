package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
)

// Querier es lo común a *pgxpool.Pool y pgx.Tx; los repositorios funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SQLSTATE usados por los repositorios.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeRaiseException      = "P0001"
)

func pgCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}
	return "", nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	code, pgErr := pgCode(err)
	if pgErr != nil {
		return code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	code, _ := pgCode(err)
	return code == codeForeignKeyViolation
}

// translate convierte los errores conocidos de PostgreSQL en errores de dominio y envuelve el resto.
func translate(op string, err error) error {
	code, pgErr := pgCode(err)
	switch {
	case code == codeRaiseException:
		return &domain.RuleViolation{Message: pgErr.Message}
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateKey)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrForeignKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}

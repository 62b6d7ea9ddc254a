package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

const spRegistrarTrabajador = `CALL sp_registrar_trabajador($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NULL::INTEGER)`

// WorkerRepo implementación del puerto WorkerRepository sobre personas + trabajador.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador. Para el registro se usa atado a una tx (ver TxRunner).
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Register llama a sp_registrar_trabajador. Las reglas del procedimiento (email o documento
// repetido, almacén o rol inexistente) llegan como *domain.RuleViolation.
func (r *WorkerRepo) Register(ctx context.Context, w *entity.Worker) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, spRegistrarTrabajador,
		w.Name, w.PaternalSurname, w.MaternalSurname, w.ProfileImage,
		w.DocumentType, w.DocumentNumber,
		w.Country, w.Department, w.Province, w.District,
		w.Phone, w.Address, w.Email, w.PasswordHash,
		w.WarehouseID, w.RoleID,
	).Scan(&id)
	if err != nil {
		return 0, translate("sp_registrar_trabajador", err)
	}
	return id, nil
}

// FindByEmail obtiene el trabajador por email, o (nil, nil) si no existe.
func (r *WorkerRepo) FindByEmail(ctx context.Context, email string) (*entity.Worker, error) {
	query := `
		SELECT t.id_persona, t.email, t.password, t.id_almacen, t.id_rol,
		       p.nombre, p.apellido_paterno, p.apellido_materno
		FROM trabajador t
		JOIN personas p ON p.id = t.id_persona
		WHERE t.email = $1
		LIMIT 1`
	var w entity.Worker
	err := r.q.QueryRow(ctx, query, email).Scan(
		&w.PersonID, &w.Email, &w.PasswordHash, &w.WarehouseID, &w.RoleID,
		&w.Name, &w.PaternalSurname, &w.MaternalSurname,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador by email: %w", err)
	}
	return &w, nil
}

// Count devuelve cuántos trabajadores hay registrados.
func (r *WorkerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM trabajador`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count trabajador: %w", err)
	}
	return n, nil
}

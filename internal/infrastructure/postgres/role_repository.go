package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/chatbot-admin-api/internal/domain"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol nuevo y deja el id asignado en la entidad.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `INSERT INTO roles (role_name) VALUES ($1) RETURNING role_id`
	if err := r.q.QueryRow(ctx, query, role.Name).Scan(&role.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por id. (nil, nil) si no existe.
func (r *RoleRepo) GetByID(ctx context.Context, id int) (*entity.Role, error) {
	query := `SELECT role_id, role_name FROM roles WHERE role_id = $1`
	var role entity.Role
	if err := r.q.QueryRow(ctx, query, id).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}
	return &role, nil
}

// GetByName obtiene un rol por nombre exacto. (nil, nil) si no existe.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT role_id, role_name FROM roles WHERE role_name = $1`
	var role entity.Role
	if err := r.q.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// List lista todos los roles ordenados por id.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT role_id, role_name FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update actualiza el nombre de un rol.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	query := `UPDATE roles SET role_name = $2 WHERE role_id = $1`
	if _, err := r.q.Exec(ctx, query, role.ID, role.Name); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol por id.
func (r *RoleRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM roles WHERE role_id = $1`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

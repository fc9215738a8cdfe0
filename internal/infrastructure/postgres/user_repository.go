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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo y deja el id asignado en la entidad.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (username, password, role_id) VALUES ($1, $2, $3) RETURNING user_id`
	if err := r.q.QueryRow(ctx, query, user.Username, user.PasswordHash, user.RoleID).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id con su rol resuelto. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*entity.User, error) {
	query := `
		SELECT u.user_id, u.username, u.password, u.role_id, r.role_name
		FROM users u JOIN roles r ON r.role_id = u.role_id
		WHERE u.user_id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por username exacto con su rol resuelto. (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT u.user_id, u.username, u.password, u.role_id, r.role_name
		FROM users u JOIN roles r ON r.role_id = u.role_id
		WHERE u.username = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// List lista todos los usuarios con su rol resuelto, ordenados por id.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT u.user_id, u.username, u.password, u.role_id, r.role_name
		FROM users u JOIN roles r ON r.role_id = u.role_id
		ORDER BY u.user_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.RoleName); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza username, password y rol de un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET username = $2, password = $3, role_id = $4 WHERE user_id = $1`
	if _, err := r.q.Exec(ctx, query, user.ID, user.Username, user.PasswordHash, user.RoleID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por id.
func (r *UserRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

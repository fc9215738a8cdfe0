package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/chatbot-admin-api/internal/application/auth"
	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// UserUseCase CRUD uniforme para usuarios. Los passwords se hashean con el
// mismo digest que usa el verificador de credenciales antes de persistir.
type UserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx, log: log}
}

// List devuelve todos los usuarios con su rol resuelto, ordenados por id.
func (uc *UserUseCase) List(ctx context.Context) []dto.UserResponse {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("resource", "users").Str("op", "list").Msg("fallo de persistencia, se devuelve lista vacía")
		return []dto.UserResponse{}
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserResponse{UserID: u.ID, Username: u.Username, RoleName: u.RoleName})
	}
	return items
}

// Create crea un usuario: valida que el rol exista y que el username sea único
// antes de insertar. Ante la carrera de dos altas con el mismo username, el
// constraint único de la tabla garantiza que solo una gana.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) dto.MutationResult {
	if in.Username == "" || in.Password == "" || in.RoleName == "" {
		return dto.Fail("username, password y role_name son requeridos")
	}
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		role, err := r.Roles.GetByName(ctx, in.RoleName)
		if err != nil {
			return err
		}
		if role == nil {
			res = dto.Fail("rol no encontrado")
			return errAbort
		}
		existing, err := r.Users.GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			res = dto.Fail("el username ya existe")
			return errAbort
		}
		user := &entity.User{
			Username:     in.Username,
			PasswordHash: auth.HashPassword(in.Password),
			RoleID:       role.ID,
		}
		if err := r.Users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				res = dto.Fail("el username ya existe")
				return errAbort
			}
			return err
		}
		res = dto.OK(fmt.Sprintf("Usuario %q creado", user.Username))
		res.ID = user.ID
		return nil
	})
	if err != nil {
		return failResult(uc.log, "users", "create", err, res)
	}
	return res
}

// Update aplica solo los campos provistos. El username se valida único
// excluyendo al propio registro; el password se re-hashea.
func (uc *UserUseCase) Update(ctx context.Context, id int, in dto.UpdateUserRequest) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		user, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			res = dto.Fail("usuario no encontrado")
			return errAbort
		}
		if in.Username != nil {
			if *in.Username == "" {
				res = dto.Fail("username no puede ser vacío")
				return errAbort
			}
			existing, err := r.Users.GetByUsername(ctx, *in.Username)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != id {
				res = dto.Fail("el username ya existe")
				return errAbort
			}
			user.Username = *in.Username
		}
		if in.Password != nil {
			if *in.Password == "" {
				res = dto.Fail("password no puede ser vacío")
				return errAbort
			}
			user.PasswordHash = auth.HashPassword(*in.Password)
		}
		if in.RoleName != nil {
			role, err := r.Roles.GetByName(ctx, *in.RoleName)
			if err != nil {
				return err
			}
			if role == nil {
				res = dto.Fail("rol no encontrado")
				return errAbort
			}
			user.RoleID = role.ID
		}
		if err := r.Users.Update(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				res = dto.Fail("el username ya existe")
				return errAbort
			}
			return err
		}
		res = dto.OK(fmt.Sprintf("Usuario %q actualizado", user.Username))
		return nil
	})
	if err != nil {
		return failResult(uc.log, "users", "update", err, res)
	}
	return res
}

// Delete elimina un usuario por id.
func (uc *UserUseCase) Delete(ctx context.Context, id int) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		user, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			res = dto.Fail("usuario no encontrado")
			return errAbort
		}
		if err := r.Users.Delete(ctx, id); err != nil {
			return err
		}
		res = dto.OK(fmt.Sprintf("Usuario %q eliminado", user.Username))
		return nil
	})
	if err != nil {
		return failResult(uc.log, "users", "delete", err, res)
	}
	return res
}

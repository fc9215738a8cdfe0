package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// RoleUseCase CRUD uniforme para roles (solo System Admin llega hasta aquí).
type RoleUseCase struct {
	repo repository.RoleRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, tx TxRunner, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{repo: repo, tx: tx, log: log}
}

// List devuelve todos los roles ordenados por id.
func (uc *RoleUseCase) List(ctx context.Context) []dto.RoleResponse {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("resource", "roles").Str("op", "list").Msg("fallo de persistencia, se devuelve lista vacía")
		return []dto.RoleResponse{}
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.RoleResponse{RoleID: r.ID, RoleName: r.Name})
	}
	return items
}

// Create crea un rol con nombre único. La unicidad se verifica antes de
// escribir y además la respalda el constraint de la tabla.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) dto.MutationResult {
	if in.RoleName == "" {
		return dto.Fail("role_name es requerido")
	}
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		existing, err := r.Roles.GetByName(ctx, in.RoleName)
		if err != nil {
			return err
		}
		if existing != nil {
			res = dto.Fail("ya existe un rol con ese nombre")
			return errAbort
		}
		role := &entity.Role{Name: in.RoleName}
		if err := r.Roles.Create(ctx, role); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				res = dto.Fail("ya existe un rol con ese nombre")
				return errAbort
			}
			return err
		}
		res = dto.OK(fmt.Sprintf("Rol %q creado", role.Name))
		res.ID = role.ID
		return nil
	})
	if err != nil {
		return failResult(uc.log, "roles", "create", err, res)
	}
	return res
}

// Update renombra un rol; la unicidad excluye al propio registro.
func (uc *RoleUseCase) Update(ctx context.Context, id int, in dto.UpdateRoleRequest) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		role, err := r.Roles.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			res = dto.Fail("rol no encontrado")
			return errAbort
		}
		if in.RoleName != nil {
			if *in.RoleName == "" {
				res = dto.Fail("role_name no puede ser vacío")
				return errAbort
			}
			existing, err := r.Roles.GetByName(ctx, *in.RoleName)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != id {
				res = dto.Fail("ya existe un rol con ese nombre")
				return errAbort
			}
			role.Name = *in.RoleName
		}
		if err := r.Roles.Update(ctx, role); err != nil {
			return err
		}
		res = dto.OK("Rol actualizado")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "roles", "update", err, res)
	}
	return res
}

// Delete elimina un rol por id. No verifica usuarios que lo referencien:
// borrar un rol en uso deja la validación al constraint de la base.
func (uc *RoleUseCase) Delete(ctx context.Context, id int) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		role, err := r.Roles.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			res = dto.Fail("rol no encontrado")
			return errAbort
		}
		if err := r.Roles.Delete(ctx, id); err != nil {
			return err
		}
		res = dto.OK(fmt.Sprintf("Rol %q eliminado", role.Name))
		return nil
	})
	if err != nil {
		return failResult(uc.log, "roles", "delete", err, res)
	}
	return res
}

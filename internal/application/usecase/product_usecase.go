package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// ProductUseCase CRUD uniforme para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, log: log}
}

// List devuelve todos los productos ordenados por id. Ante un fallo de
// persistencia registra la causa y devuelve lista vacía, nunca error.
func (uc *ProductUseCase) List(ctx context.Context) []dto.ProductResponse {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("resource", "products").Str("op", "list").Msg("fallo de persistencia, se devuelve lista vacía")
		return []dto.ProductResponse{}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}

// Create crea un producto. MOQ ausente o cero se normaliza a 1 y la unidad
// por defecto es "pcs", como en el alta vía chatbot.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) dto.MutationResult {
	if in.Name == "" {
		return dto.Fail("name es requerido")
	}
	if in.Stock < 0 {
		return dto.Fail("el stock no puede ser negativo")
	}
	if in.MOQ == 0 {
		in.MOQ = 1
	}
	if in.MOQ < 1 {
		return dto.Fail("moq debe ser al menos 1")
	}
	if in.QuantityType == "" {
		in.QuantityType = "pcs"
	}

	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		product := &entity.Product{
			Name:         in.Name,
			CurrentStock: in.Stock,
			MOQ:          in.MOQ,
			QuantityType: in.QuantityType,
		}
		if err := r.Products.Create(ctx, product); err != nil {
			return err
		}
		res = dto.OK(fmt.Sprintf("Producto %q creado", product.Name))
		res.ID = product.ID
		return nil
	})
	if err != nil {
		return failResult(uc.log, "products", "create", err, res)
	}
	return res
}

// Update aplica solo los campos provistos; un cero explícito sí se aplica.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.UpdateProductRequest) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		product, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			res = dto.Fail("producto no encontrado")
			return errAbort
		}
		if in.Name != nil {
			if *in.Name == "" {
				res = dto.Fail("name no puede ser vacío")
				return errAbort
			}
			product.Name = *in.Name
		}
		if in.Stock != nil {
			if *in.Stock < 0 {
				res = dto.Fail("el stock no puede ser negativo")
				return errAbort
			}
			product.CurrentStock = *in.Stock
		}
		if in.MOQ != nil {
			if *in.MOQ < 1 {
				res = dto.Fail("moq debe ser al menos 1")
				return errAbort
			}
			product.MOQ = *in.MOQ
		}
		if in.QuantityType != nil {
			product.QuantityType = *in.QuantityType
		}
		if err := r.Products.Update(ctx, product); err != nil {
			return err
		}
		res = dto.OK("Producto actualizado")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "products", "update", err, res)
	}
	return res
}

// Delete elimina un producto por id.
func (uc *ProductUseCase) Delete(ctx context.Context, id int) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		product, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			res = dto.Fail("producto no encontrado")
			return errAbort
		}
		if err := r.Products.Delete(ctx, id); err != nil {
			return err
		}
		res = dto.OK(fmt.Sprintf("Producto %q eliminado", product.Name))
		return nil
	})
	if err != nil {
		return failResult(uc.log, "products", "delete", err, res)
	}
	return res
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:    p.ID,
		ProductName:  p.Name,
		CurrentStock: p.CurrentStock,
		MOQ:          p.MOQ,
		QuantityType: p.QuantityType,
	}
}

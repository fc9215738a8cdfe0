package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// deliveryLayout formato de fecha del API para estimated_delivery.
const deliveryLayout = "2006-01-02"

// OrderUseCase CRUD uniforme para pedidos. Un pedido siempre referencia un
// usuario y un producto existentes; ambas existencias se verifican dentro de
// la misma transacción que inserta.
type OrderUseCase struct {
	repo repository.OrderRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, tx TxRunner, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, tx: tx, log: log}
}

// List devuelve todos los pedidos con username y producto resueltos.
func (uc *OrderUseCase) List(ctx context.Context) []dto.OrderResponse {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("resource", "orders").Str("op", "list").Msg("fallo de persistencia, se devuelve lista vacía")
		return []dto.OrderResponse{}
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return items
}

// Create crea un pedido. Status ausente -> "pending"; estimated_delivery es
// opcional con formato YYYY-MM-DD.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) dto.MutationResult {
	delivery, ok := parseDelivery(in.EstimatedDelivery)
	if !ok {
		return dto.Fail("estimated_delivery inválida, formato esperado YYYY-MM-DD")
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}

	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		user, err := r.Users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			res = dto.Fail("usuario no encontrado")
			return errAbort
		}
		product, err := r.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			res = dto.Fail("producto no encontrado")
			return errAbort
		}
		order := &entity.Order{
			UserID:            in.UserID,
			ProductID:         in.ProductID,
			Status:            status,
			EstimatedDelivery: delivery,
		}
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}
		res = dto.OK(fmt.Sprintf("Pedido creado para %s - producto: %s", user.Username, product.Name))
		res.ID = order.ID
		return nil
	})
	if err != nil {
		return failResult(uc.log, "orders", "create", err, res)
	}
	return res
}

// Update aplica solo los campos provistos. Un estimated_delivery vacío
// explícito limpia la fecha.
func (uc *OrderUseCase) Update(ctx context.Context, id int, in dto.UpdateOrderRequest) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		order, err := r.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			res = dto.Fail("pedido no encontrado")
			return errAbort
		}
		if in.Status != nil {
			order.Status = *in.Status
		}
		if in.EstimatedDelivery != nil {
			delivery, ok := parseDelivery(*in.EstimatedDelivery)
			if !ok {
				res = dto.Fail("estimated_delivery inválida, formato esperado YYYY-MM-DD")
				return errAbort
			}
			order.EstimatedDelivery = delivery
		}
		if err := r.Orders.Update(ctx, order); err != nil {
			return err
		}
		res = dto.OK("Pedido actualizado")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "orders", "update", err, res)
	}
	return res
}

// Delete elimina un pedido por id.
func (uc *OrderUseCase) Delete(ctx context.Context, id int) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		order, err := r.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			res = dto.Fail("pedido no encontrado")
			return errAbort
		}
		if err := r.Orders.Delete(ctx, id); err != nil {
			return err
		}
		res = dto.OK(fmt.Sprintf("Pedido %d eliminado", id))
		return nil
	})
	if err != nil {
		return failResult(uc.log, "orders", "delete", err, res)
	}
	return res
}

// parseDelivery interpreta la fecha opcional: "" -> sin fecha.
func parseDelivery(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(deliveryLayout, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	out := dto.OrderResponse{
		OrderID:     o.ID,
		Username:    o.Username,
		ProductName: o.ProductName,
		Status:      o.Status,
	}
	if o.EstimatedDelivery != nil {
		s := o.EstimatedDelivery.Format(deliveryLayout)
		out.EstimatedDelivery = &s
	}
	return out
}

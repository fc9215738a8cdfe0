package repository

import (
	"context"

	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// List llena Username y ProductName (JOIN a users y products).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int) error
}

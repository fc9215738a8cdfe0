package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido nuevo y deja el id asignado en la entidad.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, product_id, status, estimated_delivery)
		VALUES ($1, $2, $3, $4) RETURNING order_id`
	err := r.q.QueryRow(ctx, query,
		order.UserID, order.ProductID, order.Status, order.EstimatedDelivery,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por id. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	query := `
		SELECT order_id, user_id, product_id, status, estimated_delivery
		FROM orders WHERE order_id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.UserID, &o.ProductID, &o.Status, &o.EstimatedDelivery)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// List lista todos los pedidos con username y producto resueltos, ordenados por id.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT o.order_id, o.user_id, o.product_id, o.status, o.estimated_delivery,
		       u.username, p.product_name
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		JOIN products p ON p.product_id = o.product_id
		ORDER BY o.order_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Status, &o.EstimatedDelivery, &o.Username, &o.ProductName); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza estado y fecha estimada de un pedido.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `UPDATE orders SET status = $2, estimated_delivery = $3 WHERE order_id = $1`
	if _, err := r.q.Exec(ctx, query, order.ID, order.Status, order.EstimatedDelivery); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina un pedido por id.
func (r *OrderRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

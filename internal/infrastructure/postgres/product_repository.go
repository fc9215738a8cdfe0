package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo y deja el id asignado en la entidad.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (product_name, current_stock, moq, quantity_type)
		VALUES ($1, $2, $3, $4) RETURNING product_id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.CurrentStock, product.MOQ, product.QuantityType,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `
		SELECT product_id, product_name, current_stock, moq, quantity_type
		FROM products WHERE product_id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.CurrentStock, &p.MOQ, &p.QuantityType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// List lista todos los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT product_id, product_name, current_stock, moq, quantity_type
		FROM products ORDER BY product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CurrentStock, &p.MOQ, &p.QuantityType); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables de un producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET product_name = $2, current_stock = $3, moq = $4, quantity_type = $5
		WHERE product_id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CurrentStock, product.MOQ, product.QuantityType,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por id.
func (r *ProductRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

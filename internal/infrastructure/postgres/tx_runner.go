package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/chatbot-admin-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido garantiza liberar la transacción en
// todo camino de salida, incluidos pánicos del callback.
func (r *TxRunner) Run(ctx context.Context, fn func(set usecase.RepoSet) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	set := usecase.RepoSet{
		Roles:      NewRoleRepository(tx),
		Users:      NewUserRepository(tx),
		Products:   NewProductRepository(tx),
		Orders:     NewOrderRepository(tx),
		FAQs:       NewFAQRepository(tx),
		Unanswered: NewUnansweredQuestionRepository(tx),
	}

	if err := fn(set); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

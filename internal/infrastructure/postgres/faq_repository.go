package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
)

var _ repository.FAQRepository = (*FAQRepo)(nil)

// FAQRepo implementación del puerto FAQRepository sobre PostgreSQL (usable con pool o tx).
type FAQRepo struct {
	q Querier
}

// NewFAQRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: q}
}

// Create persiste una FAQ nueva y deja el id asignado en la entidad.
func (r *FAQRepo) Create(ctx context.Context, faq *entity.FAQ) error {
	query := `INSERT INTO faq (question, answer) VALUES ($1, $2) RETURNING faq_id`
	if err := r.q.QueryRow(ctx, query, faq.Question, faq.Answer).Scan(&faq.ID); err != nil {
		return fmt.Errorf("insert faq: %w", err)
	}
	return nil
}

// GetByID obtiene una FAQ por id. (nil, nil) si no existe.
func (r *FAQRepo) GetByID(ctx context.Context, id int) (*entity.FAQ, error) {
	query := `SELECT faq_id, question, answer FROM faq WHERE faq_id = $1`
	var f entity.FAQ
	if err := r.q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Question, &f.Answer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get faq by id: %w", err)
	}
	return &f, nil
}

// List lista todas las FAQs ordenadas por id.
func (r *FAQRepo) List(ctx context.Context) ([]*entity.FAQ, error) {
	rows, err := r.q.Query(ctx, `SELECT faq_id, question, answer FROM faq ORDER BY faq_id`)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()
	var list []*entity.FAQ
	for rows.Next() {
		var f entity.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza pregunta y respuesta de una FAQ.
func (r *FAQRepo) Update(ctx context.Context, faq *entity.FAQ) error {
	query := `UPDATE faq SET question = $2, answer = $3 WHERE faq_id = $1`
	if _, err := r.q.Exec(ctx, query, faq.ID, faq.Question, faq.Answer); err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	return nil
}

// Delete elimina una FAQ por id.
func (r *FAQRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM faq WHERE faq_id = $1`, id); err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}

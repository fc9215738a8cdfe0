package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
)

var _ repository.UnansweredQuestionRepository = (*UnansweredQuestionRepo)(nil)

// UnansweredQuestionRepo implementación del puerto UnansweredQuestionRepository
// sobre PostgreSQL (usable con pool o tx).
type UnansweredQuestionRepo struct {
	q Querier
}

// NewUnansweredQuestionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnansweredQuestionRepository(q Querier) *UnansweredQuestionRepo {
	return &UnansweredQuestionRepo{q: q}
}

// Create persiste una pregunta nueva y deja el id asignado en la entidad.
func (r *UnansweredQuestionRepo) Create(ctx context.Context, question *entity.UnansweredQuestion) error {
	query := `INSERT INTO unanswered_questions (question, status) VALUES ($1, $2) RETURNING uq_id`
	if err := r.q.QueryRow(ctx, query, question.Question, question.Status).Scan(&question.ID); err != nil {
		return fmt.Errorf("insert unanswered question: %w", err)
	}
	return nil
}

// GetByID obtiene una pregunta por id. (nil, nil) si no existe.
func (r *UnansweredQuestionRepo) GetByID(ctx context.Context, id int) (*entity.UnansweredQuestion, error) {
	query := `SELECT uq_id, question, status FROM unanswered_questions WHERE uq_id = $1`
	var q entity.UnansweredQuestion
	if err := r.q.QueryRow(ctx, query, id).Scan(&q.ID, &q.Question, &q.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unanswered question by id: %w", err)
	}
	return &q, nil
}

// List lista todas las preguntas ordenadas por id.
func (r *UnansweredQuestionRepo) List(ctx context.Context) ([]*entity.UnansweredQuestion, error) {
	rows, err := r.q.Query(ctx, `SELECT uq_id, question, status FROM unanswered_questions ORDER BY uq_id`)
	if err != nil {
		return nil, fmt.Errorf("list unanswered questions: %w", err)
	}
	defer rows.Close()
	var list []*entity.UnansweredQuestion
	for rows.Next() {
		var q entity.UnansweredQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.Status); err != nil {
			return nil, fmt.Errorf("scan unanswered question: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Update actualiza pregunta y estado.
func (r *UnansweredQuestionRepo) Update(ctx context.Context, question *entity.UnansweredQuestion) error {
	query := `UPDATE unanswered_questions SET question = $2, status = $3 WHERE uq_id = $1`
	if _, err := r.q.Exec(ctx, query, question.ID, question.Question, question.Status); err != nil {
		return fmt.Errorf("update unanswered question: %w", err)
	}
	return nil
}

// Delete elimina una pregunta por id.
func (r *UnansweredQuestionRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM unanswered_questions WHERE uq_id = $1`, id); err != nil {
		return fmt.Errorf("delete unanswered question: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// UnansweredQuestionRepository define el puerto de persistencia para UnansweredQuestion (DIP).
type UnansweredQuestionRepository interface {
	Create(ctx context.Context, question *entity.UnansweredQuestion) error
	GetByID(ctx context.Context, id int) (*entity.UnansweredQuestion, error)
	List(ctx context.Context) ([]*entity.UnansweredQuestion, error)
	Update(ctx context.Context, question *entity.UnansweredQuestion) error
	Delete(ctx context.Context, id int) error
}

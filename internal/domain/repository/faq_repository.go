package repository

import (
	"context"

	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// FAQRepository define el puerto de persistencia para FAQ (DIP).
type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	GetByID(ctx context.Context, id int) (*entity.FAQ, error)
	List(ctx context.Context) ([]*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id int) error
}

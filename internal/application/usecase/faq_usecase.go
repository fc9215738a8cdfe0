package usecase

import (
	"context"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// FAQUseCase CRUD uniforme para preguntas frecuentes.
type FAQUseCase struct {
	repo repository.FAQRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewFAQUseCase construye el caso de uso.
func NewFAQUseCase(repo repository.FAQRepository, tx TxRunner, log *logger.Logger) *FAQUseCase {
	return &FAQUseCase{repo: repo, tx: tx, log: log}
}

// List devuelve todas las FAQs ordenadas por id.
func (uc *FAQUseCase) List(ctx context.Context) []dto.FAQResponse {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("resource", "faq").Str("op", "list").Msg("fallo de persistencia, se devuelve lista vacía")
		return []dto.FAQResponse{}
	}
	items := make([]dto.FAQResponse, 0, len(list))
	for _, f := range list {
		items = append(items, dto.FAQResponse{FAQID: f.ID, Question: f.Question, Answer: f.Answer})
	}
	return items
}

// Create crea una FAQ.
func (uc *FAQUseCase) Create(ctx context.Context, in dto.CreateFAQRequest) dto.MutationResult {
	if in.Question == "" || in.Answer == "" {
		return dto.Fail("question y answer son requeridos")
	}
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		faq := &entity.FAQ{Question: in.Question, Answer: in.Answer}
		if err := r.FAQs.Create(ctx, faq); err != nil {
			return err
		}
		res = dto.OK("FAQ creada")
		res.ID = faq.ID
		return nil
	})
	if err != nil {
		return failResult(uc.log, "faq", "create", err, res)
	}
	return res
}

// Update aplica solo los campos provistos.
func (uc *FAQUseCase) Update(ctx context.Context, id int, in dto.UpdateFAQRequest) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		faq, err := r.FAQs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if faq == nil {
			res = dto.Fail("faq no encontrada")
			return errAbort
		}
		if in.Question != nil {
			faq.Question = *in.Question
		}
		if in.Answer != nil {
			faq.Answer = *in.Answer
		}
		if err := r.FAQs.Update(ctx, faq); err != nil {
			return err
		}
		res = dto.OK("FAQ actualizada")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "faq", "update", err, res)
	}
	return res
}

// Delete elimina una FAQ por id.
func (uc *FAQUseCase) Delete(ctx context.Context, id int) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		faq, err := r.FAQs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if faq == nil {
			res = dto.Fail("faq no encontrada")
			return errAbort
		}
		if err := r.FAQs.Delete(ctx, id); err != nil {
			return err
		}
		res = dto.OK("FAQ eliminada")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "faq", "delete", err, res)
	}
	return res
}

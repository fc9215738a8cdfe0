package usecase

import (
	"context"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// UnansweredUseCase CRUD uniforme para preguntas sin responder. El alta la
// usa el chatbot cuando no encuentra respuesta; el panel las revisa y cierra.
type UnansweredUseCase struct {
	repo repository.UnansweredQuestionRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewUnansweredUseCase construye el caso de uso.
func NewUnansweredUseCase(repo repository.UnansweredQuestionRepository, tx TxRunner, log *logger.Logger) *UnansweredUseCase {
	return &UnansweredUseCase{repo: repo, tx: tx, log: log}
}

// List devuelve todas las preguntas sin responder ordenadas por id.
func (uc *UnansweredUseCase) List(ctx context.Context) []dto.UnansweredResponse {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("resource", "unanswered").Str("op", "list").Msg("fallo de persistencia, se devuelve lista vacía")
		return []dto.UnansweredResponse{}
	}
	items := make([]dto.UnansweredResponse, 0, len(list))
	for _, q := range list {
		items = append(items, dto.UnansweredResponse{UQID: q.ID, Question: q.Question, Status: q.Status})
	}
	return items
}

// Create registra una pregunta sin responder con estado inicial "new".
func (uc *UnansweredUseCase) Create(ctx context.Context, in dto.CreateUnansweredRequest) dto.MutationResult {
	if in.Question == "" {
		return dto.Fail("question es requerida")
	}
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		question := &entity.UnansweredQuestion{Question: in.Question, Status: entity.StatusNew}
		if err := r.Unanswered.Create(ctx, question); err != nil {
			return err
		}
		res = dto.OK("Pregunta registrada")
		res.ID = question.ID
		return nil
	})
	if err != nil {
		return failResult(uc.log, "unanswered", "create", err, res)
	}
	return res
}

// Update aplica solo los campos provistos (hoy, el estado).
func (uc *UnansweredUseCase) Update(ctx context.Context, id int, in dto.UpdateUnansweredRequest) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		question, err := r.Unanswered.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if question == nil {
			res = dto.Fail("pregunta no encontrada")
			return errAbort
		}
		if in.Status != nil {
			question.Status = *in.Status
		}
		if err := r.Unanswered.Update(ctx, question); err != nil {
			return err
		}
		res = dto.OK("Pregunta actualizada")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "unanswered", "update", err, res)
	}
	return res
}

// Delete elimina una pregunta por id.
func (uc *UnansweredUseCase) Delete(ctx context.Context, id int) dto.MutationResult {
	var res dto.MutationResult
	err := uc.tx.Run(ctx, func(r RepoSet) error {
		question, err := r.Unanswered.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if question == nil {
			res = dto.Fail("pregunta no encontrada")
			return errAbort
		}
		if err := r.Unanswered.Delete(ctx, id); err != nil {
			return err
		}
		res = dto.OK("Pregunta eliminada")
		return nil
	})
	if err != nil {
		return failResult(uc.log, "unanswered", "delete", err, res)
	}
	return res
}

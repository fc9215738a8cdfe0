package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/repository"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// RepoSet repositorios atados a una misma transacción.
type RepoSet struct {
	Roles      repository.RoleRepository
	Users      repository.UserRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	FAQs       repository.FAQRepository
	Unanswered repository.UnansweredQuestionRepository
}

// TxRunner ejecuta fn dentro de una unidad de trabajo transaccional.
// Si fn retorna error la transacción se revierte completa; la unidad de
// trabajo se libera en todo camino de salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(r RepoSet) error) error
}

// errAbort señala un fallo de negocio dentro de la transacción: el resultado
// uniforme ya trae el mensaje y solo hay que revertir.
var errAbort = errors.New("operación abortada")

// failResult traduce el error de una unidad de trabajo al resultado uniforme.
// Los fallos de negocio (errAbort) conservan su mensaje; los de persistencia
// se registran estructurados en el log y devuelven un mensaje genérico, sin
// filtrar la causa interna al llamador.
func failResult(log *logger.Logger, resource, op string, err error, res dto.MutationResult) dto.MutationResult {
	if errors.Is(err, errAbort) {
		return res
	}
	log.Error().Err(err).Str("resource", resource).Str("op", op).Msg("fallo de persistencia, transacción revertida")
	return dto.Fail("error interno, intente más tarde")
}

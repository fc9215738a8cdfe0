package entity

// StatusNew estado inicial de una pregunta sin responder recién registrada.
const StatusNew = "new"

// UnansweredQuestion pregunta que el chatbot no supo responder, pendiente de revisión.
type UnansweredQuestion struct {
	ID       int
	Question string
	Status   string
}

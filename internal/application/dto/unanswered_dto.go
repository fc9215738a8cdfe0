package dto

// UnansweredResponse proyección de una pregunta sin responder.
type UnansweredResponse struct {
	UQID     int    `json:"uq_id"`
	Question string `json:"question"`
	Status   string `json:"status"`
}

// CreateUnansweredRequest entrada para registrar una pregunta sin responder
// (la ruta de inserción que usa el chatbot).
type CreateUnansweredRequest struct {
	Question string `json:"question"`
}

// UpdateUnansweredRequest entrada para actualizar el estado. Campos nil no se tocan.
type UpdateUnansweredRequest struct {
	Status *string `json:"status"`
}

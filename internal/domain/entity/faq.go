package entity

// FAQ pregunta frecuente con su respuesta, usada por el chatbot.
type FAQ struct {
	ID       int
	Question string
	Answer   string
}

package dto

// FAQResponse proyección de una pregunta frecuente.
type FAQResponse struct {
	FAQID    int    `json:"faq_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CreateFAQRequest entrada para crear una FAQ.
type CreateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UpdateFAQRequest entrada para actualizar una FAQ. Campos nil no se tocan.
type UpdateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

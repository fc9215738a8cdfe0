package dto

// ProductResponse proyección de un producto.
type ProductResponse struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
	MOQ          int    `json:"moq"`
	QuantityType string `json:"quantity_type"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	MOQ          int    `json:"moq"`
	QuantityType string `json:"quantity_type"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no se
// tocan; un cero explícito (ej. stock = 0) SÍ se aplica.
type UpdateProductRequest struct {
	Name         *string `json:"name"`
	Stock        *int    `json:"stock"`
	MOQ          *int    `json:"moq"`
	QuantityType *string `json:"quantity_type"`
}

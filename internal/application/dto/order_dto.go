package dto

// OrderResponse proyección de un pedido con username y producto resueltos.
type OrderResponse struct {
	OrderID           int     `json:"order_id"`
	Username          string  `json:"username"`
	ProductName       string  `json:"product_name"`
	Status            string  `json:"status"`
	EstimatedDelivery *string `json:"estimated_delivery"`
}

// CreateOrderRequest entrada para crear un pedido.
// EstimatedDelivery es opcional, formato YYYY-MM-DD.
type CreateOrderRequest struct {
	UserID            int    `json:"user_id"`
	ProductID         int    `json:"product_id"`
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

// UpdateOrderRequest entrada para actualizar un pedido. Campos nil no se tocan.
type UpdateOrderRequest struct {
	Status            *string `json:"status"`
	EstimatedDelivery *string `json:"estimated_delivery"`
}

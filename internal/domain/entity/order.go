package entity

import "time"

// StatusPending estado inicial de un pedido creado sin estado explícito.
const StatusPending = "pending"

// Order representa un pedido: referencia exactamente un usuario y un producto existentes.
type Order struct {
	ID                int
	UserID            int
	ProductID         int
	Status            string
	EstimatedDelivery *time.Time // opcional

	// Campos de presentación, se llenan con JOIN en los listados.
	Username    string
	ProductName string
}

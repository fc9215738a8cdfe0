package entity

// Product representa un producto del catálogo.
// CurrentStock nunca es negativo y MOQ (cantidad mínima de pedido) es >= 1.
type Product struct {
	ID           int
	Name         string
	CurrentStock int
	MOQ          int
	QuantityType string // unidad de medida, ej. "pcs", "kg"
}

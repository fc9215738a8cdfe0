package auth

// Recursos administrables: la unidad de granularidad del control de acceso.
const (
	ResourceRoles      = "roles"
	ResourceUsers      = "users"
	ResourceProducts   = "products"
	ResourceOrders     = "orders"
	ResourceFAQ        = "faq"
	ResourceUnanswered = "unanswered"
)

// accessMatrix tabla fija rol -> recursos permitidos. No es configurable en runtime.
var accessMatrix = map[string][]string{
	"System Admin":      {ResourceRoles, ResourceUsers, ResourceProducts, ResourceOrders, ResourceFAQ, ResourceUnanswered},
	"Application Admin": {ResourceUsers, ResourceProducts, ResourceOrders, ResourceFAQ, ResourceUnanswered},
	"Product Admin":     {ResourceProducts, ResourceOrders},
	"Order Admin":       {ResourceOrders},
}

// Allowed indica si un rol puede operar sobre un recurso.
// Rol o recurso desconocido -> false (cerrado por defecto).
func Allowed(role, resource string) bool {
	for _, r := range accessMatrix[role] {
		if r == resource {
			return true
		}
	}
	return false
}

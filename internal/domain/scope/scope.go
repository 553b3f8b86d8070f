// Package scope define el alcance de tenant de una petición: el predicado
// fila-a-fila (restaurant_id = X) que toda consulta sobre entidades de menú
// debe satisfacer. Es un valor explícito que viaja por la cadena de llamadas,
// con vida visible en la firma de cada acceso a datos; no hay estado ambiente
// que activar/desactivar.
package scope

// Scope restringe (o no) las consultas a un restaurante.
// El valor cero es restringido al restaurante 0, que no matchea ninguna fila:
// olvidar instalar el scope falla cerrado.
type Scope struct {
	restaurantID int64
	unrestricted bool
}

// ForRestaurant scope restringido al restaurante dado.
func ForRestaurant(restaurantID int64) Scope {
	return Scope{restaurantID: restaurantID}
}

// Unrestricted scope sin predicado: visibilidad cross-tenant. Reservado para
// super-admin y para jobs de limpieza; nunca se guarda más allá de la llamada.
func Unrestricted() Scope {
	return Scope{unrestricted: true}
}

// Restricted indica si el predicado aplica.
func (s Scope) Restricted() bool { return !s.unrestricted }

// RestaurantID el tenant del predicado; solo tiene sentido si Restricted().
func (s Scope) RestaurantID() int64 { return s.restaurantID }

// Allows verifica el predicado contra un tenant concreto (para chequeos en
// memoria sobre filas ya cargadas).
func (s Scope) Allows(restaurantID int64) bool {
	return s.unrestricted || s.restaurantID == restaurantID
}

package booking

// ServiceLimit es el tope del plan gratuito: cantidad máxima de
// servicios por profesional, verificada antes de cada creación.
const ServiceLimit = 2

// CanCreateService decide si el profesional puede crear otro servicio.
// Es solo una compuerta: rechazar nunca corrompe datos.
func CanCreateService(currentCount int64) bool {
	return currentCount < ServiceLimit
}

package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador = "A"
	RolEmpleado      = "E"
	RolCliente       = "C"
)

// Estados de registro (catálogo t_estado).
const (
	EstadoActivo    = "A"
	EstadoInactivo  = "I"
	EstadoBloqueado = "B"
	EstadoAnulado   = "N"
)

// Usuario representa una identidad de login (fila de t_usuario).
// IntentosFallidos y UltimoIntento solo los muta el flujo de autenticación:
// se incrementan juntos en cada fallo y se reinician juntos en éxito o al
// vencer la ventana de bloqueo.
type Usuario struct {
	CodUsu           string
	Usuario          string
	Rol              string // A, E, C
	Estado           string // A, I, ...
	HashedPassword   string // bcrypt, nunca en claro después de persistir
	IntentosFallidos int
	UltimoIntento    *time.Time
}

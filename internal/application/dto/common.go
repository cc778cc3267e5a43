package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse envoltura estándar para las operaciones de cuentas y embargos.
// Result lleva las filas devueltas por el procedimiento almacenado.
type APIResponse struct {
	Mensaje    string `json:"mensaje"`
	Codigo     string `json:"codigo"`
	StatusCode int    `json:"status_code"`
	Result     any    `json:"result,omitempty"`
}

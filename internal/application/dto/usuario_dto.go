package dto

// RegistroInternoRequest alta de personal interno (administradores y empleados).
type RegistroInternoRequest struct {
	Usuario  string `json:"Usuario" validate:"required,min=1,max=100"`
	Password string `json:"Password" validate:"required,min=8"`
	Rol      string `json:"Rol" validate:"required,oneof=A E"`
}

// RegistroInternoResponse eco del alta con el código generado por el SP.
type RegistroInternoResponse struct {
	CodUsu    string `json:"CodUsu"`
	Usuario   string `json:"Usuario"`
	Rol       string `json:"Rol"`
	MensajeSP string `json:"MensajeSP"`
}

// UsuarioPublic datos públicos de un usuario (sin contraseña).
type UsuarioPublic struct {
	CodUsu  string `json:"CodUsu"`
	Usuario string `json:"Usuario"`
	Rol     string `json:"Rol"`
	Estado  string `json:"Estado"`
}

// UsuarioUpdate cambio parcial; los campos nil no se tocan.
type UsuarioUpdate struct {
	Usuario  *string `json:"Usuario,omitempty"`
	Password *string `json:"Password,omitempty" validate:"omitempty,min=8"`
	Rol      *string `json:"Rol,omitempty" validate:"omitempty,oneof=A E C"`
	Estado   *string `json:"Estado,omitempty" validate:"omitempty,oneof=A I"`
}

package dto

// UserRegistrationData credenciales del nuevo cliente.
type UserRegistrationData struct {
	Usuario  string `json:"Usuario" validate:"required"`
	Password string `json:"Password" validate:"required,min=8"`
	Rol      string `json:"Rol"` // por defecto 'C'
}

// ClientRegistrationData datos personales del nuevo cliente.
type ClientRegistrationData struct {
	Nombres   string `json:"Nombres" validate:"required"`
	Apellidos string `json:"Apellidos" validate:"required"`
	DNI       string `json:"DNI" validate:"required,len=8"`
	Email     string `json:"e_mail,omitempty" validate:"omitempty,max=50"`
	FechaNac  string `json:"Fecha_Nac,omitempty"` // YYYY-MM-DD
	Direccion string `json:"Direccion,omitempty" validate:"omitempty,max=100"`
	CodUbigeo string `json:"CodUbigeo,omitempty" validate:"omitempty,len=6"`
	Telefonos string `json:"Telefonos,omitempty" validate:"omitempty,max=9"`
	Movil     string `json:"Movil,omitempty" validate:"omitempty,max=11"`
}

// FullClientRegistration cuerpo del registro público: usuario + cliente.
type FullClientRegistration struct {
	UserData   UserRegistrationData   `json:"user_data"`
	ClientData ClientRegistrationData `json:"client_data"`
}

// GeneratedIDs códigos que genera sp_registerfullclientanduser.
type GeneratedIDs struct {
	CodUsu     string `json:"CodUsu"`
	CodCliente string `json:"CodCliente"`
}

// RegistrationResponse respuesta del registro público.
type RegistrationResponse struct {
	Message      string       `json:"message"`
	GeneratedIDs GeneratedIDs `json:"generated_ids"`
}

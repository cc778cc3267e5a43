package dto

// LoginForm entrada del endpoint de token (form-data estilo OAuth2).
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// PerfilLogin fila de perfil que devuelve sp_validateuserlogin.
type PerfilLogin struct {
	CodUsu         string `json:"CodUsu"`
	Usuario        string `json:"Usuario"`
	Rol            string `json:"Rol"`
	Estado         string `json:"Estado"`
	Email          string `json:"email"`
	CodCliente     string `json:"codcliente"`
	NombreCompleto string `json:"nombre_completo"`
}

// TokenResponse respuesta del login: token firmado más el perfil completo
// para que el front enriquezca la sesión sin otra llamada.
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Result      []PerfilLogin `json:"result"`
}

package entity

// Tipos de cuenta (catálogo t_tipocuentas).
const (
	TipoCuentaAhorro    = "AC"
	TipoCuentaCorriente = "CC"
	TipoCuentaPlazoFijo = "PF"
)

// Monedas soportadas.
const (
	MonedaSoles   = "SO"
	MonedaDolares = "DO"
)

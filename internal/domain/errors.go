package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrUsuarioInactivo       = errors.New("usuario inactivo")
	ErrUsuarioBloqueado      = errors.New("usuario bloqueado por intentos fallidos")
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrAccesoDenegado        = errors.New("acceso denegado")
)

// PrefijoSentinela marca un fallo de regla de negocio reportado por un
// procedimiento almacenado en su parámetro de salida o en un RAISE.
const PrefijoSentinela = "Error:"

// EsSentinela indica si un mensaje de SP señala fallo de negocio.
func EsSentinela(msg string) bool {
	return strings.HasPrefix(strings.TrimSpace(msg), PrefijoSentinela)
}

// MencionaNoExiste indica si el sentinela corresponde a un recurso inexistente
// (los SP reportan "Error: La cuenta no existe", etc.).
func MencionaNoExiste(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "no existe")
}

// ErrorSP es el fallo de negocio tipado que envuelve el sentinela de un SP.
type ErrorSP struct {
	Procedimiento string
	Mensaje       string
}

func (e *ErrorSP) Error() string {
	if e.Procedimiento == "" {
		return e.Mensaje
	}
	return fmt.Sprintf("%s: %s", e.Procedimiento, e.Mensaje)
}

// NewErrorSP construye el error de negocio para un procedimiento y mensaje dados.
func NewErrorSP(proc, mensaje string) *ErrorSP {
	return &ErrorSP{Procedimiento: proc, Mensaje: mensaje}
}

// ErrorBloqueo detalla un bloqueo vigente: cuánto falta para que expire la ventana.
type ErrorBloqueo struct {
	Restante time.Duration
}

func (e *ErrorBloqueo) Error() string {
	return fmt.Sprintf("usuario bloqueado, intente en %d minuto(s)", e.MinutosRestantes())
}

// Unwrap permite errors.Is(err, ErrUsuarioBloqueado).
func (e *ErrorBloqueo) Unwrap() error { return ErrUsuarioBloqueado }

// MinutosRestantes redondea hacia arriba para no prometer menos tiempo del real.
func (e *ErrorBloqueo) MinutosRestantes() int {
	m := int((e.Restante + time.Minute - 1) / time.Minute)
	if m < 1 {
		m = 1
	}
	return m
}

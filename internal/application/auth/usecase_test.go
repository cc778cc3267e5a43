package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Banca-api/internal/domain"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type repoEnMemoria struct {
	usuarios map[string]*entity.Usuario // clave: nombre de login
	ahora    func() time.Time
}

func nuevoRepoEnMemoria(ahora func() time.Time, usuarios ...*entity.Usuario) *repoEnMemoria {
	r := &repoEnMemoria{usuarios: make(map[string]*entity.Usuario), ahora: ahora}
	for _, u := range usuarios {
		r.usuarios[u.Usuario] = u
	}
	return r
}

func (r *repoEnMemoria) FindByUsuario(_ context.Context, usuario string) (*entity.Usuario, error) {
	return r.usuarios[usuario], nil
}

func (r *repoEnMemoria) FindByCodUsu(_ context.Context, codUsu string) (*entity.Usuario, error) {
	return r.porCod(codUsu), nil
}

func (r *repoEnMemoria) RegistrarIntentoFallido(_ context.Context, codUsu string) (int, error) {
	u := r.porCod(codUsu)
	u.IntentosFallidos++
	t := r.ahora()
	u.UltimoIntento = &t
	return u.IntentosFallidos, nil
}

func (r *repoEnMemoria) ReiniciarIntentos(_ context.Context, codUsu string, marcarAhora bool) error {
	u := r.porCod(codUsu)
	u.IntentosFallidos = 0
	if marcarAhora {
		t := r.ahora()
		u.UltimoIntento = &t
	} else {
		u.UltimoIntento = nil
	}
	return nil
}

func (r *repoEnMemoria) Actualizar(_ context.Context, codUsu string, cambios repository.CambiosUsuario) error {
	u := r.porCod(codUsu)
	if u == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	if cambios.HashedPassword != nil {
		u.HashedPassword = *cambios.HashedPassword
	}
	return nil
}

func (r *repoEnMemoria) porCod(codUsu string) *entity.Usuario {
	for _, u := range r.usuarios {
		if u.CodUsu == codUsu {
			return u
		}
	}
	return nil
}

type gatewayEnMemoria struct {
	filas    []map[string]any
	err      error
	llamadas int
}

func (g *gatewayEnMemoria) Consultar(_ context.Context, _ string, _ ...any) ([]map[string]any, error) {
	g.llamadas++
	return g.filas, g.err
}

func (g *gatewayEnMemoria) Ejecutar(ctx context.Context, proc string, args ...any) ([]map[string]any, error) {
	return g.Consultar(ctx, proc, args...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	passwordCorrecto = "clave-secreta-1"
	maxIntentos      = 3
	ventana          = 15 * time.Minute
)

var inicio = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func hashDe(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// escenario arma el caso de uso con un usuario, un gateway que devuelve el
// hash del password correcto y un reloj controlable.
func escenario(t *testing.T, u *entity.Usuario) (*AuthUseCase, *repoEnMemoria, *gatewayEnMemoria, *time.Time) {
	t.Helper()
	reloj := inicio
	ahora := func() time.Time { return reloj }

	if u.HashedPassword == "" {
		u.HashedPassword = hashDe(t, passwordCorrecto)
	}
	repo := nuevoRepoEnMemoria(ahora, u)
	gw := &gatewayEnMemoria{filas: []map[string]any{{
		"codusu":         u.CodUsu,
		"usuario":        u.Usuario,
		"rol":            u.Rol,
		"estado":         u.Estado,
		"hashedpassword": u.HashedPassword,
	}}}

	uc := NewAuthUseCase(repo, gw,
		JWTConfig{Secret: "secreto-de-test", ExpMinutes: 30, Issuer: "banca-test"},
		BloqueoConfig{MaxIntentos: maxIntentos, Ventana: ventana},
	)
	uc.ahora = ahora
	return uc, repo, gw, &reloj
}

func usuarioBase() *entity.Usuario {
	return &entity.Usuario{
		CodUsu:  "USR0000001",
		Usuario: "jquispe",
		Rol:     entity.RolEmpleado,
		Estado:  entity.EstadoActivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login: camino feliz y credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Correcto_EmiteTokenYReiniciaContador(t *testing.T) {
	u := usuarioBase()
	u.IntentosFallidos = 2
	marcada := inicio.Add(-time.Minute)
	u.UltimoIntento = &marcada
	uc, _, _, _ := escenario(t, u)

	out, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	require.Len(t, out.Result, 1)
	assert.Equal(t, "jquispe", out.Result[0].Usuario)

	assert.Equal(t, 0, u.IntentosFallidos, "el éxito debe reiniciar el contador")
	require.NotNil(t, u.UltimoIntento, "el éxito deja marca de tiempo")
	assert.Equal(t, inicio, *u.UltimoIntento)
}

func TestLogin_UsuarioDesconocido_NoMutaEstado(t *testing.T) {
	uc, repo, gw, _ := escenario(t, usuarioBase())

	_, err := uc.Login(context.Background(), "no-existe", "da igual")
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
	assert.Zero(t, gw.llamadas, "un login desconocido no debe llegar al SP")

	u := repo.usuarios["jquispe"]
	assert.Equal(t, 0, u.IntentosFallidos)
	assert.Nil(t, u.UltimoIntento)
}

func TestLogin_PasswordIncorrecto_IncrementaContador(t *testing.T) {
	u := usuarioBase()
	uc, _, _, _ := escenario(t, u)

	_, err := uc.Login(context.Background(), "jquispe", "password-malo")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.Equal(t, 1, u.IntentosFallidos)
	require.NotNil(t, u.UltimoIntento)
	assert.Equal(t, inicio, *u.UltimoIntento)
}

// Dos fallos acumulados + un tercero: el contador llega al máximo pero ese
// mismo intento todavía responde credenciales inválidas, no bloqueo.
func TestLogin_TercerFallo_RespondeCredencialesInvalidas(t *testing.T) {
	u := usuarioBase()
	u.IntentosFallidos = 2
	marcada := inicio.Add(-time.Minute)
	u.UltimoIntento = &marcada
	uc, _, _, _ := escenario(t, u)

	_, err := uc.Login(context.Background(), "jquispe", "password-malo")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.Equal(t, maxIntentos, u.IntentosFallidos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bloqueo por intentos fallidos
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Bloqueado_RechazaInclusoPasswordCorrecto(t *testing.T) {
	u := usuarioBase()
	u.IntentosFallidos = maxIntentos
	marcada := inicio.Add(-5 * time.Minute)
	u.UltimoIntento = &marcada
	uc, _, gw, _ := escenario(t, u)

	_, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)

	var bloqueo *domain.ErrorBloqueo
	require.ErrorAs(t, err, &bloqueo)
	assert.ErrorIs(t, err, domain.ErrUsuarioBloqueado)
	assert.Equal(t, 10*time.Minute, bloqueo.Restante)
	assert.Zero(t, gw.llamadas, "un usuario bloqueado no debe llegar al SP")
	assert.Equal(t, maxIntentos, u.IntentosFallidos, "el bloqueo no muta el contador")
}

func TestLogin_VentanaVencida_PasswordCorrectoAutentica(t *testing.T) {
	u := usuarioBase()
	u.IntentosFallidos = maxIntentos
	marcada := inicio.Add(-16 * time.Minute) // ventana de 15 min ya vencida
	u.UltimoIntento = &marcada
	uc, _, _, _ := escenario(t, u)

	out, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, 0, u.IntentosFallidos)
}

func TestLogin_VentanaVencida_PasswordMaloArrancaConteoNuevo(t *testing.T) {
	u := usuarioBase()
	u.IntentosFallidos = maxIntentos
	marcada := inicio.Add(-ventana - time.Second)
	u.UltimoIntento = &marcada
	uc, _, _, _ := escenario(t, u)

	_, err := uc.Login(context.Background(), "jquispe", "password-malo")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.Equal(t, 1, u.IntentosFallidos, "tras vencer la ventana el conteo arranca de cero")
}

// Secuencia completa: tres fallos dejan el bloqueo armado y el cuarto intento
// (aunque traiga el password correcto) responde bloqueo con ventana vigente.
func TestLogin_SecuenciaDeFallos_TerminaEnBloqueo(t *testing.T) {
	u := usuarioBase()
	uc, _, _, reloj := escenario(t, u)

	for i := 0; i < maxIntentos; i++ {
		*reloj = inicio.Add(time.Duration(i) * time.Minute)
		_, err := uc.Login(context.Background(), "jquispe", "password-malo")
		assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	}
	assert.Equal(t, maxIntentos, u.IntentosFallidos)

	*reloj = inicio.Add(3 * time.Minute)
	_, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	var bloqueo *domain.ErrorBloqueo
	require.ErrorAs(t, err, &bloqueo)
	// Último fallo en inicio+2min; a inicio+3min restan 14 minutos de ventana.
	assert.Equal(t, 14*time.Minute, bloqueo.Restante)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado del usuario y sentinelas del SP
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmpleadoInactivo_Rechazado(t *testing.T) {
	u := usuarioBase()
	u.Estado = entity.EstadoInactivo
	uc, _, gw, _ := escenario(t, u)

	_, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	assert.ErrorIs(t, err, domain.ErrUsuarioInactivo)
	assert.Zero(t, gw.llamadas)
}

// Un administrador con estado distinto de activo sí pasa el control local:
// la decisión sobre roles A y C queda en manos del SP.
func TestLogin_AdministradorInactivo_PasaAlSP(t *testing.T) {
	u := usuarioBase()
	u.Rol = entity.RolAdministrador
	u.Estado = entity.EstadoInactivo
	uc, _, gw, _ := escenario(t, u)

	_, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	require.NoError(t, err)
	assert.Equal(t, 1, gw.llamadas)
}

func TestLogin_SentinelaNoExiste_SeTraduceANoEncontrado(t *testing.T) {
	u := usuarioBase()
	uc, _, gw, _ := escenario(t, u)
	gw.filas = nil
	gw.err = domain.NewErrorSP("sp_validateuserlogin", "Error: El usuario no existe")

	_, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

func TestLogin_SPSinFilas_RespondeNoEncontrado(t *testing.T) {
	u := usuarioBase()
	uc, _, gw, _ := escenario(t, u)
	gw.filas = []map[string]any{}

	_, err := uc.Login(context.Background(), "jquispe", passwordCorrecto)
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

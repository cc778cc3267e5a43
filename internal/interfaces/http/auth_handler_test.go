package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Banca-api/internal/application/auth"
	"github.com/jhoicas/Banca-api/internal/domain/entity"
	"github.com/jhoicas/Banca-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Banca-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia para el endpoint de login
// ──────────────────────────────────────────────────────────────────────────────

type usuarioRepoFalso struct {
	usuario *entity.Usuario
}

func (r *usuarioRepoFalso) FindByUsuario(_ context.Context, usuario string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.Usuario == usuario {
		return r.usuario, nil
	}
	return nil, nil
}

func (r *usuarioRepoFalso) FindByCodUsu(_ context.Context, codUsu string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.CodUsu == codUsu {
		return r.usuario, nil
	}
	return nil, nil
}

func (r *usuarioRepoFalso) RegistrarIntentoFallido(_ context.Context, _ string) (int, error) {
	r.usuario.IntentosFallidos++
	t := time.Now()
	r.usuario.UltimoIntento = &t
	return r.usuario.IntentosFallidos, nil
}

func (r *usuarioRepoFalso) ReiniciarIntentos(_ context.Context, _ string, marcarAhora bool) error {
	r.usuario.IntentosFallidos = 0
	if marcarAhora {
		t := time.Now()
		r.usuario.UltimoIntento = &t
	} else {
		r.usuario.UltimoIntento = nil
	}
	return nil
}

func (r *usuarioRepoFalso) Actualizar(_ context.Context, _ string, _ repository.CambiosUsuario) error {
	return nil
}

type gatewayFalso struct {
	filas []map[string]any
}

func (g *gatewayFalso) Consultar(_ context.Context, _ string, _ ...any) ([]map[string]any, error) {
	return g.filas, nil
}

func (g *gatewayFalso) Ejecutar(ctx context.Context, proc string, args ...any) ([]map[string]any, error) {
	return g.Consultar(ctx, proc, args...)
}

// loginApp monta solo la ruta de token sobre un usuario con el password dado.
func loginApp(t *testing.T, u *entity.Usuario, password string) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u.HashedPassword = string(hash)

	repo := &usuarioRepoFalso{usuario: u}
	gw := &gatewayFalso{filas: []map[string]any{{
		"codusu":         u.CodUsu,
		"usuario":        u.Usuario,
		"rol":            u.Rol,
		"estado":         u.Estado,
		"hashedpassword": u.HashedPassword,
	}}}

	uc := auth.NewAuthUseCase(repo, gw,
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 30, Issuer: testIssuer},
		auth.BloqueoConfig{MaxIntentos: 3, Ventana: 15 * time.Minute},
	)

	app := fiber.New()
	app.Post("/api/v1/auth/token", apphttp.NewAuthHandler(uc).Token)
	return app
}

func postLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func usuarioActivo() *entity.Usuario {
	return &entity.Usuario{
		CodUsu:  "USR0000001",
		Usuario: "jquispe",
		Rol:     entity.RolEmpleado,
		Estado:  entity.EstadoActivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/v1/auth/token
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_LoginCorrecto_Responde200ConToken(t *testing.T) {
	app := loginApp(t, usuarioActivo(), "clave-secreta-1")
	resp := postLogin(t, app, "jquispe", "clave-secreta-1")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
}

func TestToken_PasswordIncorrecto_Responde401(t *testing.T) {
	app := loginApp(t, usuarioActivo(), "clave-secreta-1")
	resp := postLogin(t, app, "jquispe", "otra-clave")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

// El 401 de usuario desconocido es indistinguible del de password incorrecto.
func TestToken_UsuarioDesconocido_Responde401Identico(t *testing.T) {
	app := loginApp(t, usuarioActivo(), "clave-secreta-1")

	respDesconocido := postLogin(t, app, "no-existe", "clave-secreta-1")
	defer respDesconocido.Body.Close()
	respPasswordMalo := postLogin(t, app, "jquispe", "otra-clave")
	defer respPasswordMalo.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respDesconocido.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respPasswordMalo.StatusCode)

	var a, b map[string]string
	require.NoError(t, json.NewDecoder(respDesconocido.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(respPasswordMalo.Body).Decode(&b))
	assert.Equal(t, a, b, "ambos 401 deben tener cuerpo idéntico")
}

func TestToken_UsuarioBloqueado_Responde403(t *testing.T) {
	u := usuarioActivo()
	u.IntentosFallidos = 3
	marcada := time.Now().Add(-time.Minute)
	u.UltimoIntento = &marcada

	app := loginApp(t, u, "clave-secreta-1")
	resp := postLogin(t, app, "jquispe", "clave-secreta-1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "LOCKED", body["code"])
	assert.Contains(t, body["message"], "minuto")
}

func TestToken_EmpleadoInactivo_Responde403(t *testing.T) {
	u := usuarioActivo()
	u.Estado = entity.EstadoInactivo

	app := loginApp(t, u, "clave-secreta-1")
	resp := postLogin(t, app, "jquispe", "clave-secreta-1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INACTIVE", body["code"])
}

func TestToken_SinCredenciales_Responde400(t *testing.T) {
	app := loginApp(t, usuarioActivo(), "clave-secreta-1")
	resp := postLogin(t, app, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banca-api/internal/application/usecase"
	apphttp "github.com/jhoicas/Banca-api/internal/interfaces/http"
)

// cuentasApp monta las rutas de cuentas y embargos sin middlewares, sobre un
// gateway falso.
func cuentasApp(gw *gatewayFalso) *fiber.App {
	app := fiber.New()
	cuentaHandler := apphttp.NewCuentaHandler(usecase.NewCuentaUseCase(gw))
	embargoHandler := apphttp.NewEmbargoHandler(usecase.NewEmbargoUseCase(gw, nil))
	app.Post("/account/", cuentaHandler.Abrir)
	app.Patch("/account/estado", cuentaHandler.CambiarEstado)
	app.Post("/account/registrarEmbargo", embargoHandler.Registrar)
	return app
}

func postJSON(t *testing.T, app *fiber.App, ruta, cuerpo string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, ruta, strings.NewReader(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func patchJSON(t *testing.T, app *fiber.App, ruta, cuerpo string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, ruta, strings.NewReader(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAbrirCuenta_TipoYMonedaDelCatalogo(t *testing.T) {
	gw := &gatewayFalso{filas: []map[string]any{{
		"nrocta":    "AC-SO-000001",
		"mensajesp": "Cuenta registrada",
	}}}
	app := cuentasApp(gw)

	resp := postJSON(t, app, "/account/",
		`{"TipoCta":"AC","Moneda":"SO","SaldoInicial":"100.00","CodUsu":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "AC-SO-000001", body["codigo"])
}

func TestAbrirCuenta_TipoFueraDeCatalogo_Responde400(t *testing.T) {
	app := cuentasApp(&gatewayFalso{})

	resp := postJSON(t, app, "/account/",
		`{"TipoCta":"XX","Moneda":"SO","SaldoInicial":"100.00","CodUsu":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAbrirCuenta_MonedaFueraDeCatalogo_Responde400(t *testing.T) {
	app := cuentasApp(&gatewayFalso{})

	resp := postJSON(t, app, "/account/",
		`{"TipoCta":"AC","Moneda":"EU","SaldoInicial":"100.00","CodUsu":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCambiarEstado_EstadoFueraDeCatalogo_Responde400(t *testing.T) {
	app := cuentasApp(&gatewayFalso{})

	resp := patchJSON(t, app, "/account/estado",
		`{"nro_cta":"AC-SO-000001","nuevo_estado":"X","cod_usu_modifica":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCambiarEstado_BloqueoAceptado(t *testing.T) {
	gw := &gatewayFalso{filas: []map[string]any{{
		"mensajesp": "Estado actualizado",
	}}}
	app := cuentasApp(gw)

	resp := patchJSON(t, app, "/account/estado",
		`{"nro_cta":"AC-SO-000001","nuevo_estado":"B","cod_usu_modifica":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegistrarEmbargo_TipoFueraDeCatalogo_Responde400(t *testing.T) {
	app := cuentasApp(&gatewayFalso{})

	resp := postJSON(t, app, "/account/registrarEmbargo",
		`{"NroCta":"AC-SO-000001","TipoEmbargo":"X","MontoEmbargado":"100.00","CodUsu":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegistrarEmbargo_CuentaNoExiste_Responde404(t *testing.T) {
	gw := &gatewayFalso{filas: []map[string]any{{
		"mensajesp": "Error: La cuenta no existe",
	}}}
	app := cuentasApp(gw)

	resp := postJSON(t, app, "/account/registrarEmbargo",
		`{"NroCta":"XX-999","TipoEmbargo":"T","MontoEmbargado":"100.00","CodUsu":"USR0000001"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

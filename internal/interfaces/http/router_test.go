package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ServiCampo-api/internal/application/auth"
	"github.com/jhoicas/ServiCampo-api/internal/application/citas"
	"github.com/jhoicas/ServiCampo-api/internal/application/navigation"
	"github.com/jhoicas/ServiCampo-api/internal/application/visitas"
	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
	"github.com/jhoicas/ServiCampo-api/internal/infrastructure/memoria"
	apphttp "github.com/jhoicas/ServiCampo-api/internal/interfaces/http"
)

type memRepo struct {
	mu    sync.Mutex
	datos map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{datos: make(map[string][]byte)} }

func (r *memRepo) Save(_ context.Context, clave string, datos []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.datos[clave] = append([]byte(nil), datos...)
	return nil
}

func (r *memRepo) Load(_ context.Context, clave string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.datos[clave]
	return d, ok, nil
}

// actaFake evita generar PDF reales en los tests de rutas.
type actaFake struct{}

func (actaFake) Generate(_ *entity.Visita) ([]byte, error) { return []byte("%PDF-fake"), nil }

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	repo := newMemRepo()

	usuarios, err := memoria.NewUsuarioDirectory()
	require.NoError(t, err)
	sesiones, err := auth.NewSessionStore(ctx, usuarios, repo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	require.NoError(t, err)
	citasStore, err := citas.NewStore(ctx, repo)
	require.NoError(t, err)
	visitasStore, err := visitas.NewStore(ctx, repo)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Sesiones:  sesiones,
		Guard:     navigation.New(),
		Citas:     citasStore,
		Visitas:   visitasStore,
		Actas:     actaFake{},
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s debe funcionar", email)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestLoginYLogout(t *testing.T) {
	app := buildAPI(t)

	// Credenciales malas → 401 y la sesión sigue anónima.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "admin@servicio.com", "password": "wrong",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/auth/session", "", nil)
	var ses struct {
		Autenticada bool `json:"autenticada"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ses))
	resp.Body.Close()
	assert.False(t, ses.Autenticada)

	login(t, app, "admin@servicio.com", "admin123")

	resp = doJSON(t, app, http.MethodGet, "/api/auth/session", "", nil)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ses))
	resp.Body.Close()
	assert.True(t, ses.Autenticada)

	// Logout es idempotente.
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}
}

func TestNavigationDecide(t *testing.T) {
	app := buildAPI(t)

	decide := func(destino string) (allow bool, redirect string) {
		resp := doJSON(t, app, http.MethodPost, "/api/navigation/decide", "", fiber.Map{
			"destino": destino, "desde": "dashboard",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			Allow      bool   `json:"allow"`
			RedirectTo string `json:"redirectTo"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out.Allow, out.RedirectTo
	}

	// Anónimo: historial redirige a login, login se permite.
	allow, redirect := decide("historial")
	assert.False(t, allow)
	assert.Equal(t, "login", redirect)
	allow, _ = decide("login")
	assert.True(t, allow)

	// Con sesión de técnico: citas sí, historial no, login redirige a dashboard.
	login(t, app, "tecnico@servicio.com", "tecnico123")

	allow, _ = decide("citas")
	assert.True(t, allow)
	allow, redirect = decide("historial")
	assert.False(t, allow)
	assert.Equal(t, "dashboard", redirect)
	allow, redirect = decide("login")
	assert.False(t, allow)
	assert.Equal(t, "dashboard", redirect)
}

func TestCitasCRUDViaHTTP(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin@servicio.com", "admin123")

	// Sin token → 401.
	resp := doJSON(t, app, http.MethodGet, "/api/citas/", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Crear sin estado → pendiente.
	resp = doJSON(t, app, http.MethodPost, "/api/citas/", token, fiber.Map{
		"tipo": "Inspección", "asunto": "Chequeo de válvulas",
		"clienteId": "CLI-001", "clienteNombre": "Industrias Acme S.A.",
		"tecnicoId": "TEC-001", "tecnicoNombre": "Juan Técnico",
		"fecha": "2026-03-01", "hora": "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cita entity.Cita
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cita))
	resp.Body.Close()
	assert.Equal(t, entity.CitaPendiente, cita.Estado)

	// Actualizar estado.
	resp = doJSON(t, app, http.MethodPut, "/api/citas/"+cita.ID, token, fiber.Map{"estado": "confirmada"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cita))
	resp.Body.Close()
	assert.Equal(t, entity.CitaConfirmada, cita.Estado)

	// Borrar dos veces: la segunda es 404.
	resp = doJSON(t, app, http.MethodDelete, "/api/citas/"+cita.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/api/citas/"+cita.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPromoverTareaViaHTTP(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "admin@servicio.com", "admin123")

	resp := doJSON(t, app, http.MethodPost, "/api/citas/tareas/TASK-001/promover", token, fiber.Map{
		"fecha": "2026-03-05", "hora": "09:30",
		"tecnicoId": "TEC-002", "tecnicoNombre": "Pedro Martínez",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cita entity.Cita
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cita))
	resp.Body.Close()
	assert.Equal(t, "Revisión bomba hidráulica", cita.Asunto)

	// La tarea desapareció de la lista.
	resp = doJSON(t, app, http.MethodGet, "/api/citas/tareas", token, nil)
	var tareas []entity.TareaPendiente
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tareas))
	resp.Body.Close()
	assert.Len(t, tareas, 2)
	for _, tp := range tareas {
		assert.NotEqual(t, "TASK-001", tp.ID)
	}
}

// Las rutas de visitas replican la tabla de roles: historial solo
// admin/supervisor, registro solo admin/tecnico.
func TestVisitasRestriccionDeRoles(t *testing.T) {
	app := buildAPI(t)
	tokenTecnico := login(t, app, "tecnico@servicio.com", "tecnico123")
	tokenSupervisor := login(t, app, "supervisor@servicio.com", "super123")

	// Técnico no ve el historial.
	resp := doJSON(t, app, http.MethodGet, "/api/visitas/", tokenTecnico, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Supervisor sí.
	resp = doJSON(t, app, http.MethodGet, "/api/visitas/", tokenSupervisor, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var lista []entity.Visita
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lista))
	assert.Len(t, lista, 3)

	// Supervisor no registra visitas.
	resp2 := doJSON(t, app, http.MethodPost, "/api/visitas/", tokenSupervisor, fiber.Map{
		"tipo": "Inspección", "clienteId": "CLI-001", "clienteNombre": "Industrias Acme S.A.",
		"tecnicoId": "TEC-001", "tecnicoNombre": "Juan Técnico", "fecha": "2026-03-02",
	})
	resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)

	// Técnico sí, y los totales llegan derivados.
	resp3 := doJSON(t, app, http.MethodPost, "/api/visitas/", tokenTecnico, fiber.Map{
		"tipo": "Inspección", "clienteId": "CLI-001", "clienteNombre": "Industrias Acme S.A.",
		"tecnicoId": "TEC-001", "tecnicoNombre": "Juan Técnico", "fecha": "2026-03-02",
		"inventario": []fiber.Map{
			{"item": "Filtro de aire", "cantidad": 2, "precioUnit": 15000},
			{"item": "Aceite lubricante 5L", "cantidad": 1, "precioUnit": 25000},
		},
	})
	require.Equal(t, http.StatusCreated, resp3.StatusCode)
	var visita entity.Visita
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&visita))
	resp3.Body.Close()
	assert.Equal(t, "55000", visita.Subtotal.String())
	assert.Equal(t, "10450", visita.IVA.String())
	assert.Equal(t, "65450", visita.Total.String())
	assert.Equal(t, entity.VisitaCompletada, visita.Estado)
}

func TestActaPDFViaHTTP(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "supervisor@servicio.com", "super123")

	resp := doJSON(t, app, http.MethodGet, "/api/visitas/VIS-001/pdf", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp2 := doJSON(t, app, http.MethodGet, "/api/visitas/VIS-999/pdf", token, nil)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

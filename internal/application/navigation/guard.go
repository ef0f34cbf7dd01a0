// Package navigation decide si una intención de navegación se permite o se
// redirige, en función de la sesión y de una política estática por destino.
// La decisión es una función pura de (política, flag de autenticación, rol):
// sin estado oculto y determinista.
package navigation

import "github.com/jhoicas/ServiCampo-api/internal/domain/entity"

// Nombres de los destinos navegables de la configuración por defecto.
const (
	DestinoLogin        = "login"
	DestinoDashboard    = "dashboard"
	DestinoCitas        = "citas"
	DestinoCalendario   = "calendario"
	DestinoNuevaVisita  = "nueva-visita"
	DestinoEditarVisita = "editar-visita"
	DestinoHistorial    = "historial"
)

// RoutePolicy política estática de un destino navegable. Roles vacío
// significa sin restricción de rol.
type RoutePolicy struct {
	Destino      string
	RequiereAuth bool
	Roles        []string
}

// Sesion es la vista mínima de la sesión que necesita el guard: el flag de
// autenticación y el rol vigente ("" cuando no hay sesión).
type Sesion struct {
	Autenticada bool
	Role        string
}

// Decision resultado del guard. Cuando Allow es falso, RedirectTo indica el
// destino seguro (login o dashboard). Nunca se expresa como error: la
// navegación degrada a una pantalla segura, no a una página de fallo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

var (
	allow           = Decision{Allow: true}
	redirectLogin   = Decision{RedirectTo: DestinoLogin}
	redirectDefault = Decision{RedirectTo: DestinoDashboard}
)

// Guard evalúa intenciones de navegación contra su tabla de políticas.
type Guard struct {
	politicas map[string]RoutePolicy
}

// New construye el guard con la tabla de rutas por defecto del sistema:
// login público; dashboard, citas y calendario para todos los roles;
// nueva-visita y editar-visita para admin y tecnico; historial para admin
// y supervisor.
func New() *Guard {
	todos := entity.Roles()
	return NewWithPolicies([]RoutePolicy{
		{Destino: DestinoLogin, RequiereAuth: false},
		{Destino: DestinoDashboard, RequiereAuth: true, Roles: todos},
		{Destino: DestinoCitas, RequiereAuth: true, Roles: todos},
		{Destino: DestinoCalendario, RequiereAuth: true, Roles: todos},
		{Destino: DestinoNuevaVisita, RequiereAuth: true, Roles: []string{entity.RoleAdmin, entity.RoleTecnico}},
		{Destino: DestinoEditarVisita, RequiereAuth: true, Roles: []string{entity.RoleAdmin, entity.RoleTecnico}},
		{Destino: DestinoHistorial, RequiereAuth: true, Roles: []string{entity.RoleAdmin, entity.RoleSupervisor}},
	})
}

// NewWithPolicies construye el guard con una tabla propia.
func NewWithPolicies(politicas []RoutePolicy) *Guard {
	m := make(map[string]RoutePolicy, len(politicas))
	for _, p := range politicas {
		m[p.Destino] = p
	}
	return &Guard{politicas: m}
}

// Policy devuelve la política configurada para un destino, si existe.
func (g *Guard) Policy(destino string) (RoutePolicy, bool) {
	p, ok := g.politicas[destino]
	return p, ok
}

// Decide evalúa la intención de navegar a destino con la sesión dada.
// Reglas en orden, gana la primera que aplique:
//
//  1. destino requiere auth y la sesión no está autenticada → redirigir a login.
//  2. destino es login y la sesión está autenticada → redirigir a dashboard.
//  3. destino restringe roles y el rol de la sesión no está en la lista
//     (un rol ausente nunca coincide) → redirigir a dashboard.
//  4. permitir.
//
// Un destino sin política registrada se trata como protegido sin restricción
// de rol.
func (g *Guard) Decide(destino string, s Sesion) Decision {
	pol, ok := g.politicas[destino]
	if !ok {
		pol = RoutePolicy{Destino: destino, RequiereAuth: true}
	}

	if pol.RequiereAuth && !s.Autenticada {
		return redirectLogin
	}
	if destino == DestinoLogin && s.Autenticada {
		return redirectDefault
	}
	if len(pol.Roles) > 0 && !contieneRol(pol.Roles, s) {
		return redirectDefault
	}
	return allow
}

func contieneRol(roles []string, s Sesion) bool {
	if !s.Autenticada || s.Role == "" {
		return false
	}
	for _, r := range roles {
		if r == s.Role {
			return true
		}
	}
	return false
}

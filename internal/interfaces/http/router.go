package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ServiCampo-api/internal/application/auth"
	"github.com/jhoicas/ServiCampo-api/internal/application/citas"
	"github.com/jhoicas/ServiCampo-api/internal/application/navigation"
	"github.com/jhoicas/ServiCampo-api/internal/application/visitas"
	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sesiones  *auth.SessionStore
	Guard     *navigation.Guard
	Citas     *citas.Store
	Visitas   *visitas.Store
	Actas     ActaGenerator
	JWTSecret string
}

// Router registra las rutas de la API. La restricción de roles por grupo
// replica la tabla de políticas de navegación: citas/calendario para todos
// los roles, registro y edición de visitas para admin y tecnico, historial
// para admin y supervisor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	todos := entity.Roles()

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Sesiones)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Guard de navegación (público: decide también para sesiones anónimas)
	navHandler := NewNavigationHandler(deps.Guard, deps.Sesiones)
	api.Post("/navigation/decide", navHandler.Decide)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Citas (todos los roles)
	citasGroup := protected.Group("/citas", RequireRole(todos...))
	citasHandler := NewCitasHandler(deps.Citas)
	citasGroup.Get("/tareas", citasHandler.ListTareas)
	citasGroup.Post("/tareas/:id/promover", citasHandler.PromoverTarea)
	citasGroup.Get("/", citasHandler.List)
	citasGroup.Post("/", citasHandler.Create)
	citasGroup.Get("/:id", citasHandler.GetByID)
	citasGroup.Put("/:id", citasHandler.Update)
	citasGroup.Delete("/:id", citasHandler.Delete)

	// Visitas
	visitasGroup := protected.Group("/visitas")
	visitasHandler := NewVisitasHandler(deps.Visitas, deps.Actas)
	visitasGroup.Get("/catalogos/tecnicos", RequireRole(todos...), visitasHandler.Tecnicos)
	visitasGroup.Get("/catalogos/clientes", RequireRole(todos...), visitasHandler.Clientes)
	visitasGroup.Get("/catalogos/tipos", RequireRole(todos...), visitasHandler.TiposInspeccion)
	visitasGroup.Get("/next-orden", RequireRole(todos...), visitasHandler.NextOrden)
	// Historial: admin y supervisor
	visitasGroup.Get("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), visitasHandler.List)
	// Registro y edición: admin y tecnico
	visitasGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleTecnico), visitasHandler.Create)
	visitasGroup.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleTecnico), visitasHandler.Update)
	// Detalle y acta: cualquier rol (lo usan historial y edición)
	visitasGroup.Get("/:id/pdf", RequireRole(todos...), visitasHandler.Acta)
	visitasGroup.Get("/:id", RequireRole(todos...), visitasHandler.GetByID)
}

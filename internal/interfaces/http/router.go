package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/application/usecase"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/metrics"
)

// RouterDeps dependencias para el router. Los puertos llegan ya resueltos
// al adaptador mock o al vivo; el router no conoce el modo.
type RouterDeps struct {
	Usuarios    ports.UsuarioService
	Espacios    ports.EspacioService
	Actividades ports.ActividadService
	Asistencias ports.AsistenciaService
	Chats       ports.ChatService
	Relaciones  ports.RelacionService
	Notas       ports.NotaTrayectoriaService
	Tags        ports.TagService
	Registro    ports.RegistroService
	Auth        ports.Autenticador

	ChatUC        *usecase.ChatUseCase
	TrayectoriaUC *usecase.TrayectoriaUseCase
	NotifUC       *usecase.NotificacionUseCase
	ReporteUC     *usecase.ReporteUseCase

	Collector *metrics.Collector
	Gatherer  prometheus.Gatherer
	Limiter   *RateLimiter
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Collector != nil {
		app.Use(MetricsMiddleware(deps.Collector))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(deps.Gatherer)))
	}

	api := app.Group("/api")

	// Auth (público, con límite propio)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Auth, deps.Collector)
	if deps.Limiter != nil {
		authGroup.Post("/login", deps.Limiter.LoginMiddleware(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	if deps.Limiter != nil {
		protected = protected.Group("/", deps.Limiter.GeneralMiddleware())
	}

	soloAdmin := RequireRole(entity.RolAdmin)

	// Usuarios
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.Usuarios)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", soloAdmin, usuarioHandler.Create)
	usuarios.Get("/pendientes", soloAdmin, usuarioHandler.Pendientes)
	usuarios.Get("/disponibles", usuarioHandler.UsmyasDisponibles)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Patch("/:id", usuarioHandler.Patch)
	usuarios.Delete("/:id", soloAdmin, usuarioHandler.Delete)
	usuarios.Post("/:id/verificado", soloAdmin, usuarioHandler.Aprobar)

	// Espacios
	espacios := protected.Group("/espacios")
	espacioHandler := NewEspacioHandler(deps.Espacios)
	espacios.Get("/", espacioHandler.List)
	espacios.Post("/", soloAdmin, espacioHandler.Create)
	espacios.Get("/:id", espacioHandler.GetByID)
	espacios.Patch("/:id", soloAdmin, espacioHandler.Patch)
	espacios.Delete("/:id", soloAdmin, espacioHandler.Delete)

	// Actividades y asistencias
	actividades := protected.Group("/actividades")
	actividadHandler := NewActividadHandler(deps.Actividades)
	asistenciaHandler := NewAsistenciaHandler(deps.Asistencias, deps.ReporteUC)
	actividades.Get("/", actividadHandler.ListByEspacio)
	actividades.Post("/", actividadHandler.Create)
	actividades.Get("/pendientes", soloAdmin, actividadHandler.Pendientes)
	actividades.Get("/:id", actividadHandler.GetByID)
	actividades.Patch("/:id", actividadHandler.Patch)
	actividades.Delete("/:id", actividadHandler.Delete)
	actividades.Post("/:id/aprobar", soloAdmin, actividadHandler.Aprobar)
	actividades.Post("/:id/rechazar", soloAdmin, actividadHandler.Rechazar)
	actividades.Get("/:id/asistencias", asistenciaHandler.ListByActividad)
	actividades.Post("/:id/asistencias", asistenciaHandler.RegistrarMasivo)
	actividades.Get("/:id/asistencias/estadisticas", asistenciaHandler.Estadisticas)
	actividades.Get("/:id/asistencias/planilla", asistenciaHandler.Planilla)

	// Chats y mensajes
	chats := protected.Group("/chats")
	chatHandler := NewChatHandler(deps.ChatUC, deps.Chats)
	chats.Get("/", chatHandler.ListByUsuario)
	chats.Post("/abrir", chatHandler.Abrir)
	chats.Get("/:id/mensajes", chatHandler.Conversacion)
	chats.Post("/:id/mensajes", chatHandler.EnviarMensaje)
	chats.Get("/:id/integrantes", chatHandler.Integrantes)
	chats.Post("/:id/integrantes", chatHandler.AgregarIntegrante)

	// Vínculos
	relacionHandler := NewRelacionHandler(deps.Relaciones)
	protected.Post("/vinculos/referente", RequireRole(entity.RolReferente), relacionHandler.CrearReferente)
	protected.Post("/vinculos/efector", RequireRole(entity.RolEfector), relacionHandler.CrearEfector)
	protected.Get("/vinculos/usmyas", relacionHandler.UsmyasVinculados)

	// Trayectoria de usmyas
	notaHandler := NewNotaHandler(deps.Notas)
	trayectoriaHandler := NewTrayectoriaHandler(deps.TrayectoriaUC, deps.NotifUC)
	usmyas := protected.Group("/usmyas")
	usmyas.Get("/:id/notas", notaHandler.ListByUsmya)
	usmyas.Post("/:id/notas", notaHandler.Create)
	usmyas.Get("/:id/trayectoria", trayectoriaHandler.Timeline)
	protected.Delete("/notas/:id", notaHandler.Delete)

	// Etiquetas
	tags := protected.Group("/tags")
	tagHandler := NewTagHandler(deps.Tags)
	tags.Get("/", tagHandler.List)
	tags.Get("/:id", tagHandler.GetByID)
	tags.Post("/", soloAdmin, tagHandler.Create)
	tags.Patch("/:id", soloAdmin, tagHandler.Patch)
	tags.Delete("/:id", soloAdmin, tagHandler.Delete)

	// Registro con aprobación
	registro := protected.Group("/registro")
	registroHandler := NewRegistroHandler(deps.Registro)
	registro.Post("/usmya", registroHandler.Usmya)
	registro.Post("/referente", registroHandler.Referente)
	registro.Post("/efector", registroHandler.Efector)

	// Admin
	admin := protected.Group("/admin", soloAdmin)
	admin.Get("/pendientes", trayectoriaHandler.Pendientes)
}

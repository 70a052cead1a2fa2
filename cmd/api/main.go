package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/comunidar/comunidad-api/internal/application/auth"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/application/usecase"
	"github.com/comunidar/comunidad-api/internal/infrastructure/api"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
	infrapdf "github.com/comunidar/comunidad-api/internal/infrastructure/pdf"
	httpRouter "github.com/comunidar/comunidad-api/internal/interfaces/http"
	"github.com/comunidar/comunidad-api/internal/metrics"
	"github.com/comunidar/comunidad-api/internal/security"
	"github.com/comunidar/comunidad-api/pkg/config"
	"github.com/comunidar/comunidad-api/pkg/logger"
)

// servicios agrupa los puertos ya resueltos a un adaptador.
type servicios struct {
	usuarios    ports.UsuarioService
	espacios    ports.EspacioService
	actividades ports.ActividadService
	asistencias ports.AsistenciaService
	chats       ports.ChatService
	mensajes    ports.MensajeService
	relaciones  ports.RelacionService
	notas       ports.NotaTrayectoriaService
	tags        ports.TagService
	registro    ports.RegistroService
	auth        ports.Autenticador
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	modo := "vivo"
	if cfg.Backend.UseMocks {
		modo = "mock"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		App:   cfg.App.Name,
		Modo:  modo,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	sanitizador := security.NewSanitizador()

	// El modo se decide una única vez acá: mock en memoria o backend real.
	var svc servicios
	if cfg.Backend.UseMocks {
		svc = serviciosMock(cfg, sanitizador)
	} else {
		svc = serviciosVivos(cfg, sanitizador)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	chatUC := usecase.NewChatUseCase(svc.chats, svc.mensajes)
	trayectoriaUC := usecase.NewTrayectoriaUseCase(svc.asistencias, svc.actividades, svc.notas)
	notifUC := usecase.NewNotificacionUseCase(svc.usuarios)
	reporteUC := usecase.NewReporteUseCase(
		svc.actividades, svc.espacios, svc.asistencias, svc.usuarios,
		infrapdf.NewMarotoPDFGenerator(), collector,
	)

	limiter := httpRouter.NewRateLimiter(httpRouter.DefaultRateLimiterConfig())
	defer limiter.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comunidad API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Usuarios:      svc.usuarios,
		Espacios:      svc.espacios,
		Actividades:   svc.actividades,
		Asistencias:   svc.asistencias,
		Chats:         svc.chats,
		Relaciones:    svc.relaciones,
		Notas:         svc.notas,
		Tags:          svc.tags,
		Registro:      svc.registro,
		Auth:          svc.auth,
		ChatUC:        chatUC,
		TrayectoriaUC: trayectoriaUC,
		NotifUC:       notifUC,
		ReporteUC:     reporteUC,
		Collector:     collector,
		Gatherer:      reg,
		Limiter:       limiter,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// serviciosMock arma todos los puertos sobre el store en memoria.
func serviciosMock(cfg *config.Config, sanitizador ports.Sanitizador) servicios {
	store := mock.NewStore()
	store.Retardo = time.Duration(cfg.Backend.MockLatencyMS) * time.Millisecond

	return servicios{
		usuarios:    mock.NewUsuarioService(store),
		espacios:    mock.NewEspacioService(store),
		actividades: mock.NewActividadService(store),
		asistencias: mock.NewAsistenciaService(store),
		chats:       mock.NewChatService(store),
		mensajes:    mock.NewMensajeService(store, sanitizador),
		relaciones:  mock.NewRelacionService(store),
		notas:       mock.NewNotaTrayectoriaService(store, sanitizador),
		tags:        mock.NewTagService(store),
		registro:    mock.NewRegistroService(store),
		auth: auth.NewAuthUseCase(mock.NewCredencialService(store), auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
	}
}

// serviciosVivos arma todos los puertos sobre el backend real.
func serviciosVivos(cfg *config.Config, sanitizador ports.Sanitizador) servicios {
	client := api.NewClient(cfg.Backend.BaseURL)

	return servicios{
		usuarios:    api.NewUsuarioService(client),
		espacios:    api.NewEspacioService(client),
		actividades: api.NewActividadService(client),
		asistencias: api.NewAsistenciaService(client),
		chats:       api.NewChatService(client),
		mensajes:    api.NewMensajeService(client, sanitizador),
		relaciones:  api.NewRelacionService(client),
		notas:       api.NewNotaTrayectoriaService(client, sanitizador),
		tags:        api.NewTagService(client),
		registro:    api.NewRegistroService(client),
		auth:        api.NewAuthService(client),
	}
}

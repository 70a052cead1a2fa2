// Package ports define los puertos de acceso a datos del sistema. Cada
// entidad tiene un servicio con dos adaptadores: el mock en memoria
// (internal/infrastructure/mock) y el cliente del backend real
// (internal/infrastructure/api). El adaptador se elige una sola vez al
// armar la aplicación; ninguna operación decide el modo en runtime.
//
// Convenciones compartidas por todos los puertos:
//   - Las búsquedas que no encuentran nada devuelven (nil, nil).
//   - Los errores de negocio son los sentinelas de internal/domain.
//   - Una operación sin soporte en el contrato del backend real devuelve
//     domain.ErrNoSoportado, nunca un éxito engañoso ni un no-op.
package ports

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// UsuarioService consultas y comandos sobre usuarios.
type UsuarioService interface {
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	List(ctx context.Context) ([]entity.Usuario, error)
	Search(ctx context.Context, termino string) ([]entity.Usuario, error)
	Create(ctx context.Context, u entity.Usuario) (*entity.Usuario, error)
	// Patch aplica una mutación parcial. Sin soporte en el contrato del
	// backend real: el adaptador vivo devuelve domain.ErrNoSoportado.
	Patch(ctx context.Context, id int, cambio func(*entity.Usuario)) (*entity.Usuario, error)
	Delete(ctx context.Context, id int) (bool, error)

	GetUsersPendingApproval(ctx context.Context) ([]entity.Usuario, error)
	PostVerified(ctx context.Context, id int) (*entity.Usuario, error)

	// SearchAvailableUsmya excluye a los usmyas ya vinculados al referente
	// antes de aplicar el filtro de texto. La variante ForEfector hace lo
	// propio con la relación efector-usmya.
	SearchAvailableUsmya(ctx context.Context, termino string, idReferente int) ([]entity.Usuario, error)
	SearchAvailableUsmyaForEfector(ctx context.Context, termino string, idEfector int) ([]entity.Usuario, error)
}

// EspacioService consultas y comandos sobre espacios.
type EspacioService interface {
	List(ctx context.Context) ([]entity.Espacio, error)
	GetByID(ctx context.Context, id int) (*entity.Espacio, error)
	Search(ctx context.Context, termino string) ([]entity.Espacio, error)
	Create(ctx context.Context, e entity.Espacio) (*entity.Espacio, error)
	Update(ctx context.Context, id int, cambio func(*entity.Espacio)) (*entity.Espacio, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ActividadService consultas y comandos sobre actividades.
type ActividadService interface {
	GetByID(ctx context.Context, id int) (*entity.Actividad, error)
	ListByEspacio(ctx context.Context, idEspacio int) ([]entity.Actividad, error)
	ListPendientes(ctx context.Context) ([]entity.Actividad, error)
	// Create deja la actividad pendiente salvo que idCreador sea el agente
	// del propio espacio, en cuyo caso queda aprobada.
	Create(ctx context.Context, a entity.Actividad, idCreador int) (*entity.Actividad, error)
	Update(ctx context.Context, id int, cambio func(*entity.Actividad)) (*entity.Actividad, error)
	Aprobar(ctx context.Context, id int) (*entity.Actividad, error)
	Rechazar(ctx context.Context, id int) (*entity.Actividad, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// AsistenciaService registro y consulta de asistencias.
type AsistenciaService interface {
	ListByActividad(ctx context.Context, idActividad int) ([]entity.Asistencia, error)
	ListByUsuario(ctx context.Context, idUser int) ([]entity.Asistencia, error)
	// RegistrarAsistenciasMasivo procesa las filas en orden de entrada con
	// semántica de upsert por (idActividad, idUser): actualiza la fila
	// existente o crea una nueva, nunca reemplaza el conjunto completo.
	RegistrarAsistenciasMasivo(ctx context.Context, idActividad int, registros []dto.RegistroAsistencia) ([]entity.Asistencia, error)
	GetEstadisticasByActividad(ctx context.Context, idActividad int) (dto.EstadisticasAsistencia, error)
}

// ChatService conversaciones y membresías.
type ChatService interface {
	GetByUsmyaYTipo(ctx context.Context, idUsmya int, tipo string) (*entity.Chat, error)
	Create(ctx context.Context, idUsmya int, tipo string) (*entity.Chat, error)
	ListByUsuario(ctx context.Context, idUser int) ([]entity.Chat, error)

	// CreateIntegrante devuelve domain.ErrMiembroDuplicado si el par
	// (chat, usuario) ya existe. Es el único invariante duro del dominio.
	CreateIntegrante(ctx context.Context, idChat, idUser int) (*entity.IntegranteChat, error)
	EsIntegrante(ctx context.Context, idChat, idUser int) (bool, error)
	ListIntegrantes(ctx context.Context, idChat int) ([]entity.IntegranteChat, error)
}

// MensajeService mensajes de un chat.
type MensajeService interface {
	// GetMensajesByChatIDOrdered ordena ascendente por fecha+hora; los
	// empates conservan el orden de inserción.
	GetMensajesByChatIDOrdered(ctx context.Context, idChat int) ([]entity.Mensaje, error)
	GetUltimoMensaje(ctx context.Context, idChat int) (*entity.Mensaje, error)
	Create(ctx context.Context, m entity.Mensaje) (*entity.Mensaje, error)
}

// RelacionService vínculos referente-usmya y efector-usmya. Las consultas
// de vínculos no existen en el contrato del backend real: el adaptador
// vivo devuelve domain.ErrNoSoportado para los List y Exists.
type RelacionService interface {
	CreateReferente(ctx context.Context, idReferente, idUsmya int) (*entity.ReferenteUsmya, error)
	CreateEfector(ctx context.Context, idEfector, idUsmya int) (*entity.EfectorUsmya, error)
	ListUsmyasByReferente(ctx context.Context, idReferente int) ([]int, error)
	ListUsmyasByEfector(ctx context.Context, idEfector int) ([]int, error)
	ExisteReferente(ctx context.Context, idReferente, idUsmya int) (bool, error)
	ExisteEfector(ctx context.Context, idEfector, idUsmya int) (bool, error)
}

// NotaTrayectoriaService notas de trayectoria de un usmya.
type NotaTrayectoriaService interface {
	ListByUsmya(ctx context.Context, idUsmya int) ([]entity.NotaTrayectoria, error)
	Create(ctx context.Context, n entity.NotaTrayectoria) (*entity.NotaTrayectoria, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// TagService taxonomía plana de etiquetas.
type TagService interface {
	List(ctx context.Context) ([]entity.Tag, error)
	GetByID(ctx context.Context, id int) (*entity.Tag, error)
	Create(ctx context.Context, t entity.Tag) (*entity.Tag, error)
	Update(ctx context.Context, id int, cambio func(*entity.Tag)) (*entity.Tag, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// RegistroService altas de usuarios con flujo de aprobación.
type RegistroService interface {
	PostUsmya(ctx context.Context, in dto.RegistroUsmyaRequest) (*entity.Usuario, error)
	PostReferente(ctx context.Context, in dto.RegistroReferenteRequest) (*entity.Usuario, error)
	PostEfector(ctx context.Context, in dto.RegistroEfectorRequest) (*entity.Usuario, error)
}

// CredencialService búsqueda de credenciales para login.
type CredencialService interface {
	GetByEmail(ctx context.Context, email string) (*entity.AuthUser, error)
}

// Autenticador resuelve un login a token + sesión. En modo mock lo cubre
// el caso de uso local (bcrypt sobre CredencialService); en modo vivo, el
// endpoint de login del backend.
type Autenticador interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// Sanitizador limpia HTML de texto libre antes de persistirlo.
type Sanitizador interface {
	Sanitize(raw string) string
}

// GeneradorPDF produce la planilla de asistencia de una actividad.
type GeneradorPDF interface {
	PlanillaAsistencia(actividad entity.Actividad, espacio *entity.Espacio, filas []FilaAsistencia) ([]byte, error)
}

// FilaAsistencia es una fila ya resuelta (asistencia + usuario) para la
// planilla PDF.
type FilaAsistencia struct {
	NombreCompleto string
	DNI            string
	Estado         string
	Observacion    string
}

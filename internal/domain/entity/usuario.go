package entity

// Roles válidos para Usuario. El rol es inmutable una vez creado el usuario.
const (
	RolAdmin     = "admin"
	RolAgente    = "agente"
	RolEfector   = "efector"
	RolReferente = "referente"
	RolUsmya     = "usmya"
)

// Estados de verificación de un usuario dentro del flujo de aprobación.
const (
	VerificacionPendiente = "pendiente"
	VerificacionAprobado  = "aprobado"
)

// Usuario representa a una persona del sistema: administración, agentes
// territoriales, efectores de salud, referentes afectivos y usmyas.
// CreadoPor, si está seteado, referencia al Usuario que dio el alta.
type Usuario struct {
	ID                  int     `json:"id"`
	UUID                string  `json:"uuid,omitempty"` // identificador del backend real, si existe
	Nombre              string  `json:"nombre"`
	Apellido            string  `json:"apellido"`
	DNI                 string  `json:"dni"`
	FechaNacimiento     string  `json:"fechaNacimiento"` // AAAA-MM-DD
	Telefono            string  `json:"telefono"`
	DireccionResidencia string  `json:"direccionResidencia"`
	Barrio              string  `json:"barrio"`
	Alias               string  `json:"alias"`
	GeneroAutopercibido string  `json:"generoAutopercibido"`
	EstadoCivil         string  `json:"estadoCivil"`
	ObraSocial          string  `json:"obraSocial"`
	Latitud             float64 `json:"latitud,omitempty"`
	Longitud            float64 `json:"longitud,omitempty"`
	Rol                 string  `json:"rol"`
	IsVerified          string  `json:"isVerified"` // pendiente | aprobado
	RequiereAprobacion  bool    `json:"requiereAprobacion"`
	CreadoPor           int     `json:"creadoPor,omitempty"`
	EsEfector           bool    `json:"esEfector,omitempty"`
	EsETratante         bool    `json:"esETratante,omitempty"`
	RegistroConUsmya    bool    `json:"registroConUsmya,omitempty"`
	IDEspacio           int     `json:"idEspacio,omitempty"`
	Necesidades         string  `json:"necesidades,omitempty"`
	Deseos              string  `json:"deseos,omitempty"`
	Demandas            string  `json:"demandas,omitempty"`
	Intereses           string  `json:"intereses,omitempty"`
	Etiquetas           []int   `json:"etiquetas,omitempty"` // ids de Tag que anotan el resumen
}

// NombreCompleto concatena nombre y apellido para presentación.
func (u Usuario) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}

// EstaPendiente indica si el usuario espera aprobación administrativa.
func (u Usuario) EstaPendiente() bool {
	return u.IsVerified == VerificacionPendiente
}

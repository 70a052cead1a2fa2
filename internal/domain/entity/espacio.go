package entity

// Tipos de organización válidos para un Espacio.
const (
	EspacioClub            = "club"
	EspacioCentroCultural  = "centro cultural"
	EspacioCentroSalud     = "centro de salud"
	EspacioEscuela         = "escuela"
	EspacioIglesia         = "iglesia"
	EspacioMerendero       = "merendero"
	EspacioONG             = "ong"
	EspacioSociedadFomento = "sociedad de fomento"
	EspacioOtro            = "otro"
)

// Espacio es una institución u organización territorial que ofrece
// actividades y a la que pertenecen agentes y efectores vía IDEspacio.
type Espacio struct {
	ID                  int      `json:"id"`
	UUID                string   `json:"uuid,omitempty"`
	Nombre              string   `json:"nombre"`
	Telefono            string   `json:"telefono"`
	Direccion           string   `json:"direccion"`
	Barrio              string   `json:"barrio"`
	Tipo                string   `json:"tipo"`
	Encargado           string   `json:"encargado"`
	DNIEncargado        string   `json:"dniEncargado,omitempty"`
	Horario             string   `json:"horario"`
	PoblacionVinculada  []string `json:"poblacionVinculada,omitempty"`
	ActividadPrincipal  string   `json:"actividadPrincipal"`
	ActividadSecundaria string   `json:"actividadSecundaria,omitempty"`
	TieneInternet       bool     `json:"tieneInternet"`
	TieneDispositivos   bool     `json:"tieneDispositivos"`
}

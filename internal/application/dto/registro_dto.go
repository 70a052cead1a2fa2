package dto

// RegistroUsmyaRequest entrada del alta de un usmya. El usuario nace
// pendiente de aprobación.
type RegistroUsmyaRequest struct {
	Nombre              string `json:"nombre" validate:"required"`
	Apellido            string `json:"apellido"`
	DNI                 string `json:"dni" validate:"required"`
	FechaNacimiento     string `json:"fechaNacimiento"`
	Telefono            string `json:"telefono"`
	DireccionResidencia string `json:"direccionResidencia"`
	Barrio              string `json:"barrio"`
	Alias               string `json:"alias"`
	GeneroAutopercibido string `json:"generoAutopercibido"`
	ObraSocial          string `json:"obraSocial"`
	CreadoPor           int    `json:"creadoPor"`
}

// RegistroReferenteRequest entrada del alta de un referente afectivo.
type RegistroReferenteRequest struct {
	Nombre           string `json:"nombre" validate:"required"`
	Apellido         string `json:"apellido"`
	DNI              string `json:"dni" validate:"required"`
	Telefono         string `json:"telefono"`
	RegistroConUsmya bool   `json:"registroConUsmya"`
	CreadoPor        int    `json:"creadoPor"`
}

// RegistroEfectorRequest entrada del alta de un efector de salud.
type RegistroEfectorRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Apellido    string `json:"apellido"`
	DNI         string `json:"dni" validate:"required"`
	Telefono    string `json:"telefono"`
	EsETratante bool   `json:"esETratante"`
	IDEspacio   int    `json:"idEspacio"`
	CreadoPor   int    `json:"creadoPor"`
}

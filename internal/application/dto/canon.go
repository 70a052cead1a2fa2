package dto

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mapas de canonicalización dominio → wire. Los valores conocidos se
// escriben con la capitalización que espera el backend; los desconocidos
// pasan capitalizados tal cual vienen.
var (
	userRoleMap = map[string]string{
		"admin":     "Admin",
		"agente":    "Agente",
		"efector":   "Efector",
		"referente": "Referente",
		"usmya":     "Usmya",
	}

	workspaceTypeMap = map[string]string{
		"club":                "Club",
		"centro cultural":     "Centro Cultural",
		"centro de salud":     "Centro De Salud",
		"escuela":             "Escuela",
		"iglesia":             "Iglesia",
		"merendero":           "Merendero",
		"ong":                 "ONG",
		"sociedad de fomento": "Sociedad De Fomento",
		"otro":                "Otro",
	}

	userStatusMap = map[string]string{
		"pendiente": "Pendiente",
		"aprobado":  "Aprobado",
	}

	activityStatusMap = map[string]string{
		"pendiente": "Pending",
		"aprobada":  "Approved",
		"rechazada": "Rejected",
	}
)

var titulador = cases.Title(language.Spanish)

// CanonicalizarRol traduce un rol de dominio al valor canónico del wire.
func CanonicalizarRol(rol string) string {
	return canonicalizar(userRoleMap, rol)
}

// CanonicalizarTipoEspacio traduce el tipo de organización al wire.
func CanonicalizarTipoEspacio(tipo string) string {
	return canonicalizar(workspaceTypeMap, tipo)
}

// CanonicalizarEstadoActividad traduce el estado de actividad al wire.
func CanonicalizarEstadoActividad(estado string) string {
	return canonicalizar(activityStatusMap, estado)
}

func canonicalizar(mapa map[string]string, v string) string {
	if v == "" {
		return ""
	}
	if canon, ok := mapa[strings.ToLower(v)]; ok {
		return canon
	}
	return titulador.String(v)
}

// desCanonicalizar invierte un mapa de canonicalización; los valores no
// mapeados vuelven en minúsculas.
func desCanonicalizar(mapa map[string]string, v string) string {
	for dominio, canon := range mapa {
		if strings.EqualFold(canon, v) {
			return dominio
		}
	}
	return strings.ToLower(v)
}

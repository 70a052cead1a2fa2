package entity

// Tag es una entrada de taxonomía plana usada para anotar las secciones de
// resumen de un usuario (necesidades, deseos, demandas, intereses).
type Tag struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

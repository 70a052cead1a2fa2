package dto

import "github.com/comunidar/comunidad-api/internal/domain/entity"

// PatchUsuarioRequest actualización parcial de un usuario. Solo los campos
// presentes en el cuerpo se aplican. Rol viaja pero el servicio lo rechaza
// si difiere del actual.
type PatchUsuarioRequest struct {
	Nombre              *string `json:"nombre,omitempty"`
	Apellido            *string `json:"apellido,omitempty"`
	DNI                 *string `json:"dni,omitempty"`
	FechaNacimiento     *string `json:"fechaNacimiento,omitempty"`
	Telefono            *string `json:"telefono,omitempty"`
	DireccionResidencia *string `json:"direccionResidencia,omitempty"`
	Barrio              *string `json:"barrio,omitempty"`
	Alias               *string `json:"alias,omitempty"`
	GeneroAutopercibido *string `json:"generoAutopercibido,omitempty"`
	EstadoCivil         *string `json:"estadoCivil,omitempty"`
	ObraSocial          *string `json:"obraSocial,omitempty"`
	Rol                 *string `json:"rol,omitempty"`
	IDEspacio           *int    `json:"idEspacio,omitempty"`
	Necesidades         *string `json:"necesidades,omitempty"`
	Deseos              *string `json:"deseos,omitempty"`
	Demandas            *string `json:"demandas,omitempty"`
	Intereses           *string `json:"intereses,omitempty"`
	Etiquetas           *[]int  `json:"etiquetas,omitempty"`
}

// Aplicar vuelca los campos presentes sobre el usuario.
func (p PatchUsuarioRequest) Aplicar(u *entity.Usuario) {
	aplicarTexto(p.Nombre, &u.Nombre)
	aplicarTexto(p.Apellido, &u.Apellido)
	aplicarTexto(p.DNI, &u.DNI)
	aplicarTexto(p.FechaNacimiento, &u.FechaNacimiento)
	aplicarTexto(p.Telefono, &u.Telefono)
	aplicarTexto(p.DireccionResidencia, &u.DireccionResidencia)
	aplicarTexto(p.Barrio, &u.Barrio)
	aplicarTexto(p.Alias, &u.Alias)
	aplicarTexto(p.GeneroAutopercibido, &u.GeneroAutopercibido)
	aplicarTexto(p.EstadoCivil, &u.EstadoCivil)
	aplicarTexto(p.ObraSocial, &u.ObraSocial)
	aplicarTexto(p.Rol, &u.Rol)
	if p.IDEspacio != nil {
		u.IDEspacio = *p.IDEspacio
	}
	aplicarTexto(p.Necesidades, &u.Necesidades)
	aplicarTexto(p.Deseos, &u.Deseos)
	aplicarTexto(p.Demandas, &u.Demandas)
	aplicarTexto(p.Intereses, &u.Intereses)
	if p.Etiquetas != nil {
		u.Etiquetas = *p.Etiquetas
	}
}

// PatchEspacioRequest actualización parcial de un espacio.
type PatchEspacioRequest struct {
	Nombre              *string   `json:"nombre,omitempty"`
	Telefono            *string   `json:"telefono,omitempty"`
	Direccion           *string   `json:"direccion,omitempty"`
	Barrio              *string   `json:"barrio,omitempty"`
	Tipo                *string   `json:"tipo,omitempty"`
	Encargado           *string   `json:"encargado,omitempty"`
	DNIEncargado        *string   `json:"dniEncargado,omitempty"`
	Horario             *string   `json:"horario,omitempty"`
	PoblacionVinculada  *[]string `json:"poblacionVinculada,omitempty"`
	ActividadPrincipal  *string   `json:"actividadPrincipal,omitempty"`
	ActividadSecundaria *string   `json:"actividadSecundaria,omitempty"`
	TieneInternet       *bool     `json:"tieneInternet,omitempty"`
	TieneDispositivos   *bool     `json:"tieneDispositivos,omitempty"`
}

// Aplicar vuelca los campos presentes sobre el espacio.
func (p PatchEspacioRequest) Aplicar(e *entity.Espacio) {
	aplicarTexto(p.Nombre, &e.Nombre)
	aplicarTexto(p.Telefono, &e.Telefono)
	aplicarTexto(p.Direccion, &e.Direccion)
	aplicarTexto(p.Barrio, &e.Barrio)
	aplicarTexto(p.Tipo, &e.Tipo)
	aplicarTexto(p.Encargado, &e.Encargado)
	aplicarTexto(p.DNIEncargado, &e.DNIEncargado)
	aplicarTexto(p.Horario, &e.Horario)
	if p.PoblacionVinculada != nil {
		e.PoblacionVinculada = *p.PoblacionVinculada
	}
	aplicarTexto(p.ActividadPrincipal, &e.ActividadPrincipal)
	aplicarTexto(p.ActividadSecundaria, &e.ActividadSecundaria)
	if p.TieneInternet != nil {
		e.TieneInternet = *p.TieneInternet
	}
	if p.TieneDispositivos != nil {
		e.TieneDispositivos = *p.TieneDispositivos
	}
}

// PatchActividadRequest actualización parcial de una actividad. El estado
// no se toca acá: tiene sus propias transiciones de aprobación.
type PatchActividadRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	Fecha       *string `json:"fecha,omitempty"`
	HoraInicio  *string `json:"horaInicio,omitempty"`
	HoraFin     *string `json:"horaFin,omitempty"`
	Responsable *string `json:"responsable,omitempty"`
	Lugar       *string `json:"lugar,omitempty"`
	EsFija      *bool   `json:"esFija,omitempty"`
}

// Aplicar vuelca los campos presentes sobre la actividad.
func (p PatchActividadRequest) Aplicar(a *entity.Actividad) {
	aplicarTexto(p.Nombre, &a.Nombre)
	aplicarTexto(p.Descripcion, &a.Descripcion)
	aplicarTexto(p.Fecha, &a.Fecha)
	aplicarTexto(p.HoraInicio, &a.HoraInicio)
	aplicarTexto(p.HoraFin, &a.HoraFin)
	aplicarTexto(p.Responsable, &a.Responsable)
	aplicarTexto(p.Lugar, &a.Lugar)
	if p.EsFija != nil {
		a.EsFija = *p.EsFija
	}
}

// PatchTagRequest actualización parcial de una etiqueta.
type PatchTagRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// Aplicar vuelca los campos presentes sobre la etiqueta.
func (p PatchTagRequest) Aplicar(t *entity.Tag) {
	aplicarTexto(p.Nombre, &t.Nombre)
	aplicarTexto(p.Descripcion, &t.Descripcion)
}

func aplicarTexto(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

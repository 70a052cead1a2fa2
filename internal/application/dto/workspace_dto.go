package dto

import (
	"strconv"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// WorkspaceDTO es la forma wire de un Espacio. El contrato exige
// nationalId siempre presente: cuando falta, viaja el literal "0".
type WorkspaceDTO struct {
	UUID              string   `json:"uuid,omitempty"`
	Name              *string  `json:"name"`
	PhoneNumber       *string  `json:"phoneNumber"`
	NationalID        *string  `json:"nationalId"`
	Address           *string  `json:"address"`
	Neighborhood      *string  `json:"neighborhood"`
	Type              string   `json:"type"`
	Assignee          *string  `json:"assignee"`
	OpeningHours      *string  `json:"openingHours"`
	LinkedPopulation  []string `json:"linkedPopulation,omitempty"`
	MainActivity      *string  `json:"mainActivity"`
	SecondaryActivity *string  `json:"secondaryActivity"`
	HasInternet       bool     `json:"hasInternet"`
	HasDevices        bool     `json:"hasDevices"`
}

// WorkspaceUpdateDTO es la variante parcial para PATCH/PUT: solo viajan
// los campos presentes.
type WorkspaceUpdateDTO struct {
	Name              *string  `json:"name,omitempty"`
	PhoneNumber       *string  `json:"phoneNumber,omitempty"`
	Address           *string  `json:"address,omitempty"`
	Neighborhood      *string  `json:"neighborhood,omitempty"`
	Type              string   `json:"type,omitempty"`
	Assignee          *string  `json:"assignee,omitempty"`
	OpeningHours      *string  `json:"openingHours,omitempty"`
	LinkedPopulation  []string `json:"linkedPopulation,omitempty"`
	MainActivity      *string  `json:"mainActivity,omitempty"`
	SecondaryActivity *string  `json:"secondaryActivity,omitempty"`
	HasInternet       *bool    `json:"hasInternet,omitempty"`
	HasDevices        *bool    `json:"hasDevices,omitempty"`
}

// ToWorkspaceDTO mapea un Espacio a la forma wire.
func ToWorkspaceDTO(e entity.Espacio) WorkspaceDTO {
	return WorkspaceDTO{
		UUID:              e.UUID,
		Name:              Texto(e.Nombre),
		PhoneNumber:       Texto(e.Telefono),
		NationalID:        TextoODefecto(e.DNIEncargado, "0"),
		Address:           Texto(e.Direccion),
		Neighborhood:      Texto(e.Barrio),
		Type:              CanonicalizarTipoEspacio(e.Tipo),
		Assignee:          Texto(e.Encargado),
		OpeningHours:      Texto(e.Horario),
		LinkedPopulation:  e.PoblacionVinculada,
		MainActivity:      Texto(e.ActividadPrincipal),
		SecondaryActivity: Texto(e.ActividadSecundaria),
		HasInternet:       e.TieneInternet,
		HasDevices:        e.TieneDispositivos,
	}
}

// ToWorkspaceUpdateDTO arma el cuerpo parcial de actualización a partir de
// los campos no vacíos del Espacio.
func ToWorkspaceUpdateDTO(e entity.Espacio) WorkspaceUpdateDTO {
	d := WorkspaceUpdateDTO{
		Name:              Texto(e.Nombre),
		PhoneNumber:       Texto(e.Telefono),
		Address:           Texto(e.Direccion),
		Neighborhood:      Texto(e.Barrio),
		Assignee:          Texto(e.Encargado),
		OpeningHours:      Texto(e.Horario),
		LinkedPopulation:  e.PoblacionVinculada,
		MainActivity:      Texto(e.ActividadPrincipal),
		SecondaryActivity: Texto(e.ActividadSecundaria),
	}
	if e.Tipo != "" {
		d.Type = CanonicalizarTipoEspacio(e.Tipo)
	}
	internet, dispositivos := e.TieneInternet, e.TieneDispositivos
	d.HasInternet, d.HasDevices = &internet, &dispositivos
	return d
}

// FromWorkspaceDTO mapea la forma wire al dominio, separando dirección y
// barrio con la heurística de SplitAddressParts.
func FromWorkspaceDTO(d WorkspaceDTO) entity.Espacio {
	e := entity.Espacio{
		UUID:                d.UUID,
		Nombre:              Valor(d.Name),
		Telefono:            Valor(d.PhoneNumber),
		DNIEncargado:        Valor(d.NationalID),
		Tipo:                desCanonicalizar(workspaceTypeMap, d.Type),
		Encargado:           Valor(d.Assignee),
		Horario:             Valor(d.OpeningHours),
		PoblacionVinculada:  d.LinkedPopulation,
		ActividadPrincipal:  Valor(d.MainActivity),
		ActividadSecundaria: Valor(d.SecondaryActivity),
		TieneInternet:       d.HasInternet,
		TieneDispositivos:   d.HasDevices,
	}
	e.Direccion, e.Barrio = SplitAddressParts(Valor(d.Address), Valor(d.Neighborhood))
	if n, err := strconv.Atoi(d.UUID); err == nil {
		e.ID = n
	}
	return e
}

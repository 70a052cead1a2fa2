package dto

import (
	"strconv"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// UserDTO es la forma wire de un usuario según el contrato del backend
// real: nombres de campo en inglés y ausencias como null.
type UserDTO struct {
	UUID            string   `json:"uuid,omitempty"`
	Name            *string  `json:"name"`
	Lastname        *string  `json:"lastname"`
	FullName        *string  `json:"fullName,omitempty"` // algunos endpoints devuelven el nombre ya combinado
	NationalID      *string  `json:"nationalId"`
	BirthDate       *string  `json:"birthDate"`
	PhoneNumber     *string  `json:"phoneNumber"`
	Address         *string  `json:"address"`
	Neighborhood    *string  `json:"neighborhood"`
	Alias           *string  `json:"alias"`
	GenderIdentity  *string  `json:"genderIdentity"`
	MaritalStatus   *string  `json:"maritalStatus"`
	HealthInsurance *string  `json:"healthInsurance"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Role            string   `json:"role"`
	Status          *string  `json:"status"`
	WorkspaceID     *int     `json:"workspaceId,omitempty"`
}

// ToUserDTO mapea un Usuario de dominio a la forma wire. Los strings
// ausentes viajan como null; el rol pasa por el mapa de canonicalización.
func ToUserDTO(u entity.Usuario) UserDTO {
	d := UserDTO{
		UUID:            u.UUID,
		Name:            Texto(u.Nombre),
		Lastname:        Texto(u.Apellido),
		NationalID:      Texto(u.DNI),
		BirthDate:       Texto(u.FechaNacimiento),
		PhoneNumber:     Texto(u.Telefono),
		Address:         Texto(u.DireccionResidencia),
		Neighborhood:    Texto(u.Barrio),
		Alias:           Texto(u.Alias),
		GenderIdentity:  Texto(u.GeneroAutopercibido),
		MaritalStatus:   Texto(u.EstadoCivil),
		HealthInsurance: Texto(u.ObraSocial),
		Role:            CanonicalizarRol(u.Rol),
		Status:          Texto(canonicalizar(userStatusMap, u.IsVerified)),
	}
	if u.Latitud != 0 || u.Longitud != 0 {
		lat, lng := u.Latitud, u.Longitud
		d.Latitude, d.Longitude = &lat, &lng
	}
	if u.IDEspacio != 0 {
		id := u.IDEspacio
		d.WorkspaceID = &id
	}
	return d
}

// FromUserDTO mapea la forma wire al dominio. Reconstruye nombre y apellido
// desde fullName cuando los campos separados faltan, separa la dirección
// combinada y mapea uuid a id cuando el uuid es numérico.
func FromUserDTO(d UserDTO) entity.Usuario {
	u := entity.Usuario{
		UUID:                d.UUID,
		Nombre:              Valor(d.Name),
		Apellido:            Valor(d.Lastname),
		DNI:                 Valor(d.NationalID),
		FechaNacimiento:     Valor(d.BirthDate),
		Telefono:            Valor(d.PhoneNumber),
		Alias:               Valor(d.Alias),
		GeneroAutopercibido: Valor(d.GenderIdentity),
		EstadoCivil:         Valor(d.MaritalStatus),
		ObraSocial:          Valor(d.HealthInsurance),
		Rol:                 desCanonicalizar(userRoleMap, d.Role),
		IsVerified:          desCanonicalizar(userStatusMap, Valor(d.Status)),
	}
	if u.Nombre == "" && d.FullName != nil {
		u.Nombre = *d.FullName
	}
	u.DireccionResidencia, u.Barrio = SplitAddressParts(Valor(d.Address), Valor(d.Neighborhood))
	if d.Latitude != nil {
		u.Latitud = *d.Latitude
	}
	if d.Longitude != nil {
		u.Longitud = *d.Longitude
	}
	if d.WorkspaceID != nil {
		u.IDEspacio = *d.WorkspaceID
	}
	if n, err := strconv.Atoi(d.UUID); err == nil {
		u.ID = n
	}
	return u
}

package dto

import "strings"

// SplitAddressParts separa una dirección combinada ("calle, barrio") en
// dirección y barrio. Si hay un barrio explícito, ese gana siempre.
//
// La heurística es deliberadamente la del contrato original: con una sola
// parte, todo es dirección; con más de una, la última parte se toma como
// barrio salvo barrio explícito. Es ambigua cuando la calle contiene una
// coma por otro motivo; se conserva tal cual como limitación conocida de
// calidad de datos.
func SplitAddressParts(address, neighborhood string) (direccion, barrio string) {
	partes := strings.Split(address, ",")
	for i := range partes {
		partes[i] = strings.TrimSpace(partes[i])
	}
	if len(partes) <= 1 {
		return strings.TrimSpace(address), neighborhood
	}
	direccion = strings.Join(partes[:len(partes)-1], ", ")
	if neighborhood != "" {
		return direccion, neighborhood
	}
	return direccion, partes[len(partes)-1]
}

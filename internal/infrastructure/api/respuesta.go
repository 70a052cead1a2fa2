package api

import (
	"encoding/json"
	"fmt"

	"github.com/comunidar/comunidad-api/internal/application/dto"
)

// decodificarLista desenvuelve el cuerpo con la prioridad de sobres de
// NormalizeListResponse y decodifica cada elemento al DTO D.
func decodificarLista[D any](datos []byte) ([]D, error) {
	out := []D{}
	for _, raw := range dto.NormalizeListResponse(datos) {
		var d D
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("api: decodificar elemento de lista: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// decodificarEntidad desenvuelve y decodifica una entidad única. Un cuerpo
// vacío, null o que no parsea se trata como ausente (nil), no como error:
// solo el status HTTP decide el fallo.
func decodificarEntidad[D any](datos []byte) *D {
	raw := dto.NormalizeEntityResponse(datos)
	if len(raw) == 0 {
		return nil
	}
	var d D
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	return &d
}

package dto

import (
	"bytes"
	"encoding/json"
)

// Los distintos endpoints del backend envuelven las listas de formas
// distintas. NormalizeListResponse resuelve el cuerpo probando, en orden de
// prioridad, cada convención conocida y devolviendo la primera coincidencia
// no vacía:
//
//	arreglo crudo → response.items → response.views → response (si es
//	arreglo) → items → views → data → lista vacía
//
// El orden importa: response.items debe ganarle al chequeo más grueso de
// response-como-arreglo.
func NormalizeListResponse(payload []byte) []json.RawMessage {
	if lista := comoLista(payload); len(lista) > 0 {
		return lista
	}

	var sonda struct {
		Response json.RawMessage `json:"response"`
		Items    json.RawMessage `json:"items"`
		Views    json.RawMessage `json:"views"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &sonda); err != nil {
		return []json.RawMessage{}
	}

	if len(sonda.Response) > 0 {
		var interna struct {
			Items json.RawMessage `json:"items"`
			Views json.RawMessage `json:"views"`
		}
		_ = json.Unmarshal(sonda.Response, &interna)
		for _, candidato := range [][]byte{interna.Items, interna.Views, sonda.Response} {
			if lista := comoLista(candidato); len(lista) > 0 {
				return lista
			}
		}
	}
	for _, candidato := range [][]byte{sonda.Items, sonda.Views, sonda.Data} {
		if lista := comoLista(candidato); len(lista) > 0 {
			return lista
		}
	}
	return []json.RawMessage{}
}

// NormalizeEntityResponse desenvuelve una entidad: response, si no data,
// si no el cuerpo tal cual. Cuerpo vacío o null devuelve nil.
func NormalizeEntityResponse(payload []byte) json.RawMessage {
	if esNulo(payload) {
		return nil
	}
	var sonda struct {
		Response json.RawMessage `json:"response"`
		Data     json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &sonda); err == nil {
		if !esNulo(sonda.Response) {
			return sonda.Response
		}
		if !esNulo(sonda.Data) {
			return sonda.Data
		}
	}
	return payload
}

func comoLista(raw []byte) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var lista []json.RawMessage
	if err := json.Unmarshal(raw, &lista); err != nil {
		return nil
	}
	return lista
}

func esNulo(raw []byte) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

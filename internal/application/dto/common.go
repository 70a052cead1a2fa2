package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Texto devuelve un puntero al string, o nil si está vacío. En el contrato
// del backend los campos ausentes viajan como null, no como cadena vacía.
func Texto(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Valor desreferencia un *string tolerando nil.
func Valor(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// TextoODefecto es como Texto pero con un default de negocio para campos
// que el contrato exige siempre presentes (ej. nationalId = "0").
func TextoODefecto(s, def string) *string {
	if s == "" {
		return &def
	}
	return &s
}

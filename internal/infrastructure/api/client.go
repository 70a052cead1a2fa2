// Package api implementa los puertos de acceso a datos contra el backend
// real vía REST/JSON. Es el adaptador simétrico de internal/infrastructure/
// mock: misma interfaz, transporte HTTP con token bearer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrorHTTP transporta una respuesta no-2xx del backend: el mensaje que
// mandó el servidor si lo hubo, y siempre el status numérico.
type ErrorHTTP struct {
	Status  int
	Mensaje string
}

func (e *ErrorHTTP) Error() string {
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return fmt.Sprintf("petición fallida (status %d)", e.Status)
}

// Client es el cliente HTTP del backend real. Adjunta el token bearer si
// el proveedor devuelve uno, y desenvuelve los cuerpos JSON tolerando
// cuerpos vacíos o no-JSON.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string

	mu       sync.Mutex
	sesionTk string
}

// Option configura el Client.
type Option func(*Client)

// WithTokenProvider define de dónde sale el token bearer. Un provider que
// devuelve cadena vacía omite el header.
func WithTokenProvider(fn func() string) Option {
	return func(c *Client) { c.token = fn }
}

// WithHTTPClient reemplaza el http.Client subyacente (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient construye el cliente con la URL base del backend.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 25 * time.Second},
		token:   func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken fija el token de sesión obtenido del login del backend. Tiene
// prioridad sobre el provider configurado.
func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	c.sesionTk = tok
	c.mu.Unlock()
}

func (c *Client) tokenActual() string {
	c.mu.Lock()
	tok := c.sesionTk
	c.mu.Unlock()
	if tok != "" {
		return tok
	}
	return c.token()
}

// Do arma y ejecuta la petición. Devuelve el cuerpo crudo; el único motivo
// de error además del transporte es un status no-2xx, nunca un cuerpo que
// no parsea.
func (c *Client) Do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var cuerpo io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: serializar request: %w", err)
		}
		cuerpo = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, cuerpo)
	if err != nil {
		return nil, fmt.Errorf("api: armar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if tok := c.tokenActual(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	datos, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("respuesta no-2xx del backend")
		return nil, &ErrorHTTP{Status: resp.StatusCode, Mensaje: mensajeDeError(datos)}
	}
	return datos, nil
}

// mensajeDeError intenta extraer el campo message (o error) del cuerpo.
// Un cuerpo que no parsea se trata como ausente, no como error propio.
func mensajeDeError(datos []byte) string {
	var sonda struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(datos, &sonda); err != nil {
		return ""
	}
	if sonda.Message != "" {
		return sonda.Message
	}
	return sonda.Error
}

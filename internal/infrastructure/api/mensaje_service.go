package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.MensajeService = (*MensajeService)(nil)

// Forma wire de /messages. sentAt combina fecha y hora en ISO.
type messageDTO struct {
	ID       int    `json:"id"`
	ChatID   int    `json:"chatId"`
	SenderID int    `json:"senderId"`
	Text     string `json:"text"`
	SentAt   string `json:"sentAt"`
}

// MensajeService implementación del puerto de mensajes sobre /messages.
type MensajeService struct {
	client      *Client
	sanitizador ports.Sanitizador
}

// NewMensajeService construye el servicio.
func NewMensajeService(client *Client, sanitizador ports.Sanitizador) *MensajeService {
	return &MensajeService{client: client, sanitizador: sanitizador}
}

// GetMensajesByChatIDOrdered consulta /messages?chatId= y ordena
// ascendente por fecha+hora con sort estable: el backend no garantiza el
// orden y los empates deben conservar el orden recibido.
func (s *MensajeService) GetMensajesByChatIDOrdered(ctx context.Context, idChat int) ([]entity.Mensaje, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/messages?chatId=%d", idChat), nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodificarLista[messageDTO](datos)
	if err != nil {
		return nil, err
	}
	mensajes := make([]entity.Mensaje, 0, len(dtos))
	for _, d := range dtos {
		mensajes = append(mensajes, mensajeDesde(d))
	}
	sort.SliceStable(mensajes, func(i, j int) bool {
		return mensajes[i].Momento().Before(mensajes[j].Momento())
	})
	return mensajes, nil
}

// GetUltimoMensaje devuelve el cronológicamente último, o nil.
func (s *MensajeService) GetUltimoMensaje(ctx context.Context, idChat int) (*entity.Mensaje, error) {
	ordenados, err := s.GetMensajesByChatIDOrdered(ctx, idChat)
	if err != nil || len(ordenados) == 0 {
		return nil, err
	}
	ultimo := ordenados[len(ordenados)-1]
	return &ultimo, nil
}

// Create publica en /messages con el texto sanitizado.
func (s *MensajeService) Create(ctx context.Context, m entity.Mensaje) (*entity.Mensaje, error) {
	m.Texto = s.sanitizador.Sanitize(m.Texto)
	cuerpo := messageDTO{
		ChatID:   m.IDChat,
		SenderID: m.IDEmisor,
		Text:     m.Texto,
		SentAt:   dto.CombinarFechaHora(m.Fecha, m.Hora),
	}
	datos, err := s.client.Do(ctx, http.MethodPost, "/messages", cuerpo)
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[messageDTO](datos); d != nil {
		creado := mensajeDesde(*d)
		return &creado, nil
	}
	return &m, nil
}

func mensajeDesde(d messageDTO) entity.Mensaje {
	fecha, hora := dto.SepararFechaHora(d.SentAt)
	return entity.Mensaje{
		ID:       d.ID,
		IDChat:   d.ChatID,
		IDEmisor: d.SenderID,
		Texto:    d.Text,
		Fecha:    fecha,
		Hora:     hora,
	}
}

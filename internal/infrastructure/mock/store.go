// Package mock implementa los puertos de acceso a datos sobre una base en
// memoria con aislamiento por copia profunda. Sustituye al backend real en
// desarrollo y tests, simulando además la latencia de red.
package mock

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// clonar hace una copia profunda vía JSON. Todo valor que entra o sale de
// una colección pasa por acá: quien llama nunca comparte referencias
// mutables con el estado interno del store.
func clonar[T any](v T) T {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

// Coleccion es una tabla en memoria con ids numéricos autoincrementales.
// El mutex hace atómica cada mutación; la disciplina de clonado hace que
// las lecturas no compartan memoria con el interior.
type Coleccion[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) int
	conID func(T, int) T
}

// NewColeccion construye la colección con sus accesores de id y la carga
// con una copia de la semilla.
func NewColeccion[T any](id func(T) int, conID func(T, int) T, semilla []T) *Coleccion[T] {
	return &Coleccion[T]{items: clonar(semilla), id: id, conID: conID}
}

// Reemplazar descarta el contenido y carga una copia de los items dados.
func (c *Coleccion[T]) Reemplazar(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = clonar(items)
}

// Read devuelve una copia de toda la colección. Nunca falla; una colección
// vacía devuelve un slice vacío.
func (c *Coleccion[T]) Read() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, clonar(it))
	}
	return out
}

// FindByID devuelve una copia del primer item con ese id, o nil.
func (c *Coleccion[T]) FindByID(id int) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if c.id(it) == id {
			copia := clonar(it)
			return &copia
		}
	}
	return nil
}

// Find devuelve copias de los items que cumplen el predicado, en orden.
func (c *Coleccion[T]) Find(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []T{}
	for _, it := range c.items {
		if pred(it) {
			out = append(out, clonar(it))
		}
	}
	return out
}

// First devuelve una copia del primer item que cumple el predicado, o nil.
func (c *Coleccion[T]) First(pred func(T) bool) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if pred(it) {
			copia := clonar(it)
			return &copia
		}
	}
	return nil
}

// Insert asigna id = max(ids existentes)+1 (1 si está vacía), agrega el
// item y devuelve una copia de lo almacenado. Un id removido no se reutiliza
// salvo que coincida con el nuevo máximo+1.
func (c *Coleccion[T]) Insert(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	max := 0
	for _, it := range c.items {
		if id := c.id(it); id > max {
			max = id
		}
	}
	almacenado := c.conID(clonar(v), max+1)
	c.items = append(c.items, almacenado)
	return clonar(almacenado)
}

// Update aplica el mutador sobre el item con ese id y devuelve una copia
// del resultado, o nil si no hay coincidencia.
func (c *Coleccion[T]) Update(id int, cambio func(*T)) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if c.id(it) == id {
			cambio(&c.items[i])
			// el mutador no puede cambiar el id, y si asignó slices o
			// punteros del caller hay que re-clonar para no compartirlos
			c.items[i] = clonar(c.conID(c.items[i], id))
			copia := clonar(c.items[i])
			return &copia
		}
	}
	return nil
}

// Remove elimina el primer item con ese id e informa si hubo eliminación.
func (c *Coleccion[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if c.id(it) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len devuelve la cantidad de items.
func (c *Coleccion[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Store agrupa todas las colecciones del dataset. Es inyectable: cada test
// puede construir el suyo con NewStore y estados independientes; Reset y
// Snapshot son operaciones de la instancia, no globales.
type Store struct {
	// Retardo simula la latencia de red en cada operación de servicio.
	// Cero en tests.
	Retardo time.Duration

	AuthUsers        *Coleccion[entity.AuthUser]
	Usuarios         *Coleccion[entity.Usuario]
	Espacios         *Coleccion[entity.Espacio]
	Actividades      *Coleccion[entity.Actividad]
	Asistencias      *Coleccion[entity.Asistencia]
	Chats            *Coleccion[entity.Chat]
	IntegrantesChat  *Coleccion[entity.IntegranteChat]
	Mensajes         *Coleccion[entity.Mensaje]
	ReferenteUsmya   *Coleccion[entity.ReferenteUsmya]
	EfectorUsmya     *Coleccion[entity.EfectorUsmya]
	NotasTrayectoria *Coleccion[entity.NotaTrayectoria]
	Tags             *Coleccion[entity.Tag]
}

// Snapshot es la foto completa del estado del store.
type Snapshot struct {
	AuthUsers        []entity.AuthUser        `json:"authUsers"`
	Usuarios         []entity.Usuario         `json:"usuarios"`
	Espacios         []entity.Espacio         `json:"espacios"`
	Actividades      []entity.Actividad       `json:"actividades"`
	Asistencias      []entity.Asistencia      `json:"asistencias"`
	Chats            []entity.Chat            `json:"chats"`
	IntegrantesChat  []entity.IntegranteChat  `json:"integrantesChat"`
	Mensajes         []entity.Mensaje         `json:"mensajes"`
	ReferenteUsmya   []entity.ReferenteUsmya  `json:"referenteUsmya"`
	EfectorUsmya     []entity.EfectorUsmya    `json:"efectorUsmya"`
	NotasTrayectoria []entity.NotaTrayectoria `json:"notasTrayectoria"`
	Tags             []entity.Tag             `json:"tags"`
}

// NewStore construye un store cargado con el dataset inicial.
func NewStore() *Store {
	s := &Store{
		AuthUsers: NewColeccion(
			func(v entity.AuthUser) int { return v.ID },
			func(v entity.AuthUser, id int) entity.AuthUser { v.ID = id; return v },
			nil),
		Usuarios: NewColeccion(
			func(v entity.Usuario) int { return v.ID },
			func(v entity.Usuario, id int) entity.Usuario { v.ID = id; return v },
			nil),
		Espacios: NewColeccion(
			func(v entity.Espacio) int { return v.ID },
			func(v entity.Espacio, id int) entity.Espacio { v.ID = id; return v },
			nil),
		Actividades: NewColeccion(
			func(v entity.Actividad) int { return v.ID },
			func(v entity.Actividad, id int) entity.Actividad { v.ID = id; return v },
			nil),
		Asistencias: NewColeccion(
			func(v entity.Asistencia) int { return v.ID },
			func(v entity.Asistencia, id int) entity.Asistencia { v.ID = id; return v },
			nil),
		Chats: NewColeccion(
			func(v entity.Chat) int { return v.ID },
			func(v entity.Chat, id int) entity.Chat { v.ID = id; return v },
			nil),
		IntegrantesChat: NewColeccion(
			func(v entity.IntegranteChat) int { return v.ID },
			func(v entity.IntegranteChat, id int) entity.IntegranteChat { v.ID = id; return v },
			nil),
		Mensajes: NewColeccion(
			func(v entity.Mensaje) int { return v.ID },
			func(v entity.Mensaje, id int) entity.Mensaje { v.ID = id; return v },
			nil),
		ReferenteUsmya: NewColeccion(
			func(v entity.ReferenteUsmya) int { return v.ID },
			func(v entity.ReferenteUsmya, id int) entity.ReferenteUsmya { v.ID = id; return v },
			nil),
		EfectorUsmya: NewColeccion(
			func(v entity.EfectorUsmya) int { return v.ID },
			func(v entity.EfectorUsmya, id int) entity.EfectorUsmya { v.ID = id; return v },
			nil),
		NotasTrayectoria: NewColeccion(
			func(v entity.NotaTrayectoria) int { return v.ID },
			func(v entity.NotaTrayectoria, id int) entity.NotaTrayectoria { v.ID = id; return v },
			nil),
		Tags: NewColeccion(
			func(v entity.Tag) int { return v.ID },
			func(v entity.Tag, id int) entity.Tag { v.ID = id; return v },
			nil),
	}
	s.Reset()
	return s
}

// Reset restaura el dataset inicial en todas las colecciones.
func (s *Store) Reset() {
	s.AuthUsers.Reemplazar(semillaAuthUsers)
	s.Usuarios.Reemplazar(semillaUsuarios)
	s.Espacios.Reemplazar(semillaEspacios)
	s.Actividades.Reemplazar(semillaActividades)
	s.Asistencias.Reemplazar(semillaAsistencias)
	s.Chats.Reemplazar(semillaChats)
	s.IntegrantesChat.Reemplazar(semillaIntegrantesChat)
	s.Mensajes.Reemplazar(semillaMensajes)
	s.ReferenteUsmya.Reemplazar(semillaReferenteUsmya)
	s.EfectorUsmya.Reemplazar(semillaEfectorUsmya)
	s.NotasTrayectoria.Reemplazar(semillaNotasTrayectoria)
	s.Tags.Reemplazar(semillaTags)
}

// GetState devuelve una copia del estado completo.
func (s *Store) GetState() Snapshot {
	return Snapshot{
		AuthUsers:        s.AuthUsers.Read(),
		Usuarios:         s.Usuarios.Read(),
		Espacios:         s.Espacios.Read(),
		Actividades:      s.Actividades.Read(),
		Asistencias:      s.Asistencias.Read(),
		Chats:            s.Chats.Read(),
		IntegrantesChat:  s.IntegrantesChat.Read(),
		Mensajes:         s.Mensajes.Read(),
		ReferenteUsmya:   s.ReferenteUsmya.Read(),
		EfectorUsmya:     s.EfectorUsmya.Read(),
		NotasTrayectoria: s.NotasTrayectoria.Read(),
		Tags:             s.Tags.Read(),
	}
}

// simularLatencia duerme el retardo configurado. El payload no se toca y
// no hay camino de error: es un contrato puramente temporal.
func (s *Store) simularLatencia() {
	if s.Retardo > 0 {
		time.Sleep(s.Retardo)
	}
}

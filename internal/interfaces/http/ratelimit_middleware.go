package http

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/comunidar/comunidad-api/internal/application/dto"
)

// RateLimiterConfig límites por cliente. Login tiene su propio límite, más
// estricto que el general de la API.
type RateLimiterConfig struct {
	GeneralRate     rate.Limit // req/seg para el resto de la API
	GeneralBurst    int
	LoginRate       rate.Limit // req/seg para /auth/login
	LoginBurst      int
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig 120 req/min general y 10 req/min para login.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(120.0 / 60.0),
		GeneralBurst:    120,
		LoginRate:       rate.Limit(10.0 / 60.0),
		LoginBurst:      10,
		CleanupInterval: 5 * time.Minute,
	}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter mantiene un limitador por cliente. El cliente es el usuario
// autenticado si hay sesión, o la IP de origen si no la hay.
type RateLimiter struct {
	config RateLimiterConfig

	mu       sync.Mutex
	general  map[string]*clientLimiter
	login    map[string]*clientLimiter
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter construye el limitador y arranca la limpieza periódica de
// entradas viejas.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:  config,
		general: make(map[string]*clientLimiter),
		login:   make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop detiene la goroutine de limpieza.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// GeneralMiddleware limita la API general por cliente.
func (rl *RateLimiter) GeneralMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lim := rl.getOrCreate(rl.general, claveCliente(c), rl.config.GeneralRate, rl.config.GeneralBurst)
		if !lim.Allow() {
			return rechazarPorLimite(c, rl.config.GeneralRate)
		}
		return c.Next()
	}
}

// LoginMiddleware limita los intentos de login por cliente, independiente
// del límite general.
func (rl *RateLimiter) LoginMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lim := rl.getOrCreate(rl.login, claveCliente(c), rl.config.LoginRate, rl.config.LoginBurst)
		if !lim.Allow() {
			return rechazarPorLimite(c, rl.config.LoginRate)
		}
		return c.Next()
	}
}

func (rl *RateLimiter) getOrCreate(m map[string]*clientLimiter, clave string, r rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if cl, ok := m[clave]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}
	lim := rate.NewLimiter(r, burst)
	m[clave] = &clientLimiter{limiter: lim, lastAccess: time.Now()}
	return lim
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup elimina las entradas sin acceso por más de dos intervalos.
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for clave, cl := range rl.general {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.general, clave)
		}
	}
	for clave, cl := range rl.login {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.login, clave)
		}
	}
}

func claveCliente(c *fiber.Ctx) string {
	if id := GetUserID(c); id != 0 {
		return "u:" + strconv.Itoa(id)
	}
	return "ip:" + c.IP()
}

func rechazarPorLimite(c *fiber.Ctx, r rate.Limit) error {
	retryAfter := int(math.Ceil(1.0 / float64(r)))
	if retryAfter < 1 {
		retryAfter = 1
	}
	c.Set("Retry-After", strconv.Itoa(retryAfter))
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
		Code:    "RATE_LIMIT",
		Message: "demasiadas peticiones, reintentar más tarde",
	})
}

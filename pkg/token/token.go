package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos. Un refresh token nunca debe aceptarse donde se
// espera un access token, ni al revés: el caller siempre valida Type.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Errores de verificación. El caller los traduce a fallas de autenticación.
var (
	ErrMalformed = errors.New("token: no se pudo parsear")
	ErrSignature = errors.New("token: firma inválida")
	ErrExpired   = errors.New("token: expirado")
)

// Claims es el payload firmado. Se serializa a mano (sin RegisteredClaims)
// porque el contrato de interoperabilidad exige `sub` como entero JSON,
// `roles` como array y `restaurant_id`/`restaurant_uuid` opcionales.
type Claims struct {
	Sub            int64            `json:"sub"`
	UUID           string           `json:"uuid,omitempty"`
	Email          string           `json:"email,omitempty"`
	Roles          []string         `json:"roles,omitempty"`
	Type           string           `json:"type"`
	RestaurantID   int64            `json:"restaurant_id,omitempty"`
	RestaurantUUID string           `json:"restaurant_uuid,omitempty"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	ExpiresAt      *jwt.NumericDate `json:"exp"`
}

// Implementación de jwt.Claims (v5) para que el validador aplique exp/iat.
func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c *Claims) GetIssuer() (string, error)                   { return "", nil }
func (c *Claims) GetSubject() (string, error)                  { return strconv.FormatInt(c.Sub, 10), nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// IsAccess indica si el token es de tipo access.
func (c *Claims) IsAccess() bool { return c.Type == TypeAccess }

// IsRefresh indica si el token es de tipo refresh.
func (c *Claims) IsRefresh() bool { return c.Type == TypeRefresh }

// HasRole verifica pertenencia en el claim roles.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Identity datos del principal que se embeben en un access token.
// RestaurantID en 0 significa que el principal no posee restaurante.
type Identity struct {
	ID             int64
	UUID           string
	Email          string
	Roles          []string
	RestaurantID   int64
	RestaurantUUID string
}

// Codec emite y verifica tokens HS256 con un secreto simétrico compartido.
// El reloj es inyectable para que emisión y validación usen la misma fuente.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// New construye el codec con el secreto de proceso y el reloj del sistema.
func New(secret string) *Codec {
	return NewWithClock(secret, time.Now)
}

// NewWithClock construye el codec con un reloj propio (tests).
func NewWithClock(secret string, now func() time.Time) *Codec {
	return &Codec{secret: []byte(secret), now: now}
}

// Issue firma un token del tipo indicado con vida ttl. Los access tokens
// embeben email, roles y restaurante para decisiones rápidas sin DB;
// los refresh tokens solo llevan sub y tipo.
func (c *Codec) Issue(id Identity, tokenType string, ttl time.Duration) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("token: secret vacío")
	}
	if tokenType != TypeAccess && tokenType != TypeRefresh {
		return "", fmt.Errorf("token: tipo desconocido %q", tokenType)
	}
	now := c.now()
	claims := &Claims{
		Sub:       id.ID,
		Type:      tokenType,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if tokenType == TypeAccess {
		claims.UUID = id.UUID
		claims.Email = id.Email
		claims.Roles = id.Roles
		if id.RestaurantID != 0 {
			claims.RestaurantID = id.RestaurantID
			claims.RestaurantUUID = id.RestaurantUUID
		}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify valida firma y vigencia y devuelve los claims. El tipo de token NO
// se valida aquí: el caller decide qué tipo acepta.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		default:
			return nil, fmt.Errorf("token: %w", err)
		}
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}

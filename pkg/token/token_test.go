package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

const testSecret = "test-secret-key-for-unit-tests"

var testIdentity = token.Identity{
	ID:             42,
	UUID:           "00000000-0000-0000-0000-000000000042",
	Email:          "owner@qrmenu.test",
	Roles:          []string{"ROLE_OWNER", "ROLE_EDITOR"},
	RestaurantID:   7,
	RestaurantUUID: "00000000-0000-0000-0000-000000000007",
}

// fixedClock devuelve un reloj congelado en t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerify_AccessRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := token.NewWithClock(testSecret, fixedClock(now))

	tok, err := codec.Issue(testIdentity, token.TypeAccess, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.Sub)
	assert.Equal(t, testIdentity.UUID, claims.UUID)
	assert.Equal(t, testIdentity.Email, claims.Email)
	assert.Equal(t, testIdentity.Roles, claims.Roles, "roles debe conservar orden y contenido")
	assert.Equal(t, token.TypeAccess, claims.Type)
	assert.Equal(t, int64(7), claims.RestaurantID)
	assert.Equal(t, testIdentity.RestaurantUUID, claims.RestaurantUUID)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix(), "exp debe ser iat + ttl")
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestIssue_RefreshSoloLlevaSubYTipo(t *testing.T) {
	codec := token.New(testSecret)

	tok, err := codec.Issue(testIdentity, token.TypeRefresh, 24*time.Hour)
	require.NoError(t, err)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.Sub)
	assert.Equal(t, token.TypeRefresh, claims.Type)
	assert.Empty(t, claims.Email, "refresh no debe embeber email")
	assert.Empty(t, claims.Roles, "refresh no debe embeber roles")
	assert.Zero(t, claims.RestaurantID, "refresh no debe embeber restaurante")
	assert.True(t, claims.IsRefresh())
	assert.False(t, claims.IsAccess())
}

func TestIssue_SinRestaurantePropio_OmiteClaimsDeRestaurante(t *testing.T) {
	codec := token.New(testSecret)
	id := testIdentity
	id.RestaurantID = 0
	id.RestaurantUUID = ""

	tok, err := codec.Issue(id, token.TypeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Zero(t, claims.RestaurantID)
	assert.Empty(t, claims.RestaurantUUID)
}

func TestVerify_ExpiradoJustoEnExp(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := token.NewWithClock(testSecret, fixedClock(issued))
	tok, err := codec.Issue(testIdentity, token.TypeAccess, time.Hour)
	require.NoError(t, err)

	// En el instante exacto de exp el token ya no es válido.
	atExp := token.NewWithClock(testSecret, fixedClock(issued.Add(time.Hour)))
	_, err = atExp.Verify(tok)
	assert.ErrorIs(t, err, token.ErrExpired)

	// Y un segundo antes sigue siendo válido.
	beforeExp := token.NewWithClock(testSecret, fixedClock(issued.Add(time.Hour-time.Second)))
	_, err = beforeExp.Verify(tok)
	assert.NoError(t, err)
}

func TestVerify_FirmaAlterada(t *testing.T) {
	codec := token.New(testSecret)
	tok, err := codec.Issue(testIdentity, token.TypeAccess, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, token.ErrSignature)
}

func TestVerify_SecretDistinto(t *testing.T) {
	codec := token.New(testSecret)
	tok, err := codec.Issue(testIdentity, token.TypeAccess, time.Hour)
	require.NoError(t, err)

	otro := token.New("otro-secret-completamente-distinto")
	_, err = otro.Verify(tok)
	assert.ErrorIs(t, err, token.ErrSignature)
}

func TestVerify_Malformado(t *testing.T) {
	codec := token.New(testSecret)

	for _, tc := range []string{"", "no-es-un-jwt", "a.b", "x.y.z.w"} {
		_, err := codec.Verify(tc)
		assert.ErrorIs(t, err, token.ErrMalformed, "entrada: %q", tc)
	}
}

func TestIssue_TipoDesconocido(t *testing.T) {
	codec := token.New(testSecret)
	_, err := codec.Issue(testIdentity, "session", time.Hour)
	assert.Error(t, err)
}

func TestClaims_HasRole(t *testing.T) {
	c := &token.Claims{Roles: []string{"ROLE_OWNER"}}
	assert.True(t, c.HasRole("ROLE_OWNER"))
	assert.False(t, c.HasRole("ROLE_SUPER_ADMIN"))
}

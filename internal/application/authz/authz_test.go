package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/authz"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

func ownerOf(restaurants ...int64) *domain.Principal {
	var own int64
	if len(restaurants) > 0 {
		own = restaurants[0]
	}
	return &domain.Principal{
		ID:                      10,
		Roles:                   []string{entity.RoleOwner},
		RestaurantID:            own,
		AccessibleRestaurantIDs: restaurants,
	}
}

func superAdmin() *domain.Principal {
	return &domain.Principal{ID: 1, Roles: []string{entity.RoleSuperAdmin}}
}

// ─── Voter de pertenencia ────────────────────────────────────────────────────

func TestCanAccessOwned_DuenoSoloSuTenant(t *testing.T) {
	p := ownerOf(1)

	for _, action := range []authz.Action{authz.ActionView, authz.ActionEdit, authz.ActionDelete} {
		assert.True(t, authz.CanAccessOwned(p, action, 1), "acción %s en tenant propio", action)
		assert.False(t, authz.CanAccessOwned(p, action, 2), "acción %s en tenant ajeno", action)
	}
}

func TestCanAccessOwned_MultiRestaurante(t *testing.T) {
	p := ownerOf(1, 3)

	assert.True(t, authz.CanAccessOwned(p, authz.ActionEdit, 3))
	assert.False(t, authz.CanAccessOwned(p, authz.ActionEdit, 2))
}

func TestCanAccessOwned_SuperAdminSiemprePasa(t *testing.T) {
	for _, tenant := range []int64{1, 2, 99} {
		assert.True(t, authz.CanAccessOwned(superAdmin(), authz.ActionDelete, tenant))
	}
}

func TestCanAccessOwned_SetVacioNiega(t *testing.T) {
	p := &domain.Principal{ID: 10, Roles: []string{entity.RoleOwner}}
	assert.False(t, authz.CanAccessOwned(p, authz.ActionView, 1))
}

func TestCanAccessOwned_AnonimoYAccionDesconocidaNiegan(t *testing.T) {
	assert.False(t, authz.CanAccessOwned(nil, authz.ActionView, 1))
	assert.False(t, authz.CanAccessOwned(superAdmin(), authz.ActionApprove, 1),
		"el voter de pertenencia no responde por acciones de workflow")
}

// ─── Voter de capacidades ────────────────────────────────────────────────────

func TestCanManage(t *testing.T) {
	capacidades := []authz.Action{
		authz.ActionManageRestaurants, authz.ActionManageCatalog, authz.ActionManageDefaults,
	}
	for _, action := range capacidades {
		assert.True(t, authz.CanManage(superAdmin(), action))
		assert.False(t, authz.CanManage(ownerOf(1), action))
		assert.False(t, authz.CanManage(nil, action))
	}
	assert.False(t, authz.CanManage(superAdmin(), authz.ActionView),
		"view no es una capacidad global")
}

// ─── Voter de workflow de productos ─────────────────────────────────────────

func TestCheckProductAction_SubmitPorDueno(t *testing.T) {
	p := ownerOf(1)

	for _, from := range []entity.ProductStatus{entity.StatusDraft, entity.StatusRejected} {
		prod := &entity.Product{RestaurantID: 1, Status: from}
		assert.NoError(t, authz.CheckProductAction(p, authz.ActionSubmit, prod),
			"submit debe ser legal desde %s", from)
	}
}

func TestCheckProductAction_SubmitDesdeEstadoIlegal(t *testing.T) {
	p := ownerOf(1)
	prod := &entity.Product{RestaurantID: 1, Status: entity.StatusPendingApproval}

	err := authz.CheckProductAction(p, authz.ActionSubmit, prod)
	var tErr *entity.InvalidStatusTransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, entity.StatusPendingApproval, tErr.From)
	assert.Equal(t, entity.StatusPendingApproval, tErr.To)
}

func TestCheckProductAction_SubmitPorSuperAdminNiega(t *testing.T) {
	prod := &entity.Product{Status: entity.StatusDraft}
	err := authz.CheckProductAction(superAdmin(), authz.ActionSubmit, prod)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestCheckProductAction_ApprovePorSuperAdmin(t *testing.T) {
	prod := &entity.Product{Status: entity.StatusPendingApproval}
	assert.NoError(t, authz.CheckProductAction(superAdmin(), authz.ActionApprove, prod))
	assert.NoError(t, authz.CheckProductAction(superAdmin(), authz.ActionReject, prod))
}

// El dueño nunca puede aprobar, sin importar el estado del producto.
func TestCheckProductAction_ApprovePorDuenoNiegaSiempre(t *testing.T) {
	p := ownerOf(1)
	for _, status := range entity.ProductStatuses {
		prod := &entity.Product{RestaurantID: 1, Status: status}
		err := authz.CheckProductAction(p, authz.ActionApprove, prod)
		assert.ErrorIs(t, err, domain.ErrAccessDenied, "estado %s", status)
	}
}

// Aprobar un producto ya aprobado es una transición ilegal, no una negación.
func TestCheckProductAction_ApproveSobreAprobado(t *testing.T) {
	prod := &entity.Product{Status: entity.StatusApproved}

	err := authz.CheckProductAction(superAdmin(), authz.ActionApprove, prod)
	var tErr *entity.InvalidStatusTransitionError
	require.ErrorAs(t, err, &tErr, "APPROVED es terminal")

	err = authz.CheckProductAction(superAdmin(), authz.ActionReject, prod)
	require.ErrorAs(t, err, &tErr)
}

func TestCheckProductAction_AccionDesconocida(t *testing.T) {
	prod := &entity.Product{Status: entity.StatusDraft}
	err := authz.CheckProductAction(superAdmin(), authz.ActionView, prod)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestStatusTarget(t *testing.T) {
	to, ok := authz.StatusTarget(authz.ActionApprove)
	require.True(t, ok)
	assert.Equal(t, entity.StatusApproved, to)

	_, ok = authz.StatusTarget(authz.ActionEdit)
	assert.False(t, ok)
}

package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

func requireAssetsConsistent(t *testing.T, e *env) {
	t.Helper()
	ds, err := e.store.Read(e.ctx, entity.CollectionAssets)
	require.NoError(t, err)
	for _, a := range ds.Assets {
		assert.True(t, status.AssetConsistent(a), "activo %s: status=%s assigned=%v", a.ID, a.Status, a.AssignedTo)
	}
}

func TestAsset_InvarianteTrasAsignarYLiberar(t *testing.T) {
	e := newEnv(t)
	org := e.org(t, "Acme")
	p := e.person(t, org, "Ana", nil)
	a := e.asset(t, org, "Mac", "2025-01-01")
	requireAssetsConsistent(t, e)

	_, err := e.assets.AssignToUser(e.ctx, a, p)
	require.NoError(t, err)
	requireAssetsConsistent(t, e)

	got, err := e.assets.UnassignFromUser(e.ctx, a)
	require.NoError(t, err)
	assert.Equal(t, entity.AssetAvailable, got.Status)
	assert.Nil(t, got.AssignedTo)
	requireAssetsConsistent(t, e)
}

func TestAsset_CreateNormalizaAsignacion(t *testing.T) {
	e := newEnv(t)
	org := e.org(t, "Acme")
	p := e.person(t, org, "Ana", nil)

	v, err := e.assets.Create(e.ctx, org, dto.CreateAssetRequest{Name: "Monitor", Type: "monitor", AssignedTo: &p,
		PurchaseDate: "2025-02-03T10:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetAllocated, v.Status)
	assert.Equal(t, entity.ConditionGood, v.Condition)
	assert.Equal(t, "2025-02-03", v.PurchaseDate)

	_, err = e.assets.Create(e.ctx, org, dto.CreateAssetRequest{Name: "X", Type: "monitor", Status: "allocated"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = e.assets.Create(e.ctx, org, dto.CreateAssetRequest{Name: "X", Type: "monitor", Status: "available", AssignedTo: &p})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = e.assets.Create(e.ctx, org, dto.CreateAssetRequest{Name: "X", Type: "monitor", AssignedTo: strPtr("nadie")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = e.assets.Create(e.ctx, "org-inexistente", dto.CreateAssetRequest{Name: "X", Type: "monitor"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = e.assets.Create(e.ctx, org, dto.CreateAssetRequest{Name: "X", Type: "tablet"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	requireAssetsConsistent(t, e)
}

func TestAsset_UpdateAjustaElOtroCampo(t *testing.T) {
	e := newEnv(t)
	org := e.org(t, "Acme")
	p := e.person(t, org, "Ana", nil)
	a := e.asset(t, org, "Mac", "2025-01-01")

	v, err := e.assets.Update(e.ctx, a, dto.UpdateAssetRequest{AssignedTo: &p})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetAllocated, v.Status)

	maintenance := entity.AssetMaintenance
	v, err = e.assets.Update(e.ctx, a, dto.UpdateAssetRequest{Status: &maintenance})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetMaintenance, v.Status)
	assert.Nil(t, v.AssignedTo)

	_, err = e.assets.Update(e.ctx, a, dto.UpdateAssetRequest{AssignedTo: &p})
	require.NoError(t, err)
	v, err = e.assets.Update(e.ctx, a, dto.UpdateAssetRequest{AssignedTo: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, entity.AssetAvailable, v.Status)
	requireAssetsConsistent(t, e)
}

func TestAsset_UpdateSiempreActualizaUpdatedAt(t *testing.T) {
	e := newEnv(t)
	org := e.org(t, "Acme")
	a := e.asset(t, org, "Mac", "2025-01-01")

	before, err := e.assets.GetByID(e.ctx, a)
	require.NoError(t, err)
	after, err := e.assets.Update(e.ctx, a, dto.UpdateAssetRequest{})
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
}

func TestAsset_SoftMiss(t *testing.T) {
	e := newEnv(t)

	got, err := e.assets.GetByID(e.ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	upd, err := e.assets.Update(e.ctx, "nope", dto.UpdateAssetRequest{})
	require.NoError(t, err)
	assert.Nil(t, upd)

	assigned, err := e.assets.AssignToUser(e.ctx, "nope", "p")
	require.NoError(t, err)
	assert.Nil(t, assigned)

	assert.NoError(t, e.assets.Delete(e.ctx, "nope"))
}

func TestAsset_GetAllOrdenPorCompraDesc(t *testing.T) {
	e := newEnv(t)
	org := e.org(t, "Acme")
	old := e.asset(t, org, "Viejo", "2023-03-01")
	recent := e.asset(t, org, "Nuevo", "2025-09-15")
	mid := e.asset(t, org, "Medio", "2024-07-20")
	other := e.org(t, "Otra")
	e.asset(t, other, "Ajeno", "2026-01-01")

	list, err := e.assets.GetAll(e.ctx, org)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{recent, mid, old}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestAsset_GetAvailable(t *testing.T) {
	e := newEnv(t)
	org := e.org(t, "Acme")
	p := e.person(t, org, "Ana", nil)
	a1 := e.asset(t, org, "A1", "2025-01-01")
	a2 := e.asset(t, org, "A2", "2025-01-02")
	_, err := e.assets.AssignToUser(e.ctx, a1, p)
	require.NoError(t, err)

	list, err := e.assets.GetAvailable(e.ctx, org)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a2, list[0].ID)
}

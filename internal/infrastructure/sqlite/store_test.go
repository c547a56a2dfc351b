package sqlite_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/infrastructure/sqlite"
	"github.com/jhoicas/asset-tracker/pkg/config"
)

var ts = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func openTempDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "app.sqlite")
	db, err := sqlite.Open(context.Background(), config.DBConfig{File: path, BusyTimeoutMS: 1000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func sampleDataset() *entity.Dataset {
	ds := entity.NewDataset()
	ds.Organizations = []entity.Organization{{ID: "o1", Name: "Acme", Description: "Matriz", CreatedAt: ts, UpdatedAt: ts}}
	ds.Teams = []entity.Team{{ID: "t1", Name: "Infra", OrganizationID: "o1", ManagerID: strPtr("p1"), CreatedAt: ts, UpdatedAt: ts}}
	ds.People = []entity.Person{
		{ID: "p1", Name: "Ana", Email: "ana@acme.com", Position: "Lead", Status: entity.PersonActive,
			OrganizationID: "o1", TeamID: strPtr("t1"), Subordinates: entity.IDList{"p2"}, CreatedAt: ts, UpdatedAt: ts},
		{ID: "p2", Name: "Bruno", Email: "bruno@acme.com", Position: "Dev", Status: entity.PersonActive,
			OrganizationID: "o1", TeamID: strPtr("t1"), ManagerID: strPtr("p1"), Subordinates: entity.IDList{}, CreatedAt: ts, UpdatedAt: ts},
	}
	ds.Assets = []entity.Asset{{ID: "a1", Name: "ThinkPad", Type: entity.AssetNotebook, SerialNumber: "SN1",
		Status: entity.AssetAllocated, Condition: entity.ConditionGood, Value: decimal.RequireFromString("4500.90"),
		PurchaseDate: "2025-05-10", AssignedTo: strPtr("p1"), OrganizationID: "o1", CreatedAt: ts, UpdatedAt: ts}}
	ds.Licenses = []entity.License{{ID: "l1", Name: "JetBrains", ExpirationDate: "2026-12-31", TotalQuantity: 2,
		Cost: decimal.NewNullDecimal(decimal.RequireFromString("199.99")), OrganizationID: "o1",
		AssignedTo: entity.IDList{"p1"}, IndividualCodes: entity.CodeMap{"p1": "K-1"}, CreatedAt: ts, UpdatedAt: ts}}
	ds.Inventory = []entity.InventoryItem{{ID: "i1", Name: "Mouse", Category: "Periféricos", Quantity: 3, MinQuantity: 5,
		Location: "Depósito", OrganizationID: "o1", CostPerUnit: decimal.RequireFromString("25.5"), Supplier: "Logi",
		CreatedAt: ts, UpdatedAt: ts}}
	return ds
}

func TestOpen_RutaVacia(t *testing.T) {
	_, err := sqlite.Open(context.Background(), config.DBConfig{File: " "})
	assert.Error(t, err)
}

func TestEnsureSchemaYSeed_Idempotentes(t *testing.T) {
	ctx := context.Background()
	db := openTempDB(t)

	require.NoError(t, sqlite.EnsureSchema(ctx, db))
	seeded, err := sqlite.SeedDefaults(ctx, db, ts)
	require.NoError(t, err)
	assert.True(t, seeded)

	require.NoError(t, sqlite.EnsureSchema(ctx, db))
	seeded, err = sqlite.SeedDefaults(ctx, db, ts)
	require.NoError(t, err)
	assert.False(t, seeded)

	store := sqlite.NewStore(db)
	n, err := store.Count(ctx, entity.CollectionOrganizations)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = store.Count(ctx, entity.CollectionTeams)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ds, err := store.Read(ctx, entity.CollectionTeams)
	require.NoError(t, err)
	assert.Equal(t, "Desenvolvimento", ds.Teams[0].Name)
	assert.Equal(t, sqlite.DefaultOrganizationID, ds.Teams[0].OrganizationID)
	assert.Nil(t, ds.Teams[0].ManagerID)
}

func TestRead_ColeccionesVacias(t *testing.T) {
	store := sqlite.NewStore(openTempDB(t))

	ds, err := store.Read(context.Background())
	require.NoError(t, err)
	for _, c := range entity.AllCollections {
		rows, err := ds.Rows(c)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Equal(t, 0, ds.Len(c))
	}
}

func TestReplaceRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	in := sampleDataset()

	require.NoError(t, store.Replace(ctx, in))
	got, err := store.Read(ctx)
	require.NoError(t, err)

	want, err := json.Marshal(in)
	require.NoError(t, err)
	have, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(have))
	assert.Equal(t, "4500.9", got.Assets[0].Value.String())
	assert.Equal(t, entity.CodeMap{"p1": "K-1"}, got.Licenses[0].IndividualCodes)
}

func TestReplace_SoloColeccionIndicada(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	require.NoError(t, store.Replace(ctx, sampleDataset()))

	patch := entity.NewDataset()
	patch.Inventory = []entity.InventoryItem{}
	require.NoError(t, store.Replace(ctx, patch, entity.CollectionInventory))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Inventory)
	assert.Len(t, got.People, 2)
	assert.Len(t, got.Assets, 1)
}

func TestReplace_BorrarOrganizacionCascada(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	require.NoError(t, store.Replace(ctx, sampleDataset()))

	require.NoError(t, store.Replace(ctx, entity.NewDataset(), entity.CollectionOrganizations))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	for _, c := range entity.AllCollections {
		assert.Equal(t, 0, got.Len(c), string(c))
	}
}

func TestReplace_BorrarEquipoAnulaTeamID(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	require.NoError(t, store.Replace(ctx, sampleDataset()))

	require.NoError(t, store.Replace(ctx, entity.NewDataset(), entity.CollectionTeams))

	got, err := store.Read(ctx, entity.CollectionPeople)
	require.NoError(t, err)
	require.Len(t, got.People, 2)
	for _, p := range got.People {
		assert.Nil(t, p.TeamID)
	}
}

func TestReplace_ReferenciaInexistenteNoModifica(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	require.NoError(t, store.Replace(ctx, sampleDataset()))

	bad := entity.NewDataset()
	bad.Teams = []entity.Team{{ID: "t9", Name: "Fantasma", OrganizationID: "no-existe", CreatedAt: ts, UpdatedAt: ts}}
	err := store.Replace(ctx, bad, entity.CollectionTeams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	got, err := store.Read(ctx, entity.CollectionTeams, entity.CollectionPeople)
	require.NoError(t, err)
	require.Len(t, got.Teams, 1)
	assert.Equal(t, "t1", got.Teams[0].ID)
	assert.Equal(t, "t1", *got.People[0].TeamID)

	// La conexión sigue utilizable tras el rollback.
	_, err = store.Count(ctx, entity.CollectionTeams)
	assert.NoError(t, err)
}

func TestReplace_IDVacioRechazado(t *testing.T) {
	store := sqlite.NewStore(openTempDB(t))
	ds := entity.NewDataset()
	ds.Organizations = []entity.Organization{{Name: "Sin id", CreatedAt: ts, UpdatedAt: ts}}

	err := store.Replace(context.Background(), ds, entity.CollectionOrganizations)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestReplace_ColeccionDesconocida(t *testing.T) {
	store := sqlite.NewStore(openTempDB(t))
	err := store.Replace(context.Background(), entity.NewDataset(), entity.Collection("users"))
	assert.True(t, errors.Is(err, domain.ErrUnknownCollection))
}

func TestBackupRepo(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewBackupRepository(openTempDB(t))

	_, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, []byte(`{"v":1}`)))
	require.NoError(t, repo.Save(ctx, []byte(`{"v":2}`)))

	raw, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(raw))

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))
	_, ok, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplace_BorrarPersonaLiberaActivo(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	require.NoError(t, store.Replace(ctx, sampleDataset()))

	require.NoError(t, store.Replace(ctx, entity.NewDataset(), entity.CollectionPeople))

	got, err := store.Read(ctx, entity.CollectionAssets)
	require.NoError(t, err)
	require.Len(t, got.Assets, 1)
	assert.Nil(t, got.Assets[0].AssignedTo)
	assert.Equal(t, entity.AssetAvailable, got.Assets[0].Status)
}

func TestReplace_ActivoInconsistenteSeNormaliza(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	ds := sampleDataset()
	ds.Assets[0].AssignedTo = nil
	maint := ds.Assets[0]
	maint.ID, maint.SerialNumber, maint.Status, maint.AssignedTo = "a2", "SN2", entity.AssetMaintenance, strPtr("p2")
	ds.Assets = append(ds.Assets, maint)

	require.NoError(t, store.Replace(ctx, ds))

	got, err := store.Read(ctx, entity.CollectionAssets)
	require.NoError(t, err)
	require.Len(t, got.Assets, 2)
	assert.Equal(t, entity.AssetAvailable, got.Assets[0].Status)
	assert.Nil(t, got.Assets[0].AssignedTo)
	assert.Equal(t, entity.AssetMaintenance, got.Assets[1].Status)
	assert.Nil(t, got.Assets[1].AssignedTo)
}

func TestReplace_LicenciaSobreCapacidadRechazada(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTempDB(t))
	require.NoError(t, store.Replace(ctx, sampleDataset()))

	bad := sampleDataset()
	bad.Licenses[0].TotalQuantity = 1
	bad.Licenses[0].AssignedTo = entity.IDList{"p1", "p2"}
	err := store.Replace(ctx, bad, entity.CollectionLicenses)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	got, err := store.Read(ctx, entity.CollectionLicenses)
	require.NoError(t, err)
	require.Len(t, got.Licenses, 1)
	assert.Equal(t, 2, got.Licenses[0].TotalQuantity)
	assert.Equal(t, entity.IDList{"p1"}, got.Licenses[0].AssignedTo)
}

package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/infrastructure/sqlite"
	"github.com/jhoicas/asset-tracker/pkg/config"
)

var t0 = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

type env struct {
	ctx       context.Context
	store     *sqlite.Store
	orgs      *usecase.OrganizationUseCase
	teams     *usecase.TeamUseCase
	people    *usecase.PersonUseCase
	assets    *usecase.AssetUseCase
	licenses  *usecase.LicenseUseCase
	inventory *usecase.InventoryUseCase
	dashboard *usecase.DashboardUseCase
}

// newEnv arma los casos de uso sobre un archivo SQLite temporal y un reloj que avanza un segundo por lectura.
func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, config.DBConfig{File: filepath.Join(t.TempDir(), "app.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tick := 0
	views := view.NewComposer(func() time.Time {
		tick++
		return t0.Add(time.Duration(tick) * time.Second)
	})
	store := sqlite.NewStore(db)
	return &env{
		ctx:       ctx,
		store:     store,
		orgs:      usecase.NewOrganizationUseCase(store, views),
		teams:     usecase.NewTeamUseCase(store, views),
		people:    usecase.NewPersonUseCase(store, views),
		assets:    usecase.NewAssetUseCase(store, views),
		licenses:  usecase.NewLicenseUseCase(store, views),
		inventory: usecase.NewInventoryUseCase(store, views),
		dashboard: usecase.NewDashboardUseCase(store, views),
	}
}

func (e *env) org(t *testing.T, name string) string {
	t.Helper()
	o, err := e.orgs.Create(e.ctx, dto.CreateOrganizationRequest{Name: name})
	require.NoError(t, err)
	return o.ID
}

func (e *env) team(t *testing.T, orgID, name string) string {
	t.Helper()
	v, err := e.teams.Create(e.ctx, orgID, dto.CreateTeamRequest{Name: name})
	require.NoError(t, err)
	return v.ID
}

func (e *env) person(t *testing.T, orgID, name string, teamID *string) string {
	t.Helper()
	v, err := e.people.Create(e.ctx, orgID, dto.CreatePersonRequest{
		Name: name, Email: name + "@empresa.com", Position: "Analista", TeamID: teamID,
	})
	require.NoError(t, err)
	return v.ID
}

func (e *env) asset(t *testing.T, orgID, name, purchaseDate string) string {
	t.Helper()
	v, err := e.assets.Create(e.ctx, orgID, dto.CreateAssetRequest{
		Name: name, Type: "notebook", SerialNumber: "SN-" + name, Condition: "new",
		Value: decimal.RequireFromString("3500"), PurchaseDate: purchaseDate,
	})
	require.NoError(t, err)
	return v.ID
}

func (e *env) license(t *testing.T, orgID, name, expiration string, total int) string {
	t.Helper()
	v, err := e.licenses.Create(e.ctx, orgID, dto.CreateLicenseRequest{
		Name: name, ExpirationDate: expiration, TotalQuantity: total,
	})
	require.NoError(t, err)
	return v.ID
}

func strPtr(s string) *string { return &s }

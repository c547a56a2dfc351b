package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/report"
	"github.com/jhoicas/asset-tracker/internal/application/snapshot"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/asset-tracker/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/asset-tracker/internal/interfaces/http"
	"github.com/jhoicas/asset-tracker/pkg/config"
	"github.com/jhoicas/asset-tracker/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var t0 = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	// Igual que cmd/api: montos como números JSON.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// buildTestApp arma la aplicación completa sobre un SQLite temporal con los datos iniciales.
func buildTestApp(t *testing.T, staticDir string) *fiber.App {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, config.DBConfig{File: filepath.Join(t.TempDir(), "app.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = sqlite.SeedDefaults(ctx, db, t0)
	require.NoError(t, err)

	store := sqlite.NewStore(db)
	clock := func() time.Time { return t0 }
	views := view.NewComposer(clock)
	orgUC := usecase.NewOrganizationUseCase(store, views)
	personUC := usecase.NewPersonUseCase(store, views)
	inventoryUC := usecase.NewInventoryUseCase(store, views)

	deps := apphttp.RouterDeps{
		Store:       store,
		OrgUC:       orgUC,
		TeamUC:      usecase.NewTeamUseCase(store, views),
		PersonUC:    personUC,
		AssetUC:     usecase.NewAssetUseCase(store, views),
		LicenseUC:   usecase.NewLicenseUseCase(store, views),
		InventoryUC: inventoryUC,
		DashboardUC: usecase.NewDashboardUseCase(store, views),
		Snapshots:   snapshot.NewManager(store, sqlite.NewBackupRepository(db), "").WithClock(clock),
		Reports:     report.NewUseCase(orgUC, personUC, inventoryUC, pdf.NewMarotoReportGenerator(), clock),
		Host:        "0.0.0.0",
		Port:        8080,
	}
	return apphttp.NewApp(apphttp.AppConfig{Name: "test", StaticDir: staticDir}, deps, logger.Nop())
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t, "")
	resp := do(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "SQLite", body.Database)
	assert.Equal(t, 8080, body.Port)
	assert.NotEmpty(t, body.Timestamp)
}

func TestDatabase_LeerTodo(t *testing.T) {
	app := buildTestApp(t, "")
	resp := do(t, app, http.MethodGet, "/api/database", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string][]map[string]any](t, resp)
	for _, k := range []string{"organizations", "teams", "people", "assets", "licenses", "inventory"} {
		assert.Contains(t, body, k)
	}
	require.Len(t, body["organizations"], 1)
	assert.Equal(t, "Organização Principal", body["organizations"][0]["name"])
	require.Len(t, body["teams"], 1)
	assert.Equal(t, "1", body["teams"][0]["organization_id"])
}

func TestDatabase_ColeccionDesconocida(t *testing.T) {
	app := buildTestApp(t, "")
	resp := do(t, app, http.MethodGet, "/api/database/users", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDatabase_GuardarNoArreglo(t *testing.T) {
	app := buildTestApp(t, "")
	resp := do(t, app, http.MethodPost, "/api/database/teams", `{"id": "x"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode[dto.LegacyErrorResponse](t, resp)
	assert.Equal(t, "Data must be an array", body.Error)
}

func TestDatabase_GuardarReemplazaColeccion(t *testing.T) {
	app := buildTestApp(t, "")
	records := `[
		{"id": "t2", "name": "Infra", "description": "", "organizationId": "1", "managerId": null, "peopleCount": 3},
		{"id": "t3", "name": "QA", "description": "", "organization_id": "1", "manager_id": null}
	]`
	resp := do(t, app, http.MethodPost, "/api/database/teams", records)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ok := decode[dto.SuccessResponse](t, resp)
	assert.True(t, ok.Success)

	resp = do(t, app, http.MethodGet, "/api/database/teams", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decode[[]map[string]any](t, resp)
	require.Len(t, rows, 2)
	assert.Equal(t, "t2", rows[0]["id"])
	assert.Equal(t, "1", rows[0]["organization_id"])
	assert.NotContains(t, rows[0], "peopleCount")
	assert.NotEmpty(t, rows[1]["created_at"])
}

func TestDatabase_ReferenciaInvalida(t *testing.T) {
	app := buildTestApp(t, "")
	resp := do(t, app, http.MethodPost, "/api/database/teams", `[{"id": "t9", "name": "X", "organization_id": "no-existe"}]`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/database/teams", nil)
	rows := decode[[]map[string]any](t, resp)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["id"])
}

func TestDatabase_BorrarPersonasLiberaActivos(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/api/organizations/1/people", dto.CreatePersonRequest{Name: "Ana", Email: "ana@empresa.com"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	ana := decode[dto.PersonResponse](t, resp)
	resp = do(t, app, http.MethodPost, "/api/organizations/1/assets", `{"name": "Notebook", "type": "notebook", "value": 3500.75}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	asset := decode[dto.AssetResponse](t, resp)
	resp = do(t, app, http.MethodPost, "/api/assets/"+asset.ID+"/assign", dto.AssignAssetRequest{PersonID: ana.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/database/people", `[]`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/database/assets", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decode[[]map[string]any](t, resp)
	require.Len(t, rows, 1)
	assert.Equal(t, "available", rows[0]["status"])
	assert.Nil(t, rows[0]["assigned_to"])
	assert.Equal(t, 3500.75, rows[0]["value"])

	resp = do(t, app, http.MethodGet, "/api/organizations/1/dashboard", nil)
	summary := decode[dto.DashboardSummaryResponse](t, resp)
	assert.Zero(t, summary.Assets.Allocated)
}

func TestDatabase_ActivoAllocatedSinResponsableSeNormaliza(t *testing.T) {
	app := buildTestApp(t, "")
	records := `[{"id": "a1", "name": "Dell", "type": "notebook", "serial_number": "S1", "status": "allocated",
		"condition": "good", "value": 10, "purchase_date": "2025-01-01", "assigned_to": null, "organization_id": "1"}]`
	resp := do(t, app, http.MethodPost, "/api/database/assets", records)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/database/assets", nil)
	rows := decode[[]map[string]any](t, resp)
	require.Len(t, rows, 1)
	assert.Equal(t, "available", rows[0]["status"])
}

func TestDatabase_LicenciaSobreCapacidad(t *testing.T) {
	app := buildTestApp(t, "")
	records := `[{"id": "l1", "name": "Figma", "expiration_date": "2027-01-01", "total_quantity": 1,
		"organization_id": "1", "assigned_to": ["x", "y"]}]`
	resp := do(t, app, http.MethodPost, "/api/database/licenses", records)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decode[dto.LegacyErrorResponse](t, resp).Error)

	resp = do(t, app, http.MethodGet, "/api/database/licenses", nil)
	assert.Empty(t, decode[[]map[string]any](t, resp))
}

func TestOrganizaciones_CRUD(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/api/organizations", dto.CreateOrganizationRequest{Name: "Acme"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	org := decode[dto.OrganizationResponse](t, resp)
	require.NotEmpty(t, org.ID)

	resp = do(t, app, http.MethodGet, "/api/organizations", nil)
	list := decode[[]dto.OrganizationResponse](t, resp)
	assert.Len(t, list, 2)

	resp = do(t, app, http.MethodPut, "/api/organizations/"+org.ID, `{"description": "nueva"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.OrganizationResponse](t, resp)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "nueva", updated.Description)

	resp = do(t, app, http.MethodDelete, "/api/organizations/"+org.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/organizations/"+org.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestOrganizaciones_Validacion(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/api/organizations", dto.CreateOrganizationRequest{Name: "  "})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)

	resp = do(t, app, http.MethodPost, "/api/organizations", "{roto")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_BODY", body.Code)
}

func TestLicencias_CapacidadYCodigos(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/api/organizations/1/people", dto.CreatePersonRequest{Name: "Ana", Email: "ana@empresa.com"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	ana := decode[dto.PersonResponse](t, resp)
	resp = do(t, app, http.MethodPost, "/api/organizations/1/people", dto.CreatePersonRequest{Name: "Bruno", Email: "bruno@empresa.com"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	bruno := decode[dto.PersonResponse](t, resp)

	resp = do(t, app, http.MethodPost, "/api/organizations/1/licenses", dto.CreateLicenseRequest{
		Name: "Figma", ExpirationDate: "2027-01-01", TotalQuantity: 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	lic := decode[dto.LicenseResponse](t, resp)

	resp = do(t, app, http.MethodPost, "/api/licenses/"+lic.ID+"/assign", dto.AssignLicenseRequest{PersonID: ana.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	first := decode[dto.LicenseAssignResponse](t, resp)
	assert.True(t, first.Assigned)
	assert.Equal(t, 0, first.License.AvailableQuantity)

	resp = do(t, app, http.MethodPost, "/api/licenses/"+lic.ID+"/assign", dto.AssignLicenseRequest{PersonID: bruno.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	second := decode[dto.LicenseAssignResponse](t, resp)
	assert.False(t, second.Assigned)
	assert.Equal(t, []string{ana.ID}, second.License.AssignedTo)

	resp = do(t, app, http.MethodPut, "/api/licenses/"+lic.ID+"/codes/"+bruno.ID, dto.LicenseCodeRequest{Code: "XYZ"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/api/licenses/"+lic.ID+"/codes/"+ana.ID, dto.LicenseCodeRequest{Code: "ABC-1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	withCode := decode[dto.LicenseResponse](t, resp)
	assert.Equal(t, "ABC-1", withCode.IndividualCodes[ana.ID])

	resp = do(t, app, http.MethodDelete, "/api/licenses/"+lic.ID+"/assign/"+ana.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	freed := decode[dto.LicenseResponse](t, resp)
	assert.Empty(t, freed.AssignedTo)
	assert.Empty(t, freed.IndividualCodes)

	resp = do(t, app, http.MethodPost, "/api/licenses/no-existe/assign", dto.AssignLicenseRequest{PersonID: ana.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestActivos_AsignarYLiberar(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/api/organizations/1/people", dto.CreatePersonRequest{Name: "Ana", Email: "ana@empresa.com"})
	ana := decode[dto.PersonResponse](t, resp)
	resp = do(t, app, http.MethodPost, "/api/organizations/1/assets", `{"name": "Notebook", "type": "notebook", "value": 3500}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	asset := decode[dto.AssetResponse](t, resp)
	assert.Equal(t, "available", asset.Status)

	resp = do(t, app, http.MethodPost, "/api/assets/"+asset.ID+"/assign", dto.AssignAssetRequest{PersonID: ana.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assigned := decode[dto.AssetResponse](t, resp)
	assert.Equal(t, "allocated", assigned.Status)
	assert.Equal(t, "Ana", assigned.AssignedToName)

	resp = do(t, app, http.MethodGet, "/api/organizations/1/assets/available", nil)
	assert.Empty(t, decode[[]dto.AssetResponse](t, resp))

	resp = do(t, app, http.MethodGet, "/api/people/"+ana.ID, nil)
	person := decode[dto.PersonResponse](t, resp)
	require.Len(t, person.Assets, 1)

	resp = do(t, app, http.MethodPost, "/api/assets/"+asset.ID+"/unassign", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	freed := decode[dto.AssetResponse](t, resp)
	assert.Equal(t, "available", freed.Status)
	assert.Nil(t, freed.AssignedTo)
}

func TestInventario_CantidadYDashboard(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/api/organizations/1/inventory", `{"name": "Mouse", "quantity": 10, "minQuantity": 3, "costPerUnit": "25.50"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, "available", item.Status)

	resp = do(t, app, http.MethodPut, "/api/inventory/"+item.ID+"/quantity", dto.UpdateQuantityRequest{Quantity: 0})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, "out_of_stock", out.Status)

	resp = do(t, app, http.MethodGet, "/api/organizations/1/inventory/low-stock", nil)
	assert.Empty(t, decode[[]dto.InventoryItemResponse](t, resp))
	resp = do(t, app, http.MethodGet, "/api/organizations/1/inventory/needs-restock", nil)
	assert.Len(t, decode[[]dto.InventoryItemResponse](t, resp), 1)

	resp = do(t, app, http.MethodGet, "/api/organizations/1/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryResponse](t, resp)
	assert.Equal(t, 1, summary.Inventory.OutOfStock)

	resp = do(t, app, http.MethodGet, "/api/inventory/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSnapshot_ExportImportRestaurar(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodGet, "/api/snapshot/backup", nil)
	assert.False(t, decode[apphttp.BackupStatus](t, resp).Exists)

	resp = do(t, app, http.MethodPost, "/api/snapshot/restore", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NO_BACKUP", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodGet, "/api/snapshot/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	exported, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	resp = do(t, app, http.MethodPost, "/api/snapshot/import", `{"organizations": []}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SNAPSHOT", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/api/snapshot/clear", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = do(t, app, http.MethodGet, "/api/organizations", nil)
	assert.Empty(t, decode[[]dto.OrganizationResponse](t, resp))

	resp = do(t, app, http.MethodPost, "/api/snapshot/import", string(exported))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = do(t, app, http.MethodGet, "/api/organizations", nil)
	assert.Len(t, decode[[]dto.OrganizationResponse](t, resp), 1)

	resp = do(t, app, http.MethodGet, "/api/snapshot/backup", nil)
	assert.True(t, decode[apphttp.BackupStatus](t, resp).Exists)
}

func TestReportes_PDF(t *testing.T) {
	app := buildTestApp(t, "")

	resp := do(t, app, http.MethodGet, "/api/organizations/1/inventory/report.pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_organizacao_principal.pdf")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp = do(t, app, http.MethodGet, "/api/people/no-existe/report.pdf", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRutaAPIInexistente(t *testing.T) {
	app := buildTestApp(t, "")
	resp := do(t, app, http.MethodGet, "/api/no-existe", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestSPA_Fallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	app := buildTestApp(t, dir)

	resp := do(t, app, http.MethodGet, "/settings/import", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "app")

	resp = do(t, app, http.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

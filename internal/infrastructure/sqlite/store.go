package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

var tableColumns = map[entity.Collection][]string{
	entity.CollectionOrganizations: {"id", "name", "description", "created_at", "updated_at"},
	entity.CollectionTeams:         {"id", "name", "description", "organization_id", "manager_id", "created_at", "updated_at"},
	entity.CollectionPeople: {"id", "name", "email", "position", "status", "organization_id", "team_id", "manager_id",
		"subordinates", "created_at", "updated_at"},
	entity.CollectionAssets: {"id", "name", "type", "serial_number", "status", "condition", "value", "purchase_date",
		"assigned_to", "organization_id", "notes", "created_at", "updated_at"},
	entity.CollectionLicenses: {"id", "name", "description", "expiration_date", "total_quantity", "cost", "vendor",
		"organization_id", "assigned_to", "license_code", "individual_codes", "created_at", "updated_at"},
	entity.CollectionInventory: {"id", "name", "category", "quantity", "min_quantity", "location", "organization_id",
		"cost_per_unit", "supplier", "created_at", "updated_at"},
}

// Store implementación del puerto Store sobre SQLite: una tabla por colección.
type Store struct {
	db *sql.DB
}

// NewStore construye el adaptador de persistencia.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Read carga las colecciones pedidas (todas si names está vacío).
func (s *Store) Read(ctx context.Context, names ...entity.Collection) (*entity.Dataset, error) {
	cols, err := ordered(names)
	if err != nil {
		return nil, err
	}
	data := entity.NewDataset()
	for _, c := range cols {
		if err := s.readTable(ctx, c, data); err != nil {
			return nil, fmt.Errorf("leer %s: %w", c, err)
		}
	}
	return data, nil
}

// Count cantidad de filas de una colección.
func (s *Store) Count(ctx context.Context, name entity.Collection) (int, error) {
	if _, ok := tableColumns[name]; !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, name)
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+string(name)).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar %s: %w", name, err)
	}
	return n, nil
}

// Replace reemplaza las colecciones en una única transacción.
// Primero borra (de hijos a padres) las filas cuyo id ya no está, luego hace upsert (de padres a hijos).
// No se usa DELETE total: borrar organizaciones dispararía el ON DELETE CASCADE sobre las demás tablas.
func (s *Store) Replace(ctx context.Context, data *entity.Dataset, names ...entity.Collection) error {
	if data == nil {
		return fmt.Errorf("%w: dataset nil", domain.ErrInvalidInput)
	}
	cols, err := ordered(names)
	if err != nil {
		return err
	}
	data.Normalize()
	data.ReconcileAssets()
	for _, c := range cols {
		if err := validateIDs(data, c); err != nil {
			return err
		}
		if c == entity.CollectionLicenses {
			if err := data.CheckLicenseCapacity(); err != nil {
				return err
			}
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `PRAGMA defer_foreign_keys = ON`); err != nil {
		return fmt.Errorf("defer foreign keys: %w", err)
	}

	for i := len(cols) - 1; i >= 0; i-- {
		if err := deleteMissing(ctx, tx, cols[i], idsOf(data, cols[i])); err != nil {
			return mapConstraint(fmt.Errorf("borrar %s: %w", cols[i], err))
		}
	}
	for _, c := range cols {
		if err := upsertTable(ctx, tx, c, data); err != nil {
			return mapConstraint(fmt.Errorf("guardar %s: %w", c, err))
		}
	}
	// ON DELETE SET NULL deja activos allocated sin responsable al borrar personas.
	if _, err := tx.ExecContext(ctx, releaseOrphanAssetsSQL); err != nil {
		return fmt.Errorf("liberar activos: %w", err)
	}
	// Un COMMIT rechazado por una FK diferida deja la transacción abierta en la conexión;
	// se verifica antes para poder hacer rollback.
	for _, c := range cols {
		if err := checkForeignKeys(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return mapConstraint(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

const releaseOrphanAssetsSQL = `UPDATE assets SET status = 'available' WHERE status = 'allocated' AND assigned_to IS NULL`

// ordered valida los nombres y los devuelve en orden de dependencia, sin repetidos.
func ordered(names []entity.Collection) ([]entity.Collection, error) {
	if len(names) == 0 {
		return entity.AllCollections, nil
	}
	want := make(map[entity.Collection]bool, len(names))
	for _, n := range names {
		if _, ok := tableColumns[n]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, n)
		}
		want[n] = true
	}
	out := make([]entity.Collection, 0, len(want))
	for _, c := range entity.AllCollections {
		if want[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func validateIDs(data *entity.Dataset, c entity.Collection) error {
	for i, id := range idsOf(data, c) {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: %s[%d] sin id", domain.ErrInvalidInput, c, i)
		}
	}
	return nil
}

func idsOf(data *entity.Dataset, c entity.Collection) []string {
	var ids []string
	switch c {
	case entity.CollectionOrganizations:
		for _, r := range data.Organizations {
			ids = append(ids, r.ID)
		}
	case entity.CollectionTeams:
		for _, r := range data.Teams {
			ids = append(ids, r.ID)
		}
	case entity.CollectionPeople:
		for _, r := range data.People {
			ids = append(ids, r.ID)
		}
	case entity.CollectionAssets:
		for _, r := range data.Assets {
			ids = append(ids, r.ID)
		}
	case entity.CollectionLicenses:
		for _, r := range data.Licenses {
			ids = append(ids, r.ID)
		}
	case entity.CollectionInventory:
		for _, r := range data.Inventory {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func deleteMissing(ctx context.Context, tx *sql.Tx, c entity.Collection, keep []string) error {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	rows, err := tx.QueryContext(ctx, `SELECT id FROM `+string(c))
	if err != nil {
		return err
	}
	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		if _, ok := keepSet[id]; !ok {
			stale = append(stale, id)
		}
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range stale {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+string(c)+` WHERE id = ?`, id); err != nil {
			return err
		}
	}
	return nil
}

func upsertSQL(c entity.Collection) string {
	cols := tableColumns[c]
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	sets := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		sets = append(sets, col+" = excluded."+col)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		c, strings.Join(cols, ", "), placeholders, strings.Join(sets, ", "))
}

func upsertTable(ctx context.Context, tx *sql.Tx, c entity.Collection, data *entity.Dataset) error {
	stmt, err := tx.PrepareContext(ctx, upsertSQL(c))
	if err != nil {
		return err
	}
	defer stmt.Close()

	exec := func(args []any, err error) error {
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, args...)
		return err
	}

	switch c {
	case entity.CollectionOrganizations:
		for _, r := range data.Organizations {
			if err := exec(organizationArgs(r)); err != nil {
				return fmt.Errorf("id %s: %w", r.ID, err)
			}
		}
	case entity.CollectionTeams:
		for _, r := range data.Teams {
			if err := exec(teamArgs(r)); err != nil {
				return fmt.Errorf("id %s: %w", r.ID, err)
			}
		}
	case entity.CollectionPeople:
		for _, r := range data.People {
			if err := exec(personArgs(r)); err != nil {
				return fmt.Errorf("id %s: %w", r.ID, err)
			}
		}
	case entity.CollectionAssets:
		for _, r := range data.Assets {
			if err := exec(assetArgs(r)); err != nil {
				return fmt.Errorf("id %s: %w", r.ID, err)
			}
		}
	case entity.CollectionLicenses:
		for _, r := range data.Licenses {
			if err := exec(licenseArgs(r)); err != nil {
				return fmt.Errorf("id %s: %w", r.ID, err)
			}
		}
	case entity.CollectionInventory:
		for _, r := range data.Inventory {
			if err := exec(inventoryArgs(r)); err != nil {
				return fmt.Errorf("id %s: %w", r.ID, err)
			}
		}
	}
	return nil
}

func checkForeignKeys(ctx context.Context, tx *sql.Tx, c entity.Collection) error {
	rows, err := tx.QueryContext(ctx, `PRAGMA foreign_key_check(`+string(c)+`)`)
	if err != nil {
		return fmt.Errorf("foreign_key_check %s: %w", c, err)
	}
	defer rows.Close()
	if rows.Next() {
		var (
			table  string
			rowid  sql.NullInt64
			parent string
			fkid   int
		)
		if err := rows.Scan(&table, &rowid, &parent, &fkid); err != nil {
			return fmt.Errorf("foreign_key_check %s: %w", c, err)
		}
		return fmt.Errorf("%w: %s referencia un registro inexistente de %s", domain.ErrInvalidInput, table, parent)
	}
	return rows.Err()
}

// mapConstraint traduce violaciones de restricciones a ErrInvalidInput.
func mapConstraint(err error) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY,
			sqlite3lib.SQLITE_CONSTRAINT_NOTNULL,
			sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	return err
}

func organizationArgs(r entity.Organization) ([]any, error) {
	return []any{r.ID, r.Name, nullText(r.Description), formatTime(r.CreatedAt), formatTime(r.UpdatedAt)}, nil
}

func teamArgs(r entity.Team) ([]any, error) {
	return []any{r.ID, r.Name, nullText(r.Description), r.OrganizationID, nullID(r.ManagerID),
		formatTime(r.CreatedAt), formatTime(r.UpdatedAt)}, nil
}

func personArgs(r entity.Person) ([]any, error) {
	subs, err := encodeJSON(r.Subordinates)
	if err != nil {
		return nil, err
	}
	status := r.Status
	if status == "" {
		status = entity.PersonActive
	}
	return []any{r.ID, r.Name, r.Email, r.Position, status, r.OrganizationID, nullID(r.TeamID), nullID(r.ManagerID),
		subs, formatTime(r.CreatedAt), formatTime(r.UpdatedAt)}, nil
}

func assetArgs(r entity.Asset) ([]any, error) {
	return []any{r.ID, r.Name, r.Type, r.SerialNumber, r.Status, r.Condition, r.Value.String(), r.PurchaseDate,
		nullID(r.AssignedTo), r.OrganizationID, nullText(r.Notes), formatTime(r.CreatedAt), formatTime(r.UpdatedAt)}, nil
}

func licenseArgs(r entity.License) ([]any, error) {
	assigned, err := encodeJSON(r.AssignedTo)
	if err != nil {
		return nil, err
	}
	codes, err := encodeJSON(r.IndividualCodes)
	if err != nil {
		return nil, err
	}
	var cost sql.NullString
	if r.Cost.Valid {
		cost = sql.NullString{String: r.Cost.Decimal.String(), Valid: true}
	}
	return []any{r.ID, r.Name, nullText(r.Description), r.ExpirationDate, r.TotalQuantity, cost, nullText(r.Vendor),
		r.OrganizationID, assigned, nullText(r.LicenseCode), codes, formatTime(r.CreatedAt), formatTime(r.UpdatedAt)}, nil
}

func inventoryArgs(r entity.InventoryItem) ([]any, error) {
	return []any{r.ID, r.Name, r.Category, r.Quantity, r.MinQuantity, r.Location, r.OrganizationID,
		r.CostPerUnit.String(), r.Supplier, formatTime(r.CreatedAt), formatTime(r.UpdatedAt)}, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) readTable(ctx context.Context, c entity.Collection, data *entity.Dataset) error {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(tableColumns[c], ", "), c)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		switch c {
		case entity.CollectionOrganizations:
			r, err := scanOrganization(rows)
			if err != nil {
				return err
			}
			data.Organizations = append(data.Organizations, r)
		case entity.CollectionTeams:
			r, err := scanTeam(rows)
			if err != nil {
				return err
			}
			data.Teams = append(data.Teams, r)
		case entity.CollectionPeople:
			r, err := scanPerson(rows)
			if err != nil {
				return err
			}
			data.People = append(data.People, r)
		case entity.CollectionAssets:
			r, err := scanAsset(rows)
			if err != nil {
				return err
			}
			data.Assets = append(data.Assets, r)
		case entity.CollectionLicenses:
			r, err := scanLicense(rows)
			if err != nil {
				return err
			}
			data.Licenses = append(data.Licenses, r)
		case entity.CollectionInventory:
			r, err := scanInventoryItem(rows)
			if err != nil {
				return err
			}
			data.Inventory = append(data.Inventory, r)
		}
	}
	return rows.Err()
}

func parseTimestamps(created, updated string) (time.Time, time.Time, error) {
	c, err := parseTime(created)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	u, err := parseTime(updated)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return c, u, nil
}

func scanOrganization(row scanner) (entity.Organization, error) {
	var (
		r                entity.Organization
		description      sql.NullString
		created, updated string
	)
	if err := row.Scan(&r.ID, &r.Name, &description, &created, &updated); err != nil {
		return r, err
	}
	r.Description = description.String
	var err error
	r.CreatedAt, r.UpdatedAt, err = parseTimestamps(created, updated)
	return r, err
}

func scanTeam(row scanner) (entity.Team, error) {
	var (
		r                    entity.Team
		description, manager sql.NullString
		created, updated     string
	)
	if err := row.Scan(&r.ID, &r.Name, &description, &r.OrganizationID, &manager, &created, &updated); err != nil {
		return r, err
	}
	r.Description = description.String
	r.ManagerID = idPtr(manager)
	var err error
	r.CreatedAt, r.UpdatedAt, err = parseTimestamps(created, updated)
	return r, err
}

func scanPerson(row scanner) (entity.Person, error) {
	var (
		r                           entity.Person
		status, team, manager, subs sql.NullString
		created, updated            string
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Email, &r.Position, &status, &r.OrganizationID, &team, &manager,
		&subs, &created, &updated); err != nil {
		return r, err
	}
	r.Status = status.String
	if r.Status == "" {
		r.Status = entity.PersonActive
	}
	r.TeamID = idPtr(team)
	r.ManagerID = idPtr(manager)
	if err := decodeJSON(subs, &r.Subordinates); err != nil {
		return r, fmt.Errorf("people %s subordinates: %w", r.ID, err)
	}
	var err error
	r.CreatedAt, r.UpdatedAt, err = parseTimestamps(created, updated)
	return r, err
}

func scanAsset(row scanner) (entity.Asset, error) {
	var (
		r                entity.Asset
		assigned, notes  sql.NullString
		created, updated string
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Type, &r.SerialNumber, &r.Status, &r.Condition, &r.Value, &r.PurchaseDate,
		&assigned, &r.OrganizationID, &notes, &created, &updated); err != nil {
		return r, err
	}
	r.AssignedTo = idPtr(assigned)
	r.Notes = notes.String
	var err error
	r.CreatedAt, r.UpdatedAt, err = parseTimestamps(created, updated)
	return r, err
}

func scanLicense(row scanner) (entity.License, error) {
	var (
		r                         entity.License
		description, vendor, code sql.NullString
		assigned, codes           sql.NullString
		cost                      decimal.NullDecimal
		created, updated          string
	)
	if err := row.Scan(&r.ID, &r.Name, &description, &r.ExpirationDate, &r.TotalQuantity, &cost, &vendor,
		&r.OrganizationID, &assigned, &code, &codes, &created, &updated); err != nil {
		return r, err
	}
	r.Description = description.String
	r.Vendor = vendor.String
	r.LicenseCode = code.String
	r.Cost = cost
	if err := decodeJSON(assigned, &r.AssignedTo); err != nil {
		return r, fmt.Errorf("licenses %s assigned_to: %w", r.ID, err)
	}
	if err := decodeJSON(codes, &r.IndividualCodes); err != nil {
		return r, fmt.Errorf("licenses %s individual_codes: %w", r.ID, err)
	}
	var err error
	r.CreatedAt, r.UpdatedAt, err = parseTimestamps(created, updated)
	return r, err
}

func scanInventoryItem(row scanner) (entity.InventoryItem, error) {
	var (
		r                entity.InventoryItem
		created, updated string
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Category, &r.Quantity, &r.MinQuantity, &r.Location, &r.OrganizationID,
		&r.CostPerUnit, &r.Supplier, &created, &updated); err != nil {
		return r, err
	}
	var err error
	r.CreatedAt, r.UpdatedAt, err = parseTimestamps(created, updated)
	return r, err
}

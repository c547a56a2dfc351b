package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/asset-tracker/internal/domain"
)

// Dataset filas crudas de las seis colecciones, con la forma persistida (snake_case).
// Una colección no cargada queda como slice vacío.
type Dataset struct {
	Organizations []Organization  `json:"organizations"`
	Teams         []Team          `json:"teams"`
	People        []Person        `json:"people"`
	Assets        []Asset         `json:"assets"`
	Licenses      []License       `json:"licenses"`
	Inventory     []InventoryItem `json:"inventory"`
}

// NewDataset devuelve un dataset con todas las colecciones vacías (no nil).
func NewDataset() *Dataset {
	d := &Dataset{}
	d.Normalize()
	return d
}

// Normalize reemplaza colecciones nil por slices vacíos para que serialicen como [].
func (d *Dataset) Normalize() {
	if d.Organizations == nil {
		d.Organizations = []Organization{}
	}
	if d.Teams == nil {
		d.Teams = []Team{}
	}
	if d.People == nil {
		d.People = []Person{}
	}
	if d.Assets == nil {
		d.Assets = []Asset{}
	}
	if d.Licenses == nil {
		d.Licenses = []License{}
	}
	if d.Inventory == nil {
		d.Inventory = []InventoryItem{}
	}
}

// Rows devuelve el slice de la colección (para serializar tal cual).
func (d *Dataset) Rows(c Collection) (any, error) {
	d.Normalize()
	switch c {
	case CollectionOrganizations:
		return d.Organizations, nil
	case CollectionTeams:
		return d.Teams, nil
	case CollectionPeople:
		return d.People, nil
	case CollectionAssets:
		return d.Assets, nil
	case CollectionLicenses:
		return d.Licenses, nil
	case CollectionInventory:
		return d.Inventory, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, c)
}

// Decode reemplaza la colección c con las filas del arreglo JSON raw.
func (d *Dataset) Decode(c Collection, raw []byte) error {
	var err error
	switch c {
	case CollectionOrganizations:
		var rows []Organization
		err = json.Unmarshal(raw, &rows)
		d.Organizations = rows
	case CollectionTeams:
		var rows []Team
		err = json.Unmarshal(raw, &rows)
		d.Teams = rows
	case CollectionPeople:
		var rows []Person
		err = json.Unmarshal(raw, &rows)
		d.People = rows
	case CollectionAssets:
		var rows []Asset
		err = json.Unmarshal(raw, &rows)
		d.Assets = rows
	case CollectionLicenses:
		var rows []License
		err = json.Unmarshal(raw, &rows)
		d.Licenses = rows
	case CollectionInventory:
		var rows []InventoryItem
		err = json.Unmarshal(raw, &rows)
		d.Inventory = rows
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownCollection, c)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, c, err)
	}
	d.Normalize()
	return nil
}

// Len cantidad de filas de la colección.
func (d *Dataset) Len(c Collection) int {
	switch c {
	case CollectionOrganizations:
		return len(d.Organizations)
	case CollectionTeams:
		return len(d.Teams)
	case CollectionPeople:
		return len(d.People)
	case CollectionAssets:
		return len(d.Assets)
	case CollectionLicenses:
		return len(d.Licenses)
	case CollectionInventory:
		return len(d.Inventory)
	}
	return 0
}

// StampMissingTimes completa con now los created_at/updated_at ausentes (cero).
func (d *Dataset) StampMissingTimes(now time.Time) {
	stamp := func(created, updated *time.Time) {
		if created.IsZero() {
			*created = now
		}
		if updated.IsZero() {
			*updated = *created
		}
	}
	for i := range d.Organizations {
		stamp(&d.Organizations[i].CreatedAt, &d.Organizations[i].UpdatedAt)
	}
	for i := range d.Teams {
		stamp(&d.Teams[i].CreatedAt, &d.Teams[i].UpdatedAt)
	}
	for i := range d.People {
		stamp(&d.People[i].CreatedAt, &d.People[i].UpdatedAt)
	}
	for i := range d.Assets {
		stamp(&d.Assets[i].CreatedAt, &d.Assets[i].UpdatedAt)
	}
	for i := range d.Licenses {
		stamp(&d.Licenses[i].CreatedAt, &d.Licenses[i].UpdatedAt)
	}
	for i := range d.Inventory {
		stamp(&d.Inventory[i].CreatedAt, &d.Inventory[i].UpdatedAt)
	}
}

package view

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

// storedToView tabla exhaustiva de nombres de campo: fila almacenada (snake_case) → vista (camelCase).
// La usan la composición de vistas y, invertida, la escritura de registros con forma de vista.
var storedToView = map[entity.Collection]map[string]string{
	entity.CollectionOrganizations: {
		"id": "id", "name": "name", "description": "description",
		"created_at": "createdAt", "updated_at": "updatedAt",
	},
	entity.CollectionTeams: {
		"id": "id", "name": "name", "description": "description",
		"organization_id": "organizationId", "manager_id": "managerId",
		"created_at": "createdAt", "updated_at": "updatedAt",
	},
	entity.CollectionPeople: {
		"id": "id", "name": "name", "email": "email", "position": "position", "status": "status",
		"organization_id": "organizationId", "team_id": "teamId", "manager_id": "managerId",
		"subordinates": "subordinates", "created_at": "createdAt", "updated_at": "updatedAt",
	},
	entity.CollectionAssets: {
		"id": "id", "name": "name", "type": "type", "serial_number": "serialNumber", "status": "status",
		"condition": "condition", "value": "value", "purchase_date": "purchaseDate", "assigned_to": "assignedTo",
		"organization_id": "organizationId", "notes": "notes", "created_at": "createdAt", "updated_at": "updatedAt",
	},
	entity.CollectionLicenses: {
		"id": "id", "name": "name", "description": "description", "expiration_date": "expirationDate",
		"total_quantity": "totalQuantity", "cost": "cost", "vendor": "vendor", "organization_id": "organizationId",
		"assigned_to": "assignedTo", "license_code": "licenseCode", "individual_codes": "individualCodes",
		"created_at": "createdAt", "updated_at": "updatedAt",
	},
	entity.CollectionInventory: {
		"id": "id", "name": "name", "category": "category", "quantity": "quantity", "min_quantity": "minQuantity",
		"location": "location", "organization_id": "organizationId", "cost_per_unit": "costPerUnit",
		"supplier": "supplier", "created_at": "createdAt", "updated_at": "updatedAt",
	},
}

// derivedFields campos que solo existen en la vista (o en filas antiguas) y nunca se persisten.
var derivedFields = map[entity.Collection][]string{
	entity.CollectionTeams:     {"peopleCount", "people_count"},
	entity.CollectionPeople:    {"teamName", "assets", "licenses"},
	entity.CollectionAssets:    {"assignedToName"},
	entity.CollectionLicenses:  {"usedQuantity", "used_quantity", "availableQuantity", "status"},
	entity.CollectionInventory: {"status", "totalValue"},
}

var viewToStored = invert(storedToView)

func invert(in map[entity.Collection]map[string]string) map[entity.Collection]map[string]string {
	out := make(map[entity.Collection]map[string]string, len(in))
	for c, fields := range in {
		m := make(map[string]string, len(fields))
		for stored, view := range fields {
			m[view] = stored
		}
		out[c] = m
	}
	return out
}

// ViewField nombre en la vista de un campo almacenado.
func ViewField(c entity.Collection, stored string) (string, bool) {
	v, ok := storedToView[c][stored]
	return v, ok
}

// StoredField nombre almacenado de un campo de la vista.
func StoredField(c entity.Collection, view string) (string, bool) {
	s, ok := viewToStored[c][view]
	return s, ok
}

// IsDerived indica si el campo es calculado para la colección.
func IsDerived(c entity.Collection, name string) bool {
	for _, f := range derivedFields[c] {
		if f == name {
			return true
		}
	}
	return false
}

// ToStoredRecords convierte un arreglo JSON de registros a la forma almacenada:
// renombra las claves de vista a snake_case y descarta los campos derivados.
// Los registros que ya vienen en forma almacenada quedan igual.
func ToStoredRecords(c entity.Collection, raw []byte) ([]byte, error) {
	if _, ok := storedToView[c]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, c)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %s debe ser un arreglo", domain.ErrInvalidInput, c)
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, c, err)
	}
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: %s[%d] no es un objeto", domain.ErrInvalidInput, c, i)
		}
		records[i] = toStored(c, rec)
	}
	return json.Marshal(records)
}

func toStored(c entity.Collection, rec map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(rec))
	for key, val := range rec {
		if IsDerived(c, key) {
			continue
		}
		if _, isStored := storedToView[c][key]; isStored {
			out[key] = val
		}
	}
	for key, val := range rec {
		stored, ok := StoredField(c, key)
		if !ok || stored == key {
			continue
		}
		if _, exists := out[stored]; !exists {
			out[stored] = val
		}
	}
	return out
}

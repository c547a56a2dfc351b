// Package view compone las vistas camelCase a partir de las filas almacenadas,
// adjuntando relaciones y campos derivados. Los derivados se recalculan en cada lectura.
package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

// Composer arma vistas. Las relaciones se resuelven recorriendo las colecciones completas
// (join por barrido, O(N) por relación): no hay índices secundarios.
type Composer struct {
	Now func() time.Time
}

// NewComposer construye el compositor; now nil usa time.Now.
func NewComposer(now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{Now: now}
}

func (c *Composer) now() time.Time {
	if c == nil || c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Organization vista de una organización.
func (c *Composer) Organization(o entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// Team vista de un equipo; peopleCount cuenta las personas activas con team_id == t.ID.
func (c *Composer) Team(t entity.Team, people []entity.Person) dto.TeamResponse {
	count := 0
	for _, p := range people {
		if p.TeamID != nil && *p.TeamID == t.ID && p.Status == entity.PersonActive {
			count++
		}
	}
	return dto.TeamResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		OrganizationID: t.OrganizationID,
		ManagerID:      t.ManagerID,
		PeopleCount:    count,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// Person vista de una persona con sus activos (assigned_to == id), sus licencias
// (id ∈ assigned_to) y el nombre del equipo. ds debe traer teams, assets y licenses.
func (c *Composer) Person(p entity.Person, ds *entity.Dataset) dto.PersonResponse {
	out := dto.PersonResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Position:       p.Position,
		Status:         p.Status,
		OrganizationID: p.OrganizationID,
		TeamID:         p.TeamID,
		ManagerID:      p.ManagerID,
		Subordinates:   append([]string{}, p.Subordinates...),
		Assets:         []dto.AssetResponse{},
		Licenses:       []dto.LicenseResponse{},
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if ds == nil {
		return out
	}
	if p.TeamID != nil {
		for _, t := range ds.Teams {
			if t.ID == *p.TeamID {
				out.TeamName = t.Name
				break
			}
		}
	}
	for _, a := range ds.Assets {
		if a.AssignedTo != nil && *a.AssignedTo == p.ID {
			av := c.asset(a)
			av.AssignedToName = p.Name
			out.Assets = append(out.Assets, av)
		}
	}
	for _, l := range ds.Licenses {
		if l.AssignedTo.Contains(p.ID) {
			out.Licenses = append(out.Licenses, c.License(l))
		}
	}
	return out
}

// Asset vista de un activo con el nombre del responsable (si existe).
func (c *Composer) Asset(a entity.Asset, people []entity.Person) dto.AssetResponse {
	out := c.asset(a)
	if a.AssignedTo != nil {
		for _, p := range people {
			if p.ID == *a.AssignedTo {
				out.AssignedToName = p.Name
				break
			}
		}
	}
	return out
}

func (c *Composer) asset(a entity.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		SerialNumber:   a.SerialNumber,
		Status:         a.Status,
		Condition:      a.Condition,
		Value:          a.Value,
		PurchaseDate:   a.PurchaseDate,
		AssignedTo:     a.AssignedTo,
		OrganizationID: a.OrganizationID,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// License vista de una licencia con estado y cupos derivados.
func (c *Composer) License(l entity.License) dto.LicenseResponse {
	used := l.UsedQuantity()
	available := l.TotalQuantity - used
	if available < 0 {
		available = 0
	}
	var cost *decimal.Decimal
	if l.Cost.Valid {
		v := l.Cost.Decimal
		cost = &v
	}
	codes := make(map[string]string, len(l.IndividualCodes))
	for k, v := range l.IndividualCodes {
		codes[k] = v
	}
	return dto.LicenseResponse{
		ID:                l.ID,
		Name:              l.Name,
		Description:       l.Description,
		ExpirationDate:    l.ExpirationDate,
		TotalQuantity:     l.TotalQuantity,
		UsedQuantity:      used,
		AvailableQuantity: available,
		Cost:              cost,
		Vendor:            l.Vendor,
		OrganizationID:    l.OrganizationID,
		AssignedTo:        append([]string{}, l.AssignedTo...),
		LicenseCode:       l.LicenseCode,
		IndividualCodes:   codes,
		Status:            status.License(l.ExpirationDate, c.now()),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// InventoryItem vista de un ítem con estado de stock y valor total (cantidad × costo unitario).
func (c *Composer) InventoryItem(i entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Category:       i.Category,
		Quantity:       i.Quantity,
		MinQuantity:    i.MinQuantity,
		Location:       i.Location,
		OrganizationID: i.OrganizationID,
		CostPerUnit:    i.CostPerUnit,
		Supplier:       i.Supplier,
		Status:         status.Inventory(i.Quantity, i.MinQuantity),
		TotalValue:     i.CostPerUnit.Mul(decimal.NewFromInt(int64(i.Quantity))),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

package entity

import (
	"fmt"

	"github.com/jhoicas/asset-tracker/internal/domain"
)

// Reconcile ajusta estado y responsable para que allocated ⇔ AssignedTo != nil.
// Un activo allocated sin responsable pasa a available; un responsable con otro estado se descarta.
// Devuelve true si modificó el activo.
func (a *Asset) Reconcile() bool {
	assigned := a.AssignedTo != nil && *a.AssignedTo != ""
	switch {
	case a.Status == AssetAllocated && !assigned:
		a.Status = AssetAvailable
		a.AssignedTo = nil
		return true
	case a.Status != AssetAllocated && a.AssignedTo != nil:
		a.AssignedTo = nil
		return true
	}
	return false
}

// ReconcileAssets aplica Asset.Reconcile a todos los activos.
func (d *Dataset) ReconcileAssets() {
	for i := range d.Assets {
		d.Assets[i].Reconcile()
	}
}

// CheckLicenseCapacity falla si alguna licencia tiene más personas asignadas que cupos.
func (d *Dataset) CheckLicenseCapacity() error {
	for _, l := range d.Licenses {
		if l.UsedQuantity() > l.TotalQuantity {
			return fmt.Errorf("%w: licenses %s: %d asignados con %d cupos",
				domain.ErrInvalidInput, l.ID, l.UsedQuantity(), l.TotalQuantity)
		}
	}
	return nil
}

// CheckReferences verifica que las referencias entre colecciones apunten a filas del propio dataset.
// Cubre las mismas relaciones que las claves foráneas del almacenamiento.
func (d *Dataset) CheckReferences() error {
	orgs := make(map[string]bool, len(d.Organizations))
	for _, o := range d.Organizations {
		orgs[o.ID] = true
	}
	teams := make(map[string]bool, len(d.Teams))
	for _, t := range d.Teams {
		teams[t.ID] = true
	}
	people := make(map[string]bool, len(d.People))
	for _, p := range d.People {
		people[p.ID] = true
	}

	missing := func(c Collection, id, field, ref string) error {
		return fmt.Errorf("%w: %s %s: %s %q no existe", domain.ErrInvalidInput, c, id, field, ref)
	}
	optional := func(set map[string]bool, ref *string) bool {
		return ref == nil || *ref == "" || set[*ref]
	}

	for _, t := range d.Teams {
		if !orgs[t.OrganizationID] {
			return missing(CollectionTeams, t.ID, "organization_id", t.OrganizationID)
		}
	}
	for _, p := range d.People {
		if !orgs[p.OrganizationID] {
			return missing(CollectionPeople, p.ID, "organization_id", p.OrganizationID)
		}
		if !optional(teams, p.TeamID) {
			return missing(CollectionPeople, p.ID, "team_id", *p.TeamID)
		}
	}
	for _, a := range d.Assets {
		if !orgs[a.OrganizationID] {
			return missing(CollectionAssets, a.ID, "organization_id", a.OrganizationID)
		}
		if !optional(people, a.AssignedTo) {
			return missing(CollectionAssets, a.ID, "assigned_to", *a.AssignedTo)
		}
	}
	for _, l := range d.Licenses {
		if !orgs[l.OrganizationID] {
			return missing(CollectionLicenses, l.ID, "organization_id", l.OrganizationID)
		}
	}
	for _, i := range d.Inventory {
		if !orgs[i.OrganizationID] {
			return missing(CollectionInventory, i.ID, "organization_id", i.OrganizationID)
		}
	}
	return nil
}

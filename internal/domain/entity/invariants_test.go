package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

func ref(s string) *string { return &s }

func TestAsset_Reconcile(t *testing.T) {
	tests := []struct {
		name       string
		in         entity.Asset
		wantStatus string
		wantOwner  *string
		changed    bool
	}{
		{"asignado consistente", entity.Asset{Status: entity.AssetAllocated, AssignedTo: ref("p1")}, entity.AssetAllocated, ref("p1"), false},
		{"disponible consistente", entity.Asset{Status: entity.AssetAvailable}, entity.AssetAvailable, nil, false},
		{"allocated sin responsable", entity.Asset{Status: entity.AssetAllocated}, entity.AssetAvailable, nil, true},
		{"allocated con responsable vacío", entity.Asset{Status: entity.AssetAllocated, AssignedTo: ref("")}, entity.AssetAvailable, nil, true},
		{"mantenimiento con responsable", entity.Asset{Status: entity.AssetMaintenance, AssignedTo: ref("p1")}, entity.AssetMaintenance, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.in
			assert.Equal(t, tt.changed, a.Reconcile())
			assert.Equal(t, tt.wantStatus, a.Status)
			assert.Equal(t, tt.wantOwner, a.AssignedTo)
		})
	}
}

func TestDataset_CheckLicenseCapacity(t *testing.T) {
	ds := entity.NewDataset()
	ds.Licenses = []entity.License{{ID: "l1", TotalQuantity: 2, AssignedTo: entity.IDList{"p1", "p2"}}}
	require.NoError(t, ds.CheckLicenseCapacity())

	ds.Licenses = append(ds.Licenses, entity.License{ID: "l2", TotalQuantity: 1, AssignedTo: entity.IDList{"x", "y", "z"}})
	err := ds.CheckLicenseCapacity()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "l2")
}

func TestDataset_CheckReferences(t *testing.T) {
	valid := func() *entity.Dataset {
		ds := entity.NewDataset()
		ds.Organizations = []entity.Organization{{ID: "o1"}}
		ds.Teams = []entity.Team{{ID: "t1", OrganizationID: "o1"}}
		ds.People = []entity.Person{{ID: "p1", OrganizationID: "o1", TeamID: ref("t1")}}
		ds.Assets = []entity.Asset{{ID: "a1", OrganizationID: "o1", AssignedTo: ref("p1")}}
		ds.Licenses = []entity.License{{ID: "l1", OrganizationID: "o1"}}
		ds.Inventory = []entity.InventoryItem{{ID: "i1", OrganizationID: "o1"}}
		return ds
	}
	require.NoError(t, valid().CheckReferences())

	breakages := map[string]func(*entity.Dataset){
		"equipo sin organización":   func(ds *entity.Dataset) { ds.Teams[0].OrganizationID = "x" },
		"persona sin equipo":        func(ds *entity.Dataset) { ds.People[0].TeamID = ref("x") },
		"activo sin responsable":    func(ds *entity.Dataset) { ds.Assets[0].AssignedTo = ref("x") },
		"licencia sin organización": func(ds *entity.Dataset) { ds.Licenses[0].OrganizationID = "x" },
		"ítem sin organización":     func(ds *entity.Dataset) { ds.Inventory[0].OrganizationID = "x" },
	}
	for name, mutate := range breakages {
		t.Run(name, func(t *testing.T) {
			ds := valid()
			mutate(ds)
			assert.ErrorIs(t, ds.CheckReferences(), domain.ErrInvalidInput)
		})
	}
}

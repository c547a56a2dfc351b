package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/status"
)

var now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func TestLicense(t *testing.T) {
	cases := []struct {
		name       string
		expiration string
		want       string
	}{
		{"diez dias adelante", "2026-01-20", status.LicenseExpiringSoon},
		{"cuarenta dias adelante", "2026-02-19", status.LicenseActive},
		{"un dia atras", "2026-01-09", status.LicenseExpired},
		{"mismo dia", "2026-01-10", status.LicenseExpiringSoon},
		{"borde treinta dias", "2026-02-09", status.LicenseExpiringSoon},
		{"timestamp RFC3339", "2026-03-01T00:00:00Z", status.LicenseActive},
		{"fecha ilegible", "pronto", status.LicenseActive},
		{"vacia", "", status.LicenseActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.License(tc.expiration, now))
		})
	}
}

func TestLicense_Determinista(t *testing.T) {
	a := status.License("2026-01-25", now)
	b := status.License("2026-01-25", now)
	assert.Equal(t, a, b)
}

func TestDaysRemaining(t *testing.T) {
	exp := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, status.DaysRemaining(exp, now))
	assert.Equal(t, -1, status.DaysRemaining(time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC), now))
}

func TestInventory(t *testing.T) {
	assert.Equal(t, status.StockOutOfStock, status.Inventory(0, 5))
	assert.Equal(t, status.StockLow, status.Inventory(3, 5))
	assert.Equal(t, status.StockLow, status.Inventory(5, 5))
	assert.Equal(t, status.StockAvailable, status.Inventory(10, 5))
	assert.Equal(t, status.StockAvailable, status.Inventory(1, 0))

	assert.True(t, status.NeedsRestock(0, 0))
	assert.False(t, status.NeedsRestock(6, 5))
}

func TestAssetConsistent(t *testing.T) {
	p := "p1"
	assert.True(t, status.AssetConsistent(entity.Asset{Status: entity.AssetAllocated, AssignedTo: &p}))
	assert.True(t, status.AssetConsistent(entity.Asset{Status: entity.AssetAvailable}))
	assert.False(t, status.AssetConsistent(entity.Asset{Status: entity.AssetAllocated}))
	assert.False(t, status.AssetConsistent(entity.Asset{Status: entity.AssetMaintenance, AssignedTo: &p}))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2026-03-01", status.NormalizeDate("2026-03-01T10:00:00Z"))
	assert.Equal(t, "2026-03-01", status.NormalizeDate(" 2026-03-01 "))
	assert.Equal(t, "ayer", status.NormalizeDate("ayer"))
}

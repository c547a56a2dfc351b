// Package status deriva los estados calculados (licencia, inventario, activo).
// Son funciones puras de los campos almacenados y de un "ahora" explícito: nunca se persisten.
package status

import (
	"math"
	"strings"
	"time"

	"github.com/jhoicas/asset-tracker/internal/domain/entity"
)

// ExpiringSoonDays ventana (inclusive) en la que una licencia se considera por vencer.
const ExpiringSoonDays = 30

// Estados derivados de licencia.
const (
	LicenseActive       = "active"
	LicenseExpiringSoon = "expiring_soon"
	LicenseExpired      = "expired"
)

// Estados derivados de inventario.
const (
	StockAvailable  = "available"
	StockLow        = "low_stock"
	StockOutOfStock = "out_of_stock"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate interpreta una fecha de calendario (YYYY-MM-DD) o un timestamp RFC 3339.
// Las fechas sin zona se toman en UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate devuelve la fecha como YYYY-MM-DD cuando se puede interpretar; si no, la deja igual.
func NormalizeDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return t.UTC().Format("2006-01-02")
}

// DaysRemaining días hasta la fecha, redondeando hacia arriba: ceil((exp - now) / 24h).
func DaysRemaining(expiration, now time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}

// License estado de una licencia según su fecha de vencimiento.
// Una fecha ilegible se considera vigente.
func License(expirationDate string, now time.Time) string {
	exp, ok := ParseDate(expirationDate)
	if !ok {
		return LicenseActive
	}
	days := DaysRemaining(exp, now)
	switch {
	case days < 0:
		return LicenseExpired
	case days <= ExpiringSoonDays:
		return LicenseExpiringSoon
	default:
		return LicenseActive
	}
}

// Inventory estado de stock: 0 agotado; 0 < q <= min bajo; resto disponible.
func Inventory(quantity, minQuantity int) string {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= minQuantity:
		return StockLow
	default:
		return StockAvailable
	}
}

// NeedsRestock indica si el ítem está bajo o agotado.
func NeedsRestock(quantity, minQuantity int) bool {
	return Inventory(quantity, minQuantity) != StockAvailable
}

// AssetConsistent allocated ⇔ AssignedTo != nil.
func AssetConsistent(a entity.Asset) bool {
	return (a.Status == entity.AssetAllocated) == (a.AssignedTo != nil)
}

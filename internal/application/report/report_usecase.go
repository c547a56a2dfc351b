// Package report arma los datos de los reportes PDF a partir de las vistas compuestas.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/asset-tracker/internal/application/usecase"
	"github.com/jhoicas/asset-tracker/internal/domain"
)

// UseCase genera la hoja de custodia de una persona y el reporte de inventario.
type UseCase struct {
	orgs      *usecase.OrganizationUseCase
	people    *usecase.PersonUseCase
	inventory *usecase.InventoryUseCase
	generator Generator
	now       func() time.Time
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	orgs *usecase.OrganizationUseCase,
	people *usecase.PersonUseCase,
	inventory *usecase.InventoryUseCase,
	generator Generator,
	now func() time.Time,
) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{orgs: orgs, people: people, inventory: inventory, generator: generator, now: now}
}

// PersonCustody devuelve el PDF y el nombre de archivo sugerido.
// domain.ErrNotFound si la persona no existe.
func (uc *UseCase) PersonCustody(ctx context.Context, personID string) ([]byte, string, error) {
	person, err := uc.people.GetByID(ctx, personID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener persona: %w", err)
	}
	if person == nil {
		return nil, "", domain.ErrNotFound
	}
	org, err := uc.orgs.GetByID(ctx, person.OrganizationID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener organización: %w", err)
	}
	if org == nil {
		return nil, "", domain.ErrNotFound
	}

	pdf, err := uc.generator.CustodySheet(ctx, org, person, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("custodia_%s.pdf", slug(person.Name, person.ID)), nil
}

// InventoryReport devuelve el PDF del inventario de la organización.
// domain.ErrNotFound si la organización no existe.
func (uc *UseCase) InventoryReport(ctx context.Context, orgID string) ([]byte, string, error) {
	org, err := uc.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener organización: %w", err)
	}
	if org == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.inventory.GetAll(ctx, orgID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener inventario: %w", err)
	}

	pdf, err := uc.generator.InventoryReport(ctx, org, items, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("inventario_%s.pdf", slug(org.Name, org.ID)), nil
}

// slug quita acentos y deja solo letras ASCII, dígitos y guiones bajos; si no queda nada usa fallback.
func slug(s, fallback string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if plain, _, err := transform.String(t, s); err == nil {
		s = plain
	}
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return fallback
	}
	return out
}

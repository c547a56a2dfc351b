package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

// base dependencias comunes de los casos de uso.
type base struct {
	store repository.Store
	views *view.Composer
}

func newBase(store repository.Store, views *view.Composer) base {
	if views == nil {
		views = view.NewComposer(nil)
	}
	return base{store: store, views: views}
}

func (b base) now() time.Time {
	return b.views.Now().UTC()
}

func newID() string {
	return uuid.New().String()
}

func indexOf[T any](rows []T, id string, key func(T) string) int {
	for i, r := range rows {
		if key(r) == id {
			return i
		}
	}
	return -1
}

func orgKey(o entity.Organization) string   { return o.ID }
func teamKey(t entity.Team) string          { return t.ID }
func personKey(p entity.Person) string      { return p.ID }
func assetKey(a entity.Asset) string        { return a.ID }
func licenseKey(l entity.License) string    { return l.ID }
func itemKey(i entity.InventoryItem) string { return i.ID }

// optionalID normaliza una referencia opcional: nil o "" (tras trim) significan sin referencia.
func optionalID(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	return nil
}

// requireOrganization verifica que la organización exista (ds debe traer organizations).
func requireOrganization(ds *entity.Dataset, orgID string) error {
	if indexOf(ds.Organizations, orgID, orgKey) < 0 {
		return fmt.Errorf("%w: organización %q no existe", domain.ErrInvalidInput, orgID)
	}
	return nil
}

// requirePersonInOrg verifica que la persona exista y pertenezca a la organización.
func requirePersonInOrg(people []entity.Person, personID, orgID string) (int, error) {
	i := indexOf(people, personID, personKey)
	if i < 0 {
		return -1, fmt.Errorf("%w: persona %q no existe", domain.ErrInvalidInput, personID)
	}
	if people[i].OrganizationID != orgID {
		return -1, fmt.Errorf("%w: persona %q pertenece a otra organización", domain.ErrInvalidInput, personID)
	}
	return i, nil
}

// requireTeamInOrg verifica que el equipo exista y pertenezca a la organización.
func requireTeamInOrg(teams []entity.Team, teamID, orgID string) error {
	i := indexOf(teams, teamID, teamKey)
	if i < 0 {
		return fmt.Errorf("%w: equipo %q no existe", domain.ErrInvalidInput, teamID)
	}
	if teams[i].OrganizationID != orgID {
		return fmt.Errorf("%w: equipo %q pertenece a otra organización", domain.ErrInvalidInput, teamID)
	}
	return nil
}

func (b base) read(ctx context.Context, names ...entity.Collection) (*entity.Dataset, error) {
	ds, err := b.store.Read(ctx, names...)
	if err != nil {
		return nil, fmt.Errorf("leer colecciones: %w", err)
	}
	return ds, nil
}

func (b base) replace(ctx context.Context, ds *entity.Dataset, names ...entity.Collection) error {
	if err := b.store.Replace(ctx, ds, names...); err != nil {
		return fmt.Errorf("guardar colecciones: %w", err)
	}
	return nil
}

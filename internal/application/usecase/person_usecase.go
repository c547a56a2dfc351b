package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/internal/application/view"
	"github.com/jhoicas/asset-tracker/internal/domain"
	"github.com/jhoicas/asset-tracker/internal/domain/entity"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

var personViewCollections = []entity.Collection{
	entity.CollectionTeams, entity.CollectionPeople, entity.CollectionAssets, entity.CollectionLicenses,
}

// PersonUseCase casos de uso para personas.
type PersonUseCase struct {
	base
}

// NewPersonUseCase construye el caso de uso.
func NewPersonUseCase(store repository.Store, views *view.Composer) *PersonUseCase {
	return &PersonUseCase{base: newBase(store, views)}
}

// GetAll lista las personas de la organización (con activos y licencias) ordenadas por nombre.
func (uc *PersonUseCase) GetAll(ctx context.Context, orgID string) ([]dto.PersonResponse, error) {
	ds, err := uc.read(ctx, personViewCollections...)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonResponse, 0)
	for _, p := range ds.People {
		if p.OrganizationID == orgID {
			out = append(out, uc.views.Person(p, ds))
		}
	}
	sortByName(out, func(p dto.PersonResponse) string { return p.Name })
	return out, nil
}

// GetByID obtiene una persona por ID.
func (uc *PersonUseCase) GetByID(ctx context.Context, id string) (*dto.PersonResponse, error) {
	ds, err := uc.read(ctx, personViewCollections...)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.People, id, personKey)
	if i < 0 {
		return nil, nil
	}
	v := uc.views.Person(ds.People[i], ds)
	return &v, nil
}

// Create crea una persona en la organización.
func (uc *PersonUseCase) Create(ctx context.Context, orgID string, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	if err := required("email", in.Email); err != nil {
		return nil, err
	}
	personStatus := in.Status
	if personStatus == "" {
		personStatus = entity.PersonActive
	}
	if !entity.ValidPersonStatus(personStatus) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, personStatus)
	}

	ds, err := uc.read(ctx, append([]entity.Collection{entity.CollectionOrganizations}, personViewCollections...)...)
	if err != nil {
		return nil, err
	}
	if err := requireOrganization(ds, orgID); err != nil {
		return nil, err
	}
	teamID := optionalID(in.TeamID)
	if teamID != nil {
		if err := requireTeamInOrg(ds.Teams, *teamID, orgID); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	person := entity.Person{
		ID:             newID(),
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Position:       in.Position,
		Status:         personStatus,
		OrganizationID: orgID,
		TeamID:         teamID,
		ManagerID:      optionalID(in.ManagerID),
		Subordinates:   uniqueIDs(in.Subordinates),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	ds.People = append(ds.People, person)
	if err := uc.replace(ctx, ds, entity.CollectionPeople); err != nil {
		return nil, err
	}
	v := uc.views.Person(person, ds)
	return &v, nil
}

// Update actualiza una persona. TeamID/ManagerID "" quitan la referencia.
func (uc *PersonUseCase) Update(ctx context.Context, id string, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	ds, err := uc.read(ctx, personViewCollections...)
	if err != nil {
		return nil, err
	}
	i := indexOf(ds.People, id, personKey)
	if i < 0 {
		return nil, nil
	}
	p := &ds.People[i]
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		if err := required("email", *in.Email); err != nil {
			return nil, err
		}
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.Position != nil {
		p.Position = *in.Position
	}
	if in.Status != nil {
		if !entity.ValidPersonStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *in.Status)
		}
		p.Status = *in.Status
	}
	if in.TeamID != nil {
		teamID := optionalID(in.TeamID)
		if teamID != nil {
			if err := requireTeamInOrg(ds.Teams, *teamID, p.OrganizationID); err != nil {
				return nil, err
			}
		}
		p.TeamID = teamID
	}
	if in.ManagerID != nil {
		p.ManagerID = optionalID(in.ManagerID)
	}
	if in.Subordinates != nil {
		p.Subordinates = uniqueIDs(*in.Subordinates)
	}
	p.UpdatedAt = uc.now()
	if err := uc.replace(ctx, ds, entity.CollectionPeople); err != nil {
		return nil, err
	}
	v := uc.views.Person(*p, ds)
	return &v, nil
}

// Delete elimina la persona y limpia toda referencia a ella: libera sus activos,
// la quita de las licencias (y de sus códigos individuales), de los subordinados de otros
// y de los gerentes de personas y equipos. Un id inexistente no hace nada.
func (uc *PersonUseCase) Delete(ctx context.Context, id string) error {
	ds, err := uc.read(ctx, personViewCollections...)
	if err != nil {
		return err
	}
	if indexOf(ds.People, id, personKey) < 0 {
		return nil
	}
	now := uc.now()

	ds.People = filter(ds.People, func(p entity.Person) bool { return p.ID != id })
	for i := range ds.People {
		p := &ds.People[i]
		changed := false
		if p.Subordinates.Contains(id) {
			p.Subordinates = p.Subordinates.Without(id)
			changed = true
		}
		if p.ManagerID != nil && *p.ManagerID == id {
			p.ManagerID = nil
			changed = true
		}
		if changed {
			p.UpdatedAt = now
		}
	}
	for i := range ds.Teams {
		if t := &ds.Teams[i]; t.ManagerID != nil && *t.ManagerID == id {
			t.ManagerID = nil
			t.UpdatedAt = now
		}
	}
	for i := range ds.Assets {
		if a := &ds.Assets[i]; a.AssignedTo != nil && *a.AssignedTo == id {
			a.AssignedTo = nil
			a.Status = entity.AssetAvailable
			a.UpdatedAt = now
		}
	}
	for i := range ds.Licenses {
		l := &ds.Licenses[i]
		_, hasCode := l.IndividualCodes[id]
		if l.AssignedTo.Contains(id) || hasCode {
			l.AssignedTo = l.AssignedTo.Without(id)
			delete(l.IndividualCodes, id)
			l.UpdatedAt = now
		}
	}
	return uc.replace(ctx, ds, personViewCollections...)
}

func uniqueIDs(ids []string) entity.IDList {
	out := make(entity.IDList, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

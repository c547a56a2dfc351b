package entity

import (
	"fmt"

	"github.com/jhoicas/asset-tracker/internal/domain"
)

// Collection nombre de una de las seis colecciones persistidas.
type Collection string

const (
	CollectionOrganizations Collection = "organizations"
	CollectionTeams         Collection = "teams"
	CollectionPeople        Collection = "people"
	CollectionAssets        Collection = "assets"
	CollectionLicenses      Collection = "licenses"
	CollectionInventory     Collection = "inventory"
)

// AllCollections en orden de dependencia: cada colección solo referencia a las anteriores.
var AllCollections = []Collection{
	CollectionOrganizations,
	CollectionTeams,
	CollectionPeople,
	CollectionAssets,
	CollectionLicenses,
	CollectionInventory,
}

// ParseCollection valida el nombre contra el conjunto fijo de colecciones.
func ParseCollection(name string) (Collection, error) {
	for _, c := range AllCollections {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownCollection, name)
}

package pom

import (
	"github.com/beevik/etree"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// extractActiveBOMs returns the BOM imports declared in the managed
// section. Entries missing a group or artifact are skipped silently.
func extractActiveBOMs(managed []*etree.Element) []entities.ActiveBOM {
	var boms []entities.ActiveBOM
	for _, dependency := range managed {
		coordinate, ok := coordinateOf(dependency)
		if !ok || !coordinate.IsBOMImport() {
			continue
		}
		boms = append(boms, entities.ActiveBOM{
			Group:    coordinate.Group,
			Artifact: coordinate.Artifact,
			Version:  coordinate.Version,
		})
	}
	return boms
}

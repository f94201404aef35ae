package inventory

import (
	"fmt"
	"os"
	"sort"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/package-url/packageurl-go"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

const (
	toolName         = "jakartamigrate"
	propertyScope    = "maven:scope"
	propertyType     = "maven:type"
	propertySource   = "jakartamigrate:descriptor"
	propertyMigrated = "jakartamigrate:migrated"
)

// CycloneDXInventoryRepository writes the dependencies left in the migrated
// descriptors as a CycloneDX JSON BOM.
type CycloneDXInventoryRepository struct{}

// NewCycloneDXInventoryRepository creates a new inventory exporter.
func NewCycloneDXInventoryRepository() repositories.InventoryRepository {
	return &CycloneDXInventoryRepository{}
}

// Export writes one library component per distinct coordinate and version.
func (it *CycloneDXInventoryRepository) Export(path string, summary *entities.Summary) error {
	bom := BuildBOM(summary)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create inventory %s: %w", path, err)
	}
	defer file.Close()

	encoder := cdx.NewBOMEncoder(file, cdx.BOMFileFormatJSON)
	encoder.SetPretty(true)
	if encodeErr := encoder.Encode(bom); encodeErr != nil {
		return fmt.Errorf("failed to encode inventory: %w", encodeErr)
	}

	logger.Infof("Wrote dependency inventory with %d components to %s", len(*bom.Components), path)
	return nil
}

// BuildBOM collects the descriptor coordinates of a run into a BOM.
func BuildBOM(summary *entities.Summary) *cdx.BOM {
	seen := make(map[string]bool)
	components := []cdx.Component{}

	for _, result := range summary.Results {
		for _, dependency := range result.Dependencies {
			purl := packageurl.NewPackageURL(
				packageurl.TypeMaven, dependency.Group, dependency.Artifact, dependency.Version, nil, "",
			).ToString()
			if seen[purl] {
				continue
			}
			seen[purl] = true

			properties := []cdx.Property{
				{Name: propertySource, Value: result.Path},
				{Name: propertyMigrated, Value: fmt.Sprintf("%t", result.Modified)},
			}
			if dependency.Scope != "" {
				properties = append(properties, cdx.Property{Name: propertyScope, Value: dependency.Scope})
			}
			if dependency.Type != "" {
				properties = append(properties, cdx.Property{Name: propertyType, Value: dependency.Type})
			}

			components = append(components, cdx.Component{
				BOMRef:     purl,
				Type:       cdx.ComponentTypeLibrary,
				Group:      dependency.Group,
				Name:       dependency.Artifact,
				Version:    dependency.Version,
				PackageURL: purl,
				Properties: &properties,
			})
		}
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].BOMRef < components[j].BOMRef
	})

	bom := cdx.NewBOM()
	bom.Metadata = &cdx.Metadata{
		Component: &cdx.Component{
			Type: cdx.ComponentTypeApplication,
			Name: toolName,
		},
	}
	bom.Components = &components
	return bom
}

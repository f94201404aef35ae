package pom

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// Rewritten is the outcome of running the phases over one descriptor.
type Rewritten struct {
	Content      []byte // serialized tree, or the input bytes when nothing changed
	Changes      []entities.Change
	Dependencies []entities.Coordinate
}

// Modified reports whether any phase edited the descriptor.
func (r *Rewritten) Modified() bool { return len(r.Changes) > 0 }

// Rewrite parses a descriptor, runs every phase in order and serializes the
// result. The tree is only rendered after all phases have completed.
func Rewrite(content []byte, rules *entities.RuleTable) (*Rewritten, error) {
	doc, err := parseDocument(content)
	if err != nil {
		return nil, err
	}

	sections := sliceDescriptor(doc.Root())
	phases := newPipeline(rules)

	logger.Debug("[pom] Updating dependencyManagement")
	phases.rewriteManaged(sections.managed)

	boms := extractActiveBOMs(sections.managed)
	logger.Debugf("[pom] %d active BOM(s)", len(boms))

	logger.Debug("[pom] Migrating dependencies")
	phases.rewriteRegular(sections.regular)

	logger.Debug("[pom] Cleaning up managed versions")
	phases.cleanupManagedVersions(sections.regular, boms)

	logger.Debug("[pom] Updating properties")
	phases.rewriteProperties(sections.properties)

	logger.Debug("[pom] Updating plugins")
	phases.adjustPlugins(sections.plugins)

	result := &Rewritten{
		Content:      content,
		Changes:      phases.log.Changes(),
		Dependencies: sections.collectCoordinates(),
	}
	if !phases.log.Modified() {
		return result, nil
	}

	rendered, err := serializeDocument(doc)
	if err != nil {
		return nil, err
	}
	result.Content = rendered
	return result, nil
}

package pom

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// descriptor is a descriptor tree sliced once into the sections the phases
// work on. Managed and regular dependencies never overlap.
type descriptor struct {
	managed    []*etree.Element // dependencyManagement/dependencies/dependency
	regular    []*etree.Element // every other dependencies/dependency
	plugins    []*etree.Element // build plugins and pluginManagement plugins
	properties []*etree.Element // properties sections
}

// sliceDescriptor navigates from the project root and from every profile,
// which carry the same dependency, build and properties sections.
func sliceDescriptor(root *etree.Element) *descriptor {
	d := &descriptor{}
	d.addScope(root)
	if profiles := root.SelectElement("profiles"); profiles != nil {
		for _, profile := range profiles.SelectElements("profile") {
			d.addScope(profile)
		}
	}
	return d
}

func (d *descriptor) addScope(scope *etree.Element) {
	if management := scope.SelectElement("dependencyManagement"); management != nil {
		d.managed = append(d.managed, dependenciesOf(management)...)
	}
	d.regular = append(d.regular, dependenciesOf(scope)...)

	if build := scope.SelectElement("build"); build != nil {
		plugins := pluginsOf(build)
		if management := build.SelectElement("pluginManagement"); management != nil {
			plugins = append(plugins, pluginsOf(management)...)
		}
		for _, plugin := range plugins {
			d.regular = append(d.regular, dependenciesOf(plugin)...)
		}
		d.plugins = append(d.plugins, plugins...)
	}

	if properties := scope.SelectElement("properties"); properties != nil {
		d.properties = append(d.properties, properties)
	}
}

func dependenciesOf(parent *etree.Element) []*etree.Element {
	dependencies := parent.SelectElement("dependencies")
	if dependencies == nil {
		return nil
	}
	return dependencies.SelectElements("dependency")
}

func pluginsOf(parent *etree.Element) []*etree.Element {
	plugins := parent.SelectElement("plugins")
	if plugins == nil {
		return nil
	}
	return plugins.SelectElements("plugin")
}

// childText returns the trimmed text of a direct child, and whether the
// child exists.
func childText(parent *etree.Element, tag string) (string, bool) {
	child := parent.SelectElement(tag)
	if child == nil {
		return "", false
	}
	return strings.TrimSpace(child.Text()), true
}

// coordinateOf reads a dependency element. ok is false when the group or
// artifact element is missing.
func coordinateOf(dependency *etree.Element) (entities.Coordinate, bool) {
	group, hasGroup := childText(dependency, "groupId")
	artifact, hasArtifact := childText(dependency, "artifactId")
	if !hasGroup || !hasArtifact {
		return entities.Coordinate{}, false
	}
	version, _ := childText(dependency, "version")
	scope, _ := childText(dependency, "scope")
	kind, _ := childText(dependency, "type")
	return entities.Coordinate{
		Group:    group,
		Artifact: artifact,
		Version:  version,
		Scope:    scope,
		Type:     kind,
	}, true
}

// rewriteCoordinate points a dependency element at a new group and
// artifact. It reports whether anything changed.
func rewriteCoordinate(dependency *etree.Element, current, replacement entities.Coordinate) bool {
	changed := false
	if current.Group != replacement.Group {
		dependency.SelectElement("groupId").SetText(replacement.Group)
		changed = true
	}
	if current.Artifact != replacement.Artifact {
		dependency.SelectElement("artifactId").SetText(replacement.Artifact)
		changed = true
	}
	return changed
}

// collectCoordinates lists every dependency left in the tree.
func (d *descriptor) collectCoordinates() []entities.Coordinate {
	coordinates := make([]entities.Coordinate, 0, len(d.managed)+len(d.regular))
	for _, dependency := range append(append([]*etree.Element{}, d.managed...), d.regular...) {
		if coordinate, ok := coordinateOf(dependency); ok {
			coordinates = append(coordinates, coordinate)
		}
	}
	return coordinates
}

package pom

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

const (
	platformMarker = "eap"
	compilerPlugin = "maven-compiler-plugin"
	releaseLevel   = "11"

	noteManagedByProperty = "version managed by property"
	noteManagedByBOM      = "managed by BOM"
)

// legacyLanguageLevels are the source/target values replaced by a release.
var legacyLanguageLevels = map[string]bool{"1.8": true, "8": true}

// legacyVersionRule rewrites a version property of one named component.
// These are literal, version-pinned matches, not a general upgrade policy.
type legacyVersionRule struct {
	component string
	matches   func(value string) bool
	target    string
}

var legacyVersionRules = []legacyVersionRule{
	{
		component: "eap",
		matches: func(value string) bool {
			return value == "7.4" || strings.HasPrefix(value, "7.4.")
		},
		target: "8.0.0.GA",
	},
	{
		component: "hibernate",
		matches: func(value string) bool {
			return strings.HasPrefix(value, "5.")
		},
		target: "6.2.0.Final",
	},
	{
		component: "resteasy",
		matches: func(value string) bool {
			return strings.HasPrefix(value, "3.") || strings.HasPrefix(value, "4.")
		},
		target: "6.2.0.Final",
	},
}

// pipeline runs the rewrite phases over one descriptor. Every phase records
// a change only when it actually edited the tree.
type pipeline struct {
	rules *entities.RuleTable
	log   *entities.ChangeLog
}

func newPipeline(rules *entities.RuleTable) *pipeline {
	return &pipeline{rules: rules, log: entities.NewChangeLog()}
}

// rewriteManaged rewrites coordinates in the managed section and bumps the
// version of BOM imports whose rule carries one.
func (p *pipeline) rewriteManaged(managed []*etree.Element) {
	for _, dependency := range managed {
		current, ok := coordinateOf(dependency)
		if !ok {
			continue
		}
		key := current.Key()
		rule, found := p.rules.Lookup(key)
		if !found {
			continue
		}

		target := current
		coordinateChanged := false
		if replacement, hasReplacement := p.rules.Replacement(key); hasReplacement {
			coordinateChanged = rewriteCoordinate(dependency, current, replacement)
			target.Group, target.Artifact = replacement.Group, replacement.Artifact
		}

		version := dependency.SelectElement("version")
		if current.IsBOMImport() && rule.NewVersion != "" && version != nil {
			p.updateBOMVersion(version, current, target, rule.NewVersion, coordinateChanged)
			continue
		}

		if coordinateChanged {
			kept := current.Version
			if version == nil {
				kept = "none"
			}
			p.log.Record(entities.Change{
				Kind: entities.ChangeManagedDependencyUpdate,
				Old:  key,
				New:  target.Key(),
				Note: "version kept: " + kept,
			})
		}
	}
}

func (p *pipeline) updateBOMVersion(
	version *etree.Element,
	current, target entities.Coordinate,
	newVersion string,
	coordinateChanged bool,
) {
	if entities.IsPropertyPlaceholder(current.Version) {
		if coordinateChanged {
			p.log.Record(entities.Change{
				Kind: entities.ChangeBOMUpdate,
				Old:  current.Key(),
				New:  target.Key(),
				Note: noteManagedByProperty,
			})
		}
		return
	}

	versionChanged := current.Version != newVersion
	if versionChanged {
		version.SetText(newVersion)
	}
	if !coordinateChanged && !versionChanged {
		return
	}
	p.log.Record(entities.Change{
		Kind: entities.ChangeBOMUpdate,
		Old:  current.Key() + ":" + current.Version,
		New:  target.Key() + ":" + newVersion,
		Note: entities.AnalyzeVersionDiff(current.Version, newVersion).Label(),
	})
}

// rewriteRegular rewrites dependency coordinates outside the managed
// section. Versions are left alone; they are expected to come from BOMs.
func (p *pipeline) rewriteRegular(regular []*etree.Element) {
	for _, dependency := range regular {
		current, ok := coordinateOf(dependency)
		if !ok {
			continue
		}
		replacement, hasReplacement := p.rules.Replacement(current.Key())
		if !hasReplacement {
			continue
		}
		if rewriteCoordinate(dependency, current, replacement) {
			p.log.Record(entities.Change{
				Kind: entities.ChangeDependencyMigration,
				Old:  current.Key(),
				New:  replacement.Key(),
			})
		}
	}
}

// cleanupManagedVersions drops literal versions of regular dependencies the
// platform BOM manages. Nothing happens unless a platform BOM is imported.
func (p *pipeline) cleanupManagedVersions(regular []*etree.Element, boms []entities.ActiveBOM) {
	if !hasPlatformBOM(boms) {
		return
	}
	for _, dependency := range regular {
		current, ok := coordinateOf(dependency)
		if !ok || !p.rules.IsManaged(current.Key()) {
			continue
		}
		version := dependency.SelectElement("version")
		if version == nil || entities.IsPropertyPlaceholder(current.Version) {
			continue
		}
		dependency.RemoveChild(version)
		p.log.Record(entities.Change{
			Kind: entities.ChangeVersionRemoved,
			Old:  current.Key() + ":" + current.Version,
			New:  current.Key(),
			Note: noteManagedByBOM,
		})
	}
}

func hasPlatformBOM(boms []entities.ActiveBOM) bool {
	for _, bom := range boms {
		if strings.Contains(strings.ToLower(bom.Artifact), platformMarker) {
			return true
		}
	}
	return false
}

// rewriteProperties moves javax references to jakarta and bumps a few
// known legacy component versions.
func (p *pipeline) rewriteProperties(sections []*etree.Element) {
	for _, properties := range sections {
		for _, property := range properties.ChildElements() {
			old := strings.TrimSpace(property.Text())
			if old == "" {
				continue
			}
			updated := rewritePropertyValue(property.Tag, old)
			if updated == old {
				continue
			}
			property.SetText(updated)
			p.log.Record(entities.Change{
				Kind: entities.ChangePropertyUpdate,
				Old:  old,
				New:  updated,
				Note: property.Tag,
			})
		}
	}
}

func rewritePropertyValue(name, value string) string {
	value = strings.Replace(value, "javax.", "jakarta.", 1)

	lowerName := strings.ToLower(name)
	if !strings.Contains(lowerName, "version") {
		return value
	}
	for _, rule := range legacyVersionRules {
		if strings.Contains(lowerName, rule.component) && rule.matches(value) {
			return rule.target
		}
	}
	return value
}

// adjustPlugins replaces a legacy source/target pair of the compiler plugin
// with a single release element.
func (p *pipeline) adjustPlugins(plugins []*etree.Element) {
	for _, plugin := range plugins {
		if artifact, _ := childText(plugin, "artifactId"); artifact != compilerPlugin {
			continue
		}
		configuration := plugin.SelectElement("configuration")
		if configuration == nil {
			continue
		}
		source := configuration.SelectElement("source")
		target := configuration.SelectElement("target")
		if source == nil || target == nil {
			continue
		}
		sourceLevel := strings.TrimSpace(source.Text())
		targetLevel := strings.TrimSpace(target.Text())
		if !legacyLanguageLevels[sourceLevel] && !legacyLanguageLevels[targetLevel] {
			continue
		}

		at := min(source.Index(), target.Index())
		configuration.RemoveChild(source)
		configuration.RemoveChild(target)

		release := etree.NewElement("release")
		release.Space = source.Space
		release.SetText(releaseLevel)
		configuration.InsertChildAt(at, release)

		p.log.Record(entities.Change{
			Kind: entities.ChangePluginUpdate,
			Old:  fmt.Sprintf("source=%s, target=%s", sourceLevel, targetLevel),
			New:  "release=" + releaseLevel,
			Note: compilerPlugin,
		})
	}
}

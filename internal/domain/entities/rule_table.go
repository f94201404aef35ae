package entities

import (
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// Rule describes how one legacy dependency coordinate is migrated. At least
// one of NewArtifact ("group:artifact") and NewVersion must be set.
type Rule struct {
	NewArtifact string `yaml:"new_artifact,omitempty"`
	NewVersion  string `yaml:"new_version,omitempty"`
}

// resolvedRule is a validated Rule with its replacement coordinate parsed.
type resolvedRule struct {
	rule        Rule
	replacement *Coordinate
}

// RuleTable is the read-only rule set for a migration run. It is built once
// at startup and shared by every file; nothing mutates it afterwards.
type RuleTable struct {
	rules    map[string]resolvedRule
	managed  map[string]struct{}
	packages []string
}

// NewRuleTable validates the given rules and builds a table. Rules with an
// invalid key or replacement coordinate, or with neither a replacement nor
// a version, are skipped with a warning rather than failing the run.
func NewRuleTable(rules map[string]Rule, managed, packages []string) *RuleTable {
	table := &RuleTable{
		rules:    make(map[string]resolvedRule, len(rules)),
		managed:  make(map[string]struct{}, len(managed)),
		packages: make([]string, 0, len(packages)),
	}

	for key, rule := range rules {
		if _, err := ParseCoordinate(key); err != nil {
			logger.Warnf("Skipping rule %q: %v", key, err)
			continue
		}
		resolved := resolvedRule{rule: rule}
		if rule.NewArtifact != "" {
			coordinate, err := ParseCoordinate(rule.NewArtifact)
			if err != nil {
				logger.Warnf("Skipping rule %q: new_artifact: %v", key, err)
				continue
			}
			resolved.replacement = &coordinate
		}
		if resolved.replacement == nil && rule.NewVersion == "" {
			logger.Warnf("Skipping rule %q: neither new_artifact nor new_version is set", key)
			continue
		}
		table.rules[key] = resolved
	}

	for _, key := range managed {
		table.managed[strings.TrimSpace(key)] = struct{}{}
	}

	for _, pkg := range packages {
		pkg = strings.TrimSuffix(strings.TrimSpace(pkg), ".")
		if pkg != "" {
			table.packages = append(table.packages, pkg)
		}
	}
	sort.Strings(table.packages)

	return table
}

// DefaultRuleTable builds the table from the built-in EAP 7 to EAP 8
// catalogue.
func DefaultRuleTable() *RuleTable {
	return NewRuleTable(DefaultDependencyRules(), DefaultManagedDependencies(), DefaultJavaxPackages())
}

// Lookup returns the rule for a "group:artifact" key.
func (t *RuleTable) Lookup(key string) (Rule, bool) {
	resolved, ok := t.rules[key]
	return resolved.rule, ok
}

// Replacement returns the coordinate a key is rewritten to, if the rule
// supplies one.
func (t *RuleTable) Replacement(key string) (Coordinate, bool) {
	resolved, ok := t.rules[key]
	if !ok || resolved.replacement == nil {
		return Coordinate{}, false
	}
	return *resolved.replacement, true
}

// IsManaged reports whether the target platform BOMs supply a version for
// the key.
func (t *RuleTable) IsManaged(key string) bool {
	_, ok := t.managed[key]
	return ok
}

// Packages returns the javax packages moved to the jakarta namespace.
func (t *RuleTable) Packages() []string {
	out := make([]string, len(t.packages))
	copy(out, t.packages)
	return out
}

// Rules returns a copy of the effective dependency rules.
func (t *RuleTable) Rules() map[string]Rule {
	out := make(map[string]Rule, len(t.rules))
	for key, resolved := range t.rules {
		out[key] = resolved.rule
	}
	return out
}

// ManagedDependencies returns the managed set, sorted.
func (t *RuleTable) ManagedDependencies() []string {
	out := make([]string, 0, len(t.managed))
	for key := range t.managed {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

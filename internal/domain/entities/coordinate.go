package entities

import (
	"fmt"
	"strings"
)

const (
	scopeImport = "import"
	typePom     = "pom"
)

// Coordinate identifies a Maven dependency. Two coordinates are the same
// dependency when their Key values match; versions are never compared
// semantically.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
	Scope    string
	Type     string
}

// Key returns the "group:artifact" form used to look up rules.
func (c Coordinate) Key() string {
	return c.Group + ":" + c.Artifact
}

// IsBOMImport reports whether the coordinate imports a bill of materials.
// Both scope=import and type=pom are required.
func (c Coordinate) IsBOMImport() bool {
	return c.Scope == scopeImport && c.Type == typePom
}

func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Key()
	}
	return c.Key() + ":" + c.Version
}

// ParseCoordinate splits a "group:artifact" string. Both parts are required.
func ParseCoordinate(raw string) (Coordinate, error) {
	group, artifact, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || group == "" || artifact == "" || strings.Contains(artifact, ":") {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: expected group:artifact", raw)
	}
	return Coordinate{Group: group, Artifact: artifact}, nil
}

// IsPropertyPlaceholder reports whether a value is a ${...} reference to a
// build property rather than a literal.
func IsPropertyPlaceholder(value string) bool {
	return strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}")
}

// ActiveBOM is a bill of materials imported by the descriptor being migrated.
type ActiveBOM struct {
	Group    string
	Artifact string
	Version  string // literal, ${...} reference, or empty when undeclared
}

// Key returns the "group:artifact" form of the BOM.
func (b ActiveBOM) Key() string {
	return b.Group + ":" + b.Artifact
}

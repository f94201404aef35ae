//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const pomNamespace = `xmlns="http://maven.apache.org/POM/4.0.0" ` +
	`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" ` +
	`xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd"`

type pomProperty struct {
	name  string
	value string
}

// PomBuilder helps create Maven descriptors with a fluent interface.
type PomBuilder struct {
	*testkit.BaseBuilder
	declaration    bool
	properties     []pomProperty
	managed        []entities.Coordinate
	dependencies   []entities.Coordinate
	compilerSource string
	compilerTarget string
}

// NewPomBuilder creates a new builder for an empty project with an XML
// declaration.
func NewPomBuilder() *PomBuilder {
	return &PomBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		declaration: true,
	}
}

// WithoutDeclaration omits the XML declaration.
func (b *PomBuilder) WithoutDeclaration() *PomBuilder {
	b.declaration = false
	return b
}

// WithProperty adds a property to the project properties section.
func (b *PomBuilder) WithProperty(name, value string) *PomBuilder {
	b.properties = append(b.properties, pomProperty{name: name, value: value})
	return b
}

// WithBOM adds a BOM import to the managed section.
func (b *PomBuilder) WithBOM(group, artifact, version string) *PomBuilder {
	b.managed = append(b.managed, entities.Coordinate{
		Group:    group,
		Artifact: artifact,
		Version:  version,
		Scope:    "import",
		Type:     "pom",
	})
	return b
}

// WithManaged adds an entry to the managed section.
func (b *PomBuilder) WithManaged(coordinate entities.Coordinate) *PomBuilder {
	b.managed = append(b.managed, coordinate)
	return b
}

// WithDependency adds a regular dependency. An empty version omits the
// version element.
func (b *PomBuilder) WithDependency(group, artifact, version string) *PomBuilder {
	b.dependencies = append(b.dependencies, entities.Coordinate{
		Group:    group,
		Artifact: artifact,
		Version:  version,
	})
	return b
}

// WithCompiler adds a maven-compiler-plugin with source and target levels.
func (b *PomBuilder) WithCompiler(source, target string) *PomBuilder {
	b.compilerSource = source
	b.compilerTarget = target
	return b
}

// Build creates the descriptor (satisfies testkit.Builder interface).
func (b *PomBuilder) Build() interface{} {
	return b.BuildPom()
}

// BuildPom renders the descriptor bytes.
func (b *PomBuilder) BuildPom() []byte {
	var sb strings.Builder
	if b.declaration {
		sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	sb.WriteString("<project " + pomNamespace + ">\n")
	sb.WriteString("  <modelVersion>4.0.0</modelVersion>\n")
	sb.WriteString("  <groupId>com.example</groupId>\n")
	sb.WriteString("  <artifactId>app</artifactId>\n")
	sb.WriteString("  <version>1.0.0</version>\n")

	if len(b.properties) > 0 {
		sb.WriteString("  <properties>\n")
		for _, property := range b.properties {
			fmt.Fprintf(&sb, "    <%s>%s</%s>\n", property.name, property.value, property.name)
		}
		sb.WriteString("  </properties>\n")
	}

	if len(b.managed) > 0 {
		sb.WriteString("  <dependencyManagement>\n")
		sb.WriteString("    <dependencies>\n")
		for _, coordinate := range b.managed {
			writeDependency(&sb, "      ", coordinate)
		}
		sb.WriteString("    </dependencies>\n")
		sb.WriteString("  </dependencyManagement>\n")
	}

	if len(b.dependencies) > 0 {
		sb.WriteString("  <dependencies>\n")
		for _, coordinate := range b.dependencies {
			writeDependency(&sb, "    ", coordinate)
		}
		sb.WriteString("  </dependencies>\n")
	}

	if b.compilerSource != "" || b.compilerTarget != "" {
		sb.WriteString("  <build>\n")
		sb.WriteString("    <plugins>\n")
		sb.WriteString("      <plugin>\n")
		sb.WriteString("        <groupId>org.apache.maven.plugins</groupId>\n")
		sb.WriteString("        <artifactId>maven-compiler-plugin</artifactId>\n")
		sb.WriteString("        <configuration>\n")
		fmt.Fprintf(&sb, "          <source>%s</source>\n", b.compilerSource)
		fmt.Fprintf(&sb, "          <target>%s</target>\n", b.compilerTarget)
		sb.WriteString("          <encoding>UTF-8</encoding>\n")
		sb.WriteString("        </configuration>\n")
		sb.WriteString("      </plugin>\n")
		sb.WriteString("    </plugins>\n")
		sb.WriteString("  </build>\n")
	}

	sb.WriteString("</project>\n")
	return []byte(sb.String())
}

func writeDependency(sb *strings.Builder, indent string, coordinate entities.Coordinate) {
	sb.WriteString(indent + "<dependency>\n")
	fmt.Fprintf(sb, "%s  <groupId>%s</groupId>\n", indent, coordinate.Group)
	fmt.Fprintf(sb, "%s  <artifactId>%s</artifactId>\n", indent, coordinate.Artifact)
	if coordinate.Version != "" {
		fmt.Fprintf(sb, "%s  <version>%s</version>\n", indent, coordinate.Version)
	}
	if coordinate.Type != "" {
		fmt.Fprintf(sb, "%s  <type>%s</type>\n", indent, coordinate.Type)
	}
	if coordinate.Scope != "" {
		fmt.Fprintf(sb, "%s  <scope>%s</scope>\n", indent, coordinate.Scope)
	}
	sb.WriteString(indent + "</dependency>\n")
}

// Reset clears the builder state, allowing it to be reused.
func (b *PomBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.declaration = true
	b.properties = nil
	b.managed = nil
	b.dependencies = nil
	b.compilerSource = ""
	b.compilerTarget = ""
	return b
}

// Clone creates a deep copy of the PomBuilder.
func (b *PomBuilder) Clone() testkit.Builder {
	return &PomBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		declaration:    b.declaration,
		properties:     append([]pomProperty{}, b.properties...),
		managed:        append([]entities.Coordinate{}, b.managed...),
		dependencies:   append([]entities.Coordinate{}, b.dependencies...),
		compilerSource: b.compilerSource,
		compilerTarget: b.compilerTarget,
	}
}

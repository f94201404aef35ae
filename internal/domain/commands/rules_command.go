package commands

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

const (
	RulesFormatTable = "table"
	RulesFormatYAML  = "yaml"
)

// Rules is the interface for printing the effective rule table.
type Rules interface {
	Execute(out io.Writer, settings *entities.Settings, format string) error
}

// RulesCommand prints the dependency rules, the managed dependency set and
// the namespace packages a run would use.
type RulesCommand struct{}

// NewRulesCommand creates a new RulesCommand.
func NewRulesCommand() *RulesCommand {
	return &RulesCommand{}
}

// rulesDocument is the YAML form of a rule table.
type rulesDocument struct {
	Dependencies map[string]entities.Rule `yaml:"eap7_to_eap8_dependencies"`
	Managed      []string                 `yaml:"managed_dependencies"`
	Packages     []string                 `yaml:"javax_to_jakarta_packages"`
}

func (it *RulesCommand) Execute(out io.Writer, settings *entities.Settings, format string) error {
	table := settings.RuleTable()

	switch format {
	case "", RulesFormatTable:
		return writeRulesTable(out, table)
	case RulesFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(rulesDocument{
			Dependencies: table.Rules(),
			Managed:      table.ManagedDependencies(),
			Packages:     table.Packages(),
		}); err != nil {
			return fmt.Errorf("failed to encode rules: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q (available: %s, %s)", format, RulesFormatTable, RulesFormatYAML)
	}
}

func writeRulesTable(out io.Writer, table *entities.RuleTable) error {
	rules := table.Rules()
	keys := lo.Keys(rules)
	sort.Strings(keys)

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "DEPENDENCY\tNEW ARTIFACT\tNEW VERSION\tMANAGED")
	for _, key := range keys {
		rule := rules[key]
		managed := ""
		if table.IsManaged(key) {
			managed = "yes"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", key, dash(rule.NewArtifact), dash(rule.NewVersion), managed)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nManaged dependencies (%d):\n", len(table.ManagedDependencies()))
	for _, key := range table.ManagedDependencies() {
		fmt.Fprintf(out, "  %s\n", key)
	}
	fmt.Fprintf(out, "\nNamespace packages (%d):\n", len(table.Packages()))
	for _, pkg := range table.Packages() {
		fmt.Fprintf(out, "  %s\n", pkg)
	}
	return nil
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

package java

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

const (
	legacyPrefix = "javax."
	targetPrefix = "jakarta."
)

// namespacePass matches one kind of javax reference. When the pattern has a
// leading keyword group, group 1 is the keyword and group 2 the package;
// otherwise group 1 is the package.
type namespacePass struct {
	kind    entities.ChangeKind
	pattern *regexp.Regexp
	keyword bool
}

// Passes run in order; references rewritten by an earlier pass no longer
// start with javax and are not counted twice.
var namespacePasses = []namespacePass{
	{
		kind:    entities.ChangeImportNamespace,
		pattern: regexp.MustCompile(`\b(import\s+(?:static\s+)?)(javax\.[a-zA-Z0-9_.]+)`),
		keyword: true,
	},
	{
		kind:    entities.ChangePackageNamespace,
		pattern: regexp.MustCompile(`\b(package\s+)(javax\.[a-zA-Z0-9_.]+)`),
		keyword: true,
	},
	{
		kind:    entities.ChangeCodeReferenceNamespace,
		pattern: regexp.MustCompile(`\b(javax\.(?:[a-zA-Z0-9_]+\.)+[a-zA-Z0-9_]+)`),
	},
}

// rewriteNamespaces moves references to the given javax packages into the
// jakarta namespace and returns one change per rewritten reference.
func rewriteNamespaces(content string, packages []string) (string, []entities.Change) {
	var changes []entities.Change
	for _, pass := range namespacePasses {
		var passChanges []entities.Change
		content, passChanges = pass.apply(content, packages)
		changes = append(changes, passChanges...)
	}
	return content, changes
}

func (p namespacePass) apply(content string, packages []string) (string, []entities.Change) {
	matches := p.pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	group := 1
	if p.keyword {
		group = 2
	}

	var (
		builder strings.Builder
		changes []entities.Change
		last    int
	)
	for _, match := range matches {
		start, end := match[2*group], match[2*group+1]
		pkg := content[start:end]
		if !shouldReplace(pkg, packages) {
			continue
		}
		replaced := targetPrefix + strings.TrimPrefix(pkg, legacyPrefix)
		changes = append(changes, entities.Change{
			Kind: p.kind,
			Old:  pkg,
			New:  replaced,
			Line: strings.Count(content[:start], "\n") + 1,
		})
		builder.WriteString(content[last:start])
		builder.WriteString(replaced)
		last = end
	}
	if len(changes) == 0 {
		return content, nil
	}
	builder.WriteString(content[last:])
	return builder.String(), changes
}

// shouldReplace reports whether pkg is one of the packages, or nested in one.
func shouldReplace(pkg string, packages []string) bool {
	for _, candidate := range packages {
		if pkg == candidate || strings.HasPrefix(pkg, candidate+".") {
			return true
		}
	}
	return false
}

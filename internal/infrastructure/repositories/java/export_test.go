package java

// RewriteNamespaces exports rewriteNamespaces for testing.
var RewriteNamespaces = rewriteNamespaces //nolint:gochecknoglobals // test export

// ShouldReplace exports shouldReplace for testing.
var ShouldReplace = shouldReplace //nolint:gochecknoglobals // test export

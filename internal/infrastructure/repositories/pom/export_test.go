package pom

// RewritePropertyValue exports rewritePropertyValue for testing.
var RewritePropertyValue = rewritePropertyValue //nolint:gochecknoglobals // test export

package commands

// IsHidden exports isHidden for testing.
var IsHidden = isHidden //nolint:gochecknoglobals // test export

// ResolveDirectory exports resolveDirectory for testing.
var ResolveDirectory = resolveDirectory //nolint:gochecknoglobals // test export

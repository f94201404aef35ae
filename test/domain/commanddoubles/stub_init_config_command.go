//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/jakartamigrate/internal/domain/commands"
)

// StubInitConfigCommand is a stub implementation of commands.InitConfig.
type StubInitConfigCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.InitConfigOptions
}

var _ commands.InitConfig = (*StubInitConfigCommand)(nil)

func (s *StubInitConfigCommand) Execute(opts commands.InitConfigOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

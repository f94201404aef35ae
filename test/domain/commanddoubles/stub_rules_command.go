//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/jakartamigrate/internal/domain/commands"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// StubRulesCommand is a stub implementation of commands.Rules.
type StubRulesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastFormat       string
}

var _ commands.Rules = (*StubRulesCommand)(nil)

func (s *StubRulesCommand) Execute(_ io.Writer, settings *entities.Settings, format string) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastFormat = format
	return s.ExecuteErr
}

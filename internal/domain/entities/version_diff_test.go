//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

func TestAnalyzeVersionDiff(t *testing.T) {
	t.Parallel()

	t.Run("should classify Maven qualified versions", func(t *testing.T) {
		t.Parallel()

		// when
		major := entities.AnalyzeVersionDiff("7.4.0.GA", "8.0.0.GA")
		minor := entities.AnalyzeVersionDiff("6.1.0.Final", "6.2.0.Final")
		patch := entities.AnalyzeVersionDiff("2.0.0", "2.0.1")

		// then
		assert.True(t, major.IsMajor)
		assert.Equal(t, "major version upgrade", major.Label())
		assert.True(t, minor.IsMinor)
		assert.Equal(t, "minor version upgrade", minor.Label())
		assert.True(t, patch.IsPatch)
		assert.Equal(t, "patch version upgrade", patch.Label())
	})

	t.Run("should treat short versions as zero-padded", func(t *testing.T) {
		t.Parallel()

		// when
		diff := entities.AnalyzeVersionDiff("7.4", "8.0.0.GA")

		// then
		assert.True(t, diff.IsMajor)
	})

	t.Run("should return an empty label for unparsable versions", func(t *testing.T) {
		t.Parallel()

		// when
		diff := entities.AnalyzeVersionDiff("${version.eap}", "8.0.0.GA")

		// then
		assert.False(t, diff.IsMajor || diff.IsMinor || diff.IsPatch)
		assert.Empty(t, diff.Label())
	})
}

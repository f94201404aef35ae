package entities

import (
	"path/filepath"
	"sort"

	"github.com/samber/lo"
)

// TypeStats aggregates results for one file extension.
type TypeStats struct {
	Count        int
	Modified     int
	Replacements int
}

// FileErrors lists the errors of one failed file.
type FileErrors struct {
	File   string
	Errors []string
}

// Summary aggregates the results of a directory run.
type Summary struct {
	TotalFiles        int
	ModifiedFiles     int
	TotalReplacements int
	FilesWithErrors   int
	ByType            map[string]*TypeStats
	Errors            []FileErrors
	Results           []MigrationResult
}

// NewSummary aggregates per-file results. Result order is preserved.
func NewSummary(results []MigrationResult) *Summary {
	modified := lo.CountBy(results, func(r MigrationResult) bool { return r.Modified })
	failed := lo.CountBy(results, func(r MigrationResult) bool { return r.HasErrors() })
	replacements := lo.SumBy(results, func(r MigrationResult) int { return r.Replacements })

	summary := &Summary{
		TotalFiles:        len(results),
		ModifiedFiles:     modified,
		TotalReplacements: replacements,
		FilesWithErrors:   failed,
		ByType:            make(map[string]*TypeStats),
		Errors:            []FileErrors{},
		Results:           results,
	}

	for _, result := range results {
		if result.HasErrors() {
			summary.Errors = append(summary.Errors, FileErrors{File: result.Path, Errors: result.Errors})
		}

		ext := filepath.Ext(result.Path)
		stats, ok := summary.ByType[ext]
		if !ok {
			stats = &TypeStats{}
			summary.ByType[ext] = stats
		}
		stats.Count++
		if result.Modified {
			stats.Modified++
		}
		stats.Replacements += result.Replacements
	}

	return summary
}

// Extensions returns the keys of ByType, sorted.
func (s *Summary) Extensions() []string {
	exts := lo.Keys(s.ByType)
	sort.Strings(exts)
	return exts
}

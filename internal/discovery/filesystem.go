// Package discovery locates auditable source files on disk for the aiguard CLI.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FilesystemFileLocator finds files eligible for auditing beneath scan roots.
type FilesystemFileLocator struct {
	auditableSuffixes   []string
	excludedDirectories map[string]struct{}
}

// NewFilesystemFileLocator constructs a locator honoring the provided suffix allow-list and excluded directory names.
// Suffix matching is case-insensitive; excluded directory names match path segments exactly.
func NewFilesystemFileLocator(auditableSuffixes []string, excludedDirectories []string) *FilesystemFileLocator {
	normalizedSuffixes := make([]string, 0, len(auditableSuffixes))
	for _, suffix := range auditableSuffixes {
		trimmedSuffix := strings.ToLower(strings.TrimSpace(suffix))
		if len(trimmedSuffix) == 0 {
			continue
		}
		normalizedSuffixes = append(normalizedSuffixes, trimmedSuffix)
	}

	// Longer suffixes first so compound suffixes like .spec.ts win over .ts.
	sort.Slice(normalizedSuffixes, func(first int, second int) bool {
		return len(normalizedSuffixes[first]) > len(normalizedSuffixes[second])
	})

	excludedSet := make(map[string]struct{}, len(excludedDirectories))
	for _, directoryName := range excludedDirectories {
		trimmedName := strings.TrimSpace(directoryName)
		if len(trimmedName) == 0 {
			continue
		}
		excludedSet[trimmedName] = struct{}{}
	}

	return &FilesystemFileLocator{
		auditableSuffixes:   normalizedSuffixes,
		excludedDirectories: excludedSet,
	}
}

// DiscoverFiles walks the provided roots and returns sorted, de-duplicated paths of auditable files.
func (locator *FilesystemFileLocator) DiscoverFiles(roots []string) ([]string, error) {
	seen := make(map[string]struct{})
	var discoveredFiles []string

	for _, root := range roots {
		walkError := filepath.WalkDir(root, func(path string, directoryEntry fs.DirEntry, entryError error) error {
			if entryError != nil {
				return nil
			}

			if directoryEntry.IsDir() {
				if path != root && locator.isExcludedDirectory(directoryEntry.Name()) {
					return fs.SkipDir
				}
				return nil
			}

			if !directoryEntry.Type().IsRegular() {
				return nil
			}

			if !locator.HasAuditableSuffix(path) {
				return nil
			}

			if _, alreadySeen := seen[path]; alreadySeen {
				return nil
			}

			seen[path] = struct{}{}
			discoveredFiles = append(discoveredFiles, path)
			return nil
		})
		if walkError != nil {
			return nil, walkError
		}
	}

	sort.Strings(discoveredFiles)
	return discoveredFiles, nil
}

// HasAuditableSuffix reports whether the path ends in a configured suffix, ignoring case.
func (locator *FilesystemFileLocator) HasAuditableSuffix(path string) bool {
	loweredName := strings.ToLower(filepath.Base(path))
	for _, suffix := range locator.auditableSuffixes {
		if strings.HasSuffix(loweredName, suffix) {
			return true
		}
	}
	return false
}

func (locator *FilesystemFileLocator) isExcludedDirectory(directoryName string) bool {
	_, excluded := locator.excludedDirectories[directoryName]
	return excluded
}

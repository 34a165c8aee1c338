package pathutils_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/aiguard/internal/utils/path"
)

const (
	sanitizerSubtestNameTemplateConstant   = "%d_%s"
	sanitizerCaseTrimsWhitespaceConstant   = "trims_whitespace_and_drops_empty"
	sanitizerCaseExpandsTildeConstant      = "expands_tilde_prefix"
	sanitizerCasePrunesNestedRootsConstant = "prunes_nested_scan_roots"
	sanitizerCaseKeepsNestedRootsConstant  = "keeps_nested_paths_without_pruning"
	sanitizerHomeDirectoryConstant         = "/home/auditor"
)

func TestAuditPathSanitizerSanitize(testInstance *testing.T) {
	homeProvider := func() (string, error) {
		return sanitizerHomeDirectoryConstant, nil
	}

	testCases := []struct {
		name           string
		pruneNested    bool
		candidatePaths []string
		expectedPaths  []string
	}{
		{
			name:           sanitizerCaseTrimsWhitespaceConstant,
			pruneNested:    false,
			candidatePaths: []string{"  ./src  ", "", "   "},
			expectedPaths:  []string{"./src"},
		},
		{
			name:           sanitizerCaseExpandsTildeConstant,
			pruneNested:    false,
			candidatePaths: []string{"~/projects/service"},
			expectedPaths:  []string{filepath.Join(sanitizerHomeDirectoryConstant, "projects", "service")},
		},
		{
			name:           sanitizerCasePrunesNestedRootsConstant,
			pruneNested:    true,
			candidatePaths: []string{"/workspace/app", "/workspace/app/tests"},
			expectedPaths:  []string{"/workspace/app"},
		},
		{
			name:           sanitizerCaseKeepsNestedRootsConstant,
			pruneNested:    false,
			candidatePaths: []string{"/workspace/app", "/workspace/app/tests"},
			expectedPaths:  []string{"/workspace/app", "/workspace/app/tests"},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(sanitizerSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			sanitizer := pathutils.NewAuditPathSanitizerWithOptions(
				pathutils.NewHomeExpanderWithProvider(homeProvider),
				testCase.pruneNested,
			)

			sanitizedPaths := sanitizer.Sanitize(testCase.candidatePaths)
			require.Equal(testInstance, testCase.expectedPaths, sanitizedPaths)
		})
	}
}

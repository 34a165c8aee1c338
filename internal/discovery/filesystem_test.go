package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/aiguard/internal/discovery"
)

const (
	discoveredFileContentConstant = "content\n"
)

func writeFixtureFile(testInstance *testing.T, path string) {
	testInstance.Helper()
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(testInstance, os.WriteFile(path, []byte(discoveredFileContentConstant), 0o600))
}

func TestDiscoverFilesFiltersAndSorts(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()

	includedScript := filepath.Join(rootDirectory, "src", "login.spec.ts")
	includedEnvironment := filepath.Join(rootDirectory, "config", "secrets.env")
	includedUppercase := filepath.Join(rootDirectory, "src", "Main.PY")
	excludedByExtension := filepath.Join(rootDirectory, "src", "notes.md")
	excludedByDirectory := filepath.Join(rootDirectory, "node_modules", "library", "index.js")
	excludedByMetadata := filepath.Join(rootDirectory, ".git", "hooks", "prepare.py")

	for _, fixturePath := range []string{
		includedScript,
		includedEnvironment,
		includedUppercase,
		excludedByExtension,
		excludedByDirectory,
		excludedByMetadata,
	} {
		writeFixtureFile(testInstance, fixturePath)
	}

	locator := discovery.NewFilesystemFileLocator(
		[]string{".ts", ".js", ".py", ".env", ".spec.ts"},
		[]string{".git", "node_modules"},
	)

	discoveredFiles, discoveryError := locator.DiscoverFiles([]string{rootDirectory})
	require.NoError(testInstance, discoveryError)

	expectedFiles := []string{includedEnvironment, includedUppercase, includedScript}
	require.Equal(testInstance, expectedFiles, discoveredFiles)
}

func TestDiscoverFilesEmptyResultIsValid(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, filepath.Join(rootDirectory, "README.md"))

	locator := discovery.NewFilesystemFileLocator([]string{".py"}, []string{".git"})

	discoveredFiles, discoveryError := locator.DiscoverFiles([]string{rootDirectory})
	require.NoError(testInstance, discoveryError)
	require.Empty(testInstance, discoveredFiles)
}

func TestDiscoverFilesDeduplicatesOverlappingRoots(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	auditableFile := filepath.Join(rootDirectory, "app.py")
	writeFixtureFile(testInstance, auditableFile)

	locator := discovery.NewFilesystemFileLocator([]string{".py"}, nil)

	discoveredFiles, discoveryError := locator.DiscoverFiles([]string{rootDirectory, rootDirectory})
	require.NoError(testInstance, discoveryError)
	require.Equal(testInstance, []string{auditableFile}, discoveredFiles)
}

func TestHasAuditableSuffixPrefersCompoundSuffixes(testInstance *testing.T) {
	locator := discovery.NewFilesystemFileLocator([]string{".spec.ts", ".ts"}, nil)

	require.True(testInstance, locator.HasAuditableSuffix("checkout.spec.ts"))
	require.True(testInstance, locator.HasAuditableSuffix("checkout.ts"))
	require.False(testInstance, locator.HasAuditableSuffix("checkout.go"))
}

func TestDiscoverFilesSortsExpectedOrder(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	firstFile := filepath.Join(rootDirectory, "a.py")
	secondFile := filepath.Join(rootDirectory, "b", "c.py")
	writeFixtureFile(testInstance, secondFile)
	writeFixtureFile(testInstance, firstFile)

	locator := discovery.NewFilesystemFileLocator([]string{".py"}, nil)

	discoveredFiles, discoveryError := locator.DiscoverFiles([]string{rootDirectory})
	require.NoError(testInstance, discoveryError)
	require.Equal(testInstance, []string{firstFile, secondFile}, discoveredFiles)
}

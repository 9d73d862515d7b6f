package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAsset creates an empty file under root/category.
func writeAsset(t *testing.T, root, category, filename string) {
	t.Helper()
	dir := filepath.Join(root, category)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), nil, 0o644))
}

func TestScan_SortsIdsLexicographically(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "nose", "nose2.svg")
	writeAsset(t, root, "nose", "nose10.svg")
	writeAsset(t, root, "nose", "nose1.svg")

	assets := NewScanner().Scan(root)

	require.Contains(t, assets, "nose")
	// Pure string sort: "nose10" sorts before "nose2"
	assert.Equal(t, []string{"nose1", "nose10", "nose2"}, assets["nose"])
}

func TestScan_ExcludesHiddenAndBuildDirs(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "head", "head1.svg")
	writeAsset(t, root, ".cache", "sneaky.svg")
	writeAsset(t, root, ".git", "config.svg")
	writeAsset(t, root, "__pycache__", "cached.svg")
	writeAsset(t, root, "node_modules", "dep.svg")

	assets := NewScanner().Scan(root)

	assert.Equal(t, []string{"head"}, Categories(assets))
}

func TestScan_OmitsCategoriesWithoutMatches(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "head", "head1.svg")
	writeAsset(t, root, "docs", "readme.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	assets := NewScanner().Scan(root)

	assert.Equal(t, []string{"head"}, Categories(assets))
}

func TestScan_IgnoresFilesAtRootLevel(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.svg"), nil, 0o644))
	writeAsset(t, root, "mouth", "mouth1.svg")

	assets := NewScanner().Scan(root)

	assert.Equal(t, []string{"mouth"}, Categories(assets))
}

func TestScan_IgnoresNestedDirectories(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "hair", "hair1.svg")
	writeAsset(t, root, filepath.Join("hair", "variants"), "hair2.svg")

	assets := NewScanner().Scan(root)

	assert.Equal(t, []string{"hair1"}, assets["hair"])
}

func TestScan_MissingRootYieldsEmptyMapping(t *testing.T) {
	assets := NewScanner().Scan(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.NotNil(t, assets)
	assert.Empty(t, assets)
}

func TestScan_CustomExtension(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "icons", "star.png")
	writeAsset(t, root, "icons", "moon.svg")

	assets := NewScanner(WithExtension("png")).Scan(root)

	assert.Equal(t, []string{"star"}, assets["icons"])
}

func TestCategories_Sorted(t *testing.T) {
	assets := map[string][]string{
		"nose":  {"nose1"},
		"head":  {"head1"},
		"mouth": {"mouth1"},
	}

	assert.Equal(t, []string{"head", "mouth", "nose"}, Categories(assets))
}

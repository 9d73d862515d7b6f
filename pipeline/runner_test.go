package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/svgscribe/ai"
	"github.com/poiesic/svgscribe/ai/mock"
	"github.com/poiesic/svgscribe/catalog"
	"github.com/poiesic/svgscribe/core"
	"github.com/poiesic/svgscribe/storage/jsonfile"
)

// writeAssetTree creates head/{head1,head2}.svg and nose/nose1.svg under a
// fresh temp root.
func writeAssetTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for category, ids := range map[string][]string{
		"head": {"head1", "head2"},
		"nose": {"nose1"},
	} {
		dir := filepath.Join(root, category)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for _, id := range ids {
			require.NoError(t, os.WriteFile(filepath.Join(dir, id+".svg"), nil, 0o644))
		}
	}
	return root
}

func testConfig() *Config {
	return &Config{
		Delay:              0,
		CheckpointInterval: 0,
		ReportInterval:     1,
	}
}

func newTestRunner(describer ai.Describer, storePath string, config *Config) (*Runner, *bytes.Buffer) {
	var buf bytes.Buffer
	runner := NewRunner(catalog.NewScanner(), describer, jsonfile.NewStore(storePath), config, &buf)
	return runner, &buf
}

func TestRunner_DescribesAllPairs(t *testing.T) {
	root := writeAssetTree(t)
	storePath := filepath.Join(root, "faces_descriptions.json")

	describer := mock.NewMockDescriber()
	runner, buf := newTestRunner(describer, storePath, testConfig())

	require.NoError(t, runner.Run(context.Background(), root))

	assert.Equal(t, 3, describer.CallCount())
	assert.Equal(t, []string{"head/head1", "head/head2", "nose/nose1"}, describer.Calls())

	results, err := jsonfile.NewStore(storePath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, results.Count())
	assert.True(t, results.Has("head", "head1"))
	assert.True(t, results.Has("nose", "nose1"))

	output := buf.String()
	assert.Contains(t, output, "3 pairs pending")
	assert.Contains(t, output, "3 new descriptions")
}

func TestRunner_SecondRunMakesNoCalls(t *testing.T) {
	root := writeAssetTree(t)
	storePath := filepath.Join(root, "faces_descriptions.json")

	first := mock.NewMockDescriber()
	runner, _ := newTestRunner(first, storePath, testConfig())
	require.NoError(t, runner.Run(context.Background(), root))

	before, err := jsonfile.NewStore(storePath).Load(context.Background())
	require.NoError(t, err)

	second := mock.NewMockDescriber()
	runner, _ = newTestRunner(second, storePath, testConfig())
	require.NoError(t, runner.Run(context.Background(), root))

	assert.Equal(t, 0, second.CallCount(), "all pairs cached, no remote calls expected")

	after, err := jsonfile.NewStore(storePath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunner_ResumesOnlyMissingPairs(t *testing.T) {
	root := writeAssetTree(t)
	storePath := filepath.Join(root, "faces_descriptions.json")

	// Pre-seed the cache with one of the three pairs
	seeded := core.Results{}
	seeded.Add("head", "head1", &core.Description{Id: "head1", Category: "head", ShortLabel: "seeded"})
	require.NoError(t, jsonfile.NewStore(storePath).Save(context.Background(), seeded))

	describer := mock.NewMockDescriber()
	runner, _ := newTestRunner(describer, storePath, testConfig())
	require.NoError(t, runner.Run(context.Background(), root))

	assert.Equal(t, []string{"head/head2", "nose/nose1"}, describer.Calls())

	results, err := jsonfile.NewStore(storePath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, results.Count())
	// The seeded record is untouched, never re-described
	assert.Equal(t, "seeded", results["head"]["head1"].ShortLabel)
}

func TestRunner_MalformedResponseSkipsPair(t *testing.T) {
	root := writeAssetTree(t)
	storePath := filepath.Join(root, "faces_descriptions.json")

	describer := mock.NewMockDescriber()
	describer.DescribeFunc = func(ctx context.Context, category, id string) (*core.Description, error) {
		if category == "head" && id == "head2" {
			return nil, &ai.DescribeError{
				Category: category,
				Id:       id,
				Raw:      "I'm sorry, I can't produce JSON today.",
				Err:      errors.New("invalid character 'I'"),
			}
		}
		return &core.Description{Id: id, Category: category}, nil
	}

	runner, _ := newTestRunner(describer, storePath, testConfig())
	require.NoError(t, runner.Run(context.Background(), root), "per-pair failures never abort the run")

	results, err := jsonfile.NewStore(storePath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, results.Count())
	assert.False(t, results.Has("head", "head2"))
	assert.True(t, results.Has("head", "head1"))
	assert.True(t, results.Has("nose", "nose1"))
	// All pairs were still attempted
	assert.Equal(t, 3, describer.CallCount())
}

func TestRunner_EmptyRootIsFatal(t *testing.T) {
	root := t.TempDir()
	storePath := filepath.Join(root, "faces_descriptions.json")

	describer := mock.NewMockDescriber()
	runner, _ := newTestRunner(describer, storePath, testConfig())

	err := runner.Run(context.Background(), root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCategories)
	assert.Equal(t, 0, describer.CallCount())
	assert.NoFileExists(t, storePath, "nothing may be written when discovery finds no categories")
}

func TestRunner_CheckpointPersistsMidRun(t *testing.T) {
	root := writeAssetTree(t)
	storePath := filepath.Join(root, "faces_descriptions.json")

	config := testConfig()
	config.CheckpointInterval = 1

	describer := mock.NewMockDescriber()
	describer.DescribeFunc = func(ctx context.Context, category, id string) (*core.Description, error) {
		if category == "nose" {
			// By the time the last pair is described, the first two must
			// already be on disk from checkpoints.
			onDisk, err := jsonfile.NewStore(storePath).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, onDisk.Count())
		}
		return &core.Description{Id: id, Category: category}, nil
	}

	runner, _ := newTestRunner(describer, storePath, config)
	require.NoError(t, runner.Run(context.Background(), root))
}

func TestRunner_ContextCancellationStopsRun(t *testing.T) {
	root := writeAssetTree(t)
	storePath := filepath.Join(root, "faces_descriptions.json")

	ctx, cancel := context.WithCancel(context.Background())
	describer := mock.NewMockDescriber()
	describer.DescribeFunc = func(ctx context.Context, category, id string) (*core.Description, error) {
		cancel()
		return &core.Description{Id: id, Category: category}, nil
	}

	runner, _ := newTestRunner(describer, storePath, testConfig())
	err := runner.Run(ctx, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, describer.CallCount())
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CooperTran2196/scenetree/internal/config"
	"github.com/CooperTran2196/scenetree/internal/version"
	"github.com/stretchr/testify/require"
)

const fixture = "../internal/scene/testdata/sample.unity"

// run executes a fresh command tree with a config path that does not exist
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvScenesDir, "")
	t.Setenv(config.EnvOutput, "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	base := []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--color", config.ColorNever}
	root.SetArgs(append(args, base...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPrintText(t *testing.T) {
	stdout, _, err := run(t, "print", fixture)
	require.NoError(t, err)

	rule := strings.Repeat("=", 80)
	expected := "\n" + rule + "\nScene Hierarchy: sample.unity\n" + rule + "\n\n" +
		"Total GameObjects: 7\nRoot Objects: 3\n\n" +
		"Legend: ✓ = Active, ✗ = Inactive\n\n" +
		"✓ Main Camera\n\n" +
		"✓ Player\n├── ✓ Sprite\n└── ✗ Weapon\n    └── ✓ Hitbox\n\n" +
		"✗ Canvas\n\n"
	require.Equal(t, expected, stdout)
}

func TestPrintNoSummary(t *testing.T) {
	stdout, _, err := run(t, "print", fixture, "--no-summary", "--extractor", "yaml")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "✓ Main Camera\n\n✓ Player\n"), stdout)
	require.NotContains(t, stdout, "Legend")
}

func TestPrintJSONQuery(t *testing.T) {
	stdout, _, err := run(t, "print", fixture, "-o", "json", "--query", ".roots[].name")
	require.NoError(t, err)
	require.Equal(t, "\"Main Camera\"\n\"Player\"\n\"Canvas\"\n", stdout)
}

func TestPrintJSONReport(t *testing.T) {
	stdout, _, err := run(t, "print", fixture, "-o", "json")
	require.NoError(t, err)

	var report struct {
		Scene string `json:"scene"`
		Stats struct {
			Objects  int `json:"objects"`
			Roots    int `json:"roots"`
			MaxDepth int `json:"max_depth"`
		} `json:"stats"`
		Roots []struct {
			Name     string            `json:"name"`
			Children []json.RawMessage `json:"children"`
		} `json:"roots"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Equal(t, "sample.unity", report.Scene)
	require.Equal(t, 7, report.Stats.Objects)
	require.Equal(t, 3, report.Stats.Roots)
	require.Equal(t, 3, report.Stats.MaxDepth)
	require.Len(t, report.Roots, 3)
	require.Len(t, report.Roots[1].Children, 2)
}

func TestPrintObjectSubtree(t *testing.T) {
	stdout, _, err := run(t, "print", fixture, "--no-summary", "--object", "103")
	require.NoError(t, err)
	require.Equal(t, "✗ Weapon\n└── ✓ Hitbox\n\n", stdout)

	stdout, _, err = run(t, "print", fixture, "-o", "json", "--object", "101", "--query", "[.roots[0].children[].name]")
	require.NoError(t, err)
	require.JSONEq(t, `["Sprite", "Weapon"]`, stdout)

	_, _, err = run(t, "print", fixture, "--object", "106")
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestPrintStatsInReport(t *testing.T) {
	stdout, _, err := run(t, "print", fixture, "-o", "json", "--query", ".stats | [.reachable, .leaves]")
	require.NoError(t, err)
	require.JSONEq(t, `[6, 4]`, stdout)
}

func TestPrintMissingScene(t *testing.T) {
	_, _, err := run(t, "print", filepath.Join(t.TempDir(), "Missing.unity"))
	require.ErrorIs(t, err, ErrSceneNotFound)
}

func TestPrintBadExtractor(t *testing.T) {
	_, _, err := run(t, "print", fixture, "--extractor", "regex")
	require.ErrorContains(t, err, "unknown extractor")
}

func TestQueryRequiresStructuredOutput(t *testing.T) {
	_, _, err := run(t, "print", fixture, "--query", ".roots")
	require.ErrorContains(t, err, "--query requires")
}

func TestInvalidQuery(t *testing.T) {
	_, _, err := run(t, "print", fixture, "-o", "json", "--query", ".roots[")
	require.ErrorContains(t, err, "invalid --query")
}

func TestOutputFromEnv(t *testing.T) {
	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	t.Setenv(config.EnvOutput, "yaml")

	require.NoError(t, root.Execute())
	require.Contains(t, stdout.String(), "version: "+version.Version)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Level2.unity", "Level1.unity", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	stdout, _, err := run(t, "list", dir)
	require.NoError(t, err)
	require.Equal(t, "Available scenes:\n  - Level1.unity\n  - Level2.unity\n", stdout)

	stdout, _, err = run(t, "list", dir, "-o", "json", "--query", ".scenes | length")
	require.NoError(t, err)
	require.Equal(t, "2\n", stdout)
}

func TestListEmptyAndMissing(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := run(t, "list", dir)
	require.NoError(t, err)
	require.Equal(t, "No scenes found in "+dir+"\n", stdout)

	_, _, err = run(t, "list", filepath.Join(dir, "nope"))
	require.ErrorContains(t, err, "scenes directory not found")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, version.Get().String()+"\n", stdout)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "print", fixture, "-v", "--no-summary")
	require.NoError(t, err)
	require.Contains(t, stderr, "configuration loaded")
	require.Contains(t, stderr, "scene resolved")
}

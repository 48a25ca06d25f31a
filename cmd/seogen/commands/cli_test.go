package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	outDir := filepath.Join(dir, "public")
	cfgPath := filepath.Join(dir, "seogen.yaml")
	cfg := `site:
  base_url: https://example.com
  name: Example
  static_pages:
    - path: /
      priority: 1.0
generation:
  synthetic_scale: 0.02
output:
  directory: ` + outDir + `
store:
  path: ` + filepath.Join(dir, "runs.db") + `
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return cfgPath, outDir
}

func TestCLIParsesSubcommands(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "--synthetic"},
		{"sitemap", "-o", "out"},
		{"stats", "--top", "5"},
		{"render", "--synthetic"},
		{"verify", "-d", "public"},
		{"init", "--force"},
		{"daemon", "--render"},
	} {
		cli := &CLI{}
		parser, err := kong.New(cli, kong.Vars{"version": "test"})
		require.NoError(t, err)
		_, err = parser.Parse(args)
		assert.NoError(t, err, "args %v", args)
	}
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seogen.yaml")
	root := &CLI{Config: path}

	require.NoError(t, (&InitCmd{}).Run(nil, root))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// Refuses to overwrite without --force.
	assert.Error(t, (&InitCmd{}).Run(nil, root))
	assert.NoError(t, (&InitCmd{Force: true}).Run(nil, root))
}

func TestGenerateCmdSynthetic(t *testing.T) {
	cfgPath, outDir := writeTestConfig(t)
	root := &CLI{Config: cfgPath}

	cmd := &GenerateCmd{Synthetic: true}
	require.NoError(t, cmd.Run(nil, root))

	for _, name := range []string{"sitemap.xml", "robots.txt", "sitemap-index.xml"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestGenerateCmdMissingConfig(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "absent.yaml")}
	assert.Error(t, (&GenerateCmd{}).Run(nil, root))
}

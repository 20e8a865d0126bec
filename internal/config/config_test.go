package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/internal/config"
	"github.com/katalvlaran/textgraph/pagerank"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, pagerank.DefaultIterations, cfg.PageRank.Iterations)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "dot", cfg.Render.Format)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
pagerank:
  iterations: 50
server:
  debounce: 1s
random:
  seed: 42
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 50, cfg.PageRank.Iterations)
	assert.Equal(t, pagerank.DefaultDamping, cfg.PageRank.Damping)
	assert.Equal(t, time.Second, cfg.Server.Debounce)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(42), cfg.Random.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "colour: blue\n",
		"bad level":      "log:\n  level: loud\n",
		"bad format":     "log:\n  format: xml\n",
		"bad damping":    "pagerank:\n  damping: 1.5\n",
		"bad iterations": "pagerank:\n  iterations: 0\n",
		"bad tolerance":  "pagerank:\n  tolerance: -1\n",
		"empty addr":     "server:\n  addr: \"\"\n",
		"negative rate":  "server:\n  rate_limit: -1\n",
		"bad render":     "render:\n  format: gif\n",
		"not yaml":       "log: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestConfig_PageRankOptions(t *testing.T) {
	cfg := config.Default()
	cfg.PageRank.Iterations = 7
	o := pagerank.DefaultOptions()
	for _, opt := range cfg.PageRankOptions() {
		opt(&o)
	}
	assert.Equal(t, 7, o.Iterations)
	assert.Equal(t, pagerank.DefaultDamping, o.Damping)
}

func TestConfig_Renderer(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Graphviz = "/opt/graphviz/bin/dot"
	assert.Equal(t, "/opt/graphviz/bin/dot", cfg.Renderer().Binary)
}

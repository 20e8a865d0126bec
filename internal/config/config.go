// Package config loads the textgraph YAML configuration.
//
// Every field has a default (see Default); a file only needs the keys it
// overrides. Command-line flags are applied on top by the caller.
//
//	log:
//	  level: info        # debug | info | warn | error
//	  format: text       # text | json | auto
//	tracing:
//	  enabled: false     # export spans to stderr
//	random:
//	  seed: 0            # 0 = fresh seed per run
//	pagerank:
//	  damping: 0.85
//	  iterations: 500
//	  tolerance: 0.001
//	server:
//	  addr: ":8080"
//	  watch: false
//	  debounce: 250ms
//	  rate_limit: 0      # requests/second on /v1; 0 = unlimited
//	  burst: 10
//	render:
//	  format: dot        # dot | edges | svg | png | pdf
//	  graphviz: dot
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/textgraph/dot"
	"github.com/katalvlaran/textgraph/pagerank"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration tree.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Random   RandomConfig   `yaml:"random"`
	PageRank PageRankConfig `yaml:"pagerank"`
	Server   ServerConfig   `yaml:"server"`
	Render   RenderConfig   `yaml:"render"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig toggles the stdout span exporter.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// RandomConfig seeds augmentation and random walks.
type RandomConfig struct {
	Seed int64 `yaml:"seed"`
}

// PageRankConfig mirrors pagerank.Options.
type PageRankConfig struct {
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
	Tolerance  float64 `yaml:"tolerance"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr      string        `yaml:"addr"`
	Watch     bool          `yaml:"watch"`
	Debounce  time.Duration `yaml:"debounce"`
	RateLimit float64       `yaml:"rate_limit"`
	Burst     int           `yaml:"burst"`
}

// RenderConfig configures graph export.
type RenderConfig struct {
	Format   string `yaml:"format"`
	Graphviz string `yaml:"graphviz"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		PageRank: PageRankConfig{
			Damping:    pagerank.DefaultDamping,
			Iterations: pagerank.DefaultIterations,
			Tolerance:  pagerank.DefaultTolerance,
		},
		Server: ServerConfig{Addr: ":8080", Debounce: 250 * time.Millisecond, Burst: 10},
		Render: RenderConfig{Format: string(dot.FormatDOT), Graphviz: dot.DefaultBinary},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field range.
func (c Config) Validate() error {
	var problems []string
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "auto":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q", c.Log.Format))
	}
	if c.PageRank.Damping < 0 || c.PageRank.Damping > 1 {
		problems = append(problems, fmt.Sprintf("pagerank.damping %v not in [0,1]", c.PageRank.Damping))
	}
	if c.PageRank.Iterations < 1 {
		problems = append(problems, fmt.Sprintf("pagerank.iterations %d < 1", c.PageRank.Iterations))
	}
	if c.PageRank.Tolerance < 0 {
		problems = append(problems, fmt.Sprintf("pagerank.tolerance %v < 0", c.PageRank.Tolerance))
	}
	if c.Server.Addr == "" {
		problems = append(problems, "server.addr is empty")
	}
	if c.Server.RateLimit < 0 {
		problems = append(problems, fmt.Sprintf("server.rate_limit %v < 0", c.Server.RateLimit))
	}
	if c.Server.Burst < 0 {
		problems = append(problems, fmt.Sprintf("server.burst %d < 0", c.Server.Burst))
	}
	if c.Server.Debounce < 0 {
		problems = append(problems, fmt.Sprintf("server.debounce %v < 0", c.Server.Debounce))
	}
	if _, err := dot.ParseFormat(c.Render.Format); err != nil {
		problems = append(problems, fmt.Sprintf("render.format %q", c.Render.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// PageRankOptions converts the pagerank section to functional options.
func (c Config) PageRankOptions() []pagerank.Option {
	return []pagerank.Option{
		pagerank.WithDamping(c.PageRank.Damping),
		pagerank.WithIterations(c.PageRank.Iterations),
		pagerank.WithTolerance(c.PageRank.Tolerance),
	}
}

// Renderer builds the Graphviz renderer from the render section.
func (c Config) Renderer() dot.Renderer {
	return dot.Renderer{Binary: c.Render.Graphviz}
}

package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/textgraph/core"
)

// Sentinel errors for rendering.
var (
	// ErrGraphvizNotFound indicates the Graphviz binary is not on PATH.
	ErrGraphvizNotFound = errors.New("dot: graphviz is not installed")

	// ErrUnsupportedFormat indicates an output format Render does not know.
	ErrUnsupportedFormat = errors.New("dot: unsupported format")

	// ErrRenderFailed indicates Graphviz ran but exited with an error.
	ErrRenderFailed = errors.New("dot: graphviz rendering failed")
)

// Format is an output format.
type Format string

// Supported formats. FormatDOT and FormatEdges are produced without Graphviz.
const (
	FormatDOT   Format = "dot"
	FormatEdges Format = "edges"
	FormatSVG   Format = "svg"
	FormatPNG   Format = "png"
	FormatPDF   Format = "pdf"
)

// ParseFormat validates a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatDOT, FormatEdges, FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// NeedsGraphviz reports whether f is produced by the external renderer.
func (f Format) NeedsGraphviz() bool {
	return f == FormatSVG || f == FormatPNG || f == FormatPDF
}

// DefaultBinary is the Graphviz program looked up on PATH.
const DefaultBinary = "dot"

// DefaultTimeout bounds a single Graphviz invocation.
const DefaultTimeout = 30 * time.Second

// Renderer runs Graphviz.
type Renderer struct {
	// Binary is the program name or path; empty means DefaultBinary.
	Binary string

	// Timeout bounds one invocation; zero means DefaultTimeout.
	Timeout time.Duration
}

func (r Renderer) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

// Available reports whether the Graphviz binary can be found.
func (r Renderer) Available() bool {
	_, err := exec.LookPath(r.binary())
	return err == nil
}

// Render pipes DOT source through "dot -T<format>" and copies the result to out.
//
// Errors:
//   - ErrUnsupportedFormat for formats Graphviz is not asked to produce.
//   - ErrGraphvizNotFound when the binary is missing.
//   - ErrRenderFailed (with Graphviz's stderr) on a non-zero exit.
//   - ctx.Err() when the context ends first.
func (r Renderer) Render(ctx context.Context, src io.Reader, out io.Writer, format Format) error {
	if !format.NeedsGraphviz() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	path, err := exec.LookPath(r.binary())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrGraphvizNotFound, r.binary())
	}

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(cmdCtx, path, "-T"+string(format))
	cmd.Stdin = src
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if runErr != nil {
		return fmt.Errorf("%w: %v: %s", ErrRenderFailed, runErr, strings.TrimSpace(stderr.String()))
	}
	_, err = out.Write(stdout.Bytes())

	return err
}

// Render is Renderer{}.Render.
func Render(ctx context.Context, src io.Reader, out io.Writer, format Format) error {
	return Renderer{}.Render(ctx, src, out, format)
}

// Export writes g to w in format: DOT source, an edge list, or a Graphviz image.
func (r Renderer) Export(ctx context.Context, g *core.Graph, w io.Writer, format Format, opts Options) error {
	switch format {
	case FormatDOT:
		return Write(w, g, opts)
	case FormatEdges:
		return g.WriteEdgeList(w)
	}

	var src bytes.Buffer
	if err := Write(&src, g, opts); err != nil {
		return err
	}

	return r.Render(ctx, &src, w, format)
}

// SaveFile exports g to path, creating parent directories. A failed export
// leaves no partial file behind.
func (r Renderer) SaveFile(ctx context.Context, g *core.Graph, path string, format Format, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("dot: create %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := r.Export(ctx, g, &buf, format, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("dot: write %s: %w", path, err)
	}

	return nil
}
